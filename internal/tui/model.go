// Package tui renders a list of timestamps whose time-ago labels keep
// themselves up to date.
package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"github.com/leg100/go-runewidth"
	"github.com/leg100/timeago/internal/logging"
	"github.com/leg100/timeago/internal/pubsub"
	"github.com/leg100/timeago/internal/refresh"
	"github.com/leg100/timeago/internal/timeago"
	"github.com/leg100/timeago/internal/tui/keys"
	"github.com/muesli/reflow/truncate"
)

// maxNameWidth caps the width of the name column.
const maxNameWidth = 30

// Entry is a named timestamp.
type Entry struct {
	Name      string `yaml:"name"`
	Timestamp string `yaml:"timestamp"`
}

type Options struct {
	Entries   []Entry
	Host      refresh.Host
	Formatter timeago.Formatter
	Logger    logging.Interface
	Version   string
	// Debug dumps every message received to messages.log.
	Debug bool
}

type row struct {
	name    string
	binding *refresh.Binding
}

type model struct {
	rows   []row
	logger logging.Interface

	width    int
	height   int
	showHelp bool
	version  string

	// latest log message, rendered in the footer
	lastLog *logging.Message

	dump io.Writer
}

// New constructs the TUI model. Each entry is bound to its own refreshing
// label; the bindings are torn down when ctx is done.
func New(ctx context.Context, opts Options) (model, error) {
	if opts.Logger == nil {
		opts.Logger = logging.Discard
	}

	var dump io.Writer
	if opts.Debug {
		f, err := os.OpenFile("messages.log", os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return model{}, fmt.Errorf("opening messages log: %w", err)
		}
		context.AfterFunc(ctx, func() { f.Close() })
		dump = f
	}

	m := model{
		rows:    make([]row, len(opts.Entries)),
		logger:  opts.Logger,
		version: opts.Version,
		dump:    dump,
	}
	for i, entry := range opts.Entries {
		b := refresh.NewBinding(ctx, opts.Host, refresh.BindingOptions{
			Formatter: opts.Formatter,
			Logger:    opts.Logger,
		})
		if label := b.Set(entry.Timestamp); label == "" {
			opts.Logger.Warn("unable to format timestamp", "name", entry.Name, "timestamp", entry.Timestamp)
		}
		m.rows[i] = row{name: entry.Name, binding: b}
	}
	return m, nil
}

// Close tears down every binding, cancelling their pending refreshes.
func (m model) Close() {
	for _, r := range m.rows {
		r.binding.Close()
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.dump != nil {
		spew.Fdump(m.dump, msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Global.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Global.Help):
			m.showHelp = !m.showHelp
		case key.Matches(msg, keys.Global.Refresh):
			for _, r := range m.rows {
				r.binding.Set(r.binding.Timestamp())
			}
			m.logger.Info("refreshed labels", "count", len(m.rows))
		}
	case pubsub.Event[refresh.Update]:
		// Labels are read from their bindings when rendering, so there is
		// nothing to do other than let the view be re-rendered.
	case pubsub.Event[logging.Message]:
		m.lastLog = &msg.Payload
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	title := "timeago"
	if m.version != "" {
		title += " " + m.version
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	nameWidth := 0
	for _, r := range m.rows {
		nameWidth = max(nameWidth, runewidth.StringWidth(r.name))
	}
	nameWidth = min(nameWidth, maxNameWidth)

	for _, r := range m.rows {
		name := truncate.StringWithTail(r.name, uint(nameWidth), "…")
		name = runewidth.FillRight(name, nameWidth)
		fmt.Fprintf(&b, " %s  %s  %s\n",
			Regular.Render(name),
			labelStyle.Render(r.binding.Label()),
			Faint.Render(r.binding.Timestamp()),
		)
	}
	b.WriteString("\n")

	rows := 1
	if m.showHelp {
		rows = len(keys.Global.All())
	}
	b.WriteString(helpView(keys.Global.All(), rows, m.width))

	if m.lastLog != nil {
		b.WriteString("\n")
		b.WriteString(renderLog(*m.lastLog))
	}
	return b.String()
}

func renderLog(msg logging.Message) string {
	var level lipgloss.Style
	switch msg.Level {
	case "DEBUG":
		level = Bold.Foreground(DebugLogLevel)
	case "WARN":
		level = Bold.Foreground(WarnLogLevel)
	case "ERROR":
		level = Bold.Foreground(ErrorLogLevel)
	default:
		level = Bold.Foreground(InfoLogLevel)
	}
	parts := []string{level.Render(msg.Level), msg.Message}
	for _, attr := range msg.Attributes {
		parts = append(parts, Faint.Render(attr.Key+"=")+attr.Value)
	}
	return strings.Join(parts, " ")
}
