// package app is the main entrypoint into the application, responsible for
// configuring and starting the application, wiring up its components, etc.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leg100/timeago/internal/logging"
	"github.com/leg100/timeago/internal/pubsub"
	"github.com/leg100/timeago/internal/refresh"
	"github.com/leg100/timeago/internal/timeago"
	"github.com/leg100/timeago/internal/tui"
	"github.com/leg100/timeago/internal/version"
	"github.com/peterbourgon/ff/v4"
)

// Start the app.
func Start(stdout, stderr io.Writer, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Parse configuration from env vars and flags
	cfg, err := parse(stderr, args)
	if errors.Is(err, ff.ErrHelp) {
		return nil
	} else if err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Version {
		fmt.Fprintln(stdout, "timeago", version.Version)
		return nil
	}

	app, m, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m,
		// use the full size of the terminal with its "alternate screen buffer"
		tea.WithAltScreen(),
		tea.WithOutput(stdout),
	)
	cleanup := app.start(p)
	defer cleanup()

	// Blocks until user quits
	_, err = p.Run()
	app.closeTUI()
	return err
}

type app struct {
	logger  *logging.Logger
	updates *pubsub.Broker[refresh.Update]

	// closeTUI tears down the TUI's bindings.
	closeTUI func()

	logEvents    <-chan pubsub.Event[logging.Message]
	updateEvents <-chan pubsub.Event[refresh.Update]
}

// sender sends messages to a bubbletea program.
type sender interface {
	Send(tea.Msg)
}

func newApp(ctx context.Context, cfg config) (*app, tea.Model, error) {
	// Setup logging
	logger := logging.NewLogger(cfg.loggingOptions)
	slog.SetDefault(logger.Slog())
	updates := pubsub.NewBroker[refresh.Update](logger)

	// Deliberately set up subscriptions *before* any events are triggered, to
	// ensure the TUI receives all messages.
	a := &app{
		logger:       logger,
		updates:      updates,
		logEvents:    logger.Subscribe(ctx),
		updateEvents: updates.Subscribe(ctx),
	}

	entries, err := loadEntries(cfg)
	if err != nil {
		return nil, nil, err
	}
	overflow, ok := timeago.ParseOverflow(cfg.Overflow)
	if !ok {
		return nil, nil, fmt.Errorf("invalid overflow: %q", cfg.Overflow)
	}

	// Bindings publish their updates, which are relayed to the TUI.
	host := refresh.NewTimerHost(func(u refresh.Update) {
		updates.Publish(pubsub.UpdatedEvent, u)
	})

	m, err := tui.New(ctx, tui.Options{
		Entries:   entries,
		Host:      host,
		Formatter: timeago.Formatter{Overflow: overflow},
		Logger:    logger,
		Version:   version.Version,
		Debug:     cfg.Debug,
	})
	if err != nil {
		return nil, nil, err
	}
	a.closeTUI = m.Close
	logger.Info("loaded timestamps", "count", len(entries), "overflow", overflow)

	return a, m, nil
}

// start relays events to the TUI in the background. The returned function
// stops relaying and blocks until the relays have finished.
func (a *app) start(s sender) func() {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for ev := range a.logEvents {
			s.Send(ev)
		}
	}()
	go func() {
		defer wg.Done()
		for ev := range a.updateEvents {
			s.Send(ev)
		}
	}()

	return func() {
		a.logger.Shutdown()
		a.updates.Shutdown()
		wg.Wait()
	}
}
