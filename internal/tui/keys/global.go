package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type global struct {
	Refresh key.Binding
	Quit    key.Binding
	Help    key.Binding
}

var Global = global{
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh now"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}

// All returns all global key bindings.
func (g global) All() []key.Binding {
	return []key.Binding{g.Refresh, g.Help, g.Quit}
}
