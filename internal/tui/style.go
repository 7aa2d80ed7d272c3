package tui

import "github.com/charmbracelet/lipgloss"

var (
	Regular = lipgloss.NewStyle()
	Bold    = Regular.Bold(true)
	Faint   = Regular.Foreground(LightGrey)

	titleStyle = Bold.Padding(0, 1).Foreground(LightGreen)
	labelStyle = Bold
)
