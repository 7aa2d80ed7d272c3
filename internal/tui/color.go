package tui

import "github.com/charmbracelet/lipgloss"

const (
	Red        = lipgloss.Color("#FF5353")
	Green      = lipgloss.Color("34")
	LightGreen = lipgloss.Color("86")
	Yellow     = lipgloss.Color("#DBBD70")
	Blue       = lipgloss.Color("63")
	Grey       = lipgloss.Color("#737373")
	LightGrey  = lipgloss.Color("245")
)

var (
	DebugLogLevel = Blue
	InfoLogLevel  = lipgloss.AdaptiveColor{Dark: string(LightGreen), Light: string(Green)}
	ErrorLogLevel = Red
	WarnLogLevel  = Yellow
)
