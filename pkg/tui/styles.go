package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#58a6ff")
	colorText   = lipgloss.Color("#e6edf3")
	colorSubtle = lipgloss.Color("#8b949e")
	colorMuted  = lipgloss.Color("#484f58")
	colorGreen  = lipgloss.Color("#3fb950")
	colorRed    = lipgloss.Color("#f85149")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	subtleStyle = lipgloss.NewStyle().
			Foreground(colorSubtle)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Padding(1, 2)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	installedStyle = lipgloss.NewStyle().
			Foreground(colorGreen)
)
