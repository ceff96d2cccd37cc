package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorError   = lipgloss.Color("#EF4444")
	colorSuccess = lipgloss.Color("#10B981")
	colorAccent  = lipgloss.Color("#F59E0B")
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Diagnostic styles
	errorLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	locationStyle = lipgloss.NewStyle().
			Bold(true)

	gutterStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	caretStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	// Output styles
	positionStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	okStyle = lipgloss.NewStyle().
		Foreground(colorSuccess)
)

// paint renders s with style when color is set
func paint(style lipgloss.Style, s string, color bool) string {
	if !color {
		return s
	}
	return style.Render(s)
}
