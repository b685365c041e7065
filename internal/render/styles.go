package render

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

var (
	KeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	ValueStyle = lipgloss.NewStyle()

	AbsentStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	ItemStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	RequiredStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)
)
