package ui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle ANSI 6 (Cyan) for section titles
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)

	// UsageStyle ANSI 2 (Green) for arguments and usage
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// DescStyle ANSI 8 (Bright Black) keeps descriptions dim
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// FlagStyle ANSI 3 (Yellow) for flags
	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	// ReasonStyle ANSI 1 (Red) for rejected input
	ReasonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// RenderReason styles the reason a command was rejected.
func RenderReason(reason string) string {
	return ReasonStyle.Render(reason)
}
