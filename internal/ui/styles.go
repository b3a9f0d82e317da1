// internal/ui/styles.go
package ui

import "github.com/charmbracelet/lipgloss"

// The single highlight color marks the pane the current mode sends keys to.
var (
	highlightColor = lipgloss.Color("2")

	borderStyle       = lipgloss.NewStyle()
	activeBorderStyle = lipgloss.NewStyle().Foreground(highlightColor)

	titleStyle = lipgloss.NewStyle().Bold(true)

	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)
