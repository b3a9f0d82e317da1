// internal/ui/app.go
// Update cycle: route messages to the mode-specific key handlers.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model. Only key presses mutate the session; every
// other message (except resize) is ignored, so an unrecognized event can
// never corrupt the buffer.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch m.mode {
		case EditMode:
			return m.handleEditMode(msg)
		case BrowseMode:
			return m.handleBrowseMode(msg)
		}
	}
	return m, nil
}
