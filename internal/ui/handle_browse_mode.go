// internal/ui/handle_browse_mode.go
// Key handling while the result pane has focus.
package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleBrowseMode processes keys while browsing results. No editing key is
// accepted here, so reviewing results can never mutate the query.
func (m Model) handleBrowseMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.ToggleMode):
		m.mode = m.mode.Toggle()
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}
