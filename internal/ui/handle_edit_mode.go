// internal/ui/handle_edit_mode.go
// Key handling while the query pane has focus.
package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleEditMode processes keys while editing the query. There is no quit
// key here; printable input always lands in the buffer.
func (m Model) handleEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.ToggleMode):
		m.mode = m.mode.Toggle()
	case key.Matches(msg, keys.Backspace):
		m.query.Pop()
	case key.Matches(msg, keys.Newline):
		m.query.Push('\n')
	case msg.Type == tea.KeySpace:
		m.query.Push(' ')
	case msg.Type == tea.KeyRunes && !msg.Alt:
		for _, r := range msg.Runes {
			m.query.Push(r)
		}
	}
	return m, nil
}
