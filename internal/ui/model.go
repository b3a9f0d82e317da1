// internal/ui/model.go
// Root Model struct, constructor, and Init
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"rdfscope/internal/graph"
)

// Model is the root Bubble Tea model: one query buffer, one mode, and a
// handle on the graph engine. The engine is asked to run the buffer's text
// on every render; nothing is cached between frames.
type Model struct {
	width, height int

	mode   Mode
	query  Query
	engine graph.Engine
}

// NewModel creates a session over the given engine. Sessions start in browse
// mode with the default query loaded.
func NewModel(engine graph.Engine) Model {
	return Model{
		mode:   BrowseMode,
		query:  NewQuery(),
		engine: engine,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}
