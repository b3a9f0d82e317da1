// internal/ui/model_types.go
// Type definitions for the UI layer
package ui

// Mode represents the current input mode. Edit mode routes keys into the
// query buffer; browse mode routes them to session-level actions. The mode
// also decides which pane border carries the highlight color.
type Mode string

const (
	EditMode   Mode = "EDIT"
	BrowseMode Mode = "BROWSE"
)

// Toggle flips between the two modes unconditionally.
func (m Mode) Toggle() Mode {
	if m == EditMode {
		return BrowseMode
	}
	return EditMode
}
