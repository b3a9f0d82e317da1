// internal/ui/keys.go
package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	ToggleMode key.Binding
	Quit       key.Binding
	Backspace  key.Binding
	Newline    key.Binding
}

// keys is fixed: tab is the single transition key in both directions, and
// the quit key only exists in browse mode so a query can never be lost to a
// stray 'q' while typing.
var keys = keyMap{
	ToggleMode: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch pane"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	Backspace: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("backspace", "delete"),
	),
	Newline: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "new line"),
	),
}
