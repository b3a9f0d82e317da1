// internal/ui/query.go
package ui

// DefaultQuery is the query a fresh session starts with.
const DefaultQuery = "SELECT ?s ?p ?o WHERE { ?s ?p ?o }"

// baseHeight reserves the top border, one content line and the bottom border
// of the query pane.
const baseHeight = 3

// Query is the editable query text plus the pane height it renders at. The
// height is maintained incrementally on every edit instead of rescanning the
// text, because it is read on every redraw while edits are comparatively
// rare. Invariant: height == baseHeight + number of newlines in the text.
type Query struct {
	runes  []rune
	height int
}

// NewQuery returns a buffer holding the default query.
func NewQuery() Query {
	return Query{runes: []rune(DefaultQuery), height: baseHeight}
}

// Push appends one character to the buffer.
func (q *Query) Push(r rune) {
	q.runes = append(q.runes, r)
	if r == '\n' {
		q.height++
	}
}

// Pop removes and returns the last character, reporting whether a removal
// occurred. Pop on an empty buffer is a no-op.
func (q *Query) Pop() (rune, bool) {
	if len(q.runes) == 0 {
		return 0, false
	}
	r := q.runes[len(q.runes)-1]
	q.runes = q.runes[:len(q.runes)-1]
	if r == '\n' {
		q.height--
	}
	return r, true
}

// String returns the current query text.
func (q Query) String() string {
	return string(q.runes)
}

// Height returns the pane height the buffer renders at, borders included.
func (q Query) Height() int {
	return q.height
}

// Len returns the number of characters in the buffer.
func (q Query) Len() int {
	return len(q.runes)
}
