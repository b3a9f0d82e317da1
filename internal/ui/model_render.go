// internal/ui/model_render.go
// Full-screen composition: the Query pane stacked over the Explore pane.
package ui

import (
	"context"
	"log"
	"strings"

	"github.com/charmbracelet/lipgloss"
	table "github.com/evertras/bubble-table/table"

	"rdfscope/internal/graph"
	"rdfscope/internal/ui/highlight"
)

// View renders the UI. The whole screen is repainted from current state on
// every call; the query pane's height follows the buffer, the explore pane
// takes whatever is left.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	qh := m.query.Height()
	if avail := m.height - baseHeight; qh > avail && avail >= baseHeight {
		qh = avail
	}
	if qh > m.height {
		qh = m.height
	}
	bh := m.height - qh

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderQueryPane(qh),
		m.renderExplorePane(bh),
	)
}

func (m Model) renderQueryPane(height int) string {
	text := highlight.SPARQL(m.query.String())
	return renderPane("Query", text, m.width, height, m.mode == EditMode)
}

func (m Model) renderExplorePane(height int) string {
	res := m.runQuery()
	var content string
	if res == nil {
		innerW, innerH := m.width-2, height-2
		if innerW < 0 {
			innerW = 0
		}
		if innerH < 0 {
			innerH = 0
		}
		content = lipgloss.Place(innerW, innerH, lipgloss.Center, lipgloss.Center, "NO RESULT")
	} else {
		content = m.renderResultTable(res, height)
	}
	return renderPane("Explore", content, m.width, height, m.mode == BrowseMode)
}

// runQuery is the bridge to the engine: it submits the buffer text verbatim
// and normalizes the outcome. Parse errors, execution errors and non-tabular
// results all come back nil; the session only cares whether there is a table.
func (m Model) runQuery() *graph.Result {
	res, err := m.engine.Execute(context.Background(), m.query.String())
	if err != nil {
		log.Printf("query: %v", err)
		return nil
	}
	if res != nil {
		log.Printf("query: %d rows in %s", res.RowCount, res.ExecTime)
	}
	return res
}

func (m Model) renderResultTable(res *graph.Result, height int) string {
	if len(res.Columns) == 0 {
		// a solution with no variables has nothing to tabulate
		return ""
	}
	cols := make([]table.Column, 0, len(res.Columns))
	for _, c := range res.Columns {
		cols = append(cols, table.NewFlexColumn(c, c, 1))
	}
	rows := make([]table.Row, 0, len(res.Rows))
	for _, r := range res.Rows {
		data := table.RowData{}
		for i, c := range res.Columns {
			if i < len(r) {
				data[c] = r[i]
			} else {
				data[c] = ""
			}
		}
		rows = append(rows, table.NewRow(data))
	}

	pageSize := height - 6
	if pageSize < 1 {
		pageSize = 1
	}
	return table.New(cols).
		WithRows(rows).
		WithTargetWidth(m.width - 2).
		HeaderStyle(headerStyle).
		WithPageSize(pageSize).
		View()
}

// renderPane draws a bordered box with the title embedded in the top edge.
// The border carries the highlight color iff the pane is the active one;
// nothing else about a pane ever changes with the mode.
func renderPane(title, content string, width, height int, active bool) string {
	if width < 4 || height < 2 {
		return ""
	}
	bs := borderStyle
	if active {
		bs = activeBorderStyle
	}
	innerW, innerH := width-2, height-2

	body := lipgloss.NewStyle().
		Width(innerW).MaxWidth(innerW).
		Height(innerH).MaxHeight(innerH).
		Render(content)

	dashes := innerW - lipgloss.Width(title)
	if dashes < 0 {
		dashes = 0
	}

	var b strings.Builder
	b.WriteString(bs.Render("┌"))
	b.WriteString(titleStyle.Render(title))
	b.WriteString(bs.Render(strings.Repeat("─", dashes) + "┐"))
	for _, line := range strings.Split(body, "\n") {
		b.WriteString("\n")
		b.WriteString(bs.Render("│"))
		b.WriteString(line)
		b.WriteString(bs.Render("│"))
	}
	b.WriteString("\n")
	b.WriteString(bs.Render("└" + strings.Repeat("─", innerW) + "┘"))
	return b.String()
}
