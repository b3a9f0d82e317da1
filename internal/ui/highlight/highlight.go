// internal/ui/highlight/highlight.go
// Terminal syntax highlighting for the query pane.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

var (
	sparqlLexer chroma.Lexer
	formatter   chroma.Formatter
	style       *chroma.Style
)

func init() {
	sparqlLexer = lexers.Get("sparql")
	if sparqlLexer == nil {
		sparqlLexer = lexers.Fallback
	}
	sparqlLexer = chroma.Coalesce(sparqlLexer)
	formatter = formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}
	style = styles.Get("friendly")
	if style == nil {
		style = styles.Fallback
	}
}

// SPARQL returns src with foreground-only ANSI highlighting applied. On any
// tokenization or formatting failure the text comes back unchanged: a broken
// highlighter must never take the query pane down with it.
func SPARQL(src string) string {
	it, err := sparqlLexer.Tokenise(nil, src)
	if err != nil {
		return src
	}
	var b strings.Builder
	if err := formatter.Format(&b, style, it); err != nil {
		return src
	}
	return b.String()
}
