// internal/ui/highlight/highlight_test.go
package highlight

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestHighlightPreservesText(t *testing.T) {
	for _, src := range []string{
		"",
		"SELECT ?s ?p ?o WHERE { ?s ?p ?o }",
		"PREFIX foaf: <http://xmlns.com/foaf/0.1/>\nSELECT ?n { ?x foaf:name ?n }",
		"not valid sparql at all %%",
	} {
		got := ansiRe.ReplaceAllString(SPARQL(src), "")
		require.Equal(t, src, got, "highlighting must only add color")
	}
}
