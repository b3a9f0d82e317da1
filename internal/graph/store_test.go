// internal/graph/store_test.go
package graph

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testTurtle = `
@prefix foaf: <http://xmlns.com/foaf/0.1/> .

<http://example.org/alice> foaf:name "Alice" ;
    foaf:knows <http://example.org/bob> .
<http://example.org/bob> foaf:name "Bob" .
`

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func loadTestData(t *testing.T, s *Store) {
	t.Helper()
	err := s.Load(strings.NewReader(testTurtle), "file:///data/people.ttl", Turtle)
	require.NoError(t, err)
}

func TestExecuteEmptyStore(t *testing.T) {
	s := newTestStore(t)

	res, err := s.Execute(context.Background(), "SELECT ?s ?p ?o WHERE { ?s ?p ?o }")
	require.NoError(t, err)
	require.NotNil(t, res, "a valid query with no matches is still tabular")
	require.Equal(t, []string{"s", "p", "o"}, res.Columns)
	require.Zero(t, res.RowCount)
}

func TestLoadAndQueryAll(t *testing.T) {
	s := newTestStore(t)
	loadTestData(t, s)

	res, err := s.Execute(context.Background(), "SELECT ?s ?p ?o WHERE { ?s ?p ?o }")
	require.NoError(t, err)
	require.Equal(t, 3, res.RowCount)
	require.Contains(t, res.Rows, []string{
		"<http://example.org/alice>",
		"<http://xmlns.com/foaf/0.1/name>",
		`"Alice"`,
	})
}

func TestConstantMatching(t *testing.T) {
	s := newTestStore(t)
	loadTestData(t, s)

	res, err := s.Execute(context.Background(), `
		PREFIX foaf: <http://xmlns.com/foaf/0.1/>
		SELECT ?who WHERE { ?who foaf:name "Alice" }`)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"<http://example.org/alice>"}}, res.Rows)
}

func TestJoinAcrossPatterns(t *testing.T) {
	s := newTestStore(t)
	loadTestData(t, s)

	res, err := s.Execute(context.Background(), `
		PREFIX foaf: <http://xmlns.com/foaf/0.1/>
		SELECT ?n WHERE { ?a foaf:knows ?b . ?b foaf:name ?n }`)
	require.NoError(t, err)
	require.Equal(t, [][]string{{`"Bob"`}}, res.Rows)
}

func TestUnboundProjectionRendersEmpty(t *testing.T) {
	s := newTestStore(t)
	loadTestData(t, s)

	res, err := s.Execute(context.Background(), `
		PREFIX foaf: <http://xmlns.com/foaf/0.1/>
		SELECT ?n ?missing WHERE { ?who foaf:name ?n } LIMIT 1`)
	require.NoError(t, err)
	require.Equal(t, []string{"n", "missing"}, res.Columns)
	require.Len(t, res.Rows, 1)
	require.Equal(t, "", res.Rows[0][1])
}

func TestDistinctAndLimit(t *testing.T) {
	s := newTestStore(t)
	loadTestData(t, s)

	res, err := s.Execute(context.Background(), `
		PREFIX foaf: <http://xmlns.com/foaf/0.1/>
		SELECT DISTINCT ?p WHERE { ?s ?p ?o . ?s foaf:name ?n }`)
	require.NoError(t, err)
	require.Equal(t, 2, res.RowCount, "name and knows, deduplicated")

	res, err = s.Execute(context.Background(), "SELECT ?s WHERE { ?s ?p ?o } LIMIT 2")
	require.NoError(t, err)
	require.Equal(t, 2, res.RowCount)

	res, err = s.Execute(context.Background(), "SELECT ?s WHERE { ?s ?p ?o } OFFSET 2")
	require.NoError(t, err)
	require.Equal(t, 1, res.RowCount)
}

func TestBlankNodeJoins(t *testing.T) {
	s := newTestStore(t)
	loadTestData(t, s)

	res, err := s.Execute(context.Background(), `
		PREFIX foaf: <http://xmlns.com/foaf/0.1/>
		SELECT ?n WHERE { _:x foaf:knows ?b . _:x foaf:name ?n }`)
	require.NoError(t, err)
	require.Equal(t, [][]string{{`"Alice"`}}, res.Rows)
}

func TestRelativeIRIsResolveAgainstBase(t *testing.T) {
	s := newTestStore(t)
	err := s.Load(strings.NewReader("<#carol> <#age> 41 .\n"), "file:///data/people.ttl", Turtle)
	require.NoError(t, err)

	res, err := s.Execute(context.Background(), "SELECT ?s ?o WHERE { ?s ?p ?o }")
	require.NoError(t, err)
	require.Equal(t, 1, res.RowCount)
	require.Contains(t, res.Rows[0][0], "carol")
	require.True(t, strings.HasPrefix(res.Rows[0][0], "<"), "subject should be an IRI: %q", res.Rows[0][0])
}

func TestNonTabularQueries(t *testing.T) {
	s := newTestStore(t)
	loadTestData(t, s)

	for _, src := range []string{
		"ASK { ?s ?p ?o }",
		"CONSTRUCT { ?s ?p ?o } WHERE { ?s ?p ?o }",
	} {
		res, err := s.Execute(context.Background(), src)
		require.NoError(t, err, src)
		require.Nil(t, res, src)
	}
}

func TestInvalidQueryReturnsQueryError(t *testing.T) {
	s := newTestStore(t)

	res, err := s.Execute(context.Background(), "SELECT WHERE {")
	require.Nil(t, res)

	var qerr *QueryError
	require.ErrorAs(t, err, &qerr)
}

func TestInvalidTurtleReturnsLoadError(t *testing.T) {
	s := newTestStore(t)

	err := s.Load(strings.NewReader("this is not turtle <<<"), "file:///bad.ttl", Turtle)
	var lerr *LoadError
	require.ErrorAs(t, err, &lerr)
}

func TestSelectStarOverEmptyGroup(t *testing.T) {
	s := newTestStore(t)

	res, err := s.Execute(context.Background(), "SELECT * WHERE {}")
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Empty(t, res.Columns)
}

func TestSelectOverEmptyGroupYieldsOneSolution(t *testing.T) {
	s := newTestStore(t)

	res, err := s.Execute(context.Background(), "SELECT ?x WHERE {}")
	require.NoError(t, err)
	require.Equal(t, 1, res.RowCount, "the empty group pattern has exactly one solution")
	require.Equal(t, [][]string{{""}}, res.Rows)
}
