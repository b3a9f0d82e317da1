// internal/graph/compile.go
package graph

import (
	"fmt"
	"strings"
)

// compileSelect translates a parsed SELECT query into one SQL statement over
// the triples table: one table alias per pattern, constants bound as args,
// shared variables (and blank node labels) joined by equality. Projected
// variables no pattern binds select NULL, which the store renders as "".
func compileSelect(q *sparqlQuery, cols []string) (string, []any) {
	bound := make(map[string]string) // scoped name -> first column ref
	var conds []string
	var args []any

	for i, tp := range q.patterns {
		alias := fmt.Sprintf("t%d", i)
		for _, pt := range []struct {
			col  string
			term patternTerm
		}{{"subj", tp.s}, {"pred", tp.p}, {"obj", tp.o}} {
			ref := alias + "." + pt.col
			switch pt.term.kind {
			case termConst:
				conds = append(conds, ref+" = ?")
				args = append(args, pt.term.value)
			case termVar, termBlank:
				key := scopeKey(pt.term)
				if first, ok := bound[key]; ok {
					conds = append(conds, ref+" = "+first)
				} else {
					bound[key] = ref
				}
			}
		}
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	if q.distinct {
		b.WriteString("DISTINCT ")
	}
	for i, c := range cols {
		if i > 0 {
			b.WriteString(", ")
		}
		if ref, ok := bound["v:"+c]; ok {
			b.WriteString(ref)
		} else {
			b.WriteString("NULL")
		}
		fmt.Fprintf(&b, " AS %q", c)
	}
	for i := range q.patterns {
		if i == 0 {
			b.WriteString(" FROM ")
		} else {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "triples t%d", i)
	}
	if len(conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}
	switch {
	case q.limit >= 0:
		fmt.Fprintf(&b, " LIMIT %d", q.limit)
	case q.offset > 0:
		// sqlite requires a LIMIT clause before OFFSET
		b.WriteString(" LIMIT -1")
	}
	if q.offset > 0 {
		fmt.Fprintf(&b, " OFFSET %d", q.offset)
	}
	return b.String(), args
}

// scopeKey keeps a variable and a blank node label of the same name apart.
func scopeKey(t patternTerm) string {
	if t.kind == termBlank {
		return "b:" + t.value
	}
	return "v:" + t.value
}
