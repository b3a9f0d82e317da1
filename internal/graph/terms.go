// internal/graph/terms.go
// Canonical term serialization. Triples are stored as N-Triples term strings
// and query constants are serialized to the same form, so pattern matching is
// plain string equality inside SQLite.
package graph

import (
	"strings"

	"github.com/knakk/rdf"
)

const (
	xsdString  = "http://www.w3.org/2001/XMLSchema#string"
	xsdInteger = "http://www.w3.org/2001/XMLSchema#integer"
	xsdDecimal = "http://www.w3.org/2001/XMLSchema#decimal"
	xsdDouble  = "http://www.w3.org/2001/XMLSchema#double"
	xsdBoolean = "http://www.w3.org/2001/XMLSchema#boolean"

	rdfType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
)

// serializeTerm returns the canonical form of a decoded term. Plain string
// literals are stored without the implied xsd:string datatype so that both
// spellings compare equal.
func serializeTerm(t rdf.Term) string {
	s := t.Serialize(rdf.NTriples)
	return strings.TrimSuffix(s, "^^<"+xsdString+">")
}

// serializeIRI returns the canonical form of an IRI given by the query text.
func serializeIRI(iri string) string {
	return "<" + iri + ">"
}

// serializeLiteral returns the canonical form of a literal given by the query
// text. lang and datatype are mutually exclusive; both empty means a plain
// string.
func serializeLiteral(lexical, lang, datatype string) string {
	q := quoteNT(lexical)
	switch {
	case lang != "":
		return q + "@" + lang
	case datatype != "" && datatype != xsdString:
		return q + "^^<" + datatype + ">"
	default:
		return q
	}
}

func quoteNT(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
