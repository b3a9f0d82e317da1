// internal/graph/sparql.go
// Hand-written parser for the SPARQL subset the store evaluates:
// PREFIX/BASE prologue, SELECT [DISTINCT] with explicit variables or *,
// basic graph patterns with predicate (';') and object (',') lists, the 'a'
// keyword, IRIs, prefixed names, literals, blank node labels, LIMIT/OFFSET.
// ASK, CONSTRUCT and DESCRIBE are recognized as non-tabular forms.
package graph

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

type queryForm int

const (
	formSelect queryForm = iota
	formAsk
	formConstruct
	formDescribe
)

type termKind int

const (
	termConst termKind = iota // value holds the canonical N-Triples form
	termVar                   // value holds the name without the ? sigil
	termBlank                 // value holds the label without the _: sigil
)

type patternTerm struct {
	kind  termKind
	value string
}

type triplePattern struct {
	s, p, o patternTerm
}

type sparqlQuery struct {
	form     queryForm
	distinct bool
	project  []string // nil means SELECT *
	patterns []triplePattern
	limit    int // -1 when absent
	offset   int
}

// projection resolves SELECT * to the in-scope variables in first-use order.
func (q *sparqlQuery) projection() []string {
	if q.project != nil {
		return q.project
	}
	var vars []string
	seen := make(map[string]bool)
	for _, tp := range q.patterns {
		for _, t := range []patternTerm{tp.s, tp.p, tp.o} {
			if t.kind == termVar && !seen[t.value] {
				seen[t.value] = true
				vars = append(vars, t.value)
			}
		}
	}
	return vars
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokWord
	tokPName
	tokIRI
	tokVar
	tokBlank
	tokString
	tokLangTag
	tokTypeSep
	tokNumber
	tokPunct
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func isNameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-'
}

func lexQuery(src string) ([]token, error) {
	rs := []rune(src)
	n := len(rs)
	var toks []token
	i := 0
	for i < n {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '#':
			for i < n && rs[i] != '\n' {
				i++
			}
		case r == '<':
			j := i + 1
			for j < n && rs[j] != '>' {
				j++
			}
			if j == n {
				return nil, fmt.Errorf("unterminated IRI at offset %d", i)
			}
			toks = append(toks, token{tokIRI, string(rs[i+1 : j]), i})
			i = j + 1
		case r == '?' || r == '$':
			j := i + 1
			for j < n && isNameRune(rs[j]) {
				j++
			}
			if j == i+1 {
				return nil, fmt.Errorf("missing variable name at offset %d", i)
			}
			toks = append(toks, token{tokVar, string(rs[i+1 : j]), i})
			i = j
		case r == '"' || r == '\'':
			val, next, err := lexString(rs, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{tokString, val, i})
			i = next
		case r == '@':
			j := i + 1
			for j < n && (unicode.IsLetter(rs[j]) || unicode.IsDigit(rs[j]) || rs[j] == '-') {
				j++
			}
			if j == i+1 {
				return nil, fmt.Errorf("missing language tag at offset %d", i)
			}
			toks = append(toks, token{tokLangTag, string(rs[i+1 : j]), i})
			i = j
		case r == '^':
			if i+1 >= n || rs[i+1] != '^' {
				return nil, fmt.Errorf("unexpected %q at offset %d", r, i)
			}
			toks = append(toks, token{tokTypeSep, "^^", i})
			i += 2
		case r == '_':
			if i+1 >= n || rs[i+1] != ':' {
				return nil, fmt.Errorf("unexpected %q at offset %d", r, i)
			}
			j := i + 2
			for j < n && isNameRune(rs[j]) {
				j++
			}
			if j == i+2 {
				return nil, fmt.Errorf("missing blank node label at offset %d", i)
			}
			toks = append(toks, token{tokBlank, string(rs[i+2 : j]), i})
			i = j
		case strings.ContainsRune("{}.;,*()", r):
			toks = append(toks, token{tokPunct, string(r), i})
			i++
		case r == '+' || r == '-' || unicode.IsDigit(r):
			j := i
			if rs[j] == '+' || rs[j] == '-' {
				j++
			}
			for j < n && unicode.IsDigit(rs[j]) {
				j++
			}
			if j < n && rs[j] == '.' {
				j++
				for j < n && unicode.IsDigit(rs[j]) {
					j++
				}
			}
			if j < n && (rs[j] == 'e' || rs[j] == 'E') {
				j++
				if j < n && (rs[j] == '+' || rs[j] == '-') {
					j++
				}
				for j < n && unicode.IsDigit(rs[j]) {
					j++
				}
			}
			toks = append(toks, token{tokNumber, string(rs[i:j]), i})
			i = j
		case r == ':' || unicode.IsLetter(r):
			j := i
			for j < n && (isNameRune(rs[j]) || rs[j] == ':') {
				j++
			}
			w := string(rs[i:j])
			if strings.ContainsRune(w, ':') {
				toks = append(toks, token{tokPName, w, i})
			} else {
				toks = append(toks, token{tokWord, w, i})
			}
			i = j
		default:
			return nil, fmt.Errorf("unexpected %q at offset %d", r, i)
		}
	}
	return append(toks, token{tokEOF, "", n}), nil
}

func lexString(rs []rune, start int) (string, int, error) {
	quote := rs[start]
	var b strings.Builder
	j := start + 1
	for j < len(rs) {
		r := rs[j]
		switch r {
		case quote:
			return b.String(), j + 1, nil
		case '\\':
			j++
			if j == len(rs) {
				return "", 0, fmt.Errorf("unterminated string at offset %d", start)
			}
			switch rs[j] {
			case 't':
				b.WriteRune('\t')
			case 'n':
				b.WriteRune('\n')
			case 'r':
				b.WriteRune('\r')
			case '\\', '"', '\'':
				b.WriteRune(rs[j])
			case 'u', 'U':
				digits := 4
				if rs[j] == 'U' {
					digits = 8
				}
				if j+digits >= len(rs) {
					return "", 0, fmt.Errorf("truncated unicode escape at offset %d", j)
				}
				v, err := strconv.ParseUint(string(rs[j+1:j+1+digits]), 16, 32)
				if err != nil {
					return "", 0, fmt.Errorf("bad unicode escape at offset %d", j)
				}
				b.WriteRune(rune(v))
				j += digits
			default:
				return "", 0, fmt.Errorf("unknown escape \\%c at offset %d", rs[j], j)
			}
			j++
		case '\n':
			return "", 0, fmt.Errorf("unterminated string at offset %d", start)
		default:
			b.WriteRune(r)
			j++
		}
	}
	return "", 0, fmt.Errorf("unterminated string at offset %d", start)
}

type termPosition int

const (
	posSubject termPosition = iota
	posPredicate
	posObject
)

var absoluteIRIRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*:`)

type sparqlParser struct {
	toks     []token
	pos      int
	prefixes map[string]string
	base     string
}

func parseQuery(src string) (*sparqlQuery, error) {
	toks, err := lexQuery(src)
	if err != nil {
		return nil, err
	}
	p := &sparqlParser{toks: toks, prefixes: make(map[string]string)}
	return p.parse()
}

func (p *sparqlParser) peek() token {
	return p.toks[p.pos]
}

func (p *sparqlParser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *sparqlParser) isPunct(s string) bool {
	t := p.peek()
	return t.kind == tokPunct && t.text == s
}

func (p *sparqlParser) expectPunct(s string) error {
	t := p.next()
	if t.kind != tokPunct || t.text != s {
		return fmt.Errorf("offset %d: expected %q, got %q", t.pos, s, t.text)
	}
	return nil
}

func (p *sparqlParser) parse() (*sparqlQuery, error) {
	if err := p.parsePrologue(); err != nil {
		return nil, err
	}
	t := p.next()
	if t.kind != tokWord {
		return nil, fmt.Errorf("offset %d: expected a query form, got %q", t.pos, t.text)
	}
	switch strings.ToUpper(t.text) {
	case "SELECT":
		return p.parseSelect()
	case "ASK":
		return &sparqlQuery{form: formAsk, limit: -1}, nil
	case "CONSTRUCT":
		return &sparqlQuery{form: formConstruct, limit: -1}, nil
	case "DESCRIBE":
		return &sparqlQuery{form: formDescribe, limit: -1}, nil
	default:
		return nil, fmt.Errorf("offset %d: unsupported query form %q", t.pos, t.text)
	}
}

func (p *sparqlParser) parsePrologue() error {
	for {
		t := p.peek()
		if t.kind != tokWord {
			return nil
		}
		switch strings.ToUpper(t.text) {
		case "PREFIX":
			p.next()
			name := p.next()
			if name.kind != tokPName || !strings.HasSuffix(name.text, ":") {
				return fmt.Errorf("offset %d: expected a prefix declaration, got %q", name.pos, name.text)
			}
			iri := p.next()
			if iri.kind != tokIRI {
				return fmt.Errorf("offset %d: expected an IRI after PREFIX %s", iri.pos, name.text)
			}
			p.prefixes[strings.TrimSuffix(name.text, ":")] = p.resolveIRI(iri.text)
		case "BASE":
			p.next()
			iri := p.next()
			if iri.kind != tokIRI {
				return fmt.Errorf("offset %d: expected an IRI after BASE", iri.pos)
			}
			p.base = iri.text
		default:
			return nil
		}
	}
}

func (p *sparqlParser) parseSelect() (*sparqlQuery, error) {
	q := &sparqlQuery{form: formSelect, limit: -1}

	if t := p.peek(); t.kind == tokWord {
		switch strings.ToUpper(t.text) {
		case "DISTINCT":
			q.distinct = true
			p.next()
		case "REDUCED":
			p.next()
		}
	}

	if p.isPunct("*") {
		p.next()
	} else {
		seen := make(map[string]bool)
		for p.peek().kind == tokVar {
			v := p.next()
			if seen[v.text] {
				return nil, fmt.Errorf("offset %d: variable ?%s projected twice", v.pos, v.text)
			}
			seen[v.text] = true
			q.project = append(q.project, v.text)
		}
		if q.project == nil {
			t := p.peek()
			return nil, fmt.Errorf("offset %d: expected variables or * after SELECT", t.pos)
		}
	}

	if t := p.peek(); t.kind == tokWord && strings.EqualFold(t.text, "WHERE") {
		p.next()
	}
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	if err := p.parseGroup(q); err != nil {
		return nil, err
	}
	if err := p.parseModifiers(q); err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, fmt.Errorf("offset %d: unexpected %q after query", t.pos, t.text)
	}
	return q, nil
}

func (p *sparqlParser) parseGroup(q *sparqlQuery) error {
	for {
		if p.isPunct("}") {
			p.next()
			return nil
		}
		if p.peek().kind == tokEOF {
			return fmt.Errorf("offset %d: unterminated group pattern", p.peek().pos)
		}
		if err := p.parseTriples(q); err != nil {
			return err
		}
		for p.isPunct(".") {
			p.next()
		}
	}
}

func (p *sparqlParser) parseTriples(q *sparqlQuery) error {
	subj, err := p.parseTerm(posSubject)
	if err != nil {
		return err
	}
	for {
		pred, err := p.parseTerm(posPredicate)
		if err != nil {
			return err
		}
		for {
			obj, err := p.parseTerm(posObject)
			if err != nil {
				return err
			}
			q.patterns = append(q.patterns, triplePattern{subj, pred, obj})
			if !p.isPunct(",") {
				break
			}
			p.next()
		}
		if !p.isPunct(";") {
			return nil
		}
		p.next()
		// a trailing ';' before '.' or '}' is legal
		if p.isPunct(".") || p.isPunct("}") || p.isPunct(";") {
			return nil
		}
	}
}

func (p *sparqlParser) parseTerm(pos termPosition) (patternTerm, error) {
	t := p.next()
	switch t.kind {
	case tokVar:
		return patternTerm{termVar, t.text}, nil
	case tokBlank:
		if pos == posPredicate {
			return patternTerm{}, fmt.Errorf("offset %d: blank node in predicate position", t.pos)
		}
		return patternTerm{termBlank, t.text}, nil
	case tokIRI:
		return patternTerm{termConst, serializeIRI(p.resolveIRI(t.text))}, nil
	case tokPName:
		iri, err := p.expandPName(t)
		if err != nil {
			return patternTerm{}, err
		}
		return patternTerm{termConst, serializeIRI(iri)}, nil
	case tokWord:
		switch t.text {
		case "a":
			if pos != posPredicate {
				return patternTerm{}, fmt.Errorf("offset %d: 'a' outside predicate position", t.pos)
			}
			return patternTerm{termConst, serializeIRI(rdfType)}, nil
		case "true", "false":
			if pos != posObject {
				return patternTerm{}, fmt.Errorf("offset %d: literal outside object position", t.pos)
			}
			return patternTerm{termConst, serializeLiteral(t.text, "", xsdBoolean)}, nil
		}
		return patternTerm{}, fmt.Errorf("offset %d: unexpected %q", t.pos, t.text)
	case tokString:
		if pos != posObject {
			return patternTerm{}, fmt.Errorf("offset %d: literal outside object position", t.pos)
		}
		switch p.peek().kind {
		case tokLangTag:
			lang := p.next()
			return patternTerm{termConst, serializeLiteral(t.text, lang.text, "")}, nil
		case tokTypeSep:
			p.next()
			dt := p.next()
			var iri string
			switch dt.kind {
			case tokIRI:
				iri = p.resolveIRI(dt.text)
			case tokPName:
				var err error
				if iri, err = p.expandPName(dt); err != nil {
					return patternTerm{}, err
				}
			default:
				return patternTerm{}, fmt.Errorf("offset %d: expected a datatype IRI", dt.pos)
			}
			return patternTerm{termConst, serializeLiteral(t.text, "", iri)}, nil
		}
		return patternTerm{termConst, serializeLiteral(t.text, "", "")}, nil
	case tokNumber:
		if pos != posObject {
			return patternTerm{}, fmt.Errorf("offset %d: literal outside object position", t.pos)
		}
		dt := xsdInteger
		if strings.ContainsAny(t.text, "eE") {
			dt = xsdDouble
		} else if strings.Contains(t.text, ".") {
			dt = xsdDecimal
		}
		return patternTerm{termConst, serializeLiteral(t.text, "", dt)}, nil
	default:
		return patternTerm{}, fmt.Errorf("offset %d: unexpected %q", t.pos, t.text)
	}
}

func (p *sparqlParser) parseModifiers(q *sparqlQuery) error {
	for {
		t := p.peek()
		if t.kind != tokWord {
			return nil
		}
		var dst *int
		switch strings.ToUpper(t.text) {
		case "LIMIT":
			dst = &q.limit
		case "OFFSET":
			dst = &q.offset
		default:
			return nil
		}
		p.next()
		num := p.next()
		if num.kind != tokNumber {
			return fmt.Errorf("offset %d: expected a number after %s", num.pos, strings.ToUpper(t.text))
		}
		v, err := strconv.Atoi(num.text)
		if err != nil || v < 0 {
			return fmt.Errorf("offset %d: bad %s value %q", num.pos, strings.ToUpper(t.text), num.text)
		}
		*dst = v
	}
}

// resolveIRI resolves a (possibly relative) IRI against the BASE in effect.
// Resolution is plain prefixing, which covers the fragment and empty-path
// forms Turtle-style data actually uses.
func (p *sparqlParser) resolveIRI(iri string) string {
	if p.base == "" || absoluteIRIRe.MatchString(iri) {
		return iri
	}
	return p.base + iri
}

func (p *sparqlParser) expandPName(t token) (string, error) {
	prefix, local, _ := strings.Cut(t.text, ":")
	ns, ok := p.prefixes[prefix]
	if !ok {
		return "", fmt.Errorf("offset %d: unknown prefix %q", t.pos, prefix+":")
	}
	return ns + local, nil
}
