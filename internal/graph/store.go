// internal/graph/store.go
package graph

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/knakk/rdf"
	_ "github.com/mattn/go-sqlite3"
)

// Store is an in-memory triple store backed by SQLite. Terms are held in
// their canonical N-Triples serialization and basic graph patterns evaluate
// as self-joins over the triples table.
type Store struct {
	db *sql.DB
}

var _ Engine = (*Store)(nil)

const schema = `
CREATE TABLE triples (
	subj TEXT NOT NULL,
	pred TEXT NOT NULL,
	obj  TEXT NOT NULL
);
CREATE INDEX idx_triples_subj ON triples (subj);
CREATE INDEX idx_triples_pred ON triples (pred);
CREATE INDEX idx_triples_obj  ON triples (obj);
`

// NewStore opens a fresh empty store.
func NewStore() (*Store, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	// every pooled connection would otherwise see its own empty :memory:
	// database
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load ingests triples from r, resolving relative IRIs against base.
func (s *Store) Load(r io.Reader, base string, f Format) error {
	if f != Turtle {
		return WrapLoadError(fmt.Errorf("unsupported format %d", f))
	}
	if base != "" {
		// the decoder takes no external base; a leading @base directive has
		// the same effect
		r = io.MultiReader(strings.NewReader("@base <"+base+"> .\n"), r)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return WrapLoadError(err)
	}
	stmt, err := tx.Prepare("INSERT INTO triples (subj, pred, obj) VALUES (?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return WrapLoadError(err)
	}
	defer stmt.Close()

	dec := rdf.NewTripleDecoder(r, rdf.Turtle)
	for {
		tr, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			tx.Rollback()
			return WrapLoadError(err)
		}
		if _, err := stmt.Exec(serializeTerm(tr.Subj), serializeTerm(tr.Pred), serializeTerm(tr.Obj)); err != nil {
			tx.Rollback()
			return WrapLoadError(err)
		}
	}
	if err := tx.Commit(); err != nil {
		return WrapLoadError(err)
	}
	return nil
}

// Execute runs query and returns its solutions. Parse and execution failures
// come back as a QueryError; valid non-tabular forms come back (nil, nil).
func (s *Store) Execute(ctx context.Context, query string) (*Result, error) {
	start := time.Now()

	q, err := parseQuery(query)
	if err != nil {
		return nil, WrapQueryError(err)
	}
	if q.form != formSelect {
		return nil, nil
	}

	cols := q.projection()
	if len(cols) == 0 {
		// SELECT * over an empty group: one solution, nothing bound
		return &Result{ExecTime: time.Since(start)}, nil
	}

	stmtText, args := compileSelect(q, cols)
	rows, err := s.db.QueryContext(ctx, stmtText, args...)
	if err != nil {
		return nil, WrapQueryError(err)
	}
	defer rows.Close()

	var out [][]string
	for rows.Next() {
		vals := make([]sql.NullString, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, WrapQueryError(err)
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			if v.Valid {
				row[i] = v.String
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, WrapQueryError(err)
	}

	return &Result{
		Columns:  cols,
		Rows:     out,
		RowCount: len(out),
		ExecTime: time.Since(start),
	}, nil
}
