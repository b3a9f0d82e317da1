// internal/graph/engine.go
package graph

import (
	"context"
	"io"
	"time"
)

// Format identifies a serialization accepted by Load.
type Format int

const (
	// Turtle is the only serialization currently wired to the CLI.
	Turtle Format = iota
)

// Result contains the solutions of a tabular (SELECT) query. A query that
// succeeds but produces no table (ASK, CONSTRUCT, DESCRIBE) has no Result.
type Result struct {
	Columns  []string
	Rows     [][]string
	RowCount int
	ExecTime time.Duration
}

// Engine is the graph database surface the session depends on: ingest a
// dataset, execute a query. There is exactly one implementation (Store); the
// interface exists so the UI can be exercised without a live store.
type Engine interface {
	// Load ingests triples from r into the store. base is the identifier
	// relative IRIs resolve against, usually file://<absolute-path>.
	Load(r io.Reader, base string, f Format) error
	// Execute runs query against the store. A non-tabular but otherwise
	// valid query returns (nil, nil).
	Execute(ctx context.Context, query string) (*Result, error)
}
