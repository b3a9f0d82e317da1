// internal/graph/errors.go
package graph

import "fmt"

// LoadError wraps dataset ingestion failures
type LoadError struct {
	Underlying error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load failed: %v", e.Underlying)
}

// QueryError wraps query parse and execution failures
type QueryError struct {
	Underlying error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query failed: %v", e.Underlying)
}

// WrapLoadError creates a LoadError from underlying error
func WrapLoadError(err error) error {
	return &LoadError{Underlying: err}
}

// WrapQueryError creates a QueryError from underlying error
func WrapQueryError(err error) error {
	return &QueryError{Underlying: err}
}
