// internal/schema/errors.go
package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no schema document exists for a table
	ErrNotFound = errors.New("schema file not found")
	// ErrNoColumns is returned when the document has no usable columns list
	ErrNoColumns = errors.New("schema has no columns")
	// ErrBlankColumn is returned for an empty column name
	ErrBlankColumn = errors.New("column name is blank")
	// ErrDuplicateColumn is returned when a column name appears twice
	ErrDuplicateColumn = errors.New("duplicate column name")
)

// LoadError wraps schema loading failures with the source they came from
type LoadError struct {
	Path       string
	Underlying error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load schema %s: %v", e.Path, e.Underlying)
}

func (e *LoadError) Unwrap() error {
	return e.Underlying
}

// wrapLoadError creates a LoadError from underlying error
func wrapLoadError(path string, err error) error {
	return &LoadError{Path: path, Underlying: err}
}
