// internal/schema/table.go
package schema

import (
	"fmt"
	"strings"
)

// Table is the column layout of one table. It is immutable once loaded.
type Table struct {
	Name    string
	Columns []string
}

// New validates columns and returns a Table. Column order is kept as given.
func New(name string, columns []string) (Table, error) {
	if len(columns) == 0 {
		return Table{}, ErrNoColumns
	}

	seen := make(map[string]int, len(columns))
	cols := make([]string, len(columns))
	for i, c := range columns {
		if strings.TrimSpace(c) == "" {
			return Table{}, fmt.Errorf("column %d: %w", i, ErrBlankColumn)
		}
		if first, ok := seen[c]; ok {
			return Table{}, fmt.Errorf("column %q at %d and %d: %w", c, first, i, ErrDuplicateColumn)
		}
		seen[c] = i
		cols[i] = c
	}

	return Table{Name: name, Columns: cols}, nil
}

// Len returns the number of columns
func (t Table) Len() int {
	return len(t.Columns)
}
