// internal/query/generate.go
package query

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/bonihachi/sql-generator/internal/schema"
)

// Generate renders the SELECT statement described by specs against table.
//
// specs is indexed like table.Columns. Columns are always visited in schema
// order. When every column or no column is selected the select list is "*".
// Predicates and identifiers are emitted verbatim.
func Generate(table schema.Table, specs []ColumnSpec) (string, error) {
	if len(specs) != table.Len() {
		return "", fmt.Errorf("generate: %d specs for %d columns", len(specs), table.Len())
	}

	stmt := sq.Select(selectList(table, specs)...).From(table.Name)

	for i, spec := range specs {
		if spec.HasPredicate {
			stmt = stmt.Where(table.Columns[i] + " " + spec.Predicate)
		}
	}

	var orderBys []string
	for i, spec := range specs {
		switch spec.Order {
		case OrderAsc, OrderDesc:
			orderBys = append(orderBys, table.Columns[i]+" "+spec.Order.String())
		}
	}
	if len(orderBys) > 0 {
		stmt = stmt.OrderBy(orderBys...)
	}

	sql, _, err := stmt.ToSql()
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	return sql + ";", nil
}

// selectList returns the selected columns, or "*" for all-or-none
func selectList(table schema.Table, specs []ColumnSpec) []string {
	var cols []string
	for i, spec := range specs {
		if spec.Selected {
			cols = append(cols, table.Columns[i])
		}
	}
	if len(cols) == 0 || len(cols) == len(specs) {
		return []string{"*"}
	}
	return cols
}
