// internal/db/postgres.go
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresDriver implements Driver for PostgreSQL
type PostgresDriver struct {
	db *sql.DB
}

// Connect establishes connection to PostgreSQL
func (d *PostgresDriver) Connect(ctx context.Context, dsn string) error {
	db, err := openPool(ctx, Postgres, "postgres", dsn)
	if err != nil {
		return err
	}
	d.db = db
	return nil
}

// Close closes the database connection
func (d *PostgresDriver) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// Type returns the driver type
func (d *PostgresDriver) Type() DriverType {
	return Postgres
}

// GetColumns returns column metadata in ordinal order. tableName may be
// qualified as schema.table; otherwise current_schema() is used.
func (d *PostgresDriver) GetColumns(ctx context.Context, tableName string) ([]Column, error) {
	if d.db == nil {
		return nil, connectionError(Postgres, fmt.Errorf("not connected"))
	}

	schemaName, table := splitTableName(tableName)
	query := `
		SELECT column_name, data_type, is_nullable
		FROM information_schema.columns
		WHERE table_schema = COALESCE(NULLIF($1, ''), current_schema())
		AND table_name = $2
		ORDER BY ordinal_position`
	rows, err := d.db.QueryContext(ctx, query, schemaName, table)
	if err != nil {
		return nil, queryError(Postgres, tableName, err)
	}
	defer rows.Close()

	return scanColumns(rows, Postgres, tableName)
}
