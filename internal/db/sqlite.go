// internal/db/sqlite.go
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteDriver implements Driver for SQLite
type SQLiteDriver struct {
	db *sql.DB
}

// Connect opens the database file read-only
func (d *SQLiteDriver) Connect(ctx context.Context, dsn string) error {
	db, err := openPool(ctx, SQLite, "sqlite3", dsn)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 10000"); err != nil {
		db.Close()
		return connectionError(SQLite, fmt.Errorf("pragma busy_timeout: %w", err))
	}

	d.db = db
	return nil
}

// Close closes the database connection
func (d *SQLiteDriver) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// Type returns the driver type
func (d *SQLiteDriver) Type() DriverType {
	return SQLite
}

// GetColumns returns column metadata in declaration order
func (d *SQLiteDriver) GetColumns(ctx context.Context, tableName string) ([]Column, error) {
	if d.db == nil {
		return nil, connectionError(SQLite, fmt.Errorf("not connected"))
	}

	query := `
		SELECT name, type, CASE WHEN "notnull" = 0 THEN 'YES' ELSE 'NO' END
		FROM pragma_table_info(?)
		ORDER BY cid`
	rows, err := d.db.QueryContext(ctx, query, tableName)
	if err != nil {
		return nil, queryError(SQLite, tableName, err)
	}
	defer rows.Close()

	return scanColumns(rows, SQLite, tableName)
}
