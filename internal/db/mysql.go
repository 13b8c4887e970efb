// internal/db/mysql.go
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLDriver implements Driver for MySQL
type MySQLDriver struct {
	db *sql.DB
}

// Connect establishes connection to MySQL
func (d *MySQLDriver) Connect(ctx context.Context, dsn string) error {
	db, err := openPool(ctx, MySQL, "mysql", dsn)
	if err != nil {
		return err
	}
	d.db = db
	return nil
}

// Close closes the database connection
func (d *MySQLDriver) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// Type returns the driver type
func (d *MySQLDriver) Type() DriverType {
	return MySQL
}

// GetColumns returns column metadata in ordinal order. tableName may be
// qualified as db.table; otherwise the connection's database is used.
func (d *MySQLDriver) GetColumns(ctx context.Context, tableName string) ([]Column, error) {
	if d.db == nil {
		return nil, connectionError(MySQL, fmt.Errorf("not connected"))
	}

	schemaName, table := splitTableName(tableName)
	query := `
		SELECT column_name, column_type, is_nullable
		FROM information_schema.columns
		WHERE table_schema = COALESCE(NULLIF(?, ''), DATABASE())
		AND table_name = ?
		ORDER BY ordinal_position`
	rows, err := d.db.QueryContext(ctx, query, schemaName, table)
	if err != nil {
		return nil, queryError(MySQL, tableName, err)
	}
	defer rows.Close()

	return scanColumns(rows, MySQL, tableName)
}
