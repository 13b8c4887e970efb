// internal/db/driver.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bonihachi/sql-generator/internal/schema"
)

// DriverType represents supported database types
type DriverType string

const (
	Postgres DriverType = "postgres"
	MySQL    DriverType = "mysql"
	SQLite   DriverType = "sqlite"
)

// Column represents table column metadata
type Column struct {
	Name     string
	Type     string
	Nullable bool
}

// Driver reads table layouts from a live database
type Driver interface {
	Connect(ctx context.Context, dsn string) error
	Close() error
	Type() DriverType
	GetColumns(ctx context.Context, tableName string) ([]Column, error)
}

// NewDriver creates a new driver instance by type
func NewDriver(driverType DriverType) (Driver, error) {
	switch driverType {
	case Postgres:
		return &PostgresDriver{}, nil
	case MySQL:
		return &MySQLDriver{}, nil
	case SQLite:
		return &SQLiteDriver{}, nil
	default:
		return nil, fmt.Errorf("unknown driver type: %s", driverType)
	}
}

// Open parses dsn and connects the matching driver
func Open(ctx context.Context, dsn string) (Driver, error) {
	driverType, driverDSN, err := ParseDSN(dsn)
	if err != nil {
		return nil, connectionError("", err)
	}
	d, err := NewDriver(driverType)
	if err != nil {
		return nil, err
	}
	if err := d.Connect(ctx, driverDSN); err != nil {
		return nil, err
	}
	return d, nil
}

// LoadTable introspects tableName and returns its columns in ordinal order
func LoadTable(ctx context.Context, dsn, tableName string) (schema.Table, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	d, err := Open(ctx, dsn)
	if err != nil {
		return schema.Table{}, err
	}
	defer d.Close()

	cols, err := d.GetColumns(ctx, tableName)
	if err != nil {
		return schema.Table{}, err
	}

	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	log.Printf("db: %s table %s has %d columns", d.Type(), tableName, len(names))

	t, err := schema.New(tableName, names)
	if err != nil {
		return schema.Table{}, fmt.Errorf("%s table %q: %w", d.Type(), tableName, err)
	}
	return t, nil
}

// splitTableName splits "schema.table" into its parts
func splitTableName(name string) (string, string) {
	if i := strings.LastIndex(name, "."); i > 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}

// openPool opens and verifies a database/sql pool
func openPool(ctx context.Context, driver DriverType, driverName, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, connectionError(driver, err)
	}

	// Introspection needs a single short-lived connection
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(time.Minute)

	// Verify connection immediately (sql.Open is lazy)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, connectionError(driver, err)
	}
	return db, nil
}

// scanColumns reads (name, type, nullable) rows
func scanColumns(rows *sql.Rows, driver DriverType, table string) ([]Column, error) {
	var columns []Column
	for rows.Next() {
		var c Column
		var nullable string
		if err := rows.Scan(&c.Name, &c.Type, &nullable); err != nil {
			return nil, queryError(driver, table, err)
		}
		c.Nullable = strings.EqualFold(nullable, "YES")
		columns = append(columns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError(driver, table, err)
	}
	return columns, nil
}
