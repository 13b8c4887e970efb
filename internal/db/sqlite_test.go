// internal/db/sqlite_test.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/bonihachi/sql-generator/internal/schema"
)

func newSQLiteFile(t *testing.T, stmts ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	for _, s := range stmts {
		_, err := db.Exec(s)
		require.NoError(t, err)
	}
	return path
}

func TestSQLiteDriver_GetColumns(t *testing.T) {
	path := newSQLiteFile(t,
		`CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT NOT NULL, age INTEGER, email TEXT)`,
	)

	d, err := Open(context.Background(), "sqlite://"+path)
	require.NoError(t, err)
	defer d.Close()
	require.Equal(t, SQLite, d.Type())

	cols, err := d.GetColumns(context.Background(), "users")
	require.NoError(t, err)
	require.Len(t, cols, 4)

	require.Equal(t, Column{Name: "id", Type: "INTEGER", Nullable: true}, cols[0])
	require.Equal(t, Column{Name: "name", Type: "TEXT", Nullable: false}, cols[1])
	require.Equal(t, "age", cols[2].Name)
	require.Equal(t, "email", cols[3].Name)
}

func TestLoadTable_SQLite(t *testing.T) {
	path := newSQLiteFile(t,
		`CREATE TABLE orders (total REAL, id INTEGER, placed_at TEXT)`,
	)

	table, err := LoadTable(context.Background(), path, "orders")
	require.NoError(t, err)
	require.Equal(t, "orders", table.Name)
	require.Equal(t, []string{"total", "id", "placed_at"}, table.Columns)
}

func TestLoadTable_MissingTable(t *testing.T) {
	path := newSQLiteFile(t, `CREATE TABLE users (id INTEGER)`)

	_, err := LoadTable(context.Background(), "file:"+path, "nope")
	require.Error(t, err)
	require.True(t, errors.Is(err, schema.ErrNoColumns), "got %v", err)
}

func TestLoadTable_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.db")

	_, err := LoadTable(context.Background(), path, "users")
	require.Error(t, err)

	var connErr *ConnectionError
	require.True(t, errors.As(err, &connErr), "got %T: %v", err, err)
	require.Equal(t, SQLite, connErr.Driver)
}
