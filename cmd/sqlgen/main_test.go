package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bonihachi/sql-generator/internal/schema"
)

func setup(t *testing.T) (configPath, tablesDir string) {
	t.Helper()
	dir := t.TempDir()

	tablesDir = filepath.Join(dir, "tables")
	require.NoError(t, os.MkdirAll(tablesDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tablesDir, "users.toml"),
		[]byte(`columns = ["id", "name"]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tablesDir, "empty.yaml"),
		[]byte("columns: []\n"), 0o644))

	configPath = filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`tables_dir = "`+tablesDir+`"`), 0o644))
	return configPath, tablesDir
}

func noTerminal(t *testing.T) {
	old := interactive
	interactive = func() bool { return false }
	t.Cleanup(func() { interactive = old })
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCmd_RequiresExactlyOneTable(t *testing.T) {
	configPath, _ := setup(t)

	_, err := execute(t, "-c", configPath)
	require.Error(t, err)

	_, err = execute(t, "-c", configPath, "users", "orders")
	require.Error(t, err)
}

func TestRootCmd_SchemaErrorsBeforeUI(t *testing.T) {
	configPath, _ := setup(t)

	_, err := execute(t, "-c", configPath, "missing")
	require.True(t, errors.Is(err, schema.ErrNotFound), "got %v", err)

	_, err = execute(t, "-c", configPath, "empty")
	require.True(t, errors.Is(err, schema.ErrNoColumns), "got %v", err)

	var loadErr *schema.LoadError
	require.True(t, errors.As(err, &loadErr))
}

func TestRootCmd_TablesDirFlagOverridesConfig(t *testing.T) {
	configPath, tablesDir := setup(t)
	other := t.TempDir()

	_, err := execute(t, "-c", configPath, "-t", other, "users")
	require.True(t, errors.Is(err, schema.ErrNotFound), "got %v", err)

	noTerminal(t)

	_, err = execute(t, "-c", configPath, "-t", tablesDir, "users")
	require.ErrorContains(t, err, "interactive terminal")
}

func TestRootCmd_RequiresTerminal(t *testing.T) {
	configPath, _ := setup(t)

	noTerminal(t)

	out, err := execute(t, "-c", configPath, "users")
	require.ErrorContains(t, err, "interactive terminal")
	require.Empty(t, out)
}

func TestRootCmd_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("tables_dir = ["), 0o644))

	_, err := execute(t, "-c", path, "users")
	require.ErrorContains(t, err, "failed to load config")
}
