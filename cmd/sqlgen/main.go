// Package main provides the sqlgen CLI, an interactive terminal builder for
// single-table SELECT statements.
//
// Usage:
//
//	sqlgen users                         # columns from ./tables/users.toml
//	sqlgen -t schemas orders             # columns from schemas/orders.{toml,yaml,yml}
//	sqlgen -d postgres://localhost/app users
//
// The UI is drawn on stderr; the generated statement is the only thing
// written to stdout, so `sqlgen users | psql` works.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/bonihachi/sql-generator/internal/config"
	"github.com/bonihachi/sql-generator/internal/db"
	"github.com/bonihachi/sql-generator/internal/query"
	"github.com/bonihachi/sql-generator/internal/schema"
	"github.com/bonihachi/sql-generator/internal/ui"
)

// version is set via ldflags during build: -ldflags="-X main.version=v1.0.0"
var version = "dev"

// errAborted ends the process with exitAborted and no message
var errAborted = errors.New("aborted")

const exitAborted = 130

type options struct {
	configPath string
	tablesDir  string
	dsn        string
	debug      bool
}

func main() {
	err := newRootCmd().ExecuteContext(context.Background())
	switch {
	case err == nil:
	case errors.Is(err, errAborted):
		os.Exit(exitAborted)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "sqlgen [flags] <table>",
		Short: "Build a SELECT statement interactively",
		Long: `sqlgen opens a terminal UI over the columns of one table. Pick the
columns to select, write WHERE predicates and set ORDER BY directions,
then quit to print the statement on stdout.`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args[0], cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to config file (default: XDG sqlgen/config.toml)")
	cmd.Flags().StringVarP(&opts.tablesDir, "tables-dir", "t", "", "Directory holding <table>.toml/.yaml schema files")
	cmd.Flags().StringVarP(&opts.dsn, "dsn", "d", "", "Read columns from a live database instead of a schema file")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging to debug.log")

	return cmd
}

func run(ctx context.Context, opts options, tableName string, stdout io.Writer) error {
	// Setup logging; anything on stderr would corrupt the UI
	if opts.debug {
		f, err := tea.LogToFile("debug.log", "sqlgen")
		if err != nil {
			return fmt.Errorf("could not open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	table, err := loadTable(ctx, cfg, opts, tableName)
	if err != nil {
		return err
	}

	if !interactive() {
		return errors.New("sqlgen needs an interactive terminal on stdin and stderr")
	}

	p := tea.NewProgram(ui.NewModel(cfg, table),
		tea.WithAltScreen(),
		tea.WithOutput(os.Stderr),
		tea.WithContext(ctx),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("terminal session: %w", err)
	}

	m, ok := final.(ui.Model)
	if !ok {
		return fmt.Errorf("terminal session: unexpected model %T", final)
	}
	if m.Aborted() || m.Builder().State() != query.StateQuitting {
		return errAborted
	}

	sql, err := m.SQL()
	if err != nil {
		return err
	}
	log.Printf("emitting: %s", sql)
	_, err = fmt.Fprintln(stdout, sql)
	return err
}

func loadConfig(opts options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if opts.tablesDir != "" {
		cfg.TablesDir = opts.tablesDir
	}
	return cfg, nil
}

func loadTable(ctx context.Context, cfg *config.Config, opts options, name string) (schema.Table, error) {
	if opts.dsn != "" {
		return db.LoadTable(ctx, opts.dsn, name)
	}
	return schema.Load(cfg.TablesDir, name)
}

// interactive reports whether stdin and stderr are terminals
var interactive = func() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stderr)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
