// internal/ui/model.go
// Root Model struct, constructor, and Init
package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bonihachi/sql-generator/internal/config"
	"github.com/bonihachi/sql-generator/internal/query"
	"github.com/bonihachi/sql-generator/internal/schema"
	"github.com/bonihachi/sql-generator/internal/ui/highlight"
)

// Model is the root Bubble Tea model. It renders the builder and routes
// key events to it; every decision about state lives in query.
type Model struct {
	// Core state
	builder *query.Builder
	keymap  query.Keymap
	config  *config.Config

	width, height int

	// Components
	viewport    viewport.Model
	highlighter *highlight.Highlighter

	// Set when the session ended through the abort binding
	aborted bool
}

// NewModel creates a new UI model for table
func NewModel(cfg *config.Config, table schema.Table) Model {
	InitStyles(cfg.Theme)

	return Model{
		builder:     query.NewBuilder(table),
		keymap:      query.NewKeymap(cfg.Keys.Bindings()),
		config:      cfg,
		viewport:    viewport.New(80, 10),
		highlighter: highlight.New(cfg.HighlightStyle),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Builder returns the session state
func (m Model) Builder() *query.Builder {
	return m.builder
}

// Aborted reports whether the session was ended without emitting SQL
func (m Model) Aborted() bool {
	return m.aborted
}

// SQL returns the statement for the current session state
func (m Model) SQL() (string, error) {
	return m.builder.SQL()
}

// Update handles terminal events
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		return m.syncViewport(), nil

	case tea.KeyMsg:
		action := m.builder.Dispatch(m.keymap, keyFromMsg(msg))
		if action == query.ActionAbort {
			m.aborted = true
		}
		if m.builder.State() == query.StateQuitting {
			return m, tea.Quit
		}
		return m.syncViewport(), nil
	}

	return m, nil
}
