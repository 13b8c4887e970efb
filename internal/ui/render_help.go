package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bonihachi/sql-generator/internal/query"
)

func (m Model) renderHelp() string {
	// Style for key hints - makes keys look like keyboard buttons
	keyStyle := lipgloss.NewStyle().
		Foreground(TextPrimary()).
		Background(CardBg()).
		Padding(0, 1).
		Bold(true)

	sepStyle := lipgloss.NewStyle().Foreground(TextFaint())
	descStyle := lipgloss.NewStyle().Foreground(TextSecondary())

	state := m.builder.State()
	var hints []string

	// Hints only for actions that have a key in this state
	add := func(action query.Action, desc string) {
		keys := m.keymap.Keys(state, action)
		if len(keys) == 0 {
			return
		}
		hints = append(hints, keyStyle.Render(strings.Join(keys, "/"))+descStyle.Render(" "+desc))
	}

	if state == query.StateEditing {
		add(query.ActionCommit, "Commit")
		add(query.ActionPopChar, "Delete")
		add(query.ActionCancel, "Cancel")
	} else {
		add(query.ActionPreviousTab, "Prev tab")
		add(query.ActionNextTab, "Next tab")
		add(query.ActionNextColumn, "Down")
		add(query.ActionPreviousColumn, "Up")

		switch m.builder.Tab() {
		case query.TabSelect:
			add(query.ActionToggleSelect, "Toggle")
			add(query.ActionSelectAll, "All")
		case query.TabWhere:
			add(query.ActionBeginEdit, "Edit")
		case query.TabOrderBy:
			add(query.ActionCycleOrder, "Order")
		}

		add(query.ActionQuit, "Generate")
	}
	add(query.ActionAbort, "Abort")

	help := strings.Join(hints, sepStyle.Render("  "))
	if m.width > 0 {
		help = ansi.Truncate(help, m.width, "…")
	}
	return help
}
