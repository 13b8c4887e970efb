package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/bonihachi/sql-generator/internal/query"
)

func (m Model) renderStatusBar() string {
	var parts []string
	b := m.builder

	// 1. Run state
	modeStyle := ModeStyle
	if b.State() == query.StateEditing {
		modeStyle = EditModeStyle
	}
	parts = append(parts, modeStyle.Render(b.State().String()))

	// 2. Table and cursor position
	t := b.Table()
	parts = append(parts, ConnectionStyle.Render(limitString(t.Name, 30)))
	position := fmt.Sprintf(" %d/%d ", b.Cursor()+1, t.Len())
	parts = append(parts, lipgloss.NewStyle().Background(CardBg()).Foreground(TextSecondary()).Render(position))

	// 3. Active tab
	tabStyle := lipgloss.NewStyle().Background(BgSecondary()).Foreground(TabColor(b.Tab())).Padding(0, 1)
	parts = append(parts, tabStyle.Render(b.Tab().String()))

	content := lipgloss.JoinHorizontal(lipgloss.Left, parts...)
	return StatusBarStyle.Width(m.width).Render(content)
}
