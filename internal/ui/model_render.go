package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/bonihachi/sql-generator/internal/query"
	eztable "github.com/bonihachi/sql-generator/internal/ui/components/table"
)

const appTitle = "SQL Generator"

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	parts := []string{m.renderHeader(), m.viewport.View()}
	if preview := m.renderPreview(); preview != "" {
		parts = append(parts, preview)
	}
	parts = append(parts, m.renderStatusBar(), m.renderHelp())

	main := lipgloss.JoinVertical(lipgloss.Left, parts...)

	if m.builder.State() == query.StateEditing {
		main = m.renderEditPopup(main)
	}
	return main
}

// syncViewport sizes the body viewport to the space left by the chrome,
// refreshes its content and scrolls so the cursor row stays visible.
func (m Model) syncViewport() Model {
	chrome := lipgloss.Height(m.renderHeader()) +
		lipgloss.Height(m.renderStatusBar()) +
		lipgloss.Height(m.renderHelp())
	if preview := m.renderPreview(); preview != "" {
		chrome += lipgloss.Height(preview)
	}

	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-chrome, 1)

	content, cursorLine := m.renderBody()
	m.viewport.SetContent(content)

	switch {
	case cursorLine < m.viewport.YOffset:
		m.viewport.SetYOffset(cursorLine)
	case cursorLine >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(cursorLine - m.viewport.Height + 1)
	}
	return m
}

func (m Model) renderHeader() string {
	active := m.builder.Tab()

	var tabs []string
	for _, t := range query.Tabs {
		if t == active {
			tabs = append(tabs, TabActiveStyle(t).Render(t.String()))
		} else {
			tabs = append(tabs, TabInactiveStyle.Render(t.String()))
		}
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	title := TitleStyle.Render(appTitle)

	gap := m.width - lipgloss.Width(strip) - lipgloss.Width(title)
	if gap < 1 {
		gap = 1
	}
	return strip + strings.Repeat(" ", gap) + title
}

// renderBody returns the body content and the line the cursor is on
func (m Model) renderBody() (string, int) {
	b := m.builder
	t := b.Table()

	if b.Tab() == query.TabInit {
		info := fmt.Sprintf("%s %s   %s %d",
			MetaStyle.Render("table"), CursorStyle.Render(t.Name),
			MetaStyle.Render("columns"), t.Len())
		overview := eztable.Overview(t, b.Specs(), b.Cursor()).
			WithTargetWidth(max(m.width-2, 20))

		// Info line, blank line, then the table's top border, header and
		// separator before the first row
		return lipgloss.JoinVertical(lipgloss.Left, info, "", overview.View()), 2 + 3 + b.Cursor()
	}

	lines := make([]string, t.Len())
	for i := range lines {
		lines[i] = m.renderColumnLine(i)
	}
	return strings.Join(lines, "\n"), b.Cursor()
}

func (m Model) renderColumnLine(i int) string {
	b := m.builder
	tab := b.Tab()
	spec := b.Spec(i)
	name := b.Table().Columns[i]

	marker := "  "
	suffix := ""
	switch tab {
	case query.TabSelect:
		if spec.Selected {
			marker = "✓ "
		}
	case query.TabWhere:
		if spec.HasPredicate {
			suffix = "  " + PredicateStyle.Render(eztable.PredicateText(spec))
		}
	case query.TabOrderBy:
		switch spec.Order {
		case query.OrderAsc:
			marker = "↑ "
		case query.OrderDesc:
			marker = "↓ "
		}
	}
	marker = MarkerStyle.Foreground(TabColor(tab)).Render(marker)

	if i == b.Cursor() {
		return "› " + marker + CursorStyle.Render(name) + suffix
	}
	return "  " + marker + ItemStyle.Render(name) + suffix
}

// renderPreview shows the statement the session would emit now
func (m Model) renderPreview() string {
	if m.config.HidePreview {
		return ""
	}

	var content string
	if sql, err := m.builder.SQL(); err != nil {
		content = ErrorStyle.Render(err.Error())
	} else {
		content = m.highlighter.SQL(sql)
	}
	return PreviewStyle.Width(max(m.width, 1)).Render(content)
}

func (m Model) renderEditPopup(main string) string {
	edit := m.builder.Edit()
	if edit == nil {
		return main
	}
	column := m.builder.Table().Columns[edit.Column]

	line := TitleStyle.Render("WHERE") + " " + CursorStyle.Render(column) + " " + edit.Text() + "▏"

	var hints []string
	for _, h := range []struct {
		action query.Action
		desc   string
	}{
		{query.ActionCommit, "commit"},
		{query.ActionCancel, "cancel"},
	} {
		if keys := m.keymap.Keys(query.StateEditing, h.action); len(keys) > 0 {
			hints = append(hints, strings.Join(keys, "/")+" "+h.desc)
		}
	}
	content := lipgloss.JoinVertical(lipgloss.Left, line, "", MetaStyle.Render(strings.Join(hints, "  ")))

	popupWidth := clamp(m.width-4, 20, 60)
	popupBox := PopupStyle.
		Width(popupWidth).
		Background(PopupBg()).
		Render(content)

	return overlay.Composite(popupBox, main, overlay.Center, overlay.Center, 0, 0)
}
