package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bonihachi/sql-generator/internal/config"
	"github.com/bonihachi/sql-generator/internal/query"
)

var (
	// Colors (exported via getter functions below)
	textPrimary   lipgloss.Color
	textSecondary lipgloss.Color
	textFaint     lipgloss.Color

	accentColor    lipgloss.Color
	successColor   lipgloss.Color
	errorColor     lipgloss.Color
	highlightColor lipgloss.Color
	warningColor   lipgloss.Color

	bgPrimary   lipgloss.Color
	bgSecondary lipgloss.Color
	cardBg      lipgloss.Color
	popupBg     lipgloss.Color
	borderColor lipgloss.Color

	// Styles
	StatusBarStyle   lipgloss.Style
	ModeStyle        lipgloss.Style
	EditModeStyle    lipgloss.Style
	ConnectionStyle  lipgloss.Style
	TitleStyle       lipgloss.Style
	TabInactiveStyle lipgloss.Style
	CursorStyle      lipgloss.Style
	ItemStyle        lipgloss.Style
	MarkerStyle      lipgloss.Style
	PredicateStyle   lipgloss.Style
	MetaStyle        lipgloss.Style
	PreviewStyle     lipgloss.Style
	ErrorStyle       lipgloss.Style
	PopupStyle       lipgloss.Style
)

// Color getter functions for use in render helpers
func TextPrimary() lipgloss.Color   { return textPrimary }
func TextSecondary() lipgloss.Color { return textSecondary }
func TextFaint() lipgloss.Color     { return textFaint }
func BgSecondary() lipgloss.Color   { return bgSecondary }
func CardBg() lipgloss.Color        { return cardBg }
func PopupBg() lipgloss.Color       { return popupBg }

// TabColor returns the accent used for a tab's label and list markers
func TabColor(t query.Tab) lipgloss.Color {
	switch t {
	case query.TabSelect:
		return successColor
	case query.TabWhere:
		return warningColor
	case query.TabOrderBy:
		return highlightColor
	default:
		return accentColor
	}
}

// TabActiveStyle renders the label of the active tab
func TabActiveStyle(t query.Tab) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Background(TabColor(t)).
		Foreground(bgPrimary)
}

// InitStyles initializes the global styles based on the provided configuration theme
func InitStyles(theme config.Theme) {
	// Initialize Colors
	textPrimary = lipgloss.Color(theme.TextPrimary)
	textSecondary = lipgloss.Color(theme.TextSecondary)
	textFaint = lipgloss.Color(theme.TextFaint)

	accentColor = lipgloss.Color(theme.Accent)
	successColor = lipgloss.Color(theme.Success)
	errorColor = lipgloss.Color(theme.Error)
	highlightColor = lipgloss.Color(theme.Highlight)
	warningColor = lipgloss.Color(theme.Warning)

	bgPrimary = lipgloss.Color(theme.BgPrimary)
	bgSecondary = lipgloss.Color(theme.BgSecondary)
	cardBg = lipgloss.Color(theme.CardBg)
	popupBg = lipgloss.Color(theme.PopupBg)
	borderColor = lipgloss.Color(theme.BorderColor)

	// Initialize Styles
	StatusBarStyle = lipgloss.NewStyle().
		Foreground(textPrimary).
		Background(bgSecondary)

	ModeStyle = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Background(successColor).
		Foreground(bgPrimary)

	EditModeStyle = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Background(warningColor).
		Foreground(bgPrimary)

	ConnectionStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(cardBg).
		Foreground(textPrimary)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(accentColor)

	TabInactiveStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(textFaint)

	CursorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(textPrimary)

	ItemStyle = lipgloss.NewStyle().
		Foreground(textFaint)

	MarkerStyle = lipgloss.NewStyle().
		Bold(true)

	PredicateStyle = lipgloss.NewStyle().
		Foreground(textSecondary)

	MetaStyle = lipgloss.NewStyle().
		Foreground(textFaint).
		Italic(true)

	PreviewStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(borderColor).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true)

	PopupStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(highlightColor).
		Padding(1, 2)
}
