package table

import (
	"github.com/charmbracelet/lipgloss"
	bbtable "github.com/evertras/bubble-table/table"

	"github.com/bonihachi/sql-generator/internal/query"
	"github.com/bonihachi/sql-generator/internal/schema"
)

// Nord colors
const (
	ColorForeground = "#D8DEE9" // Nord4: Light gray
	ColorComment    = "#4C566A" // Nord3: Dark gray
	ColorCyan       = "#88C0D0" // Nord8: Cyan blue
	ColorGreen      = "#A3BE8C" // Nord14: Green
	ColorOrange     = "#D08770" // Nord12: Orange
	ColorPurple     = "#B48EAD" // Nord15: Purple
	ColorYellow     = "#EBCB8B" // Nord13: Yellow
	ColorTeal       = "#8FBCBB" // Nord7: Teal
)

// Overview column keys
const (
	ColumnKey    = "column"
	SelectedKey  = "selected"
	OrderKey     = "order"
	PredicateKey = "predicate"
)

var headers = []string{ColumnKey, SelectedKey, OrderKey, PredicateKey}

var titles = map[string]string{
	ColumnKey:    "Column",
	SelectedKey:  "Selected",
	OrderKey:     "Order",
	PredicateKey: "Predicate",
}

// New creates a new bubble-table with Nord theme (no background)
func New(cols []bbtable.Column) bbtable.Model {
	return bbtable.New(cols).
		WithBaseStyle(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorForeground))).
		HeaderStyle(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorTeal)).
			Bold(true)).
		HighlightStyle(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGreen)).
			Bold(true)).
		Focused(true).
		BorderRounded()
}

// Overview builds the per-column summary shown on the Init tab, with the
// cursor row highlighted.
func Overview(t schema.Table, specs []query.ColumnSpec, cursor int) bbtable.Model {
	rowsData := make([][]string, len(specs))
	for i, spec := range specs {
		rowsData[i] = []string{
			t.Columns[i],
			SelectedText(spec),
			OrderText(spec),
			PredicateText(spec),
		}
	}

	titleRow := make([]string, len(headers))
	for i, h := range headers {
		titleRow[i] = titles[h]
	}
	widths := calculateColumnWidths(titleRow, rowsData)

	cols := make([]bbtable.Column, len(headers))
	for i, h := range headers {
		w := widths[i]
		if h == PredicateKey && w > 40 {
			w = 40
		}
		cols[i] = bbtable.NewColumn(h, titles[h], w)
	}

	rows := make([]bbtable.Row, len(rowsData))
	for i, rd := range rowsData {
		rows[i] = bbtable.NewRow(bbtable.RowData{
			ColumnKey:    rd[0],
			SelectedKey:  bbtable.NewStyledCell(rd[1], lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGreen))),
			OrderKey:     bbtable.NewStyledCell(rd[2], GetOrderStyle(specs[i].Order)),
			PredicateKey: bbtable.NewStyledCell(rd[3], lipgloss.NewStyle().Foreground(lipgloss.Color(ColorYellow))),
		})
	}

	return New(cols).
		WithRows(rows).
		WithNoPagination().
		WithHighlightedRow(cursor)
}

// SelectedText is the Selected cell for spec
func SelectedText(spec query.ColumnSpec) string {
	if spec.Selected {
		return "✓"
	}
	return ""
}

// OrderText is the Order cell for spec
func OrderText(spec query.ColumnSpec) string {
	if spec.Order == query.OrderOff {
		return ""
	}
	return spec.Order.String()
}

// PredicateText is the Predicate cell for spec; an empty predicate shows ''
func PredicateText(spec query.ColumnSpec) string {
	if !spec.HasPredicate {
		return ""
	}
	if spec.Predicate == "" {
		return "''"
	}
	return spec.Predicate
}

// GetOrderStyle returns a lipgloss style for an order direction
func GetOrderStyle(o query.Order) lipgloss.Style {
	switch o {
	case query.OrderAsc:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorCyan))
	case query.OrderDesc:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPurple))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorComment))
	}
}

func calculateColumnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}

	for _, row := range rows {
		for i, val := range row {
			if i < len(headers) {
				if w := lipgloss.Width(val); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}

	// Add padding
	for i := range widths {
		widths[i] += 2
	}

	return widths
}
