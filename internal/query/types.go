// Package query holds the SELECT specification state machine and the SQL
// generator that reads it.
package query

// Tab is one mode of the session. Tabs are ordered; navigation clamps at
// both ends.
type Tab int

const (
	TabInit Tab = iota
	TabSelect
	TabWhere
	TabOrderBy
)

// Tabs lists every tab in navigation order
var Tabs = []Tab{TabInit, TabSelect, TabWhere, TabOrderBy}

func (t Tab) String() string {
	switch t {
	case TabInit:
		return "INIT"
	case TabSelect:
		return "SELECT"
	case TabWhere:
		return "WHERE"
	case TabOrderBy:
		return "ORDER BY"
	default:
		return "UNKNOWN"
	}
}

func (t Tab) next() Tab {
	if t >= Tabs[len(Tabs)-1] {
		return t
	}
	return t + 1
}

func (t Tab) previous() Tab {
	if t <= Tabs[0] {
		return t
	}
	return t - 1
}

// RunState gates which part of the dispatch table is active
type RunState int

const (
	StateRunning RunState = iota
	StateEditing
	StateQuitting
)

func (s RunState) String() string {
	switch s {
	case StateRunning:
		return "RUNNING"
	case StateEditing:
		return "EDITING"
	case StateQuitting:
		return "QUITTING"
	default:
		return "UNKNOWN"
	}
}

// Order is the per-column ORDER BY flag
type Order int

const (
	OrderOff Order = iota
	OrderAsc
	OrderDesc
)

// Next advances Off -> Asc -> Desc -> Off
func (o Order) Next() Order {
	switch o {
	case OrderOff:
		return OrderAsc
	case OrderAsc:
		return OrderDesc
	default:
		return OrderOff
	}
}

func (o Order) String() string {
	switch o {
	case OrderAsc:
		return "ASC"
	case OrderDesc:
		return "DESC"
	default:
		return "OFF"
	}
}

// ColumnSpec is the mutable state of one schema column.
// An empty Predicate with HasPredicate set is still a predicate.
type ColumnSpec struct {
	Selected     bool
	Order        Order
	Predicate    string
	HasPredicate bool
}

// EditSession holds the predicate being typed for one column
type EditSession struct {
	Column int
	Buffer []rune
}

// Text returns the current buffer contents
func (e *EditSession) Text() string {
	return string(e.Buffer)
}
