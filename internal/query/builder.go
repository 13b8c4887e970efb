// internal/query/builder.go
package query

import (
	"log"

	"github.com/bonihachi/sql-generator/internal/schema"
)

// Builder owns the session state: active tab, column cursor, run state,
// per-column specs and the optional edit session. It is not safe for
// concurrent use; the UI event loop is its only owner.
type Builder struct {
	table  schema.Table
	specs  []ColumnSpec
	tab    Tab
	cursor int
	state  RunState
	edit   *EditSession
}

// NewBuilder creates a Builder for table. The table must have at least one
// column, which schema.New guarantees.
func NewBuilder(table schema.Table) *Builder {
	return &Builder{
		table: table,
		specs: make([]ColumnSpec, table.Len()),
		tab:   TabInit,
		state: StateRunning,
	}
}

// Table returns the schema the builder was created for
func (b *Builder) Table() schema.Table { return b.table }

// Tab returns the active tab
func (b *Builder) Tab() Tab { return b.tab }

// Cursor returns the current column index
func (b *Builder) Cursor() int { return b.cursor }

// State returns the run state
func (b *Builder) State() RunState { return b.state }

// Edit returns the active edit session, or nil
func (b *Builder) Edit() *EditSession { return b.edit }

// Spec returns a copy of the spec for column i
func (b *Builder) Spec(i int) ColumnSpec { return b.specs[i] }

// Specs returns a copy of all column specs in schema order
func (b *Builder) Specs() []ColumnSpec {
	out := make([]ColumnSpec, len(b.specs))
	copy(out, b.specs)
	return out
}

// SQL generates the statement for the current state
func (b *Builder) SQL() (string, error) {
	return Generate(b.table, b.specs)
}

// --- Navigation ---

// NextTab moves one tab right, clamped, and resets the cursor
func (b *Builder) NextTab() {
	b.setTab(b.tab.next())
}

// PreviousTab moves one tab left, clamped, and resets the cursor
func (b *Builder) PreviousTab() {
	b.setTab(b.tab.previous())
}

func (b *Builder) setTab(t Tab) {
	if t != b.tab {
		log.Printf("tab %s -> %s", b.tab, t)
	}
	b.tab = t
	b.cursor = 0
}

// NextColumn moves the cursor down, wrapping to the first column
func (b *Builder) NextColumn() {
	if b.cursor < len(b.specs)-1 {
		b.cursor++
	} else {
		b.cursor = 0
	}
}

// PreviousColumn moves the cursor up, wrapping to the last column
func (b *Builder) PreviousColumn() {
	if b.cursor > 0 {
		b.cursor--
	} else {
		b.cursor = len(b.specs) - 1
	}
}

// Quit moves to the terminal Quitting state
func (b *Builder) Quit() {
	log.Printf("quit from %s", b.state)
	b.state = StateQuitting
	b.edit = nil
}

// --- Tab actions ---

// ToggleSelect flips selection of the cursor column. Select tab only.
func (b *Builder) ToggleSelect() {
	if b.state != StateRunning || b.tab != TabSelect {
		return
	}
	b.specs[b.cursor].Selected = !b.specs[b.cursor].Selected
}

// SelectAll selects every column. Select tab only.
func (b *Builder) SelectAll() {
	if b.state != StateRunning || b.tab != TabSelect {
		return
	}
	for i := range b.specs {
		b.specs[i].Selected = true
	}
}

// CycleOrder advances the cursor column's order flag. OrderBy tab only.
func (b *Builder) CycleOrder() {
	if b.state != StateRunning || b.tab != TabOrderBy {
		return
	}
	b.specs[b.cursor].Order = b.specs[b.cursor].Order.Next()
}

// --- Edit session ---

// BeginEdit opens an edit session on the cursor column, seeded with its
// existing predicate. Where tab only.
func (b *Builder) BeginEdit() {
	if b.state != StateRunning || b.tab != TabWhere {
		return
	}
	spec := b.specs[b.cursor]
	session := &EditSession{Column: b.cursor}
	if spec.HasPredicate {
		session.Buffer = []rune(spec.Predicate)
	}
	b.edit = session
	b.state = StateEditing
	log.Printf("edit begin: %s", b.table.Columns[b.cursor])
}

// PushChar appends r to the edit buffer
func (b *Builder) PushChar(r rune) {
	if b.state != StateEditing || b.edit == nil {
		return
	}
	b.edit.Buffer = append(b.edit.Buffer, r)
}

// PopChar removes the last rune of the edit buffer
func (b *Builder) PopChar() {
	if b.state != StateEditing || b.edit == nil || len(b.edit.Buffer) == 0 {
		return
	}
	b.edit.Buffer = b.edit.Buffer[:len(b.edit.Buffer)-1]
}

// Commit stores the buffer verbatim as the predicate of the edited column
func (b *Builder) Commit() {
	if b.state != StateEditing || b.edit == nil {
		return
	}
	spec := &b.specs[b.edit.Column]
	spec.Predicate = b.edit.Text()
	spec.HasPredicate = true
	log.Printf("edit commit: %s %q", b.table.Columns[b.edit.Column], spec.Predicate)
	b.edit = nil
	b.state = StateRunning
}

// Cancel drops the edit session without touching the predicate
func (b *Builder) Cancel() {
	if b.state != StateEditing {
		return
	}
	log.Printf("edit cancel")
	b.edit = nil
	b.state = StateRunning
}

// Apply performs action. runes carries the typed characters for
// ActionPushChar and is ignored otherwise.
func (b *Builder) Apply(action Action, runes []rune) {
	switch action {
	case ActionNextTab:
		b.NextTab()
	case ActionPreviousTab:
		b.PreviousTab()
	case ActionNextColumn:
		b.NextColumn()
	case ActionPreviousColumn:
		b.PreviousColumn()
	case ActionToggleSelect:
		b.ToggleSelect()
	case ActionSelectAll:
		b.SelectAll()
	case ActionCycleOrder:
		b.CycleOrder()
	case ActionBeginEdit:
		b.BeginEdit()
	case ActionPushChar:
		for _, r := range runes {
			b.PushChar(r)
		}
	case ActionPopChar:
		b.PopChar()
	case ActionCommit:
		b.Commit()
	case ActionCancel:
		b.Cancel()
	case ActionQuit, ActionAbort:
		b.Quit()
	}
}
