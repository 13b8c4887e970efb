package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bonihachi/sql-generator/internal/schema"
)

func newUsers(t *testing.T) *Builder {
	t.Helper()
	table, err := schema.New("users", []string{"id", "name", "age"})
	require.NoError(t, err)
	return NewBuilder(table)
}

func columnsOf(n int) []string {
	cols := make([]string, n)
	for i := range cols {
		cols[i] = fmt.Sprintf("c%d", i)
	}
	return cols
}

func TestNewBuilder_InitialState(t *testing.T) {
	b := newUsers(t)

	require.Equal(t, TabInit, b.Tab())
	require.Equal(t, 0, b.Cursor())
	require.Equal(t, StateRunning, b.State())
	require.Nil(t, b.Edit())
	require.Len(t, b.Specs(), 3)
	for _, s := range b.Specs() {
		require.Equal(t, ColumnSpec{}, s)
	}
}

func TestNextColumn_WrapsAfterN(t *testing.T) {
	for n := 1; n <= 6; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			table, err := schema.New("t", columnsOf(n))
			require.NoError(t, err)
			b := NewBuilder(table)

			for i := 0; i < n; i++ {
				b.NextColumn()
			}
			require.Equal(t, 0, b.Cursor())
		})
	}
}

func TestPreviousColumn_FromZeroGoesToLast(t *testing.T) {
	for n := 1; n <= 6; n++ {
		table, err := schema.New("t", columnsOf(n))
		require.NoError(t, err)
		b := NewBuilder(table)

		b.PreviousColumn()
		require.Equal(t, n-1, b.Cursor(), "n=%d", n)
	}
}

func TestTabs_ClampAtEnds(t *testing.T) {
	b := newUsers(t)

	b.PreviousTab()
	require.Equal(t, TabInit, b.Tab())

	b.NextTab()
	require.Equal(t, TabSelect, b.Tab())
	b.NextTab()
	require.Equal(t, TabWhere, b.Tab())
	b.NextTab()
	require.Equal(t, TabOrderBy, b.Tab())
	b.NextTab()
	require.Equal(t, TabOrderBy, b.Tab())

	b.PreviousTab()
	require.Equal(t, TabWhere, b.Tab())
}

func TestTabChange_ResetsCursor(t *testing.T) {
	b := newUsers(t)

	b.NextColumn()
	b.NextColumn()
	require.Equal(t, 2, b.Cursor())
	b.NextTab()
	require.Equal(t, 0, b.Cursor())

	b.PreviousColumn()
	require.Equal(t, 2, b.Cursor())
	b.PreviousTab()
	require.Equal(t, 0, b.Cursor())

	// Clamped moves still reset the cursor
	b.NextColumn()
	b.PreviousTab()
	require.Equal(t, TabInit, b.Tab())
	require.Equal(t, 0, b.Cursor())
}

func TestToggleSelect_Involution(t *testing.T) {
	b := newUsers(t)
	b.NextTab()
	b.NextColumn()

	b.ToggleSelect()
	require.True(t, b.Spec(1).Selected)
	require.False(t, b.Spec(0).Selected)

	b.ToggleSelect()
	require.False(t, b.Spec(1).Selected)
}

func TestSelectAll_IgnoresCursorAndPriorState(t *testing.T) {
	b := newUsers(t)
	b.NextTab()
	b.NextColumn()
	b.ToggleSelect()

	b.SelectAll()
	for i := range b.Specs() {
		require.True(t, b.Spec(i).Selected, "column %d", i)
	}

	sql, err := b.SQL()
	require.NoError(t, err)
	require.Equal(t, "SELECT * FROM users;", sql)
}

func TestCycleOrder_ThreeCycle(t *testing.T) {
	b := newUsers(t)
	b.NextTab()
	b.NextTab()
	b.NextTab()
	require.Equal(t, TabOrderBy, b.Tab())

	b.CycleOrder()
	require.Equal(t, OrderAsc, b.Spec(0).Order)
	b.CycleOrder()
	require.Equal(t, OrderDesc, b.Spec(0).Order)
	b.CycleOrder()
	require.Equal(t, OrderOff, b.Spec(0).Order)
}

func TestTabActions_NoOpOnWrongTab(t *testing.T) {
	b := newUsers(t)

	for _, tab := range Tabs {
		if tab != TabSelect {
			b.ToggleSelect()
			b.SelectAll()
		}
		if tab != TabOrderBy {
			b.CycleOrder()
		}
		if tab != TabWhere {
			b.BeginEdit()
			require.Equal(t, StateRunning, b.State(), "tab %s", tab)
		}
		b.NextTab()
	}

	for _, s := range b.Specs() {
		require.Equal(t, ColumnSpec{}, s)
	}
}

func whereBuilder(t *testing.T) *Builder {
	t.Helper()
	b := newUsers(t)
	b.NextTab()
	b.NextTab()
	require.Equal(t, TabWhere, b.Tab())
	return b
}

func TestEdit_CommitStoresBuffer(t *testing.T) {
	b := whereBuilder(t)
	b.NextColumn()

	b.BeginEdit()
	require.Equal(t, StateEditing, b.State())
	require.NotNil(t, b.Edit())
	require.Equal(t, 1, b.Edit().Column)
	require.Empty(t, b.Edit().Text())

	for _, r := range "= 'Bob'" {
		b.PushChar(r)
	}
	b.Commit()

	require.Equal(t, StateRunning, b.State())
	require.Nil(t, b.Edit())
	spec := b.Spec(1)
	require.True(t, spec.HasPredicate)
	require.Equal(t, "= 'Bob'", spec.Predicate)
}

func TestEdit_SeededWithExistingPredicate(t *testing.T) {
	b := whereBuilder(t)
	b.BeginEdit()
	for _, r := range "> 1x" {
		b.PushChar(r)
	}
	b.PopChar()
	b.Commit()
	require.Equal(t, "> 1", b.Spec(0).Predicate)

	b.BeginEdit()
	require.Equal(t, "> 1", b.Edit().Text())
}

func TestEdit_PopCharRemovesRune(t *testing.T) {
	b := whereBuilder(t)
	b.BeginEdit()
	b.PushChar('é')
	b.PushChar('ß')
	b.PopChar()
	require.Equal(t, "é", b.Edit().Text())

	b.PopChar()
	b.PopChar()
	require.Empty(t, b.Edit().Text())
}

func TestEdit_EmptyCommitIsPresent(t *testing.T) {
	b := whereBuilder(t)
	b.BeginEdit()
	b.Commit()

	spec := b.Spec(0)
	require.True(t, spec.HasPredicate)
	require.Equal(t, "", spec.Predicate)

	sql, err := b.SQL()
	require.NoError(t, err)
	require.Contains(t, sql, " WHERE id ")
}

func TestEdit_CommitReplacesWithEmpty(t *testing.T) {
	b := whereBuilder(t)
	b.BeginEdit()
	b.PushChar('1')
	b.Commit()

	b.BeginEdit()
	b.PopChar()
	b.Commit()

	require.True(t, b.Spec(0).HasPredicate)
	require.Equal(t, "", b.Spec(0).Predicate)
}

func TestEdit_CancelKeepsPriorPredicate(t *testing.T) {
	b := whereBuilder(t)
	b.BeginEdit()
	b.PushChar('1')
	b.Commit()

	b.BeginEdit()
	b.PopChar()
	b.PushChar('2')
	b.Cancel()

	require.Equal(t, StateRunning, b.State())
	require.Nil(t, b.Edit())
	require.Equal(t, "1", b.Spec(0).Predicate)

	b.NextColumn()
	b.BeginEdit()
	b.PushChar('x')
	b.Cancel()
	require.False(t, b.Spec(1).HasPredicate)
}

func TestEdit_BufferOpsOutsideEditingAreNoOps(t *testing.T) {
	b := whereBuilder(t)

	b.PushChar('x')
	b.PopChar()
	b.Commit()
	b.Cancel()

	require.Equal(t, StateRunning, b.State())
	require.False(t, b.Spec(0).HasPredicate)
}

func TestQuit_IsTerminal(t *testing.T) {
	b := whereBuilder(t)
	b.BeginEdit()
	b.Quit()

	require.Equal(t, StateQuitting, b.State())
	require.Nil(t, b.Edit())

	b.Commit()
	b.BeginEdit()
	require.Equal(t, StateQuitting, b.State())
}
