// internal/query/keymap.go
package query

import (
	"sort"
	"unicode"
)

// Action is the outcome of looking up a key in the dispatch table
type Action int

const (
	ActionNone Action = iota
	ActionNextTab
	ActionPreviousTab
	ActionNextColumn
	ActionPreviousColumn
	ActionToggleSelect
	ActionSelectAll
	ActionCycleOrder
	ActionBeginEdit
	ActionPushChar
	ActionPopChar
	ActionCommit
	ActionCancel
	ActionQuit
	ActionAbort
)

var actionNames = map[Action]string{
	ActionNone:           "none",
	ActionNextTab:        "next_tab",
	ActionPreviousTab:    "previous_tab",
	ActionNextColumn:     "next_column",
	ActionPreviousColumn: "previous_column",
	ActionToggleSelect:   "toggle_select",
	ActionSelectAll:      "select_all",
	ActionCycleOrder:     "cycle_order",
	ActionBeginEdit:      "begin_edit",
	ActionPushChar:       "push_char",
	ActionPopChar:        "pop_char",
	ActionCommit:         "commit",
	ActionCancel:         "cancel",
	ActionQuit:           "quit",
	ActionAbort:          "abort",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Key is a key press as seen by the dispatch table. Name uses bubbletea key
// names ("enter", "left", "q", "ctrl+c"). Runes holds the typed text for
// character keys and is empty for named keys.
type Key struct {
	Name  string
	Runes []rune
}

// Printable reports whether the key carries only printable characters
func (k Key) Printable() bool {
	if len(k.Runes) == 0 {
		return false
	}
	for _, r := range k.Runes {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// Bindings lists the key names bound to each action. Toggle covers both
// ToggleSelect on the Select tab and CycleOrder on the OrderBy tab.
type Bindings struct {
	NextTab        []string
	PreviousTab    []string
	NextColumn     []string
	PreviousColumn []string
	Quit           []string
	Toggle         []string
	SelectAll      []string
	Edit           []string
	Commit         []string
	DeleteChar     []string
	Cancel         []string
	Abort          []string
}

// DefaultBindings returns the stock key layout
func DefaultBindings() Bindings {
	return Bindings{
		NextTab:        []string{"l", "right"},
		PreviousTab:    []string{"h", "left"},
		NextColumn:     []string{"j", "down"},
		PreviousColumn: []string{"k", "up"},
		Quit:           []string{"q", "esc"},
		Toggle:         []string{"enter"},
		SelectAll:      []string{"a"},
		Edit:           []string{"e"},
		Commit:         []string{"enter"},
		DeleteChar:     []string{"backspace"},
		Cancel:         []string{"esc"},
		Abort:          []string{"ctrl+c"},
	}
}

// anyTab marks a binding that applies on every tab
const anyTab Tab = -1

type dispatchKey struct {
	state RunState
	tab   Tab
	key   string
}

// Keymap is the (RunState, Tab, Key) -> Action lookup table
type Keymap struct {
	table map[dispatchKey]Action
}

// NewKeymap builds the dispatch table from bindings
func NewKeymap(b Bindings) Keymap {
	km := Keymap{table: make(map[dispatchKey]Action)}

	running := []struct {
		keys   []string
		tab    Tab
		action Action
	}{
		{b.NextTab, anyTab, ActionNextTab},
		{b.PreviousTab, anyTab, ActionPreviousTab},
		{b.NextColumn, anyTab, ActionNextColumn},
		{b.PreviousColumn, anyTab, ActionPreviousColumn},
		{b.Quit, anyTab, ActionQuit},
		{b.Abort, anyTab, ActionAbort},
		{b.Toggle, TabSelect, ActionToggleSelect},
		{b.Toggle, TabOrderBy, ActionCycleOrder},
		{b.SelectAll, TabSelect, ActionSelectAll},
		{b.Edit, TabWhere, ActionBeginEdit},
	}
	for _, r := range running {
		for _, k := range r.keys {
			km.bind(StateRunning, r.tab, k, r.action)
		}
	}

	editing := []struct {
		keys   []string
		action Action
	}{
		{b.Commit, ActionCommit},
		{b.DeleteChar, ActionPopChar},
		{b.Cancel, ActionCancel},
		{b.Abort, ActionAbort},
	}
	for _, e := range editing {
		for _, k := range e.keys {
			km.bind(StateEditing, anyTab, k, e.action)
		}
	}

	return km
}

// DefaultKeymap is NewKeymap(DefaultBindings())
func DefaultKeymap() Keymap {
	return NewKeymap(DefaultBindings())
}

func (km Keymap) bind(state RunState, tab Tab, key string, action Action) {
	if key == "" {
		return
	}
	km.table[dispatchKey{state: state, tab: tab, key: key}] = action
}

// Lookup returns the action bound to key in the given state and tab.
// Tab-specific bindings win over bindings that apply to every tab. In the
// Editing state an unbound printable key is ActionPushChar. Quitting has
// no bindings.
func (km Keymap) Lookup(state RunState, tab Tab, key Key) Action {
	if state == StateQuitting {
		return ActionNone
	}
	if a, ok := km.table[dispatchKey{state: state, tab: tab, key: key.Name}]; ok {
		return a
	}
	if a, ok := km.table[dispatchKey{state: state, tab: anyTab, key: key.Name}]; ok {
		return a
	}
	if state == StateEditing && key.Printable() {
		return ActionPushChar
	}
	return ActionNone
}

// Keys returns the sorted key names bound to action in state
func (km Keymap) Keys(state RunState, action Action) []string {
	var keys []string
	seen := make(map[string]bool)
	for k, a := range km.table {
		if k.state == state && a == action && !seen[k.key] {
			seen[k.key] = true
			keys = append(keys, k.key)
		}
	}
	sort.Strings(keys)
	return keys
}

// Dispatch looks up key for the builder's current state and applies the
// result. It returns the action that was applied.
func (b *Builder) Dispatch(km Keymap, key Key) Action {
	action := km.Lookup(b.state, b.tab, key)
	b.Apply(action, key.Runes)
	return action
}
