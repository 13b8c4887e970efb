// internal/ui/model_helpers.go
// Small helper functions used across the UI layer
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bonihachi/sql-generator/internal/query"
)

// keyFromMsg converts a bubbletea key event into a dispatch key. Runes are
// kept only for character keys so named keys never insert text.
func keyFromMsg(msg tea.KeyMsg) query.Key {
	k := query.Key{Name: msg.String()}
	if msg.Alt {
		return k
	}
	switch msg.Type {
	case tea.KeyRunes:
		k.Runes = msg.Runes
	case tea.KeySpace:
		k.Runes = []rune{' '}
	}
	return k
}

// limitString truncates s to maxLen runes by replacing the middle with "..."
func limitString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen || maxLen < 5 {
		return s
	}
	half := (maxLen - 3) / 2
	return string(r[:half]) + "..." + string(r[len(r)-half:])
}

// clamp bounds v to [lo, hi]
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
