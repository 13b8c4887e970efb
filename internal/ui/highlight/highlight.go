package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Highlighter colours SQL with a chroma style, emitting foreground-only
// ANSI via lipgloss so it composes with the surrounding layout.
type Highlighter struct {
	lexer chroma.Lexer
	style *chroma.Style
}

// segment is one run of source text sharing a colour
type segment struct {
	text  string
	color string
	bold  bool
}

// New returns a Highlighter using the named chroma style. Unknown names
// fall back to chroma's default style.
func New(styleName string) *Highlighter {
	lexer := lexers.Get("sql")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return &Highlighter{
		lexer: chroma.Coalesce(lexer),
		style: styles.Get(styleName),
	}
}

// SQL returns sql with syntax colouring applied
func (h *Highlighter) SQL(sql string) string {
	var result strings.Builder
	for _, seg := range h.segments(sql) {
		if seg.color == "" && !seg.bold {
			result.WriteString(seg.text)
			continue
		}
		st := lipgloss.NewStyle().Bold(seg.bold)
		if seg.color != "" {
			st = st.Foreground(lipgloss.Color(seg.color))
		}
		result.WriteString(st.Render(seg.text))
	}
	return result.String()
}

func (h *Highlighter) segments(sql string) []segment {
	iter, err := h.lexer.Tokenise(nil, sql)
	if err != nil {
		return []segment{{text: sql}}
	}

	var segs []segment
	for _, tok := range iter.Tokens() {
		entry := h.style.Get(tok.Type)
		seg := segment{text: tok.Value, bold: entry.Bold == chroma.Yes}
		if entry.Colour.IsSet() {
			seg.color = entry.Colour.String()
		}
		segs = append(segs, seg)
	}

	// Some lexers append a newline the source never had
	if n := len(segs); n > 0 && !strings.HasSuffix(sql, "\n") {
		segs[n-1].text = strings.TrimSuffix(segs[n-1].text, "\n")
	}
	return segs
}
