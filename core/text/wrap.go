package text

import (
	"strings"
	"unicode/utf8"
)

// Wrap greedily re-wraps s at the given column width. Words are never
// broken: a word longer than the width gets its own line. Existing
// newlines are treated as ordinary word separators.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	lineLen := 0
	for i, word := range words {
		wordLen := utf8.RuneCountInString(word)
		switch {
		case i == 0:
			b.WriteString(word)
			lineLen = wordLen
		case lineLen+1+wordLen <= width:
			b.WriteByte(' ')
			b.WriteString(word)
			lineLen += 1 + wordLen
		default:
			b.WriteByte('\n')
			b.WriteString(word)
			lineLen = wordLen
		}
	}
	return b.String()
}
