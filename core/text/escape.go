package text

import (
	"regexp"
	"strings"
)

var (
	miscChar      = regexp.MustCompile("([\\\\&<`\\[>~#=+|-])")
	ordinalMarker = regexp.MustCompile(`([0-9])([.)])`)
)

// Escape backslash-escapes Markdown-significant characters in plain
// text so it round-trips through a Markdown renderer unchanged. The
// three flags mirror the escape options: misc punctuation (including
// digit-dot sequences that would read as ordered-list markers),
// asterisks, and underscores.
func Escape(s string, asterisks, underscores, misc bool) string {
	if s == "" {
		return ""
	}
	if misc {
		s = miscChar.ReplaceAllString(s, `\$1`)
		s = ordinalMarker.ReplaceAllString(s, `$1\$2`)
	}
	if asterisks {
		s = strings.ReplaceAll(s, "*", `\*`)
	}
	if underscores {
		s = strings.ReplaceAll(s, "_", `\_`)
	}
	return s
}
