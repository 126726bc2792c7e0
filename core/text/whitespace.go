// Package text provides the pure string transforms used by the
// conversion engine: Unicode whitespace normalization, Markdown
// escaping, wrapping, and small helpers shared by the per-tag
// renderers. Everything here is context-free; sibling-aware whitespace
// decisions live with the tree walker.
package text

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var spaceRun = regexp.MustCompile(`[ \t]+`)

// NormalizeUnicode maps Unicode space, line and paragraph separators
// (non-breaking spaces included) to ASCII spaces, and carriage returns
// to newlines. Applied to every text node regardless of whitespace mode.
func NormalizeUnicode(s string) string {
	if strings.Contains(s, "\r") {
		s = strings.ReplaceAll(s, "\r\n", "\n")
		s = strings.ReplaceAll(s, "\r", "\n")
	}
	plain := true
	for _, r := range s {
		if r != ' ' && unicode.In(r, unicode.Zs, unicode.Zl, unicode.Zp) {
			plain = false
			break
		}
	}
	if plain {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r != ' ' && unicode.In(r, unicode.Zs, unicode.Zl, unicode.Zp) {
			b.WriteByte(' ')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CollapseSpaces replaces every run of spaces and tabs with a single
// space. Newlines are left alone.
func CollapseSpaces(s string) string {
	return spaceRun.ReplaceAllString(s, " ")
}

// Chomp splits the leading and trailing spaces off an inline run so
// that emphasis delimiters hug the content. Returns the (possibly
// empty) one-space prefix and suffix and the trimmed core.
func Chomp(s string) (prefix, suffix, core string) {
	if s == "" {
		return "", "", ""
	}
	if s[0] == ' ' {
		prefix = " "
	}
	if s[len(s)-1] == ' ' {
		suffix = " "
	}
	return prefix, suffix, strings.TrimSpace(s)
}

// Indent prefixes every non-empty line of s with prefix.
func Indent(s, prefix string) string {
	if s == "" || prefix == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// Underline renders setext heading text: the trimmed text followed by a
// line of pad runes matching its display width.
func Underline(s string, pad rune) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return s + "\n" + strings.Repeat(string(pad), utf8.RuneCountInString(s))
}
