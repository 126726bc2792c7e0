package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUnicode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain ascii untouched", "hello world", "hello world"},
		{"nbsp becomes space", "a b", "a b"},
		{"ideographic space becomes space", "a　b", "a b"},
		{"en quad becomes space", "a b", "a b"},
		{"line separator becomes space", "a b", "a b"},
		{"paragraph separator becomes space", "a b", "a b"},
		{"crlf becomes lf", "one\r\ntwo", "one\ntwo"},
		{"bare cr becomes lf", "one\rtwo", "one\ntwo"},
		{"tabs and newlines kept", "a\tb\nc", "a\tb\nc"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeUnicode(tt.input))
		})
	}
}

func TestCollapseSpaces(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"space run", "a   b", "a b"},
		{"mixed space and tab", "a \t b", "a b"},
		{"newlines untouched", "a\n\nb", "a\n\nb"},
		{"edges collapse but stay", "  x  ", " x "},
		{"no whitespace", "abc", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CollapseSpaces(tt.input))
		})
	}
}

func TestChomp(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		prefix string
		suffix string
		core   string
	}{
		{"both edges", " bold ", " ", " ", "bold"},
		{"no edges", "text", "", "", "text"},
		{"leading only", " x", " ", "", "x"},
		{"tab is not a space prefix", "\tx", "", "", "x"},
		{"empty", "", "", "", ""},
		{"all spaces", "   ", " ", " ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, suffix, core := Chomp(tt.input)
			assert.Equal(t, tt.prefix, prefix)
			assert.Equal(t, tt.suffix, suffix)
			assert.Equal(t, tt.core, core)
		})
	}
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "  a\n\n  b", Indent("a\n\nb", "  "))
	assert.Equal(t, "x", Indent("x", ""))
	assert.Equal(t, "", Indent("", "    "))
	assert.Equal(t, "\tline", Indent("line", "\t"))
}

func TestUnderline(t *testing.T) {
	assert.Equal(t, "Title\n=====", Underline("Title", '='))
	assert.Equal(t, "Sub\n---", Underline("Sub", '-'))
	assert.Equal(t, "héé\n===", Underline("héé", '='), "pad width counts runes, not bytes")
	assert.Equal(t, "Pad\n===", Underline("  Pad  ", '='))
	assert.Equal(t, "", Underline("   ", '='))
}
