package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhitespaceBetweenBlocks(t *testing.T) {
	// Formatting whitespace between block siblings never reaches the
	// output; the separator comes from block spacing alone.
	assert.Equal(t, "a\n\nb\n", convertDefault(t, "<p>a</p> <p>b</p>"))
	assert.Equal(t, "a\n\nb\n", convertDefault(t, "<p>a</p>\n\t<p>b</p>"))
}

func TestWhitespaceBetweenInlineSiblings(t *testing.T) {
	// A plain space between inline runs survives as one space; a
	// newline separator is treated as formatting and dropped.
	assert.Equal(t, "**x** *y*\n", convertDefault(t, "<b>x</b> <i>y</i>"))
	assert.Equal(t, "`a`**c**\n", convertDefault(t, "<code>a</code>\n<b>c</b>"))
}

func TestWhitespaceTextEdges(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trailing space before inline kept", "<p>foo <b>bar</b></p>", "foo **bar**\n"},
		{"leading space after inline kept", "<p><b>bar</b> baz</p>", "**bar** baz\n"},
		{"both edges", "<p>foo <b>bar</b> baz</p>", "foo **bar** baz\n"},
		{"trailing tab before inline becomes space", "<p>a\t<b>c</b></p>", "a **c**\n"},
		{"trailing newline before inline becomes space", "<p>a\n<b>c</b></p>", "a **c**\n"},
		{"leading newline after inline becomes space", "<p><b>c</b>\nafter</p>", "**c** after\n"},
		{"interior runs collapse", "<p>a   b\t\tc</p>", "a b c\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, convertDefault(t, tc.input))
		})
	}
}

func TestWhitespaceRubyContainer(t *testing.T) {
	assert.Equal(t, "漢 kan\n", convertDefault(t, "<ruby>漢 <rt>kan</rt></ruby>"))
}
