package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"fits on one line", "aa bb", 20, "aa bb"},
		{"breaks at width", "aa bb cc dd", 5, "aa bb\ncc dd"},
		{"long word kept whole", "a verylongword b", 6, "a\nverylongword\nb"},
		{"existing newlines rejoined", "one\ntwo three", 80, "one two three"},
		{"zero width passthrough", "a b", 0, "a b"},
		{"empty", "", 10, ""},
		{"only whitespace", "   \n  ", 10, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.input, tt.width))
		})
	}
}
