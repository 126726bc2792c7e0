package crawl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrontierDeduplicates(t *testing.T) {
	f := NewFrontier()
	f.Add("https://a.example/")
	f.Add("https://b.example/")
	f.Add("https://a.example/")

	assert.Equal(t, 2, f.Seen())
	assert.Equal(t, []string{"https://a.example/", "https://b.example/"}, f.All())
}

func TestFrontierOrder(t *testing.T) {
	f := NewFrontier()
	f.Add("first")
	f.Add("second")

	assert.True(t, f.HasNext())
	assert.Equal(t, "first", f.Next())
	assert.Equal(t, "second", f.Next())
	assert.False(t, f.HasNext())
}

func TestFrontierEmpty(t *testing.T) {
	f := NewFrontier()
	assert.False(t, f.HasNext())
	assert.Zero(t, f.Seen())
	assert.Empty(t, f.All())
}
