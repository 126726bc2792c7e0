package crawl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSameDomain(t *testing.T) {
	assert.True(t, IsSameDomain("https://example.com/page", "example.com"))
	assert.False(t, IsSameDomain("https://other.com/page", "example.com"))
	assert.False(t, IsSameDomain("https://sub.example.com/page", "example.com"))
	assert.False(t, IsSameDomain("://bad", "example.com"))
}

func TestIsStaticAsset(t *testing.T) {
	assert.True(t, IsStaticAsset("https://example.com/logo.png"))
	assert.True(t, IsStaticAsset("https://example.com/PHOTO.JPG"))
	assert.True(t, IsStaticAsset("https://example.com/img.png?w=200"))
	assert.True(t, IsStaticAsset("https://example.com/bundle.js"))
	assert.True(t, IsStaticAsset("https://example.com/feed.xml"))
	assert.False(t, IsStaticAsset("https://example.com/docs/intro"))
	assert.False(t, IsStaticAsset("https://example.com/about.html"))
}

func TestNormalizeURL(t *testing.T) {
	assert.Equal(t, "https://example.com/docs", NormalizeURL("https://example.com/docs/"))
	assert.Equal(t, "https://example.com/docs", NormalizeURL("https://example.com/docs#section"))
	assert.Equal(t, "https://example.com/", NormalizeURL("https://example.com/"))
	assert.Equal(t, "https://example.com", NormalizeURL("https://example.com"))
	assert.Equal(t, "https://example.com/p?q=1", NormalizeURL("https://example.com/p?q=1"))
}
