package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePageFlatName(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	path, err := w.WritePage("https://example.com/docs/intro", []byte("# hi"), ".md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "example_com_docs_intro.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# hi", string(data))
}

func TestWritePageRootURL(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	path, err := w.WritePage("https://example.com/", []byte("x"), ".json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "example_com.json"), path)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	path, err := w.WriteFile("page", []byte("content"), ".md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "page.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestWriteMirrorNestedPath(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	path, err := w.WriteMirror("https://site.com/docs/guide/intro/", []byte("x"), ".md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "docs", "guide", "intro.md"), path)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestWriteMirrorRootBecomesIndex(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	path, err := w.WriteMirror("https://site.com/", []byte("x"), ".md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "index.md"), path)
}

func TestNewCreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	_, err := New(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
