package locator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ragicss/sizebudget/internal/adapters/outbound/locator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate_Found(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ragi.css"), []byte("a{color:red}"), 0644))

	got, err := locator.New().Locate(dir, "ragi.css")
	require.NoError(t, err)
	assert.True(t, got.Found)
	assert.Equal(t, "ragi.css", got.Name)
	assert.Equal(t, filepath.Join(dir, "ragi.css"), got.Path)
	assert.Equal(t, []byte("a{color:red}"), got.Content)
}

func TestLocate_EmptyFileIsFound(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.css"), nil, 0644))

	got, err := locator.New().Locate(dir, "empty.css")
	require.NoError(t, err)
	assert.True(t, got.Found)
	assert.Empty(t, got.Content)
}

func TestLocate_MissingIsNotAnError(t *testing.T) {
	dir := t.TempDir()

	got, err := locator.New().Locate(dir, "ragi.min.css")
	require.NoError(t, err)
	assert.False(t, got.Found)
	assert.Nil(t, got.Content)
	assert.Equal(t, filepath.Join(dir, "ragi.min.css"), got.Path)
}

func TestLocate_MissingDirectoryIsNotAnError(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")

	got, err := locator.New().Locate(dir, "ragi.css")
	require.NoError(t, err)
	assert.False(t, got.Found)
}

func TestLocate_UnreadableIsAnError(t *testing.T) {
	dir := t.TempDir()
	// A directory where a file is expected exists but cannot be read as content.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "ragi.css"), 0755))

	_, err := locator.New().Locate(dir, "ragi.css")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading")
}
