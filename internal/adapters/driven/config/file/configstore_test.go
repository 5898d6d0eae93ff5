package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyCommentPrefix, "#"))
	require.NoError(t, store.Set(KeyDetailedSegments, true))

	assert.Equal(t, "#", store.GetString(KeyCommentPrefix))
	assert.True(t, store.GetBool(KeyDetailedSegments))

	_, ok := store.Get("no.such.key")
	assert.False(t, ok)
	assert.Empty(t, store.GetString("no.such.key"))
	assert.False(t, store.GetBool("no.such.key"))
}

func TestConfigStore_Persistence(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyExportFormat, "sqlite"))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", reopened.GetString(KeyExportFormat))
}

func TestConfigStore_FlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[parser]\nsection_marker = \"^=== (.+) ===$\"\ncomment_prefix = \";\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "^=== (.+) ===$", store.GetString(KeySectionMarker))
	assert.Equal(t, ";", store.GetString(KeyCommentPrefix))
}

func TestConfigStore_MissingFileStartsEmpty(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, store.GetString(KeySectionMarker))
	assert.Equal(t, "config.toml", filepath.Base(store.Path()))
}

func TestConfigStore_RoundTripsDottedKeys(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyExportDirectory, "/tmp/out"))
	require.NoError(t, store.Set(KeyExportFormat, "csv"))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out", reopened.GetString(KeyExportDirectory))
	assert.Equal(t, "csv", reopened.GetString(KeyExportFormat))
}
