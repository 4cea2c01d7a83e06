package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	t.Parallel()

	kv := NewMemory()

	_, ok := kv.Get("missing")
	assert.False(t, ok)

	require.True(t, kv.Set("k", "v"))
	got, ok := kv.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)

	kv.Delete("k")
	_, ok = kv.Get("k")
	assert.False(t, ok)
}

func TestFileRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")
	kv := NewFile(path)

	_, ok := kv.Get("missing")
	assert.False(t, ok)

	require.True(t, kv.Set("a", `{"x":1}`))
	require.True(t, kv.Set("b", "plain"))

	// A fresh instance over the same file sees the state.
	reopened := NewFile(path)
	got, ok := reopened.Get("a")
	require.True(t, ok)
	assert.Equal(t, `{"x":1}`, got)

	reopened.Delete("a")
	_, ok = NewFile(path).Get("a")
	assert.False(t, ok)
	_, ok = NewFile(path).Get("b")
	assert.True(t, ok)
}

func TestFileMalformedBackingFileDegradesToEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	kv := NewFile(path)
	_, ok := kv.Get("anything")
	assert.False(t, ok)

	// A write replaces the broken file with usable state.
	require.True(t, kv.Set("k", "v"))
	got, ok := kv.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestFileUnwritableLocationReportsFailure(t *testing.T) {
	t.Parallel()

	// Point at a path whose parent is a file, so saving cannot succeed.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	kv := NewFile(filepath.Join(blocker, "state.json"))
	assert.False(t, kv.Set("k", "v"))

	// Reads stay safe.
	_, ok := kv.Get("k")
	assert.False(t, ok)
}

func TestFileCreatesParentDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "deep", "state.json")
	kv := NewFile(path)

	require.True(t, kv.Set("k", "v"))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
