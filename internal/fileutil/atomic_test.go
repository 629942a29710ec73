package fileutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireOnlyFile(t *testing.T, dir, name string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, name, entries[0].Name())
}

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "report.txt")

	require.NoError(t, WriteFileAtomic(path, []byte("hello"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	requireOnlyFile(t, dir, "report.txt")
}

func TestWriteFileAtomicOverwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "report.txt")

	require.NoError(t, WriteFileAtomic(path, []byte("first"), 0o644))
	require.NoError(t, WriteFileAtomic(path, []byte("second"), 0o600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
	requireOnlyFile(t, dir, "report.txt")
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "report.txt")
	assert.Error(t, WriteFileAtomic(path, []byte("x"), 0o644))
}

func TestWriteJSONAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")

	in := map[string]int{"matches": 10, "rounds": 40}
	require.NoError(t, WriteJSONAtomic(path, in, 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var out map[string]int
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
	requireOnlyFile(t, dir, "report.json")

	assert.Error(t, WriteJSONAtomic(path, make(chan int), 0o644))
}
