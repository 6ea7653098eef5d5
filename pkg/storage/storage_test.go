package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveFileReplacesContent(t *testing.T) {
	s := &Storage{}
	path := filepath.Join(t.TempDir(), "nested", "en_news_gpt-4.json")

	require.NoError(t, s.SaveFile(context.Background(), path, []byte("[1]")))
	require.NoError(t, s.SaveFile(context.Background(), path, []byte("[2]")))

	data, err := s.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[2]", string(data))

	stats, err := s.GetFileStats(path)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.SizeBytes)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestSaveFileLeavesNoTempFiles(t *testing.T) {
	s := &Storage{}
	dir := t.TempDir()
	require.NoError(t, s.SaveFile(context.Background(), filepath.Join(dir, "a.json"), []byte("{}")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.json", entries[0].Name())
}

func TestSaveFileCanceledKeepsOldContent(t *testing.T) {
	s := &Storage{}
	dir := t.TempDir()
	path := filepath.Join(dir, "a.json")
	require.NoError(t, s.SaveFile(context.Background(), path, []byte("old")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.SaveFile(ctx, path, []byte("new"))
	assert.ErrorIs(t, err, context.Canceled)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestHasFile(t *testing.T) {
	s := &Storage{}
	dir := t.TempDir()
	path := filepath.Join(dir, "index.json")
	require.NoError(t, s.SaveFile(context.Background(), path, []byte("[]")))

	assert.True(t, s.HasFile(path))
	assert.False(t, s.HasFile(filepath.Join(dir, "missing")))
	assert.False(t, s.HasFile(dir), "directories are not artifacts")

	_, err := s.GetFileStats(dir)
	assert.Error(t, err)
	_, err = s.ReadFile(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
