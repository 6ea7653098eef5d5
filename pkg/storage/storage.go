package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Storage writes build artifacts. Files are replaced atomically, so a reader
// sees either the previous content or the new one, never a partial file.
type Storage struct {
	// DirMode is used for directories SaveFile creates; 0 means 0755.
	DirMode os.FileMode
	// FileMode is applied to written files; 0 means 0644.
	FileMode os.FileMode
}

// FileStats describes a written artifact without reading it.
type FileStats struct {
	SizeBytes int64
	ModTime   time.Time
}

func (s *Storage) dirMode() os.FileMode {
	if s.DirMode == 0 {
		return 0o755
	}
	return s.DirMode
}

func (s *Storage) fileMode() os.FileMode {
	if s.FileMode == 0 {
		return 0o644
	}
	return s.FileMode
}

// SaveFile writes content to filePath through a temp file in the same directory.
func (s *Storage) SaveFile(ctx context.Context, filePath string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, s.dirMode()); err != nil {
		return fmt.Errorf("error creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	if _, err := tmp.Write(content); err != nil {
		cleanup()
		return fmt.Errorf("error saving file: %w", err)
	}
	if err := tmp.Chmod(s.fileMode()); err != nil {
		cleanup()
		return fmt.Errorf("error saving file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("error saving file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("error saving file: %w", err)
	}

	// Last chance to abort before the old file is replaced.
	if err := ctx.Err(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, filePath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("error saving file: %w", err)
	}
	_ = syncDir(dir)
	return nil
}

// syncDir fsyncs a directory so the rename survives a crash. Best effort.
func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}

// ReadFile returns the content of an artifact written by SaveFile.
func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filePath, err)
	}
	return data, nil
}

// HasFile reports whether filePath exists as a regular file.
func (s *Storage) HasFile(filePath string) bool {
	info, err := os.Stat(filePath)
	return err == nil && info.Mode().IsRegular()
}

// GetFileStats returns the size and modification time of an artifact.
func (s *Storage) GetFileStats(filePath string) (*FileStats, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error getting file stats for %s: %w", filePath, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", filePath)
	}
	return &FileStats{SizeBytes: info.Size(), ModTime: info.ModTime()}, nil
}
