// Package writer writes extracted record data to the filesystem.
package writer

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"time"
)

// FileWriter writes one file atomically via temp file + rename, so a path is
// either absent or holds the complete data with its final modification time.
type FileWriter struct {
	Path    string
	ModTime time.Time // applied before rename; zero leaves it unchanged
	Sync    bool      // flush data to stable storage before rename
}

// ErrModTimeRange is returned when ModTime cannot be stored by os.Chtimes,
// which keeps times as int64 nanoseconds since 1970.
var ErrModTimeRange = errors.New("mod time out of range")

var (
	minModTime = time.Unix(0, math.MinInt64)
	maxModTime = time.Unix(0, math.MaxInt64)
)

// CheckModTime reports ErrModTimeRange for times outside years 1678 to 2262.
func CheckModTime(t time.Time) error {
	if t.Before(minModTime) || t.After(maxModTime) {
		return fmt.Errorf("%w: %s", ErrModTimeRange, t.Format(time.RFC3339))
	}
	return nil
}

// Write stores buf at w.Path, replacing any existing regular file. Missing
// parent directories are created.
func (w *FileWriter) Write(buf []byte) error {
	if !w.ModTime.IsZero() {
		if err := CheckModTime(w.ModTime); err != nil {
			return err
		}
	}

	dir := filepath.Dir(w.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create parent dir: %w", err)
	}

	// Create temp file in same directory to ensure atomic rename
	tmpFile, err := os.CreateTemp(dir, ".pakkit-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(buf); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}

	if w.Sync {
		if syncErr := datasync(tmpFile); syncErr != nil {
			return fmt.Errorf("sync temp file: %w", syncErr)
		}
	}

	if chmodErr := tmpFile.Chmod(0o644); chmodErr != nil {
		return fmt.Errorf("chmod temp file: %w", chmodErr)
	}

	// Close before rename
	if closeErr := tmpFile.Close(); closeErr != nil {
		tmpFile = nil
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil // Don't clean up in defer

	if !w.ModTime.IsZero() {
		if err := os.Chtimes(tmpPath, time.Time{}, w.ModTime); err != nil {
			_ = os.Remove(tmpPath)
			return fmt.Errorf("set mod time: %w", err)
		}
	}

	if err := removeExisting(w.Path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if renameErr := os.Rename(tmpPath, w.Path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}
	return nil
}

// removeExisting deletes a previous file at path. A directory in the way is
// an error; extraction never removes directories.
func removeExisting(path string) error {
	info, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat existing file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("remove existing file: %s is a directory", path)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove existing file: %w", err)
	}
	return nil
}
