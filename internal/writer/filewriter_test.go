package writer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFileWriter_WritesDataAndModTime(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "c.txt")
	mtime := time.Date(2009, time.May, 5, 12, 0, 0, 123_456_000, time.UTC)

	w := &FileWriter{Path: path, ModTime: mtime, Sync: true}
	require.NoError(t, w.Write([]byte("payload")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "payload", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.True(t, info.ModTime().Equal(mtime), "mtime %v want %v", info.ModTime(), mtime)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file left behind")
}

func TestFileWriter_ReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.bin")
	require.NoError(t, os.WriteFile(path, []byte("a much longer previous content"), 0o600))

	w := &FileWriter{Path: path}
	require.NoError(t, w.Write([]byte("new")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "new", string(got))
}

func TestFileWriter_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, (&FileWriter{Path: path}).Write(nil))
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Zero(t, info.Size())
}

func TestFileWriter_DirectoryInTheWay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "taken")
	require.NoError(t, os.Mkdir(path, 0o755))

	err := (&FileWriter{Path: path}).Write([]byte("x"))
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file left behind")
}

func TestFileWriter_ModTimeOutOfRange(t *testing.T) {
	for _, mtime := range []time.Time{
		time.Date(1601, time.January, 1, 0, 0, 0, 1000, time.UTC),
		time.Date(11107, time.August, 17, 0, 0, 0, 0, time.UTC),
	} {
		dir := t.TempDir()
		path := filepath.Join(dir, "f.bin")
		w := &FileWriter{Path: path, ModTime: mtime}
		err := w.Write([]byte("data"))
		require.ErrorIs(t, err, ErrModTimeRange, "mtime %v", mtime)
		require.NoFileExists(t, path)

		entries, readErr := os.ReadDir(dir)
		require.NoError(t, readErr)
		require.Empty(t, entries, "temp file left behind")
	}
}

func TestCheckModTime(t *testing.T) {
	require.NoError(t, CheckModTime(time.Date(1700, time.January, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, CheckModTime(time.Date(2200, time.January, 1, 0, 0, 0, 0, time.UTC)))
	require.ErrorIs(t, CheckModTime(time.Date(1677, time.January, 1, 0, 0, 0, 0, time.UTC)), ErrModTimeRange)
	require.ErrorIs(t, CheckModTime(time.Date(2263, time.January, 1, 0, 0, 0, 0, time.UTC)), ErrModTimeRange)
}
