package pak

import (
	"time"

	"github.com/joshuapare/pakkit/internal/extract"
	"github.com/joshuapare/pakkit/internal/format"
	"github.com/joshuapare/pakkit/internal/reader"
	"github.com/joshuapare/pakkit/pkg/types"
)

// Archive is a parsed, immutable Pak container.
type Archive = reader.Archive

// Record is one entry of the record table (re-exported for convenience).
type Record = types.Record

// Options (re-exported for convenience).
type (
	OpenOptions    = types.OpenOptions
	ExtractOptions = types.ExtractOptions
	ListOptions    = types.ListOptions
)

// Open reads and parses the archive at path. If opts is nil, defaults are used.
func Open(path string, opts *OpenOptions) (*Archive, error) {
	return reader.Open(path, derefOpen(opts))
}

// Parse parses archive bytes already in memory.
func Parse(raw []byte, opts *OpenOptions) (*Archive, error) {
	return reader.Parse(raw, derefOpen(opts))
}

// ExtractAll writes every record of a below outDir.
func ExtractAll(a *Archive, outDir string, opts *ExtractOptions) error {
	return extract.All(a, outDir, derefExtract(opts))
}

// Extract writes the single record r of a below outDir.
func Extract(a *Archive, r Record, outDir string, opts *ExtractOptions) error {
	return extract.One(a, r, outDir, derefExtract(opts))
}

// Unpack opens the archive at path and extracts it into outDir.
func Unpack(path, outDir string, openOpts *OpenOptions, extractOpts *ExtractOptions) error {
	a, err := Open(path, openOpts)
	if err != nil {
		return err
	}
	return ExtractAll(a, outDir, extractOpts)
}

// Stats opens the archive at path and summarizes it.
func Stats(path string, opts *OpenOptions) (types.ArchiveInfo, error) {
	a, err := Open(path, opts)
	if err != nil {
		return types.ArchiveInfo{}, err
	}
	return a.Info(), nil
}

// FiletimeToTime converts a record's RawTime to UTC at microsecond precision.
func FiletimeToTime(ft uint64) time.Time { return format.FiletimeToTime(ft) }

// TimeToFiletime converts t to FILETIME ticks, dropping sub-microsecond precision.
func TimeToFiletime(t time.Time) uint64 { return format.TimeToFiletime(t) }

// FiletimeToUnixMicros converts FILETIME ticks to Unix microseconds, truncating.
func FiletimeToUnixMicros(ft uint64) int64 { return format.FiletimeToUnixMicros(ft) }

// UnixMicrosToFiletime is the inverse of FiletimeToUnixMicros.
func UnixMicrosToFiletime(us int64) uint64 { return format.UnixMicrosToFiletime(us) }

func derefOpen(opts *OpenOptions) OpenOptions {
	if opts == nil {
		return OpenOptions{}
	}
	return *opts
}

func derefExtract(opts *ExtractOptions) ExtractOptions {
	if opts == nil {
		return ExtractOptions{}
	}
	return *opts
}
