// Package reader turns raw container bytes into an immutable Archive. The
// exported entry points are used by the public pak package and the CLI
// without exposing the format decoders directly.
package reader

import (
	"fmt"
	"slices"

	"github.com/joshuapare/pakkit/internal/buf"
	"github.com/joshuapare/pakkit/internal/format"
	"github.com/joshuapare/pakkit/internal/logger"
	"github.com/joshuapare/pakkit/internal/mmfile"
	"github.com/joshuapare/pakkit/pkg/types"
)

// Archive is a parsed Pak container: the de-obfuscated payload, the offset
// where the data region starts and the record table. It is never modified
// after Parse returns and is safe for concurrent use.
type Archive struct {
	head    format.Header
	payload []byte
	dataOff int
	records []types.Record
}

// Open maps the archive at path and parses it. A zstd-wrapped archive is
// decompressed first. The mapping is released before Open returns.
func Open(path string, opts types.OpenOptions) (*Archive, error) {
	data, unmap, err := mmfile.Map(path)
	if err != nil {
		return nil, wrapIOErr(fmt.Errorf("open archive: %w", err))
	}
	defer func() {
		if unmap != nil {
			_ = unmap()
		}
	}()

	if isZstd(data) {
		logger.Debug("zstd-wrapped archive", "path", path, "compressed", len(data))
		data, err = decompress(data, opts.MaxDecompressedSize)
		if err != nil {
			return nil, err
		}
	}
	return Parse(data, opts)
}

// Parse decodes raw archive bytes. raw is not retained or modified; the
// archive owns a de-obfuscated copy. On error no partial archive is returned.
func Parse(raw []byte, opts types.OpenOptions) (*Archive, error) {
	key, err := format.DetectKey(raw)
	if err != nil {
		return nil, wrapFormatErr(err)
	}
	logger.Info("Pak format found", "xor_key", fmt.Sprintf("0x%02X", key))

	payload := format.Xor(raw, key)
	c := buf.NewCursor(payload)

	head, err := format.ParseHeader(c)
	if err != nil {
		return nil, wrapFormatErr(err)
	}
	head.Key = key

	logger.Info("Pak version", "version", head.Version)
	if head.UnexpectedVersion() {
		logger.Warn("Pak version unexpected, errors may occur", "version", head.Version)
	}

	records, err := format.ParseRecords(c, opts.Names)
	if err != nil {
		return nil, wrapFormatErr(err)
	}
	logger.Info("Parsed file table", "records", len(records), "data_offset", c.Pos())

	return &Archive{
		head:    head,
		payload: payload,
		dataOff: c.Pos(),
		records: records,
	}, nil
}

// Header returns the decoded header, including the detected XOR key.
func (a *Archive) Header() format.Header { return a.head }

// UnexpectedVersion reports whether the archive's version is not the known one.
func (a *Archive) UnexpectedVersion() bool { return a.head.UnexpectedVersion() }

// Len returns the number of records.
func (a *Archive) Len() int { return len(a.records) }

// Record returns record i in table order.
func (a *Archive) Record(i int) types.Record { return a.records[i] }

// Records returns a copy of the record table in table order.
func (a *Archive) Records() []types.Record { return slices.Clone(a.records) }

// DataOffset returns the payload offset of the first byte after the record table.
func (a *Archive) DataOffset() int { return a.dataOff }

// Payload returns the de-obfuscated archive bytes. The caller must not modify it.
func (a *Archive) Payload() []byte { return a.payload }

// Data returns the bytes of r as a sub-slice of the payload. It fails with
// kind ErrKindBounds when the record's range lies past the end of the payload.
func (a *Archive) Data(r types.Record) ([]byte, error) {
	start := uint64(a.dataOff) + r.Offset
	end, err := buf.CheckRange(len(a.payload), start, uint64(r.Size))
	if err != nil {
		return nil, wrapFormatErr(fmt.Errorf("record %q at 0x%x+%d: %w: %w", r.Name, start, r.Size, format.ErrOutOfBounds, err))
	}
	return a.payload[int(start):end], nil
}

// InBounds reports whether Data(r) would succeed.
func (a *Archive) InBounds(r types.Record) bool {
	_, err := buf.CheckRange(len(a.payload), uint64(a.dataOff)+r.Offset, uint64(r.Size))
	return err == nil
}

// Info summarizes the archive.
func (a *Archive) Info() types.ArchiveInfo {
	var total uint64
	for _, r := range a.records {
		total += uint64(r.Size)
	}
	return types.ArchiveInfo{
		Version:     a.head.Version,
		XorKey:      a.head.Key,
		Records:     len(a.records),
		DataOffset:  a.dataOff,
		PayloadSize: len(a.payload),
		DataSize:    total,
	}
}
