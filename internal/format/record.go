package format

import (
	"fmt"

	"github.com/joshuapare/pakkit/internal/buf"
	"github.com/joshuapare/pakkit/pkg/types"
)

// minRecordSize is the smallest possible non-terminator entry (empty name).
const minRecordSize = RecordFlagsSize + RecordNameLenSize + RecordSizeSize + RecordTimeSize

// ParseRecords reads record entries until the terminator flag. Each record's
// Offset is the running sum of the sizes before it. On return the cursor sits
// on the first byte of the data region.
func ParseRecords(c *buf.Cursor, enc types.NameEncoding) ([]types.Record, error) {
	// Capacity guess only; the terminator decides the real count.
	records := make([]types.Record, 0, min(c.Remaining()/minRecordSize, 1024))
	var running uint64
	for {
		entry := c.Pos()
		flags, err := c.U8()
		if err != nil {
			return nil, fmt.Errorf("record %d flags at 0x%x: %w", len(records), entry, err)
		}
		if flags&FlagEnd != 0 {
			return records, nil
		}
		name, err := ReadName(c, enc)
		if err != nil {
			return nil, fmt.Errorf("record %d name at 0x%x: %w", len(records), entry, err)
		}
		size, err := c.U32()
		if err != nil {
			return nil, fmt.Errorf("record %d (%s) size: %w", len(records), name, err)
		}
		ft, err := c.U64()
		if err != nil {
			return nil, fmt.Errorf("record %d (%s) time: %w", len(records), name, err)
		}
		records = append(records, types.Record{
			Name:    name,
			Offset:  running,
			Size:    size,
			RawTime: ft,
		})
		running += uint64(size)
	}
}
