package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// CheckRange validates that n bytes starting at offset fit in a buffer of
// bufLen bytes. Offsets are uint64 because record offsets are accumulated
// from u32 sizes and may exceed int on 32-bit platforms.
//
//	end, err := buf.CheckRange(len(payload), base+rec.Offset, uint64(rec.Size))
//	if err != nil {
//	    return fmt.Errorf("record %q: %w", rec.Name, err)
//	}
func CheckRange(bufLen int, offset, n uint64) (int, error) {
	if offset > math.MaxInt || n > math.MaxInt {
		return 0, fmt.Errorf("overflow: offset=%d size=%d", offset, n)
	}
	end, ok := AddOverflowSafe(int(offset), int(n))
	if !ok {
		return 0, fmt.Errorf("overflow: offset=%d + size=%d", offset, n)
	}
	if end > bufLen {
		return 0, fmt.Errorf("bounds: end=%d > len=%d", end, bufLen)
	}
	return end, nil
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}
