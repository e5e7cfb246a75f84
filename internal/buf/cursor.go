package buf

import (
	"errors"
	"fmt"
)

// ErrShortRead is returned when a Cursor read needs more bytes than remain.
var ErrShortRead = errors.New("buf: short read")

// Cursor is a position-tracked little-endian reader over a fixed buffer.
// It never copies: Bytes and LenPrefixed return sub-slices of the buffer.
type Cursor struct {
	b   []byte
	pos int
}

// NewCursor returns a Cursor positioned at the start of b.
func NewCursor(b []byte) *Cursor {
	return &Cursor{b: b}
}

// Seek sets the absolute read position. The position is not validated here;
// the next read fails with ErrShortRead if it lies outside the buffer.
func (c *Cursor) Seek(pos int) { c.pos = pos }

// Pos returns the current read position.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the length of the underlying buffer.
func (c *Cursor) Len() int { return len(c.b) }

// Remaining returns the number of unread bytes, or 0 if the position is
// outside the buffer.
func (c *Cursor) Remaining() int {
	if c.pos < 0 || c.pos > len(c.b) {
		return 0
	}
	return len(c.b) - c.pos
}

// take returns the next n bytes and advances. The position is left unchanged
// on failure.
func (c *Cursor) take(n int) ([]byte, error) {
	s, ok := Slice(c.b, c.pos, n)
	if !ok {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrShortRead, n, c.pos, c.Remaining())
	}
	c.pos += n
	return s, nil
}

// U8 reads one byte.
func (c *Cursor) U8() (uint8, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U16 reads a little-endian uint16.
func (c *Cursor) U16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return U16LE(b), nil
}

// U32 reads a little-endian uint32.
func (c *Cursor) U32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return U32LE(b), nil
}

// U64 reads a little-endian uint64.
func (c *Cursor) U64() (uint64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return U64LE(b), nil
}

// Bytes reads exactly n bytes.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	return c.take(n)
}

// LenPrefixed reads a one-byte length L followed by L bytes. On a short body
// the position is left just after the length byte.
func (c *Cursor) LenPrefixed() ([]byte, error) {
	n, err := c.U8()
	if err != nil {
		return nil, err
	}
	return c.take(int(n))
}
