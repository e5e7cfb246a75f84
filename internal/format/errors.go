package format

import (
	"errors"

	"github.com/joshuapare/pakkit/internal/buf"
)

var (
	// ErrSignatureMismatch indicates the magic matched neither the plain nor the XOR form.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = buf.ErrShortRead
	// ErrInvalidEncoding indicates a record name could not be decoded as text.
	ErrInvalidEncoding = errors.New("format: invalid name encoding")
	// ErrOutOfBounds indicates a record's data range lies outside the payload.
	ErrOutOfBounds = errors.New("format: record out of bounds")
)
