package types

import (
	"errors"
	"time"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat    ErrKind = iota // magic matches neither the plain nor the XOR form
	ErrKindTruncated                // a read needed more bytes than the buffer holds
	ErrKindEncoding                 // a record name is not valid text
	ErrKindBounds                   // a record's data range lies outside the payload
	ErrKindPath                     // a record name is absolute or escapes the output dir
	ErrKindIO                       // filesystem failure
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindFormat:
		return "unrecognized format"
	case ErrKindTruncated:
		return "truncated input"
	case ErrKindEncoding:
		return "invalid encoding"
	case ErrKindBounds:
		return "out of bounds"
	case ErrKindPath:
		return "unsafe path"
	case ErrKindIO:
		return "io error"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so the sentinels below work with
// errors.Is regardless of message or cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// IsKind reports whether err, or any error it wraps or joins, is an *Error of kind k.
func IsKind(err error, k ErrKind) bool {
	return errors.Is(err, &Error{Kind: k})
}

// Sentinels commonly returned by implementations.
var (
	// ErrUnrecognizedFormat indicates the input is not a Pak container.
	ErrUnrecognizedFormat = &Error{Kind: ErrKindFormat, Msg: "not a pak archive (bad magic)"}
	// ErrTruncatedInput indicates the archive ended before a structure was complete.
	ErrTruncatedInput = &Error{Kind: ErrKindTruncated, Msg: "pak archive truncated"}
	// ErrInvalidEncoding indicates a record name failed text decoding.
	ErrInvalidEncoding = &Error{Kind: ErrKindEncoding, Msg: "invalid record name encoding"}
	// ErrOutOfBounds indicates a record's data lies past the end of the payload.
	ErrOutOfBounds = &Error{Kind: ErrKindBounds, Msg: "record data out of bounds"}
	// ErrUnsafePath indicates a record name would be written outside the output directory.
	ErrUnsafePath = &Error{Kind: ErrKindPath, Msg: "unsafe record path"}
)

// -----------------------------------------------------------------------------
// Records & Metadata
// -----------------------------------------------------------------------------

// Record is one entry of the file-record table.
//
// Offset is not stored in the container: it is the sum of the sizes of every
// record before this one, relative to the start of the data region.
type Record struct {
	Name    string // relative path as encoded; '/' or '\' separated
	Offset  uint64 // start within the data region
	Size    uint32 // data length in bytes
	RawTime uint64 // FILETIME ticks (100ns since 1601-01-01)
}

// ArchiveInfo summarizes a parsed archive.
type ArchiveInfo struct {
	Version     uint32 `json:"version"`
	XorKey      uint8  `json:"xor_key"`
	Records     int    `json:"records"`
	DataOffset  int    `json:"data_offset"`
	PayloadSize int    `json:"payload_size"`
	DataSize    uint64 `json:"data_size"` // sum of all record sizes
}

// Entry is a listing row for one record.
type Entry struct {
	Name     string    `json:"name"`
	Offset   uint64    `json:"offset"`
	Size     uint32    `json:"size"`
	ModTime  time.Time `json:"mod_time"`
	InBounds bool      `json:"in_bounds"`
	Digest   string    `json:"digest,omitempty"`
}
