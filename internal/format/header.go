package format

import (
	"fmt"

	"github.com/joshuapare/pakkit/internal/buf"
)

// Header is the fixed prefix of a Pak container.
type Header struct {
	Magic   uint32
	Version uint32
	Key     byte // obfuscation key detected on the raw bytes; 0 when plain
}

// UnexpectedVersion reports whether the version differs from SupportedVersion.
// Such archives are still parsed.
func (h Header) UnexpectedVersion() bool { return h.Version != SupportedVersion }

// DetectKey inspects the first four raw bytes and returns the XOR key that
// turns them into Magic: 0 for a plain archive, XorKey for an obfuscated one.
func DetectKey(raw []byte) (byte, error) {
	if len(raw) < 4 {
		return 0, fmt.Errorf("pak magic: %d bytes: %w", len(raw), ErrSignatureMismatch)
	}
	magic := buf.U32LE(raw)
	switch {
	case magic == Magic:
		return 0, nil
	case magic^XorMask == Magic:
		return XorKey, nil
	default:
		return 0, fmt.Errorf("pak magic 0x%08X: %w", magic, ErrSignatureMismatch)
	}
}

// ParseHeader reads magic and version from a de-obfuscated payload. The
// cursor is left on the first record entry.
func ParseHeader(c *buf.Cursor) (Header, error) {
	magic, err := c.U32()
	if err != nil {
		return Header{}, fmt.Errorf("pak header: %w", err)
	}
	if magic != Magic {
		return Header{}, fmt.Errorf("pak header: magic 0x%08X: %w", magic, ErrSignatureMismatch)
	}
	version, err := c.U32()
	if err != nil {
		return Header{}, fmt.Errorf("pak header version: %w", err)
	}
	return Header{Magic: magic, Version: version}, nil
}
