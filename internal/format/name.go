package format

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/pakkit/internal/buf"
	"github.com/joshuapare/pakkit/pkg/types"
)

// DecodeName converts raw name bytes to a string using enc.
func DecodeName(b []byte, enc types.NameEncoding) (string, error) {
	if isASCII(b) {
		return string(b), nil
	}
	switch enc {
	case types.NameWindows1252:
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(b)
		if err != nil {
			return "", fmt.Errorf("windows-1252 name: %w: %w", ErrInvalidEncoding, err)
		}
		return string(decoded), nil
	default:
		if !utf8.Valid(b) {
			return "", fmt.Errorf("name %q: %w", b, ErrInvalidEncoding)
		}
		return string(b), nil
	}
}

// ReadName reads a one-byte length prefixed name and decodes it.
func ReadName(c *buf.Cursor, enc types.NameEncoding) (string, error) {
	raw, err := c.LenPrefixed()
	if err != nil {
		return "", err
	}
	return DecodeName(raw, enc)
}

func isASCII(b []byte) bool {
	for _, v := range b {
		if v >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
