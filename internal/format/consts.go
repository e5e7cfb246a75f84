// Package format houses the low-level decoders for the PopCap Pak container.
// It knows the byte layout and nothing else: no filesystem access and no
// logging, so higher-level packages can orchestrate parsing and extraction.
//
// Layout (after de-obfuscation, little-endian):
//
//	Offset  Size  Description
//	------  ----  --------------------------------------------------------
//	 0x000   4    Magic 0xBAC04AC0
//	 0x004   4    Version (0 in every known archive)
//	 0x008   ...  Record table, repeated until a flags byte has bit 0x80:
//	               1  flags
//	               1  name length L
//	               L  name
//	               4  data size
//	               8  FILETIME
//	  ...    ...  Data region: record data back-to-back in table order
package format

const (
	// Magic identifies a Pak container once any obfuscation is removed.
	Magic uint32 = 0xBAC04AC0

	// XorKey is the single byte every byte of an obfuscated archive is XORed with.
	XorKey byte = 0xF7

	// XorMask is XorKey repeated across a 32-bit word, used to test the raw magic.
	XorMask uint32 = 0xF7F7F7F7

	// FlagEnd marks the terminator entry of the record table.
	FlagEnd byte = 0x80

	// HeaderSize is magic + version.
	HeaderSize = 8

	// SupportedVersion is the only version seen in the wild.
	SupportedVersion uint32 = 0
)

// Fixed-size portion of a record entry, excluding the name bytes.
const (
	RecordFlagsSize   = 1
	RecordNameLenSize = 1
	RecordSizeSize    = 4
	RecordTimeSize    = 8
)
