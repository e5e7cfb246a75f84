// Package testutil builds Pak archives in memory for tests and writes them to
// temporary files. It deliberately does not import internal/format so that
// the format package's own tests can use it.
package testutil

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

const (
	pakMagic  = 0xBAC04AC0
	flagEnd   = 0x80
	ftOffset  = 116444736000000000
	TestKey   = 0xF7
	DefaultFT = ftOffset + 13_000_000_000_000_000 // 2011-03-13T07:06:40Z
)

// File is one entry to place in a built archive.
type File struct {
	Name string
	Data []byte
	Time uint64 // FILETIME ticks; 0 means DefaultFT

	// RawName overrides Name with arbitrary bytes (for encoding tests).
	RawName []byte
	// Size overrides the encoded size when non-nil (for corruption tests).
	Size *uint32
}

// Options controls the archive header.
type Options struct {
	Version uint32
	Key     byte // XOR applied to the whole archive when non-zero
}

// BuildPak encodes files into a Pak archive.
func BuildPak(files []File, opts Options) []byte {
	out := binary.LittleEndian.AppendUint32(nil, pakMagic)
	out = binary.LittleEndian.AppendUint32(out, opts.Version)
	for _, f := range files {
		name := f.RawName
		if name == nil {
			name = []byte(f.Name)
		}
		size := uint32(len(f.Data))
		if f.Size != nil {
			size = *f.Size
		}
		ft := f.Time
		if ft == 0 {
			ft = DefaultFT
		}
		out = append(out, 0x00, byte(len(name)))
		out = append(out, name...)
		out = binary.LittleEndian.AppendUint32(out, size)
		out = binary.LittleEndian.AppendUint64(out, ft)
	}
	out = append(out, flagEnd)
	for _, f := range files {
		out = append(out, f.Data...)
	}
	if opts.Key != 0 {
		for i := range out {
			out[i] ^= opts.Key
		}
	}
	return out
}

// WritePak builds an archive and writes it to a file in t.TempDir().
func WritePak(t *testing.T, files []File, opts Options) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.pak")
	if err := os.WriteFile(path, BuildPak(files, opts), 0o644); err != nil {
		t.Fatalf("write pak: %v", err)
	}
	return path
}

// SampleFiles returns a small nested tree using both separator styles.
func SampleFiles() []File {
	return []File{
		{Name: "properties/resources.xml", Data: []byte("<ResourceManifest/>")},
		{Name: `images\ball.png`, Data: []byte{0x89, 'P', 'N', 'G', 0, 1, 2, 3}, Time: DefaultFT + 12_345_678},
		{Name: "levels/empty.dat", Data: nil},
		{Name: "readme.txt", Data: []byte("hello pak\n"), Time: ftOffset},
	}
}

// Uint32 returns a pointer to v.
func Uint32(v uint32) *uint32 { return &v }
