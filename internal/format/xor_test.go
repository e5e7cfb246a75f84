package format

import (
	"bytes"
	"testing"
)

func TestXorInvolution(t *testing.T) {
	inputs := [][]byte{
		nil,
		{0x00},
		{0xC0, 0x4A, 0xC0, 0xBA, 0, 0, 0, 0, 0x80},
		bytes.Repeat([]byte{0xF7, 0x08, 0xFF}, 100),
	}
	for _, in := range inputs {
		for _, key := range []byte{0, XorKey, 0x01, 0xFF} {
			once := Xor(in, key)
			if len(once) != len(in) {
				t.Fatalf("Xor changed length: %d -> %d", len(in), len(once))
			}
			if twice := Xor(once, key); !bytes.Equal(twice, in) {
				t.Fatalf("Xor(Xor(%x, %#x)) = %x", in, key, twice)
			}
		}
	}
}

func TestXorZeroKeyCopies(t *testing.T) {
	in := []byte{1, 2, 3}
	out := Xor(in, 0)
	out[0] = 9
	if in[0] != 1 {
		t.Fatalf("Xor with key 0 aliased its input")
	}
}

func TestXorKnownBytes(t *testing.T) {
	got := Xor([]byte{0xC0, 0x4A, 0xC0, 0xBA}, XorKey)
	want := []byte{0x37, 0xBD, 0x37, 0x4D}
	if !bytes.Equal(got, want) {
		t.Fatalf("Xor = %x, want %x", got, want)
	}
}
