package format

// Xor returns a copy of b with every byte XORed with key. It is an
// involution: Xor(Xor(b, k), k) equals b. A zero key still copies.
func Xor(b []byte, key byte) []byte {
	out := make([]byte, len(b))
	if key == 0 {
		copy(out, b)
		return out
	}
	for i, v := range b {
		out[i] = v ^ key
	}
	return out
}
