package reader

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/joshuapare/pakkit/pkg/types"
)

// defaultMaxDecompressed bounds zstd output when OpenOptions leaves it unset.
const defaultMaxDecompressed = 1 << 30

// zstdMagic is the little-endian frame magic 0xFD2FB528.
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

func isZstd(b []byte) bool {
	return bytes.HasPrefix(b, zstdMagic)
}

// decompress inflates a zstd-wrapped archive in one shot.
func decompress(b []byte, maxSize uint64) ([]byte, error) {
	if maxSize == 0 {
		maxSize = defaultMaxDecompressed
	}
	dec, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(maxSize),
	)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindFormat, Msg: "zstd decoder", Err: err}
	}
	defer dec.Close()

	out, err := dec.DecodeAll(b, nil)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindFormat, Msg: "zstd-wrapped archive", Err: fmt.Errorf("decompress %d bytes: %w", len(b), err)}
	}
	return out, nil
}
