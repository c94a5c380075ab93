//go:build cgo

package compress

import "github.com/valyala/gozstd"

// zstdLevel balances ratio and speed for snapshot bodies.
const zstdLevel = 3

// Compress compresses the input data using the reference Zstandard
// implementation.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

// Decompress decompresses Zstd-compressed data.
func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
