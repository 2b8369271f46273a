//go:build vbz_cgo_zstd

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"
)

// Compress compresses the input data using the native libzstd backend.
// The codec's level is passed straight through; libzstd clamps it to its
// supported range.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, c.level), nil
}

// Decompress decompresses Zstd-compressed data using the native libzstd
// backend.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decompressed, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}

// MaxCompressedSize returns an upper bound on the compressed size of an
// input of inputSize bytes, following the ZSTD_compressBound formula.
func (c ZstdCompressor) MaxCompressedSize(inputSize int) int {
	const margin = 128 * 1024
	bound := inputSize + (inputSize >> 8)
	if inputSize < margin {
		bound += (margin - inputSize) >> 11
	}

	return bound
}
