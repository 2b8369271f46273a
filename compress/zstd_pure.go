//go:build !vbz_cgo_zstd

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdDecoderPool pools zstd decoders for reuse to eliminate allocation overhead.
// The klauspost/compress/zstd library is explicitly designed for decoder reuse:
// "The decoder has been designed to operate without allocations after a warmup.
// This means that you should store the decoder for best performance."
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1), // Single-threaded for predictable performance
			zstd.WithDecoderLowmem(false),  // Use more memory for better performance
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}
		return decoder
	},
}

// zstdEncoderPools pools zstd encoders per effective encoder level.
// Native zstd levels collapse onto the library's four speed levels, so one
// pool per speed level covers the full level range.
var zstdEncoderPools [zstd.SpeedBestCompression + 1]sync.Pool

func init() {
	for lvl := zstd.SpeedFastest; lvl <= zstd.SpeedBestCompression; lvl++ {
		lvl := lvl
		zstdEncoderPools[lvl] = sync.Pool{
			New: func() any {
				encoder, err := zstd.NewWriter(nil,
					zstd.WithEncoderLevel(lvl),
					zstd.WithEncoderCRC(false), // Disable CRC for performance
					zstd.WithZeroFrames(true),  // Empty input still yields a valid frame
				)
				if err != nil {
					// This should never happen with valid options
					panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
				}
				return encoder
			},
		}
	}
}

// encoderLevel maps the codec's native zstd level onto the library's
// encoder speed levels, clamping out-of-range values.
func (c ZstdCompressor) encoderLevel() zstd.EncoderLevel {
	return zstd.EncoderLevelFromZstd(c.level)
}

// Compress compresses the input data using Zstandard compression.
// Uses a pooled encoder for better performance (eliminates allocation overhead).
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	lvl := c.encoderLevel()
	encoder := zstdEncoderPools[lvl].Get().(*zstd.Encoder)
	defer zstdEncoderPools[lvl].Put(encoder)

	// EncodeAll is stateless - safe to use with pooled encoder
	compressed := encoder.EncodeAll(data, nil)

	return compressed, nil
}

// Decompress decompresses Zstd-compressed data.
// Uses a pooled decoder for better performance (eliminates allocation overhead).
//
// This method validates the input data format and returns an error if the
// data is corrupted or was not compressed with Zstd.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	// DecodeAll is stateless - safe to use with pooled decoder
	// Even if this call fails, the decoder can be reused for next call
	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}

// MaxCompressedSize returns an upper bound on the compressed size of an
// input of inputSize bytes at this codec's level.
func (c ZstdCompressor) MaxCompressedSize(inputSize int) int {
	lvl := c.encoderLevel()
	encoder := zstdEncoderPools[lvl].Get().(*zstd.Encoder)
	defer zstdEncoderPools[lvl].Put(encoder)

	return encoder.MaxEncodedSize(inputSize)
}
