package compress

// ZstdCompressor provides Zstandard compression for vbz payloads.
//
// Zstandard is the entropy stage the vbz wire format specifies: the packed
// StreamVByte stream is wrapped in a standard zstd frame, so any conforming
// zstd decoder can unwrap it. The level is carried per codec value and
// handed to the backend, which clamps it to its supported range.
//
// Two backends satisfy this type: the default pure-Go implementation
// (klauspost/compress) and a cgo libzstd wrapper selected by the
// vbz_cgo_zstd build tag.
type ZstdCompressor struct {
	level int
}

var _ Codec = (*ZstdCompressor)(nil)

// DefaultZstdLevel is the level used when no explicit level is requested.
const DefaultZstdLevel = 3

// NewZstdCompressor creates a new Zstd codec with the default level.
//
// Returns:
//   - ZstdCompressor: New Zstd codec instance
//
// Example:
//
//	codec := compress.NewZstdCompressor()
//	compressed, err := codec.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{level: DefaultZstdLevel}
}

// NewZstdCompressorLevel creates a new Zstd codec with the given level.
//
// The level is passed to the Zstandard backend unmodified; levels outside
// the backend's documented range are clamped by the backend itself.
//
// Parameters:
//   - level: Zstandard compression level (1 = fastest, higher = smaller)
func NewZstdCompressorLevel(level int) ZstdCompressor {
	return ZstdCompressor{level: level}
}

// Level returns the Zstandard level this codec compresses with.
func (c ZstdCompressor) Level() int {
	return c.level
}
