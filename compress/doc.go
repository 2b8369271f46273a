// Package compress provides general-purpose byte-stream codecs used as the
// post-compression stage of the vbz pipeline.
//
// The vbz codec applies a two-stage strategy to signal traces:
//
//  1. **Packing**: delta/zig-zag transform plus StreamVByte integer packing
//     exploits the structure of the samples.
//  2. **Compression**: the packed byte stream is optionally run through a
//     general-purpose entropy coder for further savings.
//
// This package implements the second stage. Zstandard is the coder the vbz
// wire format specifies; the remaining codecs are kept for the host-filter
// layer, which treats every codec as an opaque byte-stream transform:
//   - None: no compression (pass-through)
//   - Zstd: the vbz payload coder, with caller-selected level
//   - S2: balanced compression and speed
//   - LZ4: fast decompression, moderate compression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Codecs are obtained from the factory keyed on format.CompressionType:
//
//	codec, err := compress.CreateCodec(format.CompressionZstd, "payload")
//
// The Zstd codec additionally supports per-call compression levels through
// NewZstdCompressorLevel; the level is handed to the Zstandard backend,
// which clamps it to its valid range.
//
// # Backends
//
// Two Zstandard backends are provided. The default is the pure-Go
// klauspost/compress implementation. Building with the vbz_cgo_zstd tag
// switches to the cgo libzstd wrapper, which honors the full native level
// range at the cost of cgo call overhead.
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use. Encoders and
// decoders are pooled internally, so creating codec values is cheap.
package compress
