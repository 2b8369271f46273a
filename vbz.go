// Package vbz implements a lossless codec for sequences of small
// fixed-width signed integers, primarily the 8-, 16- and 32-bit sample
// traces produced by nanopore DNA sequencers.
//
// The codec is a three-stage pipeline:
//
//  1. An optional delta + zig-zag pre-transform turns slowly varying signed
//     samples into small unsigned residuals (package transform).
//  2. StreamVByte packing stores each value in 1-4 little-endian bytes with
//     a separate 2-bit length-code key stream (package streamvbyte). Two
//     wire layouts, V0 and V1, are selectable per call.
//  3. An optional Zstandard entropy stage wraps the packed stream in a
//     standard zstd frame (package compress).
//
// All stages are selected through CompressionOptions; the compressed stream
// does not carry the options, so both ends of a round trip must agree on
// them. The sized variants additionally prefix a 4-byte little-endian
// original-length header so a stream is self-describing.
//
// # Basic Usage
//
//	opts := vbz.CompressionOptions{
//	    PerformDeltaZigZag:   true,
//	    IntegerSize:          2,
//	    ZstdCompressionLevel: 1,
//	    Version:              format.DefaultVersion,
//	}
//
//	bound, _ := vbz.MaxCompressedSize(len(raw), &opts)
//	dst := make([]byte, bound)
//	n, err := vbz.Compress(raw, dst, &opts)
//	if err != nil {
//	    return err
//	}
//	compressed := dst[:n]
//
//	out := make([]byte, len(raw))
//	if _, err := vbz.Decompress(compressed, out, &opts); err != nil {
//	    return err
//	}
//
// # Buffers and Concurrency
//
// The codec is purely functional over caller-owned buffers: no global
// mutable state, no I/O, no internal threads. Any number of calls may run
// concurrently as long as each call uses distinct source and destination
// buffers. A call never mutates its source buffer and never aliases source
// and destination.
//
// # Errors
//
// Entry points return the number of bytes written plus an error drawn from
// a fixed set of sentinels (ErrInputSize, ErrDestinationTooSmall,
// ErrInputCorrupted, ErrZstdError, ErrUnknownVersion). CodeOf maps a
// sentinel onto the stable negative code the host container filter expects,
// and IsError tests such a code.
package vbz

import (
	"fmt"
	"math"

	"github.com/arloliu/vbz/compress"
	"github.com/arloliu/vbz/endian"
	"github.com/arloliu/vbz/format"
	"github.com/arloliu/vbz/internal/pool"
	"github.com/arloliu/vbz/streamvbyte"
	"github.com/arloliu/vbz/transform"
)

// libraryVersion identifies the codec release. The wire format is versioned
// separately through format.Version.
const libraryVersion = "1.0.0"

// Version returns the library version string.
func Version() string {
	return libraryVersion
}

// sizedHeaderLen is the length of the original-size header the sized
// variants prepend: one little-endian uint32.
const sizedHeaderLen = 4

// MaxCompressedSize returns a conservative upper bound on the number of
// bytes Compress or CompressSized can produce for an input of inputBytes
// bytes under opts. The bound always includes the sized-frame header, so a
// single allocation covers both variants.
//
// The bound is non-decreasing in inputBytes.
func MaxCompressedSize(inputBytes int, opts *CompressionOptions) (int, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}
	if inputBytes < 0 || inputBytes > math.MaxUint32 {
		return 0, fmt.Errorf("%w: input length %d", ErrInputSize, inputBytes)
	}

	// Round up for inputs that are not a whole number of elements; the
	// bound must stay monotone even for lengths Compress itself rejects.
	n := (inputBytes + opts.IntegerSize - 1) / opts.IntegerSize
	bound := streamvbyte.MaxEncodedSize(n)

	if opts.zstdEnabled() {
		bound = compress.NewZstdCompressorLevel(opts.ZstdCompressionLevel).MaxCompressedSize(bound)
	}

	return bound + sizedHeaderLen, nil
}

// Compress compresses src into dst and returns the number of bytes written.
//
// len(src) must be a multiple of opts.IntegerSize. dst must be large enough
// for the compressed stream; MaxCompressedSize gives a safe capacity. src is
// never modified and must not alias dst. On error the contents of dst are
// undefined.
func Compress(src, dst []byte, opts *CompressionOptions) (int, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}
	if err := checkInputLen(len(src), opts.IntegerSize); err != nil {
		return 0, err
	}

	n := len(src) / opts.IntegerSize

	values, release := pool.GetUint32Slice(n)
	defer release()

	if opts.PerformDeltaZigZag {
		// The transform runs on a working copy so the caller's buffer
		// stays untouched.
		work := pool.GetScratchBuffer()
		defer pool.PutScratchBuffer(work)
		work.EnsureLength(len(src))
		copy(work.B, src)

		if err := transform.ForwardDeltaZigZag(work.B, opts.IntegerSize); err != nil {
			return 0, fmt.Errorf("%w: %s", ErrInputSize, err)
		}
		if err := transform.Widen(work.B, opts.IntegerSize, values); err != nil {
			return 0, fmt.Errorf("%w: %s", ErrInputSize, err)
		}
	} else if err := transform.Widen(src, opts.IntegerSize, values); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInputSize, err)
	}

	if !opts.zstdEnabled() {
		return encodeStreamVByte(values, dst, opts.Version)
	}

	// With the entropy stage on, the packed stream goes through a scratch
	// buffer before zstd writes the final frame into dst.
	scratch := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(scratch)
	scratch.EnsureLength(streamvbyte.MaxEncodedSize(n))

	packed, err := encodeStreamVByte(values, scratch.B, opts.Version)
	if err != nil {
		return 0, err
	}

	codec := compress.NewZstdCompressorLevel(opts.ZstdCompressionLevel)
	frame, err := codec.Compress(scratch.B[:packed])
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrZstdError, err)
	}
	if len(frame) > len(dst) {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrDestinationTooSmall, len(frame), len(dst))
	}
	copy(dst, frame)

	return len(frame), nil
}

// Decompress restores a stream produced by Compress with the same options.
//
// dst carries the element count: len(dst) must equal the original input
// length exactly (the non-sized stream does not record it). Returns the
// number of bytes written, which on success is len(dst). On error the
// contents of dst are undefined.
func Decompress(src, dst []byte, opts *CompressionOptions) (int, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}
	if err := checkInputLen(len(dst), opts.IntegerSize); err != nil {
		return 0, err
	}

	n := len(dst) / opts.IntegerSize

	payload := src
	if opts.zstdEnabled() {
		unwrapped, err := compress.NewZstdCompressorLevel(opts.ZstdCompressionLevel).Decompress(src)
		if err != nil {
			return 0, fmt.Errorf("%w: %s", ErrInputCorrupted, err)
		}
		payload = unwrapped
	}

	values, release := pool.GetUint32Slice(n)
	defer release()

	if err := decodeStreamVByte(payload, values, opts.Version); err != nil {
		return 0, err
	}

	if err := transform.Narrow(values, opts.IntegerSize, dst); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInputSize, err)
	}

	if opts.PerformDeltaZigZag {
		if err := transform.InverseDeltaZigZag(dst, opts.IntegerSize); err != nil {
			return 0, fmt.Errorf("%w: %s", ErrInputSize, err)
		}
	}

	return len(dst), nil
}

// CompressSized compresses src like Compress, but prefixes the payload with
// a 4-byte little-endian header recording len(src) so the stream can be
// decompressed without out-of-band knowledge of the original size.
func CompressSized(src, dst []byte, opts *CompressionOptions) (int, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}
	if err := checkInputLen(len(src), opts.IntegerSize); err != nil {
		return 0, err
	}
	if len(dst) < sizedHeaderLen {
		return 0, fmt.Errorf("%w: need %d bytes for the size header", ErrDestinationTooSmall, sizedHeaderLen)
	}

	engine := endian.GetLittleEndianEngine()
	engine.PutUint32(dst[:sizedHeaderLen], uint32(len(src)))

	n, err := Compress(src, dst[sizedHeaderLen:], opts)
	if err != nil {
		return 0, err
	}

	return sizedHeaderLen + n, nil
}

// DecompressSized restores a stream produced by CompressSized with the same
// options. The element count comes from the frame header, so dst only needs
// enough capacity: len(dst) must be at least the original size. Returns the
// number of bytes written.
func DecompressSized(src, dst []byte, opts *CompressionOptions) (int, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}

	size, err := DecompressedSize(src)
	if err != nil {
		return 0, err
	}
	if size%opts.IntegerSize != 0 {
		return 0, fmt.Errorf("%w: framed size %d is not a multiple of integer size %d",
			ErrInputCorrupted, size, opts.IntegerSize)
	}
	if size > len(dst) {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrDestinationTooSmall, size, len(dst))
	}

	return Decompress(src[sizedHeaderLen:], dst[:size], opts)
}

// DecompressedSize returns the original byte length recorded in the header
// of a sized stream without touching the payload.
func DecompressedSize(src []byte) (int, error) {
	if len(src) < sizedHeaderLen {
		return 0, fmt.Errorf("%w: stream shorter than the size header", ErrInputCorrupted)
	}

	return int(endian.GetLittleEndianEngine().Uint32(src[:sizedHeaderLen])), nil
}

// checkInputLen validates a raw byte length against the element width and
// the 32-bit size limit the wire format imposes.
func checkInputLen(length, integerSize int) error {
	if length%integerSize != 0 {
		return fmt.Errorf("%w: length %d is not a multiple of integer size %d",
			ErrInputSize, length, integerSize)
	}
	if length > math.MaxUint32 {
		return fmt.Errorf("%w: length %d exceeds the 32-bit limit", ErrInputSize, length)
	}

	return nil
}

// encodeStreamVByte dispatches to the key-stream layout named by version.
func encodeStreamVByte(values []uint32, dst []byte, version format.Version) (int, error) {
	var (
		n   int
		err error
	)

	switch version {
	case format.VersionV0:
		n, err = streamvbyte.EncodeV0(values, dst)
	case format.VersionV1:
		n, err = streamvbyte.EncodeV1(values, dst)
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownVersion, version)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrDestinationTooSmall, err)
	}

	return n, nil
}

// decodeStreamVByte dispatches to the key-stream layout named by version.
func decodeStreamVByte(src []byte, values []uint32, version format.Version) error {
	var err error

	switch version {
	case format.VersionV0:
		_, err = streamvbyte.DecodeV0(src, values)
	case format.VersionV1:
		_, err = streamvbyte.DecodeV1(src, values)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownVersion, version)
	}
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInputCorrupted, err)
	}

	return nil
}
