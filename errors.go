package vbz

import "errors"

// Stable error codes returned through the C-style surface. Host container
// filters key on these values, so they must not change across releases.
const (
	// CodeInputSize indicates the source length is not a multiple of the
	// element width, the width itself is unsupported, or the element count
	// exceeds the 32-bit limit.
	CodeInputSize = -1

	// CodeDestinationTooSmall indicates the destination buffer cannot hold
	// the bytes the current stage needs to write.
	CodeDestinationTooSmall = -2

	// CodeInputCorrupted indicates the compressed input is malformed: the
	// key stream or length header implies more bytes than are available, or
	// the zstd frame failed to decode.
	CodeInputCorrupted = -3

	// CodeZstdError indicates an unexpected zstd failure not attributable
	// to input corruption.
	CodeZstdError = -4

	// CodeUnknownVersion indicates the options name an unrecognized
	// StreamVByte layout version.
	CodeUnknownVersion = -5
)

var (
	// ErrInputSize is returned when the input length or element width is
	// invalid for the requested options.
	ErrInputSize = errors.New("vbz: invalid input size for integer size")

	// ErrDestinationTooSmall is returned when the destination buffer is too
	// small for the output of the current stage.
	ErrDestinationTooSmall = errors.New("vbz: destination buffer too small")

	// ErrInputCorrupted is returned when compressed input cannot be decoded.
	ErrInputCorrupted = errors.New("vbz: input corrupted")

	// ErrZstdError is returned when the zstd backend fails unexpectedly.
	ErrZstdError = errors.New("vbz: zstd failure")

	// ErrUnknownVersion is returned when options.Version is not a known
	// StreamVByte layout version.
	ErrUnknownVersion = errors.New("vbz: unknown streamvbyte version")
)

// CodeOf maps an error returned by this package onto its stable negative
// code. A nil error maps to 0; an unrecognized error maps to
// CodeInputCorrupted, the most conservative decoder-side failure.
func CodeOf(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrInputSize):
		return CodeInputSize
	case errors.Is(err, ErrDestinationTooSmall):
		return CodeDestinationTooSmall
	case errors.Is(err, ErrInputCorrupted):
		return CodeInputCorrupted
	case errors.Is(err, ErrZstdError):
		return CodeZstdError
	case errors.Is(err, ErrUnknownVersion):
		return CodeUnknownVersion
	default:
		return CodeInputCorrupted
	}
}

// IsError reports whether a C-style return value carries an error code.
func IsError(n int) bool {
	return n < 0
}
