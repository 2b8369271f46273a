package vbz

import (
	"fmt"

	"github.com/arloliu/vbz/format"
	"github.com/arloliu/vbz/internal/options"
)

// CompressionOptions describes how one buffer of samples is processed. It
// mirrors the 4-field options record of the wire protocol: both ends of a
// round trip must use the same options, the compressed stream does not carry
// them.
//
// The zero value is not valid; use NewCompressionOptions or a struct literal
// with IntegerSize set.
type CompressionOptions struct {
	// PerformDeltaZigZag applies the delta + zig-zag pre-transform before
	// integer packing. Enable it for signal-like data where consecutive
	// samples are close in value.
	PerformDeltaZigZag bool

	// IntegerSize is the sample element width in bytes: 1, 2 or 4.
	IntegerSize int

	// ZstdCompressionLevel selects the entropy stage: 0 disables zstd
	// entirely, any non-zero value enables it and is handed to the backend,
	// which clamps it to its supported range.
	ZstdCompressionLevel int

	// Version selects the StreamVByte key-stream layout.
	// format.DefaultVersion (V0) unless forward compatibility requires V1.
	Version format.Version
}

// DefaultCompressionOptions returns the options the nanopore signal pipeline
// uses by default: delta + zig-zag over 16-bit samples, zstd level 1, V0.
func DefaultCompressionOptions() CompressionOptions {
	return CompressionOptions{
		PerformDeltaZigZag:   true,
		IntegerSize:          2,
		ZstdCompressionLevel: 1,
		Version:              format.DefaultVersion,
	}
}

// validate checks the option tuple before any stage runs.
func (o *CompressionOptions) validate() error {
	switch o.IntegerSize {
	case 1, 2, 4:
	default:
		return fmt.Errorf("%w: unsupported integer size %d", ErrInputSize, o.IntegerSize)
	}

	if !o.Version.IsValid() {
		return fmt.Errorf("%w: %d", ErrUnknownVersion, o.Version)
	}

	return nil
}

// zstdEnabled reports whether the entropy stage runs for these options.
func (o *CompressionOptions) zstdEnabled() bool {
	return o.ZstdCompressionLevel != 0
}

// CompressionOption represents a functional option for configuring
// CompressionOptions. This is a type alias for the generic Option interface
// specialized for CompressionOptions.
type CompressionOption = options.Option[*CompressionOptions]

// NewCompressionOptions builds an options value starting from
// DefaultCompressionOptions and applying the given options in order.
func NewCompressionOptions(opts ...CompressionOption) (CompressionOptions, error) {
	cfg := DefaultCompressionOptions()
	if err := options.Apply(&cfg, opts...); err != nil {
		return CompressionOptions{}, err
	}

	return cfg, nil
}

// WithDeltaZigZag enables or disables the delta + zig-zag pre-transform.
func WithDeltaZigZag(enabled bool) CompressionOption {
	return options.NoError(func(o *CompressionOptions) {
		o.PerformDeltaZigZag = enabled
	})
}

// WithIntegerSize sets the sample element width in bytes (1, 2 or 4).
func WithIntegerSize(size int) CompressionOption {
	return options.New(func(o *CompressionOptions) error {
		switch size {
		case 1, 2, 4:
			o.IntegerSize = size
			return nil
		default:
			return fmt.Errorf("%w: unsupported integer size %d", ErrInputSize, size)
		}
	})
}

// WithZstdLevel sets the zstd compression level; 0 disables the zstd stage.
func WithZstdLevel(level int) CompressionOption {
	return options.NoError(func(o *CompressionOptions) {
		o.ZstdCompressionLevel = level
	})
}

// WithVersion selects the StreamVByte layout version.
func WithVersion(version format.Version) CompressionOption {
	return options.New(func(o *CompressionOptions) error {
		if !version.IsValid() {
			return fmt.Errorf("%w: %d", ErrUnknownVersion, version)
		}
		o.Version = version

		return nil
	})
}
