package vbz

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/vbz/format"
)

func TestNewCompressionOptions_Defaults(t *testing.T) {
	opts, err := NewCompressionOptions()
	require.NoError(t, err)
	require.Equal(t, DefaultCompressionOptions(), opts)
}

func TestNewCompressionOptions_MatchesStructLiteral(t *testing.T) {
	opts, err := NewCompressionOptions(
		WithDeltaZigZag(false),
		WithIntegerSize(4),
		WithZstdLevel(5),
		WithVersion(format.VersionV1),
	)
	require.NoError(t, err)

	expected := CompressionOptions{
		PerformDeltaZigZag:   false,
		IntegerSize:          4,
		ZstdCompressionLevel: 5,
		Version:              format.VersionV1,
	}
	require.Equal(t, expected, opts)
}

func TestNewCompressionOptions_InvalidIntegerSize(t *testing.T) {
	_, err := NewCompressionOptions(WithIntegerSize(8))
	require.ErrorIs(t, err, ErrInputSize)
}

func TestNewCompressionOptions_InvalidVersion(t *testing.T) {
	_, err := NewCompressionOptions(WithVersion(format.Version(42)))
	require.ErrorIs(t, err, ErrUnknownVersion)
}

func TestCompressionOptions_ZstdEnabled(t *testing.T) {
	opts := CompressionOptions{IntegerSize: 2}
	require.False(t, opts.zstdEnabled())

	opts.ZstdCompressionLevel = 1
	require.True(t, opts.zstdEnabled())

	// Negative levels still enable the stage; the backend clamps them.
	opts.ZstdCompressionLevel = -3
	require.True(t, opts.zstdEnabled())
}

func TestCompressionOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    CompressionOptions
		wantErr error
	}{
		{"width 1", CompressionOptions{IntegerSize: 1}, nil},
		{"width 2", CompressionOptions{IntegerSize: 2}, nil},
		{"width 4", CompressionOptions{IntegerSize: 4}, nil},
		{"width 0", CompressionOptions{}, ErrInputSize},
		{"width 3", CompressionOptions{IntegerSize: 3}, ErrInputSize},
		{"bad version", CompressionOptions{IntegerSize: 2, Version: format.Version(7)}, ErrUnknownVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
