package transform

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/vbz/endian"
)

func TestZigZag_KnownValues(t *testing.T) {
	// 0, -1, 1, -2, 2, ... is the canonical zig-zag order.
	require.Equal(t, uint8(0), zigzagEncode8(0))
	require.Equal(t, uint8(1), zigzagEncode8(-1))
	require.Equal(t, uint8(2), zigzagEncode8(1))
	require.Equal(t, uint8(3), zigzagEncode8(-2))
	require.Equal(t, uint8(254), zigzagEncode8(math.MaxInt8))
	require.Equal(t, uint8(255), zigzagEncode8(math.MinInt8))

	require.Equal(t, uint16(4), zigzagEncode16(2))
	require.Equal(t, uint16(math.MaxUint16), zigzagEncode16(math.MinInt16))

	require.Equal(t, uint32(9), zigzagEncode32(-5))
	require.Equal(t, uint32(math.MaxUint32), zigzagEncode32(math.MinInt32))
}

func TestZigZag_RoundTripAllWidths(t *testing.T) {
	for v := math.MinInt8; v <= math.MaxInt8; v++ {
		require.Equal(t, int8(v), zigzagDecode8(zigzagEncode8(int8(v))))
	}

	for v := math.MinInt16; v <= math.MaxInt16; v++ {
		require.Equal(t, int16(v), zigzagDecode16(zigzagEncode16(int16(v))))
	}

	for _, v := range []int32{math.MinInt32, math.MinInt32 + 1, -1, 0, 1, math.MaxInt32 - 1, math.MaxInt32} {
		require.Equal(t, v, zigzagDecode32(zigzagEncode32(v)))
	}
}

func TestForwardDeltaZigZag_KnownVector(t *testing.T) {
	// Deltas of 5,4,3,2,1 are 5,-1,-1,-1,-1; zig-zag gives 10,1,1,1,1.
	buf := i32LE([]int32{5, 4, 3, 2, 1})
	require.NoError(t, ForwardDeltaZigZag(buf, 4))
	require.Equal(t, i32LE([]int32{10, 1, 1, 1, 1}), buf)
}

func TestDeltaZigZag_WrapAroundAtWidth(t *testing.T) {
	// A jump from MinInt to MaxInt overflows the signed delta; the wrap at
	// the element width keeps the transform reversible anyway.
	tests := []struct {
		name  string
		width int
		buf   []byte
	}{
		{"int8 extremes", 1, []byte{0x80, 0x7F, 0x80, 0x00, 0xFF}},
		{"int16 extremes", 2, i16LE([]int16{math.MinInt16, math.MaxInt16, math.MinInt16, -1, 1})},
		{"int32 extremes", 4, i32LE([]int32{math.MinInt32, math.MaxInt32, math.MinInt32, -1, 1})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := make([]byte, len(tt.buf))
			copy(original, tt.buf)

			require.NoError(t, ForwardDeltaZigZag(tt.buf, tt.width))
			require.NoError(t, InverseDeltaZigZag(tt.buf, tt.width))
			require.Equal(t, original, tt.buf)
		})
	}
}

func TestDeltaZigZag_RoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(13))

	for _, width := range []int{1, 2, 4} {
		buf := make([]byte, 1000*width)
		rng.Read(buf)

		original := make([]byte, len(buf))
		copy(original, buf)

		require.NoError(t, ForwardDeltaZigZag(buf, width))
		require.NotEqual(t, original, buf)
		require.NoError(t, InverseDeltaZigZag(buf, width))
		require.Equal(t, original, buf)
	}
}

func TestDeltaZigZag_EmptyBuffer(t *testing.T) {
	for _, width := range []int{1, 2, 4} {
		require.NoError(t, ForwardDeltaZigZag(nil, width))
		require.NoError(t, InverseDeltaZigZag(nil, width))
	}
}

func TestDeltaZigZag_InvalidWidth(t *testing.T) {
	require.Error(t, ForwardDeltaZigZag(make([]byte, 6), 3))
	require.Error(t, InverseDeltaZigZag(make([]byte, 6), 0))
}

func TestDeltaZigZag_LengthNotMultipleOfWidth(t *testing.T) {
	require.Error(t, ForwardDeltaZigZag(make([]byte, 7), 4))
	require.Error(t, InverseDeltaZigZag(make([]byte, 3), 2))
}

func i16LE(values []int16) []byte {
	engine := endian.GetLittleEndianEngine()
	buf := make([]byte, len(values)*2)
	for i, v := range values {
		engine.PutUint16(buf[i*2:], uint16(v))
	}

	return buf
}

func i32LE(values []int32) []byte {
	engine := endian.GetLittleEndianEngine()
	buf := make([]byte, len(values)*4)
	for i, v := range values {
		engine.PutUint32(buf[i*4:], uint32(v))
	}

	return buf
}
