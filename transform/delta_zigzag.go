package transform

import (
	"fmt"

	"github.com/arloliu/vbz/endian"
)

// zig-zag maps small-magnitude signed values to small unsigned values so
// the variable-byte stage emits short codes for them:
// encode: u = (s << 1) ^ (s >> (bits-1)), decode: s = (u >> 1) ^ -(u & 1).

func zigzagEncode8(s int8) uint8    { return uint8((s << 1) ^ (s >> 7)) }
func zigzagDecode8(u uint8) int8    { return int8((u >> 1) ^ -(u & 1)) }
func zigzagEncode16(s int16) uint16 { return uint16((s << 1) ^ (s >> 15)) }
func zigzagDecode16(u uint16) int16 { return int16((u >> 1) ^ -(u & 1)) }
func zigzagEncode32(s int32) uint32 { return uint32((s << 1) ^ (s >> 31)) }
func zigzagDecode32(u uint32) int32 { return int32((u >> 1) ^ -(u & 1)) }

// ForwardDeltaZigZag replaces each width-sized little-endian element of buf
// with the zig-zag encoding of its difference from the previous element.
// The first element is zig-zag encoded as-is. Differences wrap around at
// the element width, which makes the transform a bijection and the inverse
// exact for every input.
//
// len(buf) must be a multiple of width and width must be 1, 2 or 4.
func ForwardDeltaZigZag(buf []byte, width int) error {
	if err := checkWidth(buf, width); err != nil {
		return err
	}

	engine := endian.GetLittleEndianEngine()

	switch width {
	case 1:
		var prev int8
		for i := range buf {
			cur := int8(buf[i])
			buf[i] = zigzagEncode8(cur - prev)
			prev = cur
		}
	case 2:
		var prev int16
		for i := 0; i < len(buf); i += 2 {
			cur := int16(engine.Uint16(buf[i : i+2]))
			engine.PutUint16(buf[i:i+2], zigzagEncode16(cur-prev))
			prev = cur
		}
	case 4:
		var prev int32
		for i := 0; i < len(buf); i += 4 {
			cur := int32(engine.Uint32(buf[i : i+4]))
			engine.PutUint32(buf[i:i+4], zigzagEncode32(cur-prev))
			prev = cur
		}
	}

	return nil
}

// InverseDeltaZigZag undoes ForwardDeltaZigZag: each element is zig-zag
// decoded and prefix-summed with the previous reconstructed element, with
// the same wrap-around at the element width.
//
// len(buf) must be a multiple of width and width must be 1, 2 or 4.
func InverseDeltaZigZag(buf []byte, width int) error {
	if err := checkWidth(buf, width); err != nil {
		return err
	}

	engine := endian.GetLittleEndianEngine()

	switch width {
	case 1:
		var prev int8
		for i := range buf {
			prev += zigzagDecode8(buf[i])
			buf[i] = uint8(prev)
		}
	case 2:
		var prev int16
		for i := 0; i < len(buf); i += 2 {
			prev += zigzagDecode16(engine.Uint16(buf[i : i+2]))
			engine.PutUint16(buf[i:i+2], uint16(prev))
		}
	case 4:
		var prev int32
		for i := 0; i < len(buf); i += 4 {
			prev += zigzagDecode32(engine.Uint32(buf[i : i+4]))
			engine.PutUint32(buf[i:i+4], uint32(prev))
		}
	}

	return nil
}

func checkWidth(buf []byte, width int) error {
	if width != 1 && width != 2 && width != 4 {
		return fmt.Errorf("transform: invalid element width %d", width)
	}
	if len(buf)%width != 0 {
		return fmt.Errorf("transform: buffer length %d is not a multiple of width %d", len(buf), width)
	}

	return nil
}
