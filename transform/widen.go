package transform

import "github.com/arloliu/vbz/endian"

// Widen zero-extends the len(buf)/width little-endian elements of buf into
// dst as uint32 values. dst must hold exactly len(buf)/width elements and
// len(buf) must be a multiple of width.
//
// Widening is lossless for the zig-zag output: an element of width W fits
// in W bytes as an unsigned value, and the variable-byte stage emits short
// codes for the smaller widths, so no compression is lost.
func Widen(buf []byte, width int, dst []uint32) error {
	if err := checkWidth(buf, width); err != nil {
		return err
	}

	engine := endian.GetLittleEndianEngine()

	switch width {
	case 1:
		for i, b := range buf {
			dst[i] = uint32(b)
		}
	case 2:
		for i := range dst {
			dst[i] = uint32(engine.Uint16(buf[i*2 : i*2+2]))
		}
	case 4:
		for i := range dst {
			dst[i] = engine.Uint32(buf[i*4 : i*4+4])
		}
	}

	return nil
}

// Narrow truncates each uint32 value to width bytes and stores it
// little-endian into dst. dst must hold exactly len(values)*width bytes.
func Narrow(values []uint32, width int, dst []byte) error {
	if err := checkWidth(dst, width); err != nil {
		return err
	}

	engine := endian.GetLittleEndianEngine()

	switch width {
	case 1:
		for i, v := range values {
			dst[i] = byte(v)
		}
	case 2:
		for i, v := range values {
			engine.PutUint16(dst[i*2:i*2+2], uint16(v))
		}
	case 4:
		for i, v := range values {
			engine.PutUint32(dst[i*4:i*4+4], v)
		}
	}

	return nil
}
