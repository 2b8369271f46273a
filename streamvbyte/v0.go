package streamvbyte

import (
	"github.com/arloliu/vbz/endian"
)

// v0KeyStreamSize returns the V0 key stream size for n values: one key byte
// per group of four values, partial last group included.
func v0KeyStreamSize(n int) int {
	return (n + 3) / 4
}

// v0GroupDataLen[key] is the total data-stream bytes consumed by the four
// values described by one key byte: sum of (code+1) over the four 2-bit
// codes.
var v0GroupDataLen [256]uint8

// v0LaneOffset[key][lane] is the byte offset of each lane's value within
// the group's data bytes, precomputed so the fast path can load all four
// lanes without walking the codes sequentially.
var v0LaneOffset [256][4]uint8

// v0LaneMask masks a 4-byte little-endian load down to code+1 bytes.
var v0LaneMask = [4]uint32{0xff, 0xffff, 0xffffff, 0xffffffff}

func init() {
	for key := 0; key < 256; key++ {
		off := 0
		for lane := 0; lane < 4; lane++ {
			code := (key >> (lane * 2)) & 0x3
			v0LaneOffset[key][lane] = uint8(off)
			off += code + 1
		}
		v0GroupDataLen[key] = uint8(off)
	}
}

// EncodeV0 encodes values into dst using the V0 layout: ⌈n/4⌉ key bytes in
// natural order (lowest-index value in the low two bits of the first key
// byte) followed by the concatenated little-endian value bytes. Unused high
// bits of a partial last key byte are zero.
//
// Returns the number of bytes written, or ErrDestinationTooSmall if dst
// cannot hold the encoded stream. dst is not written past the returned
// length.
func EncodeV0(values []uint32, dst []byte) (int, error) {
	n := len(values)
	keyLen := v0KeyStreamSize(n)
	total := keyLen + dataSize(values)
	if len(dst) < total {
		return 0, ErrDestinationTooSmall
	}

	keys := dst[:keyLen]
	for i := range keys {
		keys[i] = 0
	}

	dataPos := keyLen
	for i, v := range values {
		code := valueCode(v)
		keys[i>>2] |= code << ((i & 3) * 2)
		dataPos += putValue(dst[dataPos:], v, code)
	}

	return total, nil
}

// DecodeV0 decodes len(dst) values from a V0-encoded stream. The caller
// supplies the element count through len(dst); it is never inferred from
// len(src). Trailing bytes beyond the encoded stream are ignored.
//
// Returns the number of source bytes consumed, or ErrInputCorrupted when
// the key stream implies more data bytes than src provides.
func DecodeV0(src []byte, dst []uint32) (int, error) {
	n := len(dst)
	if n == 0 {
		return 0, nil
	}

	keyLen := v0KeyStreamSize(n)
	if len(src) < keyLen {
		return 0, ErrInputCorrupted
	}
	keys := src[:keyLen]
	data := src[keyLen:]

	dataPos := 0
	i := 0

	// Fast path: whole groups of four, decoded with masked 4-byte loads.
	// Requires 16 readable bytes so lane loads cannot run off the buffer.
	engine := endian.GetLittleEndianEngine()
	for i+4 <= n && dataPos+16 <= len(data) {
		key := keys[i>>2]
		group := data[dataPos:]
		offsets := &v0LaneOffset[key]
		for lane := 0; lane < 4; lane++ {
			code := (key >> (lane * 2)) & 0x3
			off := offsets[lane]
			dst[i+lane] = engine.Uint32(group[off:off+4]) & v0LaneMask[code]
		}
		dataPos += int(v0GroupDataLen[key])
		i += 4
	}

	// Scalar tail: remaining whole or partial groups near the end of data.
	for ; i < n; i++ {
		code := (keys[i>>2] >> ((i & 3) * 2)) & 0x3
		width := int(code) + 1
		if dataPos+width > len(data) {
			return 0, ErrInputCorrupted
		}
		dst[i] = getValue(data[dataPos:], code)
		dataPos += width
	}

	return keyLen + dataPos, nil
}

// decodeV0Scalar is the pure scalar decode path. It produces byte-identical
// results to DecodeV0 and exists so the fast path can be checked against it.
func decodeV0Scalar(src []byte, dst []uint32) (int, error) {
	n := len(dst)
	if n == 0 {
		return 0, nil
	}

	keyLen := v0KeyStreamSize(n)
	if len(src) < keyLen {
		return 0, ErrInputCorrupted
	}
	keys := src[:keyLen]
	data := src[keyLen:]

	dataPos := 0
	for i := 0; i < n; i++ {
		code := (keys[i>>2] >> ((i & 3) * 2)) & 0x3
		width := int(code) + 1
		if dataPos+width > len(data) {
			return 0, ErrInputCorrupted
		}
		dst[i] = getValue(data[dataPos:], code)
		dataPos += width
	}

	return keyLen + dataPos, nil
}
