// Package streamvbyte implements StreamVByte packing of unsigned 32-bit
// integers: a key stream carrying one 2-bit length code per value, followed
// by the concatenated little-endian value bytes.
//
// Two wire layouts are provided and selected per call:
//
//   - V0: the reference layout. Keys are packed four to a byte in natural
//     order, lowest-index value in the low two bits. Decoding has a
//     table-driven fast path that consumes a whole key byte (four values)
//     per step, with a scalar fallback that handles short buffers and the
//     tail group byte-identically.
//   - V1: keys are emitted through a little-endian 2-bit stream writer and
//     padded to a byte boundary. Encoding and decoding walk the key stream
//     bit by bit. V1 shares only the code derivation with V0.
//
// Both layouts place the complete key stream before the data stream.
// Encoders never write past the caller-supplied destination and decoders
// never read past the source; a destination that cannot hold the encoded
// stream yields ErrDestinationTooSmall and a key stream that implies more
// data bytes than the source provides yields ErrInputCorrupted.
package streamvbyte
