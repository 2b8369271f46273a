// Package transform implements the reversible pre-transform applied to
// signal samples before StreamVByte packing: per-element delta coding with
// two's-complement wrap-around at the element width, followed by zig-zag
// mapping of the signed residuals to unsigned values of the same width.
//
// The transform operates in place on a little-endian byte buffer holding
// elements of width 1, 2 or 4 bytes. Widen and Narrow bridge between that
// byte representation and the zero-extended uint32 values StreamVByte
// operates on.
package transform
