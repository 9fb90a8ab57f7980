// Package pairing implements the Cantor pairing function and its inverse.
//
// What:
//
//   - Encode maps an ordered pair (a, b) of non-negative integers to a single
//     non-negative integer z = (a+b)(a+b+1)/2 + b.
//   - Decode recovers (a, b) from z.
//   - EncodeChecked / DecodeChecked add explicit range guards and fail with
//     ErrEncodingRangeExceeded / ErrInvalidEncodedValue instead of silently
//     producing colliding or meaningless results.
//
// Why:
//
//   - Raster combine: two categorical layers become one layer whose codes can be
//     decoded back into the original pair without a side table.
//
// Range:
//
//   - All encoded values produced by the checked API are ≤ MaxEncoded (2^53-1),
//     the exact-integer range of float64. Consumers that store codes in floating
//     point columns therefore never lose precision.
//   - A pair is safe when both operands are ≤ MaxOperand (2^26-1).
//     8- and 16-bit cell values are always safe.
//
// Ordering:
//
//   - The mapping is not symmetric: Encode(a, b) != Encode(b, a) unless a == b.
//
// Complexity:
//
//   - Encode: O(1). Decode: O(1) (integer square root with a bounded correction).
package pairing
