// SPDX-License-Identifier: MIT

package pairing

import (
	"fmt"
	"math"
)

const (
	// MaxEncoded is the largest encoded value the checked API will produce or
	// accept: 2^53-1, the largest integer float64 represents exactly.
	MaxEncoded uint64 = 1<<53 - 1

	// MaxOperand is the largest n with Encode(n, n) ≤ MaxEncoded. Any pair whose
	// operands are both ≤ MaxOperand is encodable.
	MaxOperand uint64 = 1<<26 - 1

	// maxSum is the largest s = a+b with s(s+1)/2 ≤ MaxEncoded.
	maxSum uint64 = 1<<27 - 1
)

// ctx tags for error wrapping
const (
	ctxEncode = "EncodeChecked"
	ctxDecode = "DecodeChecked"
)

// Encode returns the Cantor pairing of (a, b).
// No range checks are performed; the caller guarantees Safe(a, b).
// Outside that range the result may collide with another pair.
// Complexity: O(1).
func Encode(a, b uint64) uint64 {
	s := a + b

	return s*(s+1)/2 + b
}

// Decode inverts Encode.
//
// Implementation:
//   - Stage 1: w = floor((sqrt(8z+1)-1)/2) via an exact integer square root.
//   - Stage 2: t = (w²+w)/2; b = z-t; a = w-b.
//
// Behavior highlights:
//   - Every z ≤ MaxEncoded decodes to exactly one pair (the mapping is a bijection).
//   - z > MaxEncoded is outside the contract: the result is a plausible pair
//     that need not be meaningful. Use DecodeChecked to reject such values.
//
// Complexity: O(1).
func Decode(z uint64) (a, b uint64) {
	w := (isqrt(8*z+1) - 1) / 2 // index of the diagonal holding z
	t := (w*w + w) / 2          // first code on that diagonal
	b = z - t
	a = w - b

	return a, b
}

// Safe reports whether (a, b) encodes to a value ≤ MaxEncoded.
// Complexity: O(1).
func Safe(a, b uint64) bool {
	if a > maxSum || b > maxSum {
		return false
	}
	s := a + b
	if s > maxSum {
		return false
	}

	return s*(s+1)/2+b <= MaxEncoded
}

// EncodeChecked is Encode with explicit domain checks.
// Negative operands and pairs whose code would exceed MaxEncoded fail with
// ErrEncodingRangeExceeded.
func EncodeChecked(a, b int64) (uint64, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("%s(%d,%d): negative operand: %w", ctxEncode, a, b, ErrEncodingRangeExceeded)
	}
	ua, ub := uint64(a), uint64(b)
	if !Safe(ua, ub) {
		return 0, fmt.Errorf("%s(%d,%d): code above %d: %w", ctxEncode, a, b, MaxEncoded, ErrEncodingRangeExceeded)
	}

	return Encode(ua, ub), nil
}

// DecodeChecked is Decode restricted to z ≤ MaxEncoded.
// Larger values fail with ErrInvalidEncodedValue.
func DecodeChecked(z uint64) (a, b uint64, err error) {
	if z > MaxEncoded {
		return 0, 0, fmt.Errorf("%s(%d): above %d: %w", ctxDecode, z, MaxEncoded, ErrInvalidEncodedValue)
	}
	a, b = Decode(z)

	return a, b, nil
}

// isqrt returns floor(sqrt(n)).
// The float estimate can be off by a few units near 2^64; the correction
// loops make the result exact.
func isqrt(n uint64) uint64 {
	const maxRoot = 1<<32 - 1 // floor(sqrt(2^64-1))
	r := uint64(math.Sqrt(float64(n)))
	if r > maxRoot {
		r = maxRoot
	}
	for r*r > n {
		r--
	}
	for r < maxRoot && (r+1)*(r+1) <= n {
		r++
	}

	return r
}
