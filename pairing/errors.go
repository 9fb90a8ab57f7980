// SPDX-License-Identifier: MIT

package pairing

import "errors"

var (
	// ErrEncodingRangeExceeded indicates an operand is negative or the encoded
	// value would exceed MaxEncoded.
	ErrEncodingRangeExceeded = errors.New("pairing: encoding range exceeded")

	// ErrInvalidEncodedValue indicates a value that no in-range pair encodes to.
	ErrInvalidEncodedValue = errors.New("pairing: invalid encoded value")
)
