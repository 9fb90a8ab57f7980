// SPDX-License-Identifier: MIT
// Package combine: sentinel error set.
// Input-validation sentinels are aliases of the grid/pairing sentinels so
// errors.Is matches regardless of which package name the caller uses.

package combine

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvraster/grid"
	"github.com/katalvlaran/lvraster/pairing"
)

var (
	// ErrNilGrid indicates a nil input grid or result.
	ErrNilGrid = grid.ErrNilGrid

	// ErrInvalidDimensions indicates a grid with zero rows or columns
	// (a zero-value grid.Dense).
	ErrInvalidDimensions = grid.ErrInvalidDimensions

	// ErrShapeMismatch indicates input grids with different dimensions.
	ErrShapeMismatch = grid.ErrShapeMismatch

	// ErrUnsupportedDType indicates an input element type other than 8/16-bit integers.
	ErrUnsupportedDType = grid.ErrUnsupportedDType

	// ErrEncodingRangeExceeded indicates a cell pair outside the codec domain
	// (a negative value in a signed grid).
	ErrEncodingRangeExceeded = pairing.ErrEncodingRangeExceeded

	// ErrInvalidEncodedValue indicates a code in a grid passed to Tabulate that
	// no in-range pair encodes to.
	ErrInvalidEncodedValue = pairing.ErrInvalidEncodedValue
)

var (
	// ErrInvalidEntry indicates a table entry rejected by NewTable: a code that
	// does not match its pair, a duplicate code, or a non-positive count.
	ErrInvalidEntry = errors.New("combine: invalid table entry")

	// ErrInconsistent indicates a Result that violates an invariant (Verify).
	ErrInconsistent = errors.New("combine: result inconsistent with inputs")
)

// combineErrorf wraps an error with the public entry-point tag.
func combineErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
