// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//  - Provide a single source of truth for the guard checks shared by grid consumers.
//  - Return sentinel errors wrapped with the validator tag so call sites can wrap again.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on success.

package grid

import "fmt"

// Shaper is anything with a row and column count. Both operands of
// ValidateSameShape may have different element types.
type Shaper interface {
	Rows() int
	Cols() int
}

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the grid reference is non-nil.
// Returns ErrNilGrid if g == nil. Complexity: O(1).
func ValidateNotNil[T Cell](g *Dense[T]) error {
	if g == nil {
		return validatorErrorf("ValidateNotNil", ErrNilGrid)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes both are non-nil (run ValidateNotNil first).
// Return: nil or wrapped ErrShapeMismatch naming both shapes.
func ValidateSameShape(a, b Shaper) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%d×%d vs %d×%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrShapeMismatch))
	}

	return nil
}

// ValidateDType ensures dt is one of the allowed types.
// An empty allowed list accepts only 8- and 16-bit integers (DType.Narrow).
func ValidateDType(dt DType, allowed ...DType) error {
	if len(allowed) == 0 {
		if dt.Narrow() {
			return nil
		}
		return validatorErrorf("ValidateDType", fmt.Errorf("%s: %w", dt, ErrUnsupportedDType))
	}
	for _, a := range allowed {
		if dt == a {
			return nil
		}
	}

	return validatorErrorf("ValidateDType", fmt.Errorf("%s: %w", dt, ErrUnsupportedDType))
}

// ValidateNonNegative ensures no cell of g is below zero.
// Unsigned grids always pass. The first offending cell is named in the error.
// Return: nil or wrapped ErrNegativeCell. Complexity: O(r*c) for signed types.
func ValidateNonNegative[T Cell](g *Dense[T]) error {
	if err := ValidateNotNil(g); err != nil {
		return err
	}
	if !g.DType().Signed() {
		return nil
	}
	for k, v := range g.data {
		if v < 0 {
			return validatorErrorf("ValidateNonNegative",
				fmt.Errorf("cell (%d,%d) = %s: %w", k/g.c, k%g.c, formatCell(v), ErrNegativeCell))
		}
	}

	return nil
}
