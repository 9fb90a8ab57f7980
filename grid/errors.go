// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Every message is prefixed with "grid: ". Callers match with errors.Is;
// call sites add context with fmt.Errorf("Tag: %w", ErrX).

package grid

import "errors"

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("grid: dimensions must be > 0")

	// ErrEmptyGrid indicates an input 2D slice with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrNegativeCell indicates a signed grid holding a value below zero.
	ErrNegativeCell = errors.New("grid: negative cell value")

	// ErrNilGrid indicates a nil *Dense was passed where a grid is required.
	ErrNilGrid = errors.New("grid: nil grid")

	// ErrShapeMismatch indicates two grids (or a grid and a buffer) whose
	// dimensions differ.
	ErrShapeMismatch = errors.New("grid: shape mismatch")

	// ErrUnsupportedDType indicates an element type outside the set accepted
	// by an operation.
	ErrUnsupportedDType = errors.New("grid: unsupported element type")

	// ErrInvalidRange indicates an empty [lo, hi) interval for Random.
	ErrInvalidRange = errors.New("grid: invalid value range")

	// ErrNeedRandSource indicates Random was called without a *rand.Rand.
	ErrNeedRandSource = errors.New("grid: random source is required")
)
