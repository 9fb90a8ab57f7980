// SPDX-License-Identifier: MIT

// Package grid - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep determinism (fixed loop orders, no map iteration).
//   - Expose the flat buffer (Data) so element-wise kernels can run single tight loops.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/Equal: O(r*c); Data: O(1).

package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxRow      = "Row"
	ctxFromRows = "FromRows"
	ctxFromData = "FromSlice"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w". Preserves the sentinel for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major grid of integer cells.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T Cell] struct {
	r, c int
	data []T
}

// NewDense creates an r×c zero grid.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Cell](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// FromRows builds a grid from a rectangular 2D slice (deep copy).
// Returns ErrEmptyGrid if there are no rows or no columns and ErrNonRectangular
// if any row length differs from the first.
// Complexity: O(r*c) time and memory.
func FromRows[T Cell](values [][]T) (*Dense[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrEmptyGrid)
	}
	h, w := len(values), len(values[0])
	g := &Dense[T]{r: h, c: w, data: make([]T, h*w)}
	for i, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%s: row %d has %d cells, want %d: %w", ctxFromRows, i, len(row), w, ErrNonRectangular)
		}
		copy(g.data[i*w:(i+1)*w], row) // deep copy keeps the grid independent of the caller
	}

	return g, nil
}

// FromSlice builds a rows×cols grid from a row-major buffer (copied).
// len(data) must equal rows*cols, else ErrShapeMismatch.
func FromSlice[T Cell](rows, cols int, data []T) (*Dense[T], error) {
	g, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromData, err)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s: len %d != %d×%d: %w", ctxFromData, len(data), rows, cols, ErrShapeMismatch)
	}
	copy(g.data, data)

	return g, nil
}

// Rows returns the row count. Complexity: O(1).
func (g *Dense[T]) Rows() int { return g.r }

// Cols returns the column count. Complexity: O(1).
func (g *Dense[T]) Cols() int { return g.c }

// Shape packs Rows() and Cols() into a single call.
func (g *Dense[T]) Shape() (rows, cols int) { return g.r, g.c }

// Len returns the number of cells (rows*cols).
func (g *Dense[T]) Len() int { return len(g.data) }

// DType reports the run-time element type of the grid.
func (g *Dense[T]) DType() DType { return DTypeOf[T]() }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with their own method tag and coordinates.
func (g *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= g.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= g.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*g.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range indices.
// Complexity: O(1).
func (g *Dense[T]) At(row, col int) (T, error) {
	off, err := g.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return g.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (g *Dense[T]) Set(row, col int, v T) error {
	off, err := g.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	g.data[off] = v

	return nil
}

// Row returns a copy of row i.
func (g *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= g.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, g.c)
	copy(out, g.data[i*g.c:(i+1)*g.c])

	return out, nil
}

// Data exposes the flat row-major buffer (len == Rows()*Cols()).
// The slice aliases the grid storage: writes through it mutate the grid.
// Intended for element-wise kernels that need a single tight loop.
func (g *Dense[T]) Data() []T { return g.data }

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(r*c).
func (g *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(g.data))
	copy(cp, g.data)

	return &Dense[T]{r: g.r, c: g.c, data: cp}
}

// Equal reports whether o has the same shape and cell values.
// A nil receiver equals only a nil argument.
func (g *Dense[T]) Equal(o *Dense[T]) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.r != o.r || g.c != o.c {
		return false
	}
	for k := range g.data {
		if g.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Not for hot paths; intended for logs, tests and debugging.
// Complexity: O(r*c).
func (g *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < g.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * g.c
		for j = 0; j < g.c; j++ {
			b.WriteString(formatCell(g.data[base+j]))
			if j+1 < g.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// formatCell renders one cell in base 10 regardless of signedness.
func formatCell[T Cell](v T) string {
	if v < 0 {
		return strconv.FormatInt(int64(v), 10)
	}

	return strconv.FormatUint(uint64(v), 10)
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. No allocations.
// Complexity: O(r*c).
func (g *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < g.r; i++ {
		base = i * g.c
		for j = 0; j < g.c; j++ {
			if !f(i, j, g.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, row-major.
// Complexity: O(r*c).
func (g *Dense[T]) Apply(f func(i, j int, v T) T) {
	var i, j, base int
	for i = 0; i < g.r; i++ {
		base = i * g.c
		for j = 0; j < g.c; j++ {
			g.data[base+j] = f(i, j, g.data[base+j])
		}
	}
}

// Fill sets every element to v.
// Complexity: O(r*c).
func (g *Dense[T]) Fill(v T) {
	for k := range g.data {
		g.data[k] = v
	}
}
