// SPDX-License-Identifier: MIT

package combine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvraster/grid"
	"github.com/katalvlaran/lvraster/pairing"
)

// ---------- error context tags ----------

const (
	ctxCombine  = "Combine"
	ctxEncode   = "Encode"
	ctxTabulate = "Tabulate"
)

// Result is the output of Combine. Both fields are owned by the caller.
type Result struct {
	// Grid holds one code per input cell (same shape as the inputs).
	Grid *grid.Dense[uint64]
	// Table maps each distinct code to its pair and cell count.
	Table *Table
}

// Combine encodes a and b cell by cell and tabulates the distinct pairs.
// It is CombineContext with context.Background().
func Combine[A, B grid.Cell](a *grid.Dense[A], b *grid.Dense[B], opts ...Option) (*Result, error) {
	return CombineContext(context.Background(), a, b, opts...)
}

// CombineContext encodes a and b cell by cell and tabulates the distinct pairs.
//
// Implementation:
//   - Stage 1: validate nil → shape → element types (fail before any work).
//   - Stage 2: encode row bands in parallel; each band fills its slice of the
//     output and its own histogram.
//   - Stage 3: merge band histograms; decode each distinct code once.
//
// Errors:
//   - ErrNilGrid, ErrShapeMismatch, ErrUnsupportedDType, ErrEncodingRangeExceeded,
//     or ctx.Err(). On error the result is nil.
//
// Complexity:
//   - Time O(r*c / workers + u log u), Space O(r*c + u) for u distinct pairs.
func CombineContext[A, B grid.Cell](ctx context.Context, a *grid.Dense[A], b *grid.Dense[B], opts ...Option) (*Result, error) {
	start := time.Now()
	o := gatherOptions(opts...)

	if err := validateInputs(a, b); err != nil {
		return nil, combineErrorf(ctxCombine, err)
	}
	out, hist, nb, err := encodeGrids(ctx, a, b, o, true)
	if err != nil {
		return nil, combineErrorf(ctxCombine, err)
	}
	table := buildTable(hist, nil) // codes from narrow inputs are always in range

	o.log.Debug("combine done",
		zap.Int("rows", a.Rows()),
		zap.Int("cols", a.Cols()),
		zap.Stringer("dtype_a", a.DType()),
		zap.Stringer("dtype_b", b.DType()),
		zap.Int("workers", o.workers),
		zap.Int("bands", nb),
		zap.Int("combinations", table.Len()),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &Result{Grid: out, Table: table}, nil
}

// Encode returns only the coded grid (no histogram, no table).
// Same validation and errors as Combine.
func Encode[A, B grid.Cell](a *grid.Dense[A], b *grid.Dense[B], opts ...Option) (*grid.Dense[uint64], error) {
	o := gatherOptions(opts...)
	if err := validateInputs(a, b); err != nil {
		return nil, combineErrorf(ctxEncode, err)
	}
	out, _, _, err := encodeGrids(context.Background(), a, b, o, false)
	if err != nil {
		return nil, combineErrorf(ctxEncode, err)
	}

	return out, nil
}

// Tabulate builds the Table of an already coded grid.
// A grid with zero rows or columns fails with ErrInvalidDimensions.
// Every distinct code is checked with pairing.DecodeChecked: codes above
// pairing.MaxEncoded fail with ErrInvalidEncodedValue.
func Tabulate(g *grid.Dense[uint64], opts ...Option) (*Table, error) {
	o := gatherOptions(opts...)
	if err := grid.ValidateNotNil(g); err != nil {
		return nil, combineErrorf(ctxTabulate, err)
	}
	if g.Rows() <= 0 || g.Cols() <= 0 {
		return nil, combineErrorf(ctxTabulate,
			fmt.Errorf("%d×%d: %w", g.Rows(), g.Cols(), ErrInvalidDimensions))
	}
	bands := planBands(g.Rows(), g.Cols(), o.workers, o.minBandRows)
	parts := make([]histogram, len(bands))
	data := g.Data()
	if len(bands) == 1 {
		parts[0] = countBand(data, bands[0])
	} else {
		var eg errgroup.Group
		eg.SetLimit(o.workers)
		for i, bnd := range bands {
			eg.Go(func() error {
				parts[i] = countBand(data, bnd)
				return nil
			})
		}
		_ = eg.Wait() // countBand cannot fail
	}

	hist := mergeHistograms(parts)
	var bad error
	table := buildTable(hist, func(z uint64) (uint64, uint64) {
		a, b, err := pairing.DecodeChecked(z)
		if err != nil && bad == nil {
			bad = err
		}
		return a, b
	})
	if bad != nil {
		return nil, combineErrorf(ctxTabulate, bad)
	}

	return table, nil
}

// validateInputs runs the shared guard sequence: nil → shape → dtype.
func validateInputs[A, B grid.Cell](a *grid.Dense[A], b *grid.Dense[B]) error {
	if err := grid.ValidateNotNil(a); err != nil {
		return err
	}
	if err := grid.ValidateNotNil(b); err != nil {
		return err
	}
	if err := grid.ValidateSameShape(a, b); err != nil {
		return err
	}
	if err := grid.ValidateDType(a.DType()); err != nil {
		return err
	}

	return grid.ValidateDType(b.DType())
}

// encodeGrids runs encodeBand over all bands under an errgroup and returns the
// coded grid, the merged histogram (nil unless count) and the band count.
func encodeGrids[A, B grid.Cell](ctx context.Context, a *grid.Dense[A], b *grid.Dense[B], o Options, count bool) (*grid.Dense[uint64], histogram, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, 0, err
	}
	rows, cols := a.Shape()
	out, err := grid.NewDense[uint64](rows, cols)
	if err != nil {
		return nil, nil, 0, err
	}

	bands := planBands(rows, cols, o.workers, o.minBandRows)
	parts := make([]histogram, len(bands))
	ad, bd, od := a.Data(), b.Data(), out.Data()

	if len(bands) == 1 {
		h, err := encodeBand(ad, bd, od, cols, bands[0], count)
		if err != nil {
			return nil, nil, 0, err
		}
		parts[0] = h
	} else {
		eg, gctx := errgroup.WithContext(ctx)
		eg.SetLimit(o.workers)
		for i, bnd := range bands {
			eg.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				h, err := encodeBand(ad, bd, od, cols, bnd, count)
				parts[i] = h
				return err
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, nil, 0, err
		}
	}
	if !count {
		return out, nil, len(bands), nil
	}

	return out, mergeHistograms(parts), len(bands), nil
}
