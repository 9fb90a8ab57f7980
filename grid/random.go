// SPDX-License-Identifier: MIT
// Package: grid
//
// random.go - seeded uniform fixtures.
//
// Contract:
//   - rows, cols > 0 (else ErrInvalidDimensions).
//   - lo < hi (else ErrInvalidRange); values are drawn from [lo, hi).
//   - rng must be non-nil (else ErrNeedRandSource).
//
// Determinism:
//   - Cells are filled in row-major order, one draw per cell, so a fixed seed
//     always yields the same grid.

package grid

import (
	"fmt"
	"math/rand"
)

const methodRandom = "Random"

// Random returns a rows×cols grid with cells drawn uniformly from [lo, hi).
// Complexity: O(r*c).
func Random[T Cell](rows, cols int, lo, hi T, rng *rand.Rand) (*Dense[T], error) {
	if hi <= lo {
		return nil, fmt.Errorf("%s: [%s,%s): %w", methodRandom, formatCell(lo), formatCell(hi), ErrInvalidRange)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
	}
	g, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, err)
	}

	// Offsets are drawn in uint64 space so the full width of 64-bit types is usable.
	span := uint64(hi) - uint64(lo)
	for k := range g.data {
		g.data[k] = lo + T(drawBelow(rng, span))
	}

	return g, nil
}

// drawBelow returns a uniform value in [0, n). n must be > 0.
func drawBelow(rng *rand.Rand, n uint64) uint64 {
	if n <= 1<<63-1 {
		return uint64(rng.Int63n(int64(n)))
	}
	// Rejection sampling for spans wider than Int63n accepts.
	for {
		if v := rng.Uint64(); v < n {
			return v
		}
	}
}
