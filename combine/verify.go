// SPDX-License-Identifier: MIT

package combine

import (
	"fmt"

	"github.com/katalvlaran/lvraster/grid"
	"github.com/katalvlaran/lvraster/pairing"
)

const ctxVerify = "Verify"

// Verify checks res against its inputs:
//   - the coded grid has the input shape;
//   - every cell decodes to its input pair;
//   - table codes equal the distinct grid values, with matching pairs and counts;
//   - Σ Count == rows*cols.
//
// The first violation is returned wrapped around ErrInconsistent.
// Complexity: O(r*c + u).
func Verify[A, B grid.Cell](a *grid.Dense[A], b *grid.Dense[B], res *Result) error {
	if err := validateInputs(a, b); err != nil {
		return combineErrorf(ctxVerify, err)
	}
	if res == nil || res.Grid == nil || res.Table == nil {
		return combineErrorf(ctxVerify, ErrNilGrid)
	}
	if err := grid.ValidateSameShape(a, res.Grid); err != nil {
		return combineErrorf(ctxVerify, fmt.Errorf("%w: %w", ErrInconsistent, err))
	}

	ad, bd, zd := a.Data(), b.Data(), res.Grid.Data()
	cols := a.Cols()
	seen := make(histogram, res.Table.Len())
	for k, z := range zd {
		x, y := pairing.Decode(z)
		if int64(x) != int64(ad[k]) || int64(y) != int64(bd[k]) {
			return inconsistentf("cell (%d,%d): code %d decodes to (%d,%d), inputs (%d,%d)",
				k/cols, k%cols, z, x, y, int64(ad[k]), int64(bd[k]))
		}
		seen[z]++
	}

	if len(seen) != res.Table.Len() {
		return inconsistentf("table has %d entries, grid has %d distinct codes", res.Table.Len(), len(seen))
	}
	for z, n := range seen {
		e, ok := res.Table.Lookup(z)
		if !ok {
			return inconsistentf("code %d missing from table", z)
		}
		if pairing.Encode(e.First, e.Second) != z {
			return inconsistentf("code %d: table pair (%d,%d) does not encode to it", z, e.First, e.Second)
		}
		if e.Count != n {
			return inconsistentf("code %d: table count %d, grid count %d", z, e.Count, n)
		}
	}
	if res.Table.Total() != len(zd) {
		return inconsistentf("table total %d != %d cells", res.Table.Total(), len(zd))
	}

	return nil
}

func inconsistentf(format string, args ...any) error {
	return combineErrorf(ctxVerify, fmt.Errorf(format+": %w", append(args, ErrInconsistent)...))
}
