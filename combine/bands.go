// SPDX-License-Identifier: MIT
// Package: combine
//
// Purpose:
//   - Private element-wise kernels (encode, count) over row bands of flat buffers.
//   - Each band owns a private histogram; mergeHistograms folds them afterwards.
//
// Determinism & Performance:
//   - Bands are row-aligned and cover [0, r*c) exactly once, in order.
//   - Kernels read the flat Data() slices directly: one tight loop per band,
//     no interface calls or bounds-checked accessors per cell.
//   - Runs of equal codes (common in categorical rasters) are counted locally and
//     flushed to the map once per run.

package combine

import (
	"fmt"

	"github.com/katalvlaran/lvraster/grid"
	"github.com/katalvlaran/lvraster/pairing"
)

// band is a half-open range [lo, hi) of flat offsets aligned to row boundaries.
type band struct {
	lo, hi int
}

// planBands splits rows×cols into at most workers row-aligned bands of at least
// minRows rows each (the last band may be shorter). An empty shape has no bands.
func planBands(rows, cols, workers, minRows int) []band {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	per := (rows + workers - 1) / workers // ceil(rows/workers)
	if per < minRows {
		per = minRows
	}
	if per > rows {
		per = rows
	}
	out := make([]band, 0, (rows+per-1)/per)
	for r0 := 0; r0 < rows; r0 += per {
		r1 := r0 + per
		if r1 > rows {
			r1 = rows
		}
		out = append(out, band{lo: r0 * cols, hi: r1 * cols})
	}

	return out
}

// histogram counts occurrences of each code.
type histogram map[uint64]int

// runCounter accumulates runs of equal codes before touching the map.
type runCounter struct {
	h    histogram
	prev uint64
	run  int
}

func (rc *runCounter) add(z uint64) {
	if rc.run > 0 && z == rc.prev {
		rc.run++
		return
	}
	rc.flush()
	rc.prev, rc.run = z, 1
}

func (rc *runCounter) flush() {
	if rc.run > 0 {
		rc.h[rc.prev] += rc.run
		rc.run = 0
	}
}

// encodeBand writes Encode(a[k], b[k]) into out[k] for k in [bd.lo, bd.hi) and,
// when count is true, returns the band histogram.
// A negative cell aborts the band with ErrEncodingRangeExceeded.
func encodeBand[A, B grid.Cell](ad []A, bd []B, out []uint64, cols int, bnd band, count bool) (histogram, error) {
	var rc runCounter
	if count {
		rc.h = make(histogram)
	}
	for k := bnd.lo; k < bnd.hi; k++ {
		x, y := int64(ad[k]), int64(bd[k])
		if x < 0 || y < 0 {
			return nil, fmt.Errorf("cell (%d,%d) = (%d,%d): %w", k/cols, k%cols, x, y, ErrEncodingRangeExceeded)
		}
		z := pairing.Encode(uint64(x), uint64(y))
		out[k] = z
		if count {
			rc.add(z)
		}
	}
	rc.flush()

	return rc.h, nil
}

// countBand returns the histogram of codes in data[bnd.lo:bnd.hi].
func countBand(data []uint64, bnd band) histogram {
	rc := runCounter{h: make(histogram)}
	for _, z := range data[bnd.lo:bnd.hi] {
		rc.add(z)
	}
	rc.flush()

	return rc.h
}

// mergeHistograms folds band histograms into the first non-nil one.
func mergeHistograms(parts []histogram) histogram {
	var total histogram
	for _, h := range parts {
		if h == nil {
			continue
		}
		if total == nil {
			total = h
			continue
		}
		for z, n := range h {
			total[z] += n
		}
	}
	if total == nil {
		total = make(histogram)
	}

	return total
}
