// Package combine merges two categorical grids into one coded grid plus a
// Value Attribute Table (VAT) of every distinct pair and its cell count.
//
// What:
//
//   - Combine pairs A[r,c] and B[r,c] with the Cantor function (package pairing),
//     producing a *grid.Dense[uint64] whose codes decode back to the pair.
//   - The Table maps each distinct code to {First, Second, Count}.
//   - Encode and Tabulate expose the two halves separately; Verify re-checks
//     every invariant of a Result against its inputs.
//
// How:
//
//  1. Rows are split into bands. Each band is encoded by its own goroutine from
//     the flat input buffers and counted into a private histogram, so no
//     counter is shared between goroutines.
//  2. Band histograms are merged once all bands finish.
//  3. Each distinct code is decoded once; the Table entry carries its own count.
//
// Contract:
//
//   - Both grids non-nil (ErrNilGrid) and of identical shape (ErrShapeMismatch).
//   - Element types limited to int8, int16, uint8, uint16 (ErrUnsupportedDType).
//     Codes from these types never exceed pairing.MaxEncoded.
//   - Negative cells in signed grids fail with ErrEncodingRangeExceeded and the
//     cell coordinates. No partial result is returned on any error.
//
// Invariants of a Result:
//
//   - decode(Grid[r,c]) == (A[r,c], B[r,c]) for every cell.
//   - Σ Entry.Count == rows*cols; every Count > 0.
//   - Table codes == distinct Grid values.
//
// Complexity:
//
//   - Encode: O(r*c) split across workers. Table build: O(u log u) for u distinct pairs.
package combine
