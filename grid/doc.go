// Package grid provides a generic, row-major integer grid (a raster layer).
//
// What:
//
//   - Dense[T] stores rows×cols cells of any Go integer type in one flat slice
//     (offset = i*cols + j) with bounds-checked At/Set and visitor helpers.
//   - DType describes the element type at run time (width and signedness) so
//     consumers can reject element types they cannot process.
//   - Centralized validators (nil, same shape, allowed dtype) return sentinel
//     errors that callers wrap with their own context.
//   - Random builds seeded uniform fixtures for tests and benchmarks.
//
// Determinism:
//
//   - All loops run in fixed row-major order; no map iteration.
//   - Random is reproducible for a fixed *rand.Rand seed.
//
// Errors:
//
//   - ErrInvalidDimensions, ErrEmptyGrid, ErrNonRectangular: construction.
//   - ErrOutOfRange: At/Set/Row with invalid indices.
//   - ErrNilGrid, ErrShapeMismatch, ErrUnsupportedDType: validators.
//   - ErrInvalidRange, ErrNeedRandSource: Random.
package grid
