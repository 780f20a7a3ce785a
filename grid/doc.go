// Package grid maps regions of a 2D sensor grid to flat column indices of a
// basis matrix. It supports:
//
//   - Row-major ravel/unravel between (row, col) cells and flat indices
//   - Rectangular (Box) and circular (Circle) constraint regions
//   - Deterministic, sorted, duplicate-free index sets
//
// The flat indices it produces feed pivotqr.Options.Constrained: build the
// region here, then hand it to the ranker. Raveling is row-major (C order),
// matching the layout produced by flattening an image or field snapshot row
// by row.
//
// See the examples in this package and pivotqr for usage patterns.
package grid
