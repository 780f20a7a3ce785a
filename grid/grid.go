package grid

import "math"

// Grid describes a rows×cols sensor layout whose cells are addressed either
// by (row, col) or by a row-major flat index into the basis matrix.
type Grid struct {
	rows, cols int
}

// New constructs a Grid with the given dimensions.
// Returns ErrBadShape if either dimension is non-positive.
// Complexity: O(1).
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrBadShape
	}

	return &Grid{rows: rows, cols: cols}, nil
}

// Rows returns the number of grid rows. Complexity: O(1).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns. Complexity: O(1).
func (g *Grid) Cols() int { return g.cols }

// Size returns the total number of cells, i.e. n_features. Complexity: O(1).
func (g *Grid) Size() int { return g.rows * g.cols }

// InBounds reports whether (r, c) lies within the grid. Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// Ravel converts cell (r, c) to its row-major flat index.
// Returns ErrOutOfRange if the cell lies outside the grid.
// Complexity: O(1).
func (g *Grid) Ravel(r, c int) (int, error) {
	if !g.InBounds(r, c) {
		return 0, ErrOutOfRange
	}

	return r*g.cols + c, nil
}

// Unravel converts a row-major flat index back to its cell (r, c).
// Returns ErrOutOfRange if idx is outside [0, Size()).
// Complexity: O(1).
func (g *Grid) Unravel(idx int) (r, c int, err error) {
	if idx < 0 || idx >= g.Size() {
		return 0, 0, ErrOutOfRange
	}

	return idx / g.cols, idx % g.cols, nil
}

// Box returns the flat indices of every cell with rmin ≤ r ≤ rmax and
// cmin ≤ c ≤ cmax (inclusive bounds). Bounds are clamped to the grid, so a
// box hanging over the edge yields its in-grid intersection; a box entirely
// outside yields an empty, non-nil slice. Returns ErrEmptyRegion if a min
// bound exceeds its max bound. Indices come back sorted ascending.
// Complexity: O(box area).
func (g *Grid) Box(rmin, rmax, cmin, cmax int) ([]int, error) {
	if rmin > rmax || cmin > cmax {
		return nil, ErrEmptyRegion
	}
	rmin = max(rmin, 0)
	cmin = max(cmin, 0)
	rmax = min(rmax, g.rows-1)
	cmax = min(cmax, g.cols-1)

	idx := make([]int, 0, area(rmin, rmax)*area(cmin, cmax))
	for r := rmin; r <= rmax; r++ {
		for c := cmin; c <= cmax; c++ {
			idx = append(idx, r*g.cols+c)
		}
	}

	return idx, nil
}

// Circle returns the flat indices of every cell whose Euclidean distance
// from center (rc, cc) is at most radius. The center may lie outside the
// grid; only in-grid cells are returned, sorted ascending. Returns
// ErrBadRadius for a negative radius.
// Complexity: O(rows·cols).
func (g *Grid) Circle(rc, cc int, radius float64) ([]int, error) {
	if radius < 0 {
		return nil, ErrBadRadius
	}

	idx := make([]int, 0)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if math.Hypot(float64(r-rc), float64(c-cc)) <= radius {
				idx = append(idx, r*g.cols+c)
			}
		}
	}

	return idx, nil
}

// area returns the number of integers in [lo, hi], or 0 when empty.
func area(lo, hi int) int {
	if hi < lo {
		return 0
	}

	return hi - lo + 1
}
