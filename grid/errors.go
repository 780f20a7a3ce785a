package grid

import "errors"

var (
	// ErrBadShape indicates non-positive grid dimensions.
	ErrBadShape = errors.New("grid: dimensions must be at least 1×1")
	// ErrOutOfRange indicates a cell or flat index outside the grid.
	ErrOutOfRange = errors.New("grid: index out of range")
	// ErrEmptyRegion indicates an inverted box (min bound above max bound).
	ErrEmptyRegion = errors.New("grid: region bounds are inverted")
	// ErrBadRadius indicates a negative circle radius.
	ErrBadRadius = errors.New("grid: radius must be non-negative")
)
