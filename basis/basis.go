package basis

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for basis fitting.
var (
	// ErrNilData indicates a nil snapshot matrix was supplied to Fit.
	ErrNilData = errors.New("basis: snapshot matrix is nil")
	// ErrEmptyData indicates a snapshot matrix with zero rows or columns.
	ErrEmptyData = errors.New("basis: snapshot matrix must have at least one row and one column")
	// ErrBadModes indicates a mode count the data cannot support.
	ErrBadModes = errors.New("basis: mode count not supported by the data")
	// ErrFactorization indicates the underlying decomposition failed to converge.
	ErrFactorization = errors.New("basis: factorization failed")
	// ErrNotFitted indicates Matrix() or a dependent call before a successful Fit.
	ErrNotFitted = errors.New("basis: not fitted")
)

// Interface is the common surface of a measurement basis.
//
// Fit consumes a snapshot matrix X (n_samples × n_features: one observation
// per row, one candidate location per column) and prepares Φ. Matrix returns
// the fitted Φ (n_features × n_modes), or nil before a successful Fit.
type Interface interface {
	Fit(x mat.Matrix) error
	Matrix() *mat.Dense
	Modes() int
	Name() string
}

// checkData validates a snapshot matrix and returns its dimensions.
func checkData(x mat.Matrix) (nSamples, nFeatures int, err error) {
	if x == nil {
		return 0, 0, ErrNilData
	}
	nSamples, nFeatures = x.Dims()
	if nSamples == 0 || nFeatures == 0 {
		return 0, 0, ErrEmptyData
	}

	return nSamples, nFeatures, nil
}
