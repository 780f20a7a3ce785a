package basis

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SVD is the proper-orthogonal-decomposition basis: Φ's columns are the
// dominant right singular vectors of the snapshot matrix, i.e. the spatial
// modes carrying the most variance across observations.
type SVD struct {
	// N caps the number of singular vectors kept; 0 means every available
	// mode, min(n_samples, n_features).
	N int

	phi  *mat.Dense
	vals []float64
}

// Fit factorizes X = U·Σ·Vᵀ (thin SVD) and keeps Φ as the first N
// columns of V. Returns ErrBadModes if N is negative or exceeds
// min(n_samples, n_features), ErrFactorization if the decomposition does not
// converge.
// Complexity: O(n_samples·n_features·min(n_samples, n_features)).
func (b *SVD) Fit(x mat.Matrix) error {
	nSamples, nFeatures, err := checkData(x)
	if err != nil {
		return err
	}
	available := min(nSamples, nFeatures)
	if b.N < 0 || b.N > available {
		return fmt.Errorf("%w: N=%d, available=%d", ErrBadModes, b.N, available)
	}
	modes := b.N
	if modes == 0 {
		modes = available
	}

	var svd mat.SVD
	if ok := svd.Factorize(x, mat.SVDThin); !ok {
		return ErrFactorization
	}

	var v mat.Dense
	svd.VTo(&v)

	// Φ = first `modes` columns of V (n_features × modes).
	phi := mat.NewDense(nFeatures, modes, nil)
	for i := 0; i < nFeatures; i++ {
		for j := 0; j < modes; j++ {
			phi.Set(i, j, v.At(i, j))
		}
	}
	b.phi = phi
	b.vals = svd.Values(nil)[:modes]

	return nil
}

// Matrix returns the fitted Φ (n_features × modes), or nil before Fit.
func (b *SVD) Matrix() *mat.Dense { return b.phi }

// Modes returns the fitted mode count, 0 before Fit.
func (b *SVD) Modes() int {
	if b.phi == nil {
		return 0
	}
	_, m := b.phi.Dims()

	return m
}

// SingularValues returns the singular values of the kept modes, largest
// first, or nil before Fit.
func (b *SVD) SingularValues() []float64 {
	if b.vals == nil {
		return nil
	}
	out := make([]float64, len(b.vals))
	copy(out, b.vals)

	return out
}

// Name identifies the basis kind.
func (b *SVD) Name() string { return "svd" }
