package basis

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Identity is the raw-data basis: Φ is the transpose of the first N
// snapshots, so each mode is one observed field. N = 0 keeps every snapshot.
type Identity struct {
	// N caps the number of snapshots kept as modes; 0 means all.
	N int

	phi *mat.Dense
}

// Fit stores Φ = X[:modes]ᵀ, where modes = min(N, n_samples) (or n_samples
// when N is 0). Returns ErrBadModes for a negative N.
// Complexity: O(n_samples·n_features).
func (b *Identity) Fit(x mat.Matrix) error {
	nSamples, nFeatures, err := checkData(x)
	if err != nil {
		return err
	}
	if b.N < 0 {
		return fmt.Errorf("%w: N=%d", ErrBadModes, b.N)
	}
	modes := nSamples
	if b.N > 0 && b.N < modes {
		modes = b.N
	}

	phi := mat.NewDense(nFeatures, modes, nil)
	for i := 0; i < nFeatures; i++ {
		for j := 0; j < modes; j++ {
			phi.Set(i, j, x.At(j, i))
		}
	}
	b.phi = phi

	return nil
}

// Matrix returns the fitted Φ (n_features × modes), or nil before Fit.
func (b *Identity) Matrix() *mat.Dense { return b.phi }

// Modes returns the fitted mode count, 0 before Fit.
func (b *Identity) Modes() int {
	if b.phi == nil {
		return 0
	}
	_, m := b.phi.Dims()

	return m
}

// Name identifies the basis kind.
func (b *Identity) Name() string { return "identity" }
