package basis

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// RandomProjection is a data-independent Gaussian basis: Φ entries are drawn
// from N(0, 1/N), so projected snapshot geometry is preserved in
// expectation. Fit reads only the shape of X.
type RandomProjection struct {
	// N is the projection dimension; must be at least 1.
	N int
	// Seed fixes the generator so repeated fits yield the same Φ.
	Seed int64

	phi *mat.Dense
}

// Fit draws Φ (n_features × N) from the seeded generator.
// Returns ErrBadModes if N < 1.
// Complexity: O(n_features·N).
func (b *RandomProjection) Fit(x mat.Matrix) error {
	_, nFeatures, err := checkData(x)
	if err != nil {
		return err
	}
	if b.N < 1 {
		return fmt.Errorf("%w: N=%d", ErrBadModes, b.N)
	}

	rng := rand.New(rand.NewSource(b.Seed))
	sd := 1 / math.Sqrt(float64(b.N))
	phi := mat.NewDense(nFeatures, b.N, nil)
	for i := 0; i < nFeatures; i++ {
		for j := 0; j < b.N; j++ {
			phi.Set(i, j, rng.NormFloat64()*sd)
		}
	}
	b.phi = phi

	return nil
}

// Matrix returns the fitted Φ (n_features × N), or nil before Fit.
func (b *RandomProjection) Matrix() *mat.Dense { return b.phi }

// Modes returns the fitted mode count, 0 before Fit.
func (b *RandomProjection) Modes() int {
	if b.phi == nil {
		return 0
	}
	_, m := b.phi.Dims()

	return m
}

// Name identifies the basis kind.
func (b *RandomProjection) Name() string { return "random_projection" }
