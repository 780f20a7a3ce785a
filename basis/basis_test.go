package basis_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sensel/basis"
)

// snapshots returns a deterministic nSamples×nFeatures data matrix.
func snapshots(nSamples, nFeatures int) *mat.Dense {
	x := mat.NewDense(nSamples, nFeatures, nil)
	for i := 0; i < nSamples; i++ {
		for j := 0; j < nFeatures; j++ {
			x.Set(i, j, math.Sin(float64(i+1)*0.6+float64(j)*1.3))
		}
	}
	return x
}

// TestIdentity_Fit verifies Φ is the transpose of the kept snapshots.
func TestIdentity_Fit(t *testing.T) {
	x := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	var b basis.Identity
	require.NoError(t, b.Fit(x))

	phi := b.Matrix()
	require.NotNil(t, phi)
	r, c := phi.Dims()
	assert.Equal(t, 3, r, "one row per feature")
	assert.Equal(t, 2, c, "one column per snapshot")
	assert.Equal(t, 2.0, phi.At(1, 0), "Φ[i,j] = X[j,i]")
	assert.Equal(t, 6.0, phi.At(2, 1))
	assert.Equal(t, 2, b.Modes())
}

// TestIdentity_CapsModes verifies N keeps only the leading snapshots.
func TestIdentity_CapsModes(t *testing.T) {
	b := basis.Identity{N: 2}
	require.NoError(t, b.Fit(snapshots(5, 4)))
	assert.Equal(t, 2, b.Modes(), "N=2 keeps two modes")
}

// TestIdentity_Errors covers nil data and a negative mode cap.
func TestIdentity_Errors(t *testing.T) {
	var b basis.Identity
	assert.ErrorIs(t, b.Fit(nil), basis.ErrNilData)

	b = basis.Identity{N: -1}
	assert.ErrorIs(t, b.Fit(snapshots(3, 3)), basis.ErrBadModes)
	assert.Nil(t, b.Matrix(), "failed fit must leave no basis behind")
}

// TestSVD_Shape verifies the fitted Φ dimensions and mode accounting.
func TestSVD_Shape(t *testing.T) {
	b := basis.SVD{N: 3}
	require.NoError(t, b.Fit(snapshots(6, 5)))

	phi := b.Matrix()
	require.NotNil(t, phi)
	r, c := phi.Dims()
	assert.Equal(t, 5, r, "one row per feature")
	assert.Equal(t, 3, c, "one column per kept mode")
	assert.Equal(t, 3, b.Modes())
	assert.Len(t, b.SingularValues(), 3)
}

// TestSVD_OrthonormalColumns verifies the kept modes are orthonormal.
func TestSVD_OrthonormalColumns(t *testing.T) {
	b := basis.SVD{N: 2}
	require.NoError(t, b.Fit(snapshots(8, 4)))
	phi := b.Matrix()

	var gram mat.Dense
	gram.Mul(phi.T(), phi)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, gram.At(i, j), 1e-10, "ΦᵀΦ must be the identity")
		}
	}
}

// TestSVD_SingularValuesDescending verifies ordering of the kept spectrum.
func TestSVD_SingularValuesDescending(t *testing.T) {
	var b basis.SVD
	require.NoError(t, b.Fit(snapshots(6, 6)))

	vals := b.SingularValues()
	require.NotEmpty(t, vals)
	for i := 1; i < len(vals); i++ {
		assert.LessOrEqual(t, vals[i], vals[i-1], "singular values must descend")
	}
}

// TestSVD_TooManyModes verifies Modes beyond min(n_samples, n_features) errors.
func TestSVD_TooManyModes(t *testing.T) {
	b := basis.SVD{N: 4}
	assert.ErrorIs(t, b.Fit(snapshots(3, 5)), basis.ErrBadModes)
}

// TestRandomProjection_Deterministic verifies the same seed reproduces Φ and
// different seeds diverge.
func TestRandomProjection_Deterministic(t *testing.T) {
	x := snapshots(4, 6)

	a := basis.RandomProjection{N: 3, Seed: 42}
	b := basis.RandomProjection{N: 3, Seed: 42}
	require.NoError(t, a.Fit(x))
	require.NoError(t, b.Fit(x))
	assert.True(t, mat.Equal(a.Matrix(), b.Matrix()), "same seed must reproduce Φ")

	c := basis.RandomProjection{N: 3, Seed: 7}
	require.NoError(t, c.Fit(x))
	assert.False(t, mat.Equal(a.Matrix(), c.Matrix()), "different seeds must diverge")
}

// TestRandomProjection_BadModes verifies Modes < 1 errors.
func TestRandomProjection_BadModes(t *testing.T) {
	var b basis.RandomProjection
	assert.ErrorIs(t, b.Fit(snapshots(3, 3)), basis.ErrBadModes)
}

// TestInterface_Conformance pins every basis to the shared interface.
func TestInterface_Conformance(t *testing.T) {
	for _, b := range []basis.Interface{
		&basis.Identity{},
		&basis.SVD{},
		&basis.RandomProjection{N: 2},
	} {
		assert.NotEmpty(t, b.Name())
		assert.Nil(t, b.Matrix(), "%s must expose no basis before Fit", b.Name())
		assert.Zero(t, b.Modes(), "%s must report zero modes before Fit", b.Name())
	}
}
