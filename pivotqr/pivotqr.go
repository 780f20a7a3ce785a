package pivotqr

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Rank — constrained column-pivoted QR sensor ranking.
//
// Description:
//
//	Rank greedily triangularizes Φᵀ (Φ = basis, n_features × n_samples) by
//	Householder reflections, at each step pivoting on the trailing column of
//	largest Euclidean norm. The pivot order is returned as a permutation of
//	0..n_features-1, most important location first. When a constrained region
//	is active, the pivot search is masked so the first NConstrained picks land
//	inside the region and later picks avoid it.
//
// Algorithm Outline:
//  1. Validate options and feasibility bounds (fail fast, no matrix work).
//  2. R ← Φᵀ as an owned working copy; p ← [0..n_features).
//  3. For j = 0..min(n_samples, n_features)-1:
//     a. d[c] ← ‖R[j:, j+c]‖₂ for each trailing column c.
//     b. If the constraint is active, mask d against the region via p[j:].
//     c. i ← argmax(d), ties to the lowest index.
//     d. d[i] > 0: reflector u ← R[j:, j+i]/d[i]; u[0] += sign(u[0]) (or +1
//     at zero); u /= √|u[0]|. d[i] = 0: fallback u ← (√2, 0, …, 0).
//     e. Swap columns j and j+i of R and entries j and j+i of p.
//     f. R[j:, j:] −= u ⊗ (uᵀ R[j:, j:]); zero R[j+1:, j] explicitly.
//  4. Return p.
//
// With NConstrained = 0 no masking occurs and the result is exactly the
// unconstrained pivoted-QR ranking. The caller's basis matrix is never
// mutated. A zero-norm pivot (rank-deficient trailing block) takes the fixed
// fallback reflector and the run completes normally.
//
// Complexity:
//
//	Time   = O(k · n_features · n_samples), k = min(n_samples, n_features)
//	Memory = O(n_features · n_samples) working copy + O(n_features) scratch
//
// Errors:
//   - ErrNilBasis, ErrEmptyBasis     — missing or empty input.
//   - ErrBadBudget                   — negative budget or NConstrained > NSensors.
//   - ErrConstraintIndex             — region index outside [0, n_features).
//   - ErrRegionTooSmall              — |region| < NConstrained.
//   - ErrTooManySensors              — NSensors > n_features − |region| + NConstrained.
//   - ErrTooFewSamples               — NSensors > n_samples + NConstrained.
func Rank(basis mat.Matrix, opts *Options) ([]int, error) {
	if basis == nil {
		return nil, ErrNilBasis
	}
	nFeatures, nSamples := basis.Dims()
	if nFeatures == 0 || nSamples == 0 {
		return nil, ErrEmptyBasis
	}

	var o Options
	if opts != nil {
		o = *opts
	}
	region, err := validate(&o, nFeatures, nSamples)
	if err != nil {
		return nil, err
	}

	// R = Φᵀ, owned flat row-major copy: nSamples rows × nFeatures columns.
	nr, nc := nSamples, nFeatures
	r := make([]float64, nr*nc)
	for i := 0; i < nr; i++ {
		for c := 0; c < nc; c++ {
			r[i*nc+c] = basis.At(c, i)
		}
	}

	p := make([]int, nc)
	for i := range p {
		p[i] = i
	}

	active := o.NConstrained > 0 && len(region) > 0
	k := min(nr, nc)

	// Scratch reused across iterations.
	dlens := make([]float64, nc)
	u := make([]float64, nr)
	w := make([]float64, nc)

	for j := 0; j < k; j++ {
		m := nc - j  // trailing columns
		h := nr - j  // trailing rows
		d := dlens[:m]

		// Column norms of the trailing submatrix R[j:, j:].
		for c := 0; c < m; c++ {
			var s float64
			for i := 0; i < h; i++ {
				v := r[(j+i)*nc+(j+c)]
				s += v * v
			}
			d[c] = math.Sqrt(s)
		}

		if active {
			maskRegion(region, d, p, j, o.NConstrained)
		}

		// Pivot: first occurrence of the maximum (numpy argmax tie-break).
		iPiv := 0
		for c := 1; c < m; c++ {
			if d[c] > d[iPiv] {
				iPiv = c
			}
		}
		dlen := d[iPiv]

		// Reflector from the pivot column, copied before the swap.
		uv := u[:h]
		if dlen > 0 {
			for i := 0; i < h; i++ {
				uv[i] = r[(j+i)*nc+(j+iPiv)] / dlen
			}
			switch {
			case uv[0] > 0:
				uv[0]++
			case uv[0] < 0:
				uv[0]--
			default:
				uv[0] = 1
			}
			scale := math.Sqrt(math.Abs(uv[0]))
			for i := 0; i < h; i++ {
				uv[i] /= scale
			}
		} else {
			// Degenerate zero-norm pivot: fixed fallback reflector.
			uv[0] = math.Sqrt2
			for i := 1; i < h; i++ {
				uv[i] = 0
			}
		}

		// Swap the pivot into position j: permutation entries and full columns.
		iAbs := j + iPiv
		p[j], p[iAbs] = p[iAbs], p[j]
		if iAbs != j {
			for i := 0; i < nr; i++ {
				r[i*nc+j], r[i*nc+iAbs] = r[i*nc+iAbs], r[i*nc+j]
			}
		}

		// Rank-1 update: R[j:, j:] -= u ⊗ (uᵀ R[j:, j:]).
		wv := w[:m]
		for c := 0; c < m; c++ {
			var s float64
			for i := 0; i < h; i++ {
				s += uv[i] * r[(j+i)*nc+(j+c)]
			}
			wv[c] = s
		}
		for i := 0; i < h; i++ {
			ui := uv[i]
			if ui == 0 {
				continue
			}
			row := (j + i) * nc
			for c := 0; c < m; c++ {
				r[row+j+c] -= ui * wv[c]
			}
		}
		// Guard against floating-point residue below the diagonal.
		for i := j + 1; i < nr; i++ {
			r[i*nc+j] = 0
		}
	}

	return p, nil
}

// RankUnconstrained ranks every location by plain pivoted QR, with no region
// and no budget checks. Equivalent to Rank(basis, nil).
func RankUnconstrained(basis mat.Matrix) ([]int, error) {
	return Rank(basis, nil)
}

// validate checks the budget and feasibility bounds of one ranking run and
// builds the deduplicated region set. It performs no matrix work and leaves
// the caller's options untouched.
func validate(o *Options, nFeatures, nSamples int) (map[int]struct{}, error) {
	if o.NSensors < 0 || o.NConstrained < 0 || o.NConstrained > o.NSensors {
		return nil, fmt.Errorf("%w: NSensors=%d, NConstrained=%d",
			ErrBadBudget, o.NSensors, o.NConstrained)
	}
	region := make(map[int]struct{}, len(o.Constrained))
	for _, idx := range o.Constrained {
		if idx < 0 || idx >= nFeatures {
			return nil, fmt.Errorf("%w: index %d with n_features=%d",
				ErrConstraintIndex, idx, nFeatures)
		}
		region[idx] = struct{}{}
	}
	maxConst := len(region)
	if o.NConstrained > maxConst {
		return nil, fmt.Errorf("%w: NConstrained=%d, |region|=%d",
			ErrRegionTooSmall, o.NConstrained, maxConst)
	}
	if o.NSensors == 0 {
		return region, nil
	}
	if o.NSensors > nFeatures-maxConst+o.NConstrained {
		return nil, fmt.Errorf("%w: NSensors=%d, n_features=%d, |region|=%d, NConstrained=%d",
			ErrTooManySensors, o.NSensors, nFeatures, maxConst, o.NConstrained)
	}
	if o.NSensors > nSamples+o.NConstrained {
		return nil, fmt.Errorf("%w: NSensors=%d, n_samples=%d, NConstrained=%d",
			ErrTooFewSamples, o.NSensors, nSamples, o.NConstrained)
	}

	return region, nil
}
