package model

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sensel/basis"
	"github.com/katalvlaran/sensel/pivotqr"
)

// Sentinel errors for selector operations.
var (
	// ErrNotFitted indicates an accessor call before a successful Fit.
	ErrNotFitted = errors.New("model: selector is not fitted")
	// ErrMeasurementSize indicates a measurement vector whose length differs
	// from the number of selected sensors.
	ErrMeasurementSize = errors.New("model: measurement length does not match selected sensors")
	// ErrSolve indicates the least-squares reconstruction system could not be
	// solved (conditioning failure).
	ErrSolve = errors.New("model: reconstruction solve failed")
)

// Selector wraps a measurement basis and the constrained ranker.
// Zero value is not usable; construct with New.
type Selector struct {
	basis basis.Interface
	opts  pivotqr.Options

	phi    *mat.Dense // fitted Φ, n_features × n_modes
	ranked []int      // full permutation, most important first
}

// New builds a Selector over b with ranking options opts. A nil b defaults
// to the Identity basis; a nil opts defaults to an unconstrained ranking of
// every location.
func New(b basis.Interface, opts *pivotqr.Options) *Selector {
	if b == nil {
		b = &basis.Identity{}
	}
	s := &Selector{basis: b}
	if opts != nil {
		s.opts = *opts
		s.opts.Constrained = append([]int(nil), opts.Constrained...)
	}

	return s
}

// Fit fits the basis on the snapshot matrix x (n_samples × n_features) and
// ranks every candidate location. On any error the selector stays unfitted.
// Complexity: basis fit + O(k·n_features·n_modes) ranking.
func (s *Selector) Fit(x mat.Matrix) error {
	if err := s.basis.Fit(x); err != nil {
		return fmt.Errorf("model: fit basis %q: %w", s.basis.Name(), err)
	}
	phi := s.basis.Matrix()

	ranked, err := pivotqr.Rank(phi, &s.opts)
	if err != nil {
		return fmt.Errorf("model: rank sensors: %w", err)
	}

	s.phi = phi
	s.ranked = ranked

	return nil
}

// AllSensors returns a copy of the full ranking, most important first.
// Returns ErrNotFitted before Fit.
func (s *Selector) AllSensors() ([]int, error) {
	if s.ranked == nil {
		return nil, ErrNotFitted
	}

	return append([]int(nil), s.ranked...), nil
}

// SelectedSensors returns the first NSensors entries of the ranking — the
// selection itself. A zero budget selects one sensor per basis mode.
// Returns ErrNotFitted before Fit.
func (s *Selector) SelectedSensors() ([]int, error) {
	if s.ranked == nil {
		return nil, ErrNotFitted
	}

	return append([]int(nil), s.ranked[:s.budget()]...), nil
}

// ConstrainedSensors returns the leading NConstrained selected sensors — the
// picks forced into the constrained region. Empty when no quota was set.
// Returns ErrNotFitted before Fit.
func (s *Selector) ConstrainedSensors() ([]int, error) {
	if s.ranked == nil {
		return nil, ErrNotFitted
	}

	return append([]int(nil), s.ranked[:s.opts.NConstrained]...), nil
}

// Reconstruct estimates the full signal from measurements y taken at the
// selected sensors (same order as SelectedSensors). It solves the
// least-squares system Φ[s,:]·β ≈ y and returns Φ·β, length n_features.
// Returns ErrNotFitted before Fit, ErrMeasurementSize on a length mismatch,
// ErrSolve if the system cannot be solved.
// Complexity: O(n_sensors·modes² + n_features·modes).
func (s *Selector) Reconstruct(y []float64) ([]float64, error) {
	if s.ranked == nil {
		return nil, ErrNotFitted
	}
	sensors := s.ranked[:s.budget()]
	if len(y) != len(sensors) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrMeasurementSize, len(y), len(sensors))
	}

	_, modes := s.phi.Dims()
	sub := mat.NewDense(len(sensors), modes, nil)
	for i, loc := range sensors {
		for j := 0; j < modes; j++ {
			sub.Set(i, j, s.phi.At(loc, j))
		}
	}

	var beta mat.Dense
	if err := beta.Solve(sub, mat.NewVecDense(len(y), y)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSolve, err)
	}

	var full mat.Dense
	full.Mul(s.phi, &beta)
	nFeatures, _ := s.phi.Dims()
	out := make([]float64, nFeatures)
	for i := range out {
		out[i] = full.At(i, 0)
	}

	return out, nil
}

// Basis exposes the wrapped basis (for inspecting modes or singular values).
func (s *Selector) Basis() basis.Interface { return s.basis }

// budget resolves the effective selection size: NSensors, or one sensor per
// mode when no budget was declared, clamped to the ranking length.
func (s *Selector) budget() int {
	n := s.opts.NSensors
	if n == 0 {
		n = s.basis.Modes()
	}
	if n > len(s.ranked) {
		n = len(s.ranked)
	}

	return n
}
