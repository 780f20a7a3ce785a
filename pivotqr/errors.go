package pivotqr

import "errors"

// Sentinel errors for pivotqr operations. Infeasibility errors are wrapped
// with the offending values at the call site; match them with errors.Is.
var (
	// ErrNilBasis indicates a nil basis matrix was supplied.
	ErrNilBasis = errors.New("pivotqr: basis matrix is nil")
	// ErrEmptyBasis indicates the basis matrix has zero rows or columns.
	ErrEmptyBasis = errors.New("pivotqr: basis matrix must have at least one row and one column")
	// ErrBadBudget indicates a negative budget or NConstrained > NSensors.
	ErrBadBudget = errors.New("pivotqr: sensor budget must satisfy 0 ≤ NConstrained ≤ NSensors")
	// ErrRegionTooSmall indicates the constrained region holds fewer distinct
	// indices than NConstrained demands.
	ErrRegionTooSmall = errors.New("pivotqr: constrained region smaller than NConstrained")
	// ErrConstraintIndex indicates a constrained index outside [0, n_features).
	ErrConstraintIndex = errors.New("pivotqr: constrained index out of range")
	// ErrTooManySensors indicates NSensors exceeds the unconstrained slots plus
	// the allowed constrained slots (n_features - |region| + NConstrained).
	ErrTooManySensors = errors.New("pivotqr: NSensors exceeds available sensor slots")
	// ErrTooFewSamples indicates NSensors exceeds n_samples + NConstrained, so
	// the factorization cannot rank that many independent directions.
	ErrTooFewSamples = errors.New("pivotqr: NSensors exceeds n_samples + NConstrained")
)
