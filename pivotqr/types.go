// Package pivotqr defines options for constrained pivoted-QR sensor ranking.
package pivotqr

// Options configures one ranking run.
//
// Fields:
//   - Constrained  — column indices of the basis matrix forming the constrained
//     region. Duplicates are ignored; order is irrelevant. May be empty.
//   - NSensors     — total sensor budget the caller intends to keep. Used only
//     for feasibility validation; Rank always returns the full permutation and
//     the caller slices its prefix. Zero means "no budget declared" and skips
//     the budget feasibility checks.
//   - NConstrained — how many of the first NSensors picks must land inside the
//     constrained region. Zero reproduces the unconstrained ranking exactly.
//
// Example:
//
//	opts := pivotqr.DefaultOptions()
//	opts.Constrained = []int{0, 1, 4, 5}
//	opts.NSensors = 6
//	opts.NConstrained = 2
//
//	ranked, err := pivotqr.Rank(phi, &opts)
//	if err != nil {
//	  // handle ErrTooManySensors, ErrTooFewSamples, ...
//	}
//	selected := ranked[:opts.NSensors]
type Options struct {
	Constrained  []int
	NSensors     int
	NConstrained int
}

// DefaultOptions returns Options for an unconstrained ranking:
// no constrained region, no declared budget.
func DefaultOptions() Options {
	return Options{}
}
