// Package pivotqr ranks candidate sensor locations by greedy column-pivoted
// QR factorization, optionally constrained to place a bounded number of the
// top-ranked sensors inside a caller-supplied region.
//
// 🚀 What is pivoted-QR sensor ranking?
//
//	Given a basis matrix Φ (n_features × n_samples) whose rows are candidate
//	measurement locations, a column-pivoted QR of Φᵀ greedily picks, at each
//	step, the location carrying the most "new" information — the trailing
//	column of largest Euclidean norm. The resulting pivot order is a ranking
//	of locations by reconstruction importance. It is used in:
//	  • sparse sensor placement for flow/field reconstruction
//	  • choosing probe points for reduced-order models
//	  • subset selection for tall regression problems
//
// ✨ Key features:
//   - region constraint: force the first NConstrained picks into a given
//     index set, then keep the rest of the budget out of it
//   - exact baseline compatibility: with NConstrained = 0 the ranking is
//     identical to the unconstrained pivoted QR, element for element
//   - rank-deficient inputs handled via a fixed fallback reflector — the
//     run always completes with a full, valid permutation
//   - fail-fast feasibility checks before any matrix work
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/sensel/pivotqr"
//
//	opts := pivotqr.DefaultOptions()
//	opts.Constrained = []int{0, 1, 4, 5}
//	opts.NSensors = 6
//	opts.NConstrained = 2
//
//	ranked, err := pivotqr.Rank(basisMatrix, &opts)
//	// ranked[:opts.NSensors] is the selection, most important first.
//
// Performance:
//
//   - Time:   O(k · n_features · n_samples), k = min(n_samples, n_features)
//   - Memory: one working copy of Φᵀ plus O(n_features) scratch
//
// See example_test.go for runnable scenarios.
package pivotqr
