// Package sensel is a toolkit for data-driven sparse sensor selection:
// pick the handful of measurement locations that best reconstruct a full
// signal, optionally forcing a bounded number of top picks into (or out of)
// a user-defined region.
//
// 🚀 What is sensel?
//
//	A small, focused library that brings together:
//	  • pivotqr/ — greedy column-pivoted QR ranking of candidate locations,
//	    with an optional region constraint on the pivot search
//	  • grid/    — 2D grid ↔ flat index helpers for building constraint regions
//	  • basis/   — Identity, SVD and random-projection measurement bases
//	  • model/   — a selector wrapper tying basis fitting, ranking and
//	    least-squares reconstruction together
//
// ✨ Why choose sensel?
//
//   - Deterministic – same input, same ranking, bit for bit
//   - Fail-fast – infeasible budgets are rejected before any matrix work
//   - Pure Go on top of gonum – no cgo, no services, no global state
//
// Quick sketch (4 candidate locations, keep 3 sensors, force 1 into {0,1}):
//
//	opts := pivotqr.DefaultOptions()
//	opts.Constrained = []int{0, 1}
//	opts.NSensors = 3
//	opts.NConstrained = 1
//	ranked, err := pivotqr.Rank(basisMatrix, &opts)
//
// See each package's doc.go and example_test.go for full walkthroughs.
//
//	go get github.com/katalvlaran/sensel
package sensel
