// Package model ties a measurement basis and the pivotqr ranker into a
// single selector object: fit once on snapshot data, then read ranked sensor
// locations and reconstruct full signals from sparse measurements.
//
// ⚙️ Usage:
//
//	opts := pivotqr.DefaultOptions()
//	opts.Constrained = region
//	opts.NSensors = 10
//	opts.NConstrained = 2
//
//	sel := model.New(&basis.SVD{N: 8}, &opts)
//	if err := sel.Fit(snapshots); err != nil { ... }
//
//	sensors := sel.SelectedSensors()          // the 10 chosen locations
//	inRegion := sel.ConstrainedSensors()      // the 2 forced into the region
//	full, err := sel.Reconstruct(measured)    // sparse → full signal
//
// The selector is read-only after Fit; concurrent reads are safe, concurrent
// Fit calls are not.
package model
