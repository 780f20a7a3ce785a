// Package basis provides measurement bases for sensor selection: fitted
// representations Φ (n_features × n_modes) of a snapshot matrix, consumed by
// the pivotqr ranker and the model wrapper.
//
// Three bases are provided:
//
//   - Identity         — the raw snapshots themselves, transposed
//   - SVD              — dominant right singular vectors of the data
//   - RandomProjection — a seeded Gaussian projection, data-independent
//
// All bases share the same lifecycle: construct, Fit on a (n_samples ×
// n_features) snapshot matrix, then read Matrix(). Snapshots are rows,
// features (candidate sensor locations) are columns.
package basis
