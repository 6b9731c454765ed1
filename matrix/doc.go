// Package matrix provides the distance matrices consumed by the tour solvers.
//
// The matrix package provides:
//
//   - Matrix, a small bounds-checked interface over an n×n grid of float64 costs.
//   - Dense, a row-major implementation backed by a single flat slice.
//   - Random, the seeded distance-matrix provider (integer costs in [10,500),
//     zero diagonal). The same seed always yields the same matrix.
//   - WriteText / ReadText, a plain-text dump format with one block per matrix.
//   - Validators for shape, finiteness and non-negativity.
//
// Costs need not be symmetric: cost(i,j) and cost(j,i) are independent entries.
// Solvers treat a matrix as read-only for the duration of a search; callers that
// share one matrix across goroutines must not call Set concurrently.
package matrix
