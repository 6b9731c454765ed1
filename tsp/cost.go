// Package tsp - cost utilities shared by the solvers.
//
// This file provides the cycle-cost evaluator in two flavours:
//   - Cost: validated public entry point over any matrix.Matrix.
//   - Distances: an immutable row-major snapshot with an unchecked Cost used
//     in hot loops once the tour invariant is guaranteed by construction.
//
// The cost of a tour t of length n is
//
//	Σ_{i=0}^{n-2} d(t[i], t[i+1]) + d(t[n-1], t[0])
//
// i.e. the route plus the closing edge back to the start.
//
// Complexity:
//   - O(n) time per evaluation, O(1) extra space (Cost also spends O(n) on
//     permutation validation).
package tsp

import (
	"fmt"

	"github.com/katalvlaran/cuckoo/matrix"
)

// Cost returns the closed-cycle length of tour under dist.
//
// Contract:
//   - dist must be square with finite, non-negative entries (ErrInvalidMatrix);
//   - tour must be a permutation of [0,n) with n = dist.Rows() (ErrInvalidTour).
//
// Complexity: O(n) + the O(n) permutation check.
func Cost(tour Tour, dist matrix.Matrix) (float64, error) {
	if err := matrix.ValidateSquare(dist); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidMatrix, err)
	}
	n := dist.Rows()
	if err := ValidatePermutation(tour, n); err != nil {
		return 0, err
	}

	var (
		sum float64
		w   float64
		err error
		i   int
	)
	for i = 0; i < n; i++ {
		w, err = dist.At(tour[i], tour[(i+1)%n])
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidMatrix, err)
		}
		sum += w
	}

	return sum, nil
}

// Distances is an immutable, validated snapshot of a distance matrix stored
// row-major in a flat buffer: w[u*n+v] == d(u,v).
type Distances struct {
	n int
	w []float64
}

// NewDistances validates dist (see ValidateDistMatrix) and copies it into a
// fresh snapshot; later writes to dist do not affect the snapshot.
//
// Complexity: O(n²) time and space.
func NewDistances(dist matrix.Matrix) (*Distances, error) {
	if _, err := ValidateDistMatrix(dist); err != nil {
		return nil, err
	}
	w, n, err := matrix.Flatten(dist)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMatrix, err)
	}

	return &Distances{n: n, w: w}, nil
}

// N returns the number of cities.
func (d *Distances) N() int { return d.n }

// At returns d(u,v) without bounds checks beyond the slice's own.
func (d *Distances) At(u, v int) float64 { return d.w[u*d.n+v] }

// Cost returns the closed-cycle length of t. The caller guarantees that t is
// a permutation of [0,N()); no validation is performed.
//
// Complexity: O(n).
func (d *Distances) Cost(t Tour) float64 {
	var (
		n   = d.n
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += d.w[t[i]*n+t[i+1]]
	}
	sum += d.w[t[n-1]*n+t[0]]

	return sum
}

// CheckedCost validates t against the snapshot order before evaluating it.
//
// Errors: ErrInvalidTour.
func (d *Distances) CheckedCost(t Tour) (float64, error) {
	if err := ValidatePermutation(t, d.n); err != nil {
		return 0, err
	}

	return d.Cost(t), nil
}
