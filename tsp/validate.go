// Package tsp - validation utilities shared by solvers.
//
// This file contains small helpers that:
//  1. Validate distance matrices (shape, n≥2, finiteness, negativity).
//  2. Validate permutations against a matrix order.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go,
//     optionally carrying the underlying matrix sentinel as a second %w.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/cuckoo/matrix"
)

// ValidateDistMatrix verifies that dist is a usable distance matrix for a
// non-trivial tour search and returns its order n.
//
// Contract:
//   - dist must be non-nil and square, every entry finite and non-negative;
//   - n ≥ 2 (a single city admits no cycle worth searching);
//   - symmetry and a zero diagonal are NOT required.
//
// Errors: ErrInvalidMatrix; errors.Is also matches the matrix sentinel
// (matrix.ErrNonSquare, matrix.ErrNegativeCost, …) that caused it.
//
// Complexity: O(n²).
func ValidateDistMatrix(dist matrix.Matrix) (int, error) {
	if err := matrix.ValidateDistance(dist); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidMatrix, err)
	}
	n := dist.Rows()
	if n < 2 {
		return 0, fmt.Errorf("%w: %d cities, need at least 2", ErrInvalidMatrix, n)
	}

	return n, nil
}

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
// It does not allocate besides a single O(n) boolean marker slice.
//
// Errors: ErrInvalidTour.
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidTour, len(perm), n)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return fmt.Errorf("%w: city %d at position %d out of range [0,%d)", ErrInvalidTour, v, i, n)
		}
		if seen[v] {
			return fmt.Errorf("%w: city %d repeated at position %d", ErrInvalidTour, v, i)
		}
		seen[v] = true
	}

	return nil
}
