// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for distance-matrix validation.
//   - Return sentinel errors tagged with the validator name so call sites can
//     wrap uniformly and still match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols > 0).
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() || m.Rows() <= 0 {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateDistance checks the distance-matrix contract: square, every entry
// finite and non-negative. The diagonal is not required to be zero.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrNegativeCost.
// Complexity: O(n²).
func ValidateDistance(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}

	var (
		n    = m.Rows()
		i, j int
		x    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if x, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateDistance", err)
			}
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateDistance(%d,%d)", i, j), ErrNaNInf)
			}
			if x < 0 {
				return validatorErrorf(fmt.Sprintf("ValidateDistance(%d,%d)", i, j), ErrNegativeCost)
			}
		}
	}

	return nil
}

// IsSymmetric reports whether |m[i,j] - m[j,i]| <= tol for all i<j.
// A nil or non-square matrix is reported as not symmetric.
// Complexity: O(n²) on the strict upper triangle.
func IsSymmetric(m Matrix, tol float64) bool {
	if ValidateSquare(m) != nil {
		return false
	}
	if tol < 0 {
		tol = -tol
	}

	var (
		n        = m.Rows()
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return false
			}
		}
	}

	return true
}
