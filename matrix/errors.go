// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every public function returns one of these sentinels, possibly wrapped with
// fmt.Errorf("ctx: %w", ErrX); callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite costs are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeCost signals a negative entry in a distance matrix.
	ErrNegativeCost = errors.New("matrix: negative cost")

	// ErrParse is returned by ReadText for malformed input.
	ErrParse = errors.New("matrix: malformed text input")
)
