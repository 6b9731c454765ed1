package matrix

import "math/rand"

const (
	// MinCost is the smallest off-diagonal cost produced by Random (inclusive).
	MinCost = 10

	// MaxCost is the upper bound of costs produced by Random (exclusive).
	MaxCost = 500

	// referenceSeedBase offsets the problem size to obtain the seed of the
	// reference workload matrices.
	referenceSeedBase int64 = 5000
)

// ReferenceSizes lists the problem sizes of the reference workload.
var ReferenceSizes = []int{10, 20, 50, 100, 200, 500}

// ReferenceSeed returns the seed used to generate the reference matrix of size n.
func ReferenceSeed(n int) int64 {
	return int64(n) + referenceSeedBase
}

// Random returns an n×n distance matrix with integer costs drawn uniformly
// from [MinCost, MaxCost) and a zero diagonal. The matrix is generally
// asymmetric: cost(i,j) and cost(j,i) are independent draws.
//
// All n² entries are drawn in row-major order before the diagonal is cleared,
// so the same seed always produces the same matrix.
//
// Errors: ErrInvalidDimensions if n <= 0.
// Complexity: O(n²).
func Random(n int, seed int64) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		rng  = rand.New(rand.NewSource(seed))
		span = MaxCost - MinCost
		k    int
	)
	for k = range m.data {
		m.data[k] = float64(MinCost + rng.Intn(span))
	}
	for k = 0; k < n; k++ {
		m.data[k*n+k] = 0
	}

	return m, nil
}
