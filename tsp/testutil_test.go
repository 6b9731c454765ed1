// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cuckoo/matrix"
	"github.com/katalvlaran/cuckoo/tsp"
)

const (
	// epsTiny matches tsp.DefaultEps.
	epsTiny = 1e-12

	// seedDet is a deterministic seed for RNG-based components.
	seedDet = int64(7)
)

// spec4 is the 4-city symmetric reference instance.
var spec4 = [][]float64{
	{0, 1, 2, 3},
	{1, 0, 4, 5},
	{2, 4, 0, 6},
	{3, 5, 6, 0},
}

// asym4 is a small asymmetric instance: going "up" the index order is cheap,
// going "down" is expensive.
var asym4 = [][]float64{
	{0, 1, 9, 9},
	{9, 0, 1, 9},
	{9, 9, 0, 1},
	{1, 9, 9, 0},
}

// mustDense builds a *matrix.Dense from rows or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// euclid builds a symmetric metric matrix from 2D points.
func euclid(t testing.TB, pts [][2]float64) *matrix.Dense {
	t.Helper()
	n := len(pts)
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			dx := pts[i][0] - pts[j][0]
			dy := pts[i][1] - pts[j][1]
			require.NoError(t, m.Set(i, j, math.Hypot(dx, dy)))
		}
	}

	return m
}

// circle places n points evenly on the unit circle; the optimal tour visits
// them in angular order with cost 2n·sin(π/n).
func circle(n int) [][2]float64 {
	pts := make([][2]float64, n)
	var i int
	for i = 0; i < n; i++ {
		th := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{math.Cos(th), math.Sin(th)}
	}

	return pts
}

// bruteForce returns the optimal closed-tour cost by enumerating all
// permutations that start at city 0. Only for tiny n.
func bruteForce(t testing.TB, m matrix.Matrix) float64 {
	t.Helper()
	n := m.Rows()
	rest := make([]int, 0, n-1)
	var i int
	for i = 1; i < n; i++ {
		rest = append(rest, i)
	}

	best := math.Inf(1)
	var permute func(k int)
	permute = func(k int) {
		if k == len(rest) {
			tour := append(tsp.Tour{0}, rest...)
			c, err := tsp.Cost(tour, m)
			require.NoError(t, err)
			if c < best {
				best = c
			}
			return
		}
		var j int
		for j = k; j < len(rest); j++ {
			rest[k], rest[j] = rest[j], rest[k]
			permute(k + 1)
			rest[k], rest[j] = rest[j], rest[k]
		}
	}
	permute(0)

	return best
}

// requireValidTour asserts that tour is a permutation of [0,n).
func requireValidTour(t testing.TB, tour tsp.Tour, n int) {
	t.Helper()
	require.NoError(t, tsp.ValidatePermutation(tour, n), "tour %v", tour)
}
