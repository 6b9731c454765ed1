package cuckoo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cuckoo/cuckoo"
	"github.com/katalvlaran/cuckoo/matrix"
	"github.com/katalvlaran/cuckoo/tsp"
)

const seedDet = int64(20240601)

// spec4 is the 4-city reference instance.
var spec4 = [][]float64{
	{0, 1, 2, 3},
	{1, 0, 4, 5},
	{2, 4, 0, 6},
	{3, 5, 6, 0},
}

// smallCfg is a quick configuration for tests.
var smallCfg = cuckoo.Config{
	Nests:              4,
	MaxIterations:      50,
	AbandonProbability: 0.3,
	StepScale:          1.0,
	Stability:          1.5,
}

func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

func mustRandom(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.Random(n, matrix.ReferenceSeed(n))
	require.NoError(t, err)

	return m
}

// fixedRefiner returns a preset tour (or error) regardless of the matrix.
type fixedRefiner struct {
	tour  tsp.Tour
	err   error
	calls int
}

func (f *fixedRefiner) Refine(_ context.Context, dist matrix.Matrix) (tsp.Tour, float64, error) {
	f.calls++
	if f.err != nil {
		return nil, 0, f.err
	}
	c, err := tsp.Cost(f.tour, dist)
	if err != nil {
		return f.tour, 0, nil
	}

	return f.tour.Clone(), c, nil
}
