package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cuckoo/matrix"
	"github.com/katalvlaran/cuckoo/tsp"
)

// TestCost_KnownValues covers hand-computed cycle lengths including the
// closing edge.
func TestCost_KnownValues(t *testing.T) {
	m := mustDense(t, spec4)

	c, err := tsp.Cost(tsp.Tour{0, 1, 2, 3}, m)
	require.NoError(t, err)
	assert.Equal(t, 1.0+4+6+3, c)

	c, err = tsp.Cost(tsp.Tour{0, 2, 1, 3}, m)
	require.NoError(t, err)
	assert.Equal(t, 2.0+4+5+3, c)

	two := mustDense(t, [][]float64{{0, 7}, {7, 0}})
	c, err = tsp.Cost(tsp.Tour{1, 0}, two)
	require.NoError(t, err)
	assert.Equal(t, 14.0, c)
}

// TestCost_Errors covers the validation paths.
func TestCost_Errors(t *testing.T) {
	m := mustDense(t, spec4)

	_, err := tsp.Cost(tsp.Tour{0, 1, 2}, m)
	require.ErrorIs(t, err, tsp.ErrInvalidTour)

	_, err = tsp.Cost(tsp.Tour{0, 1, 1, 3}, m)
	require.ErrorIs(t, err, tsp.ErrInvalidTour)

	_, err = tsp.Cost(tsp.Tour{0, 1, 2, 4}, m)
	require.ErrorIs(t, err, tsp.ErrInvalidTour)

	_, err = tsp.Cost(tsp.Tour{0, 1}, nil)
	require.ErrorIs(t, err, tsp.ErrInvalidMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = tsp.Cost(tsp.Tour{0, 1}, rect)
	require.ErrorIs(t, err, tsp.ErrInvalidMatrix)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestCost_RotationInvariant checks that every rotation of a tour has the same
// cost, on both symmetric and asymmetric matrices.
func TestCost_RotationInvariant(t *testing.T) {
	for _, rows := range [][][]float64{spec4, asym4} {
		m := mustDense(t, rows)
		base := tsp.Tour{2, 0, 3, 1}
		want, err := tsp.Cost(base, m)
		require.NoError(t, err)

		for _, city := range base {
			rot, err := tsp.RotateToStart(base, city)
			require.NoError(t, err)
			got, err := tsp.Cost(rot, m)
			require.NoError(t, err)
			assert.Equal(t, want, got, "rotation %v", rot)
		}
	}
}

// TestCost_Reversal checks that reversal preserves cost on a symmetric matrix
// and changes it on an asymmetric one.
func TestCost_Reversal(t *testing.T) {
	tour := tsp.Tour{0, 1, 2, 3}

	sym := mustDense(t, spec4)
	a, err := tsp.Cost(tour, sym)
	require.NoError(t, err)
	b, err := tsp.Cost(tsp.Reversed(tour), sym)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	asym := mustDense(t, asym4)
	a, err = tsp.Cost(tour, asym)
	require.NoError(t, err)
	b, err = tsp.Cost(tsp.Reversed(tour), asym)
	require.NoError(t, err)
	assert.Equal(t, 4.0, a)
	assert.Equal(t, 36.0, b)
}

// TestDistances_SnapshotIsolation checks that NewDistances copies the matrix
// and that its Cost matches tsp.Cost.
func TestDistances_SnapshotIsolation(t *testing.T) {
	m := mustDense(t, spec4)
	d, err := tsp.NewDistances(m)
	require.NoError(t, err)
	require.Equal(t, 4, d.N())

	tour := tsp.Tour{3, 1, 0, 2}
	want, err := tsp.Cost(tour, m)
	require.NoError(t, err)
	assert.Equal(t, want, d.Cost(tour))

	require.NoError(t, m.Set(0, 1, 100))
	assert.Equal(t, 1.0, d.At(0, 1))

	_, err = d.CheckedCost(tsp.Tour{0, 0, 1, 2})
	require.ErrorIs(t, err, tsp.ErrInvalidTour)
}

// TestValidateDistMatrix covers the accepted and rejected shapes.
func TestValidateDistMatrix(t *testing.T) {
	n, err := tsp.ValidateDistMatrix(mustDense(t, asym4))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = tsp.ValidateDistMatrix(mustDense(t, [][]float64{{0}}))
	require.ErrorIs(t, err, tsp.ErrInvalidMatrix)

	_, err = tsp.ValidateDistMatrix(mustDense(t, [][]float64{{0, -1}, {1, 0}}))
	require.ErrorIs(t, err, tsp.ErrInvalidMatrix)
	require.ErrorIs(t, err, matrix.ErrNegativeCost)

	_, err = tsp.NewDistances(nil)
	require.ErrorIs(t, err, tsp.ErrInvalidMatrix)
}
