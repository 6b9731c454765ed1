package bench_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cuckoo/bench"
	"github.com/katalvlaran/cuckoo/cuckoo"
	"github.com/katalvlaran/cuckoo/matrix"
	"github.com/katalvlaran/cuckoo/tsp"
)

func smallTable() cuckoo.Table {
	return cuckoo.Table{
		6: {Nests: 5, MaxIterations: 20, AbandonProbability: 0.25, StepScale: 1, Stability: 1.5},
		9: {Nests: 6, MaxIterations: 30, AbandonProbability: 0.6, StepScale: 1.5, Stability: 1.5},
	}
}

func TestRunnerJobs(t *testing.T) {
	r := bench.Runner{Table: smallTable(), Runs: 2, BaseSeed: 1}
	jobs, err := r.Jobs()
	require.NoError(t, err)
	require.Len(t, jobs, 2*2*2)

	assert.Equal(t, 6, jobs[0].N)
	assert.Equal(t, bench.VariantPlain, jobs[0].Variant)
	assert.Equal(t, bench.VariantHybrid, jobs[2].Variant)
	assert.Equal(t, 9, jobs[7].N)

	// Twins share seeds across variants; runs differ.
	assert.Equal(t, jobs[0].Seed, jobs[2].Seed)
	assert.NotEqual(t, jobs[0].Seed, jobs[1].Seed)

	_, err = bench.Runner{Table: smallTable(), Sizes: []int{7}}.Jobs()
	require.ErrorIs(t, err, cuckoo.ErrNoConfig)
}

func TestRunnerRunAll(t *testing.T) {
	var saved []bench.Record
	metrics := bench.NewMetrics()
	r := bench.Runner{
		Table:    smallTable(),
		Runs:     2,
		BaseSeed: 42,
		Workers:  3,
		Metrics:  metrics,
		OnRecord: func(_ context.Context, rec bench.Record) error {
			saved = append(saved, rec)
			return nil
		},
	}
	recs, err := r.RunAll(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 8)
	require.Len(t, saved, 8)

	jobs, err := r.Jobs()
	require.NoError(t, err)
	ids := make(map[string]bool)
	for i, rec := range recs {
		assert.Equal(t, jobs[i].N, rec.N)
		assert.Equal(t, jobs[i].Variant, rec.Variant)
		assert.Equal(t, jobs[i].Seed, rec.Seed)
		_, err := uuid.Parse(rec.RunID)
		require.NoError(t, err)
		ids[rec.RunID] = true

		m, err := bench.ReferenceMatrices(rec.N)
		require.NoError(t, err)
		c, err := tsp.Cost(rec.Tour, m)
		require.NoError(t, err)
		assert.Equal(t, c, rec.Fitness)
	}
	assert.Len(t, ids, 8)

	// A hybrid run replays its plain twin, so it is never worse.
	for i := range recs {
		if recs[i].Variant != bench.VariantPlain {
			continue
		}
		for j := range recs {
			if recs[j].Variant == bench.VariantHybrid && recs[j].Seed == recs[i].Seed {
				assert.LessOrEqual(t, recs[j].Fitness, recs[i].Fitness)
			}
		}
	}

	n, err := testutil.GatherAndCount(metrics.Gatherer(), "cuckoo_runs_total", "cuckoo_best_fitness")
	require.NoError(t, err)
	assert.Equal(t, 2+4, n) // runs_total{plain,hybrid} + best{2 variants × 2 sizes}
}

// TestRunnerWorkerIndependence checks that results do not depend on the
// worker count.
func TestRunnerWorkerIndependence(t *testing.T) {
	base := bench.Runner{Table: smallTable(), Runs: 2, BaseSeed: 7, Variants: []bench.Variant{bench.VariantPlain}}

	serial := base
	serial.Workers = 1
	a, err := serial.RunAll(context.Background())
	require.NoError(t, err)

	parallel := base
	parallel.Workers = 4
	b, err := parallel.RunAll(context.Background())
	require.NoError(t, err)

	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].Tour, b[i].Tour)
		assert.Equal(t, a[i].Fitness, b[i].Fitness)
	}
}

func TestRunnerErrors(t *testing.T) {
	boom := errors.New("boom")

	r := bench.Runner{
		Table:    smallTable(),
		Matrices: func(int) (matrix.Matrix, error) { return nil, boom },
	}
	_, err := r.RunAll(context.Background())
	require.ErrorIs(t, err, boom)

	metrics := bench.NewMetrics()
	r = bench.Runner{
		Table:    smallTable(),
		Variants: []bench.Variant{bench.VariantPlain},
		Metrics:  metrics,
		Matrices: func(n int) (matrix.Matrix, error) {
			return matrix.NewFromRows([][]float64{{0, -1}, {1, 0}})
		},
	}
	_, err = r.RunAll(context.Background())
	require.ErrorIs(t, err, cuckoo.ErrInvalidMatrix)

	r = bench.Runner{
		Table:    smallTable(),
		Sizes:    []int{6},
		OnRecord: func(context.Context, bench.Record) error { return boom },
	}
	_, err = r.RunAll(context.Background())
	require.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bench.Runner{Table: smallTable()}.RunAll(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunnerTwoOptRefiner(t *testing.T) {
	r := bench.Runner{
		Table:    smallTable(),
		Sizes:    []int{9},
		Variants: []bench.Variant{bench.VariantHybrid},
		Refiner:  bench.TwoOpt,
	}
	recs, err := r.RunAll(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.NoError(t, tsp.ValidatePermutation(recs[0].Tour, 9))
}
