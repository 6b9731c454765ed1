package bench

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cuckoo/cuckoo"
	"github.com/katalvlaran/cuckoo/matrix"
	"github.com/katalvlaran/cuckoo/tsp"
)

// MatrixSource provides the distance matrix for a problem size.
type MatrixSource func(n int) (matrix.Matrix, error)

// ReferenceMatrices is the default MatrixSource: matrix.Random seeded with
// matrix.ReferenceSeed(n).
func ReferenceMatrices(n int) (matrix.Matrix, error) {
	return matrix.Random(n, matrix.ReferenceSeed(n))
}

// RefinerFactory builds the refiner used by hybrid runs from the run seed.
type RefinerFactory func(seed int64) cuckoo.Refiner

// HillClimbing is the default RefinerFactory.
func HillClimbing(seed int64) cuckoo.Refiner { return tsp.NewHillClimber(seed) }

// TwoOpt is a RefinerFactory using first-improvement 2-opt.
func TwoOpt(seed int64) cuckoo.Refiner { return tsp.NewTwoOpt(seed) }

// Job identifies one run.
type Job struct {
	N       int
	Variant Variant
	Run     int
	Seed    int64
}

// Runner executes (size × variant × run) jobs.
type Runner struct {
	// Table supplies the Config per size.
	Table cuckoo.Table
	// Sizes to run; empty means every size in Table.
	Sizes []int
	// Variants to run; empty means plain and hybrid.
	Variants []Variant
	// Runs per (size, variant); values < 1 mean 1.
	Runs int
	// BaseSeed is the parent of every run seed.
	BaseSeed int64
	// Workers bounds concurrent runs; values < 1 mean GOMAXPROCS.
	Workers int

	Matrices MatrixSource
	Refiner  RefinerFactory
	Metrics  *Metrics
	Logger   *slog.Logger

	// OnRecord, when set, receives every finished record. Calls are
	// serialized; an error aborts the batch.
	OnRecord func(context.Context, Record) error
}

// Jobs expands the runner's sizes, variants and runs in that nesting order.
// Runs with the same size and run index share a seed across variants, so a
// hybrid run replays its plain twin before refining.
//
// Errors: cuckoo.ErrNoConfig for a size missing from Table.
func (r Runner) Jobs() ([]Job, error) {
	sizes := r.Sizes
	if len(sizes) == 0 {
		sizes = r.Table.Sizes()
	}
	variants := r.Variants
	if len(variants) == 0 {
		variants = []Variant{VariantPlain, VariantHybrid}
	}
	runs := max(r.Runs, 1)

	jobs := make([]Job, 0, len(sizes)*len(variants)*runs)
	for _, n := range sizes {
		if _, err := r.Table.Lookup(n); err != nil {
			return nil, err
		}
		for _, v := range variants {
			for run := 0; run < runs; run++ {
				jobs = append(jobs, Job{
					N:       n,
					Variant: v,
					Run:     run,
					Seed:    tsp.DeriveSeed(r.BaseSeed, uint64(n)<<32|uint64(run)),
				})
			}
		}
	}

	return jobs, nil
}

// RunAll executes every job and returns the records in Jobs order. The first
// failing run cancels the rest and its error is returned.
func (r Runner) RunAll(ctx context.Context) ([]Record, error) {
	jobs, err := r.Jobs()
	if err != nil {
		return nil, err
	}
	logger := r.logger()

	source := r.Matrices
	if source == nil {
		source = ReferenceMatrices
	}
	mats := make(map[int]matrix.Matrix)
	for _, job := range jobs {
		if _, ok := mats[job.N]; ok {
			continue
		}
		m, err := source(job.N)
		if err != nil {
			return nil, fmt.Errorf("matrix n=%d: %w", job.N, err)
		}
		mats[job.N] = m
	}

	workers := r.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	logger.Info("starting batch", "jobs", len(jobs), "workers", workers, "base_seed", r.BaseSeed)

	var (
		records = make([]Record, len(jobs))
		sinkMu  sync.Mutex
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, job := range jobs {
		g.Go(func() error {
			rec, err := r.RunOne(gCtx, job, mats[job.N].Clone())
			if err != nil {
				if r.Metrics != nil {
					r.Metrics.ObserveError(job.Variant)
				}
				logger.Error("run failed", "n", job.N, "variant", job.Variant, "run", job.Run, "error", err)
				return fmt.Errorf("n=%d %s run %d: %w", job.N, job.Variant, job.Run, err)
			}
			records[i] = rec

			if r.Metrics != nil {
				r.Metrics.Observe(rec)
			}
			logger.Info("run finished",
				"n", rec.N,
				"variant", rec.Variant,
				"run", rec.Run,
				"fitness", rec.Fitness,
				"elapsed", rec.Elapsed,
				"refined", rec.Refined,
			)

			if r.OnRecord != nil {
				sinkMu.Lock()
				defer sinkMu.Unlock()
				if err := r.OnRecord(gCtx, rec); err != nil {
					return fmt.Errorf("record %s: %w", rec.RunID, err)
				}
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return records, nil
}

// RunOne executes a single job on dist.
func (r Runner) RunOne(ctx context.Context, job Job, dist matrix.Matrix) (Record, error) {
	cfg, err := r.Table.Lookup(job.N)
	if err != nil {
		return Record{}, err
	}

	opts := []cuckoo.Option{cuckoo.WithSeed(job.Seed)}
	if job.Variant == VariantHybrid {
		factory := r.Refiner
		if factory == nil {
			factory = HillClimbing
		}
		opts = append(opts, cuckoo.WithRefiner(factory(job.Seed)))
	}

	res, err := cuckoo.Search(ctx, dist, cfg, opts...)
	if err != nil {
		return Record{}, err
	}

	return Record{
		RunID:       uuid.NewString(),
		Variant:     job.Variant,
		N:           job.N,
		Run:         job.Run,
		Seed:        job.Seed,
		Config:      cfg,
		Tour:        res.Tour,
		Fitness:     res.Fitness,
		Elapsed:     res.Duration,
		Iterations:  res.Iterations,
		Evaluations: res.Evaluations,
		Refined:     res.Refined,
	}, nil
}

func (r Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}

	return slog.New(slog.DiscardHandler)
}
