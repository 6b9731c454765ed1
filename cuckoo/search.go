package cuckoo

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/cuckoo/matrix"
	"github.com/katalvlaran/cuckoo/tsp"
)

// State is the phase a Searcher is in.
type State int

const (
	StateInitializing State = iota
	StateIterating
	StateIntensifying
	StateDone
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateIterating:
		return "iterating"
	case StateIntensifying:
		return "intensifying"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Observer is notified on every phase change and after every generation.
// generation is 0 outside the Iterating phase; best is the current global best
// fitness (0 before it exists). Observers run synchronously on the search
// goroutine and must not retain or mutate search state.
type Observer func(state State, generation int, best float64)

// Refiner is an optional local search run once after the last generation.
// It builds its own tour from the matrix; tsp.HillClimber and tsp.TwoOpt
// satisfy it.
type Refiner interface {
	Refine(ctx context.Context, dist matrix.Matrix) (tsp.Tour, float64, error)
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithRNG sets the random source. A nil rng is ignored.
func WithRNG(rng *rand.Rand) Option {
	return func(s *Searcher) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithSeed sets the random source to tsp.NewRNG(seed) (seed 0 maps to the
// package default).
func WithSeed(seed int64) Option {
	return func(s *Searcher) { s.rng = tsp.NewRNG(seed) }
}

// WithRefiner enables the intensification phase. A nil refiner disables it.
func WithRefiner(r Refiner) Option {
	return func(s *Searcher) { s.refiner = r }
}

// WithHistory records the best fitness after every generation in Result.History.
func WithHistory(on bool) Option {
	return func(s *Searcher) { s.history = on }
}

// WithObserver installs a progress callback.
func WithObserver(fn Observer) Option {
	return func(s *Searcher) { s.observer = fn }
}

// Result is the outcome of one search run.
type Result struct {
	// Tour is the best tour found; Fitness its cycle length.
	Tour    tsp.Tour
	Fitness float64
	// Iterations is the number of generations run (always MaxIterations).
	Iterations int
	// Evaluations counts fitness evaluations, refinement excluded.
	Evaluations int
	// Refined reports whether the Refiner's tour was adopted.
	Refined bool
	// Duration is the wall time of the whole run.
	Duration time.Duration
	// History holds the best fitness after each generation when enabled.
	History []float64
}

// Searcher drives Cuckoo Search runs with a fixed Config.
// It is not safe for concurrent use: its random source advances across runs.
type Searcher struct {
	cfg      Config
	levy     levySampler
	rng      *rand.Rand
	refiner  Refiner
	history  bool
	observer Observer
}

// NewSearcher validates cfg and applies opts. Without WithRNG or WithSeed the
// default seed is used.
//
// Errors: ErrInvalidParameter.
func NewSearcher(cfg Config, opts ...Option) (*Searcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	levy, err := newLevySampler(cfg.Stability)
	if err != nil {
		return nil, err
	}

	s := &Searcher{cfg: cfg, levy: levy}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = tsp.NewRNG(0)
	}

	return s, nil
}

// Config returns the Searcher's configuration.
func (s *Searcher) Config() Config { return s.cfg }

// Search runs one complete search on dist. The matrix is snapshotted first,
// so later writes to dist do not affect the run. ctx is checked between
// generations and before refinement; cancellation returns ctx.Err() and no
// result.
//
// Errors: ErrInvalidMatrix, ErrRefine, ctx.Err().
func (s *Searcher) Search(ctx context.Context, dist matrix.Matrix) (*Result, error) {
	start := time.Now()

	// Initializing.
	s.notify(StateInitializing, 0, 0)
	d, err := tsp.NewDistances(dist)
	if err != nil {
		return nil, err
	}
	pop, err := NewPopulation(s.rng, d.N(), s.cfg.Nests)
	if err != nil {
		return nil, err
	}
	best := Solution{Tour: pop.Nest(0)}
	best.Fitness = d.Cost(best.Tour)

	res := &Result{Evaluations: 1}
	if s.history {
		res.History = make([]float64, 0, s.cfg.MaxIterations)
	}

	// Iterating.
	s.notify(StateIterating, 0, best.Fitness)
	var g int
	for g = 1; g <= s.cfg.MaxIterations; g++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		res.Evaluations += pop.advance(s.rng, d, s.cfg, s.levy, &best)
		if s.history {
			res.History = append(res.History, best.Fitness)
		}
		s.notify(StateIterating, g, best.Fitness)
	}
	res.Iterations = s.cfg.MaxIterations

	// Intensifying.
	if s.refiner != nil {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		s.notify(StateIntensifying, 0, best.Fitness)
		refined, err := s.refine(ctx, dist, d)
		if err != nil {
			return nil, err
		}
		if refined.Fitness < best.Fitness {
			best = refined
			res.Refined = true
		}
	}

	res.Tour = best.Tour
	res.Fitness = best.Fitness
	res.Duration = time.Since(start)
	s.notify(StateDone, 0, best.Fitness)

	return res, nil
}

// refine runs the Refiner and re-evaluates its tour on the snapshot so the
// adopted fitness is consistent with the rest of the run.
func (s *Searcher) refine(ctx context.Context, dist matrix.Matrix, d *tsp.Distances) (Solution, error) {
	tour, _, err := s.refiner.Refine(ctx, dist)
	if err != nil {
		return Solution{}, fmt.Errorf("%w: %w", ErrRefine, err)
	}
	fit, err := d.CheckedCost(tour)
	if err != nil {
		return Solution{}, fmt.Errorf("%w: %w", ErrRefine, err)
	}

	return Solution{Tour: tour.Clone(), Fitness: fit}, nil
}

func (s *Searcher) notify(state State, generation int, best float64) {
	if s.observer != nil {
		s.observer(state, generation, best)
	}
}

// Search is a convenience wrapper: NewSearcher(cfg, opts...).Search(ctx, dist).
func Search(ctx context.Context, dist matrix.Matrix, cfg Config, opts ...Option) (*Result, error) {
	s, err := NewSearcher(cfg, opts...)
	if err != nil {
		return nil, err
	}

	return s.Search(ctx, dist)
}
