package cuckoo

import (
	"fmt"
	"maps"
	"math"
	"slices"
)

// Config holds the per-run search parameters. It is bound before a run starts
// and never mutated by the search.
type Config struct {
	// Nests is the population size (> 0).
	Nests int
	// MaxIterations is the exact number of generations (> 0).
	MaxIterations int
	// AbandonProbability is the per-nest, per-generation chance of being
	// replaced by a fresh random tour, in [0,1].
	AbandonProbability float64
	// StepScale multiplies every Lévy sample (> 0).
	StepScale float64
	// Stability is the Lévy index β (> 0).
	Stability float64
}

// Validate reports the first out-of-domain field.
//
// Errors: ErrInvalidParameter.
func (c Config) Validate() error {
	switch {
	case c.Nests <= 0:
		return fmt.Errorf("%w: Nests must be > 0 (got %d)", ErrInvalidParameter, c.Nests)
	case c.MaxIterations <= 0:
		return fmt.Errorf("%w: MaxIterations must be > 0 (got %d)", ErrInvalidParameter, c.MaxIterations)
	case !(c.AbandonProbability >= 0 && c.AbandonProbability <= 1):
		return fmt.Errorf("%w: AbandonProbability must lie in [0,1] (got %g)", ErrInvalidParameter, c.AbandonProbability)
	case !(c.StepScale > 0) || math.IsInf(c.StepScale, 0):
		return fmt.Errorf("%w: StepScale must be finite and > 0 (got %g)", ErrInvalidParameter, c.StepScale)
	case !(c.Stability > 0) || math.IsInf(c.Stability, 0):
		return fmt.Errorf("%w: Stability must be finite and > 0 (got %g)", ErrInvalidParameter, c.Stability)
	}
	if _, err := LevySigma(c.Stability); err != nil {
		return err
	}

	return nil
}

// String renders the parameters in the benchmark report layout:
// "nests=50, iter=500, pa=0.6, alpha=1.5, lambda=1.5".
func (c Config) String() string {
	return fmt.Sprintf("nests=%d, iter=%d, pa=%g, alpha=%g, lambda=%g",
		c.Nests, c.MaxIterations, c.AbandonProbability, c.StepScale, c.Stability)
}

// Table maps a problem size (number of cities) to its Config.
// It is passed by value at call time; nothing in this package holds one.
type Table map[int]Config

// DefaultTable returns a fresh copy of the reference parameter table tuned for
// the benchmark sizes 10, 20, 50, 100, 200 and 500.
func DefaultTable() Table {
	return Table{
		10:  {Nests: 50, MaxIterations: 500, AbandonProbability: 0.6, StepScale: 1.5, Stability: 1.5},
		20:  {Nests: 50, MaxIterations: 200, AbandonProbability: 0.6, StepScale: 1.0, Stability: 2.0},
		50:  {Nests: 25, MaxIterations: 500, AbandonProbability: 0.25, StepScale: 2.0, Stability: 1.5},
		100: {Nests: 50, MaxIterations: 500, AbandonProbability: 0.6, StepScale: 1.0, Stability: 1.5},
		200: {Nests: 50, MaxIterations: 200, AbandonProbability: 0.6, StepScale: 1.5, Stability: 1.5},
		500: {Nests: 50, MaxIterations: 200, AbandonProbability: 0.25, StepScale: 0.5, Stability: 1.0},
	}
}

// Lookup returns the Config registered for n. There is no fallback entry.
//
// Errors: ErrNoConfig.
func (t Table) Lookup(n int) (Config, error) {
	cfg, ok := t[n]
	if !ok {
		return Config{}, fmt.Errorf("%w: n=%d", ErrNoConfig, n)
	}

	return cfg, nil
}

// Sizes returns the registered problem sizes in ascending order.
func (t Table) Sizes() []int {
	return slices.Sorted(maps.Keys(t))
}

// Validate checks every entry; the error names the first failing size.
//
// Errors: ErrInvalidParameter.
func (t Table) Validate() error {
	for _, n := range t.Sizes() {
		if n < 2 {
			return fmt.Errorf("%w: table size %d, need at least 2 cities", ErrInvalidParameter, n)
		}
		if err := t[n].Validate(); err != nil {
			return fmt.Errorf("n=%d: %w", n, err)
		}
	}

	return nil
}
