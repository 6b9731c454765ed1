package cuckoo

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/cuckoo/tsp"
)

// Solution is a tour together with its cycle length.
type Solution struct {
	Tour    tsp.Tour
	Fitness float64
}

// Clone returns a deep copy of s.
func (s Solution) Clone() Solution {
	return Solution{Tour: s.Tour.Clone(), Fitness: s.Fitness}
}

// Population is the fixed-size set of nests, each holding one tour over the
// same n cities.
type Population struct {
	n     int
	nests []tsp.Tour
	cand  []tsp.Tour
	fit   []float64
}

// NewPopulation draws size uniform random tours over n cities from rng.
//
// Errors: ErrInvalidParameter for size < 1, n < 1 or a nil rng.
func NewPopulation(rng *rand.Rand, n, size int) (*Population, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidParameter)
	}
	if size < 1 {
		return nil, fmt.Errorf("%w: population size %d", ErrInvalidParameter, size)
	}

	p := &Population{
		n:     n,
		nests: make([]tsp.Tour, size),
		cand:  make([]tsp.Tour, size),
		fit:   make([]float64, size),
	}
	var (
		i   int
		err error
	)
	for i = 0; i < size; i++ {
		if p.nests[i], err = tsp.RandomTour(n, rng); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Len returns the number of nests.
func (p *Population) Len() int { return len(p.nests) }

// Nest returns a copy of the tour in nest i.
func (p *Population) Nest(i int) tsp.Tour { return p.nests[i].Clone() }

// Evaluate returns the current fitness of every nest under d.
func (p *Population) Evaluate(d *tsp.Distances) []float64 {
	out := make([]float64, len(p.nests))
	for i, t := range p.nests {
		out[i] = d.Cost(t)
	}

	return out
}

// Advance runs one generation (propose, accept, abandon, elitism) against d
// and updates best in place whenever a strictly shorter tour appears.
// It returns the number of fitness evaluations performed.
//
// best must hold a valid tour over the same cities with its fitness; d must
// have been built for the population's city count.
//
// Errors: ErrInvalidParameter for an invalid cfg, a nil rng, a nil best,
// cfg.Nests different from Len, or a city count mismatch with d.
func (p *Population) Advance(rng *rand.Rand, d *tsp.Distances, cfg Config, best *Solution) (int, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	if rng == nil || best == nil || d == nil {
		return 0, fmt.Errorf("%w: nil random source, best or distances", ErrInvalidParameter)
	}
	if cfg.Nests != len(p.nests) {
		return 0, fmt.Errorf("%w: config has %d nests, population has %d",
			ErrInvalidParameter, cfg.Nests, len(p.nests))
	}
	if d.N() != p.n || len(best.Tour) != p.n {
		return 0, fmt.Errorf("%w: population over %d cities, distances over %d, best over %d",
			ErrInvalidParameter, p.n, d.N(), len(best.Tour))
	}
	levy, err := newLevySampler(cfg.Stability)
	if err != nil {
		return 0, err
	}

	return p.advance(rng, d, cfg, levy, best), nil
}

// advance is Advance without validation; the Searcher calls it with a
// sampler prepared once per run.
func (p *Population) advance(rng *rand.Rand, d *tsp.Distances, cfg Config, levy levySampler, best *Solution) int {
	var (
		size  = len(p.nests)
		evals int
		i     int
		fc    float64
		fn    float64
	)

	// Propose: one Lévy-sized perturbation per nest.
	for i = 0; i < size; i++ {
		p.cand[i] = Mutate(rng, p.nests[i], levy.sample(rng)*cfg.StepScale)
	}

	// Accept strictly better candidates; track the global best.
	for i = 0; i < size; i++ {
		fc = d.Cost(p.cand[i])
		fn = d.Cost(p.nests[i])
		evals += 2
		if fc < fn {
			p.nests[i] = p.cand[i]
			if fc < best.Fitness {
				best.Tour = p.cand[i].Clone()
				best.Fitness = fc
			}
		}
		p.cand[i] = nil
	}

	// Abandon: replace nests with fresh random tours. Each nest owns its
	// slice, so it is rewritten in place.
	for i = 0; i < size; i++ {
		if rng.Float64() < cfg.AbandonProbability {
			tsp.RandomizeTour(p.nests[i], rng)
		}
	}

	// Elitism: the worst nest (first on ties) becomes a copy of the best.
	worst := 0
	for i = 0; i < size; i++ {
		p.fit[i] = d.Cost(p.nests[i])
		evals++
		if p.fit[i] > p.fit[worst] {
			worst = i
		}
	}
	p.nests[worst] = best.Tour.Clone()

	return evals
}
