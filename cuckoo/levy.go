package cuckoo

import (
	"fmt"
	"math"
	"math/rand"
)

// LevySigma returns Mantegna's scale σ for stability index beta.
//
// Errors: ErrInvalidParameter when beta ≤ 0, is NaN or ±Inf, or yields a
// non-finite or non-positive σ.
func LevySigma(beta float64) (float64, error) {
	if !(beta > 0) || math.IsInf(beta, 0) {
		return 0, fmt.Errorf("%w: Lévy stability must be finite and > 0 (got %g)", ErrInvalidParameter, beta)
	}
	num := math.Gamma(1+beta) * math.Sin(math.Pi*beta/2)
	den := math.Gamma((1+beta)/2) * beta * math.Pow(2, (beta-1)/2)
	sigma := math.Pow(num/den, 1/beta)
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma <= 0 {
		return 0, fmt.Errorf("%w: Lévy stability %g gives sigma %g", ErrInvalidParameter, beta, sigma)
	}

	return sigma, nil
}

// LevyStep draws one Lévy-distributed step with stability beta from rng:
// u·σ / |v|^(1/β) with u, v standard normals drawn in that order.
//
// Errors: ErrInvalidParameter for a nil rng or an invalid beta.
func LevyStep(rng *rand.Rand, beta float64) (float64, error) {
	if rng == nil {
		return 0, fmt.Errorf("%w: nil random source", ErrInvalidParameter)
	}
	s, err := newLevySampler(beta)
	if err != nil {
		return 0, err
	}

	return s.sample(rng), nil
}

// levySampler caches σ and 1/β for a run.
type levySampler struct {
	sigma   float64
	invBeta float64
}

func newLevySampler(beta float64) (levySampler, error) {
	sigma, err := LevySigma(beta)
	if err != nil {
		return levySampler{}, err
	}

	return levySampler{sigma: sigma, invBeta: 1 / beta}, nil
}

func (s levySampler) sample(rng *rand.Rand) float64 {
	u := rng.NormFloat64() * s.sigma
	v := rng.NormFloat64()

	return u / math.Pow(math.Abs(v), s.invBeta)
}
