package bench

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the runs of one (variant, size) pair.
type Summary struct {
	Variant Variant
	N       int
	Runs    int

	BestFitness float64
	MeanFitness float64
	StdFitness  float64

	MeanSeconds float64
	StdSeconds  float64

	Refined int
}

// Summarize groups records by (variant, n) and computes best, mean and
// sample standard deviation of fitness and wall time. A single run has a
// standard deviation of 0. The result is sorted by n, then variant.
func Summarize(records []Record) []Summary {
	type key struct {
		v Variant
		n int
	}
	var (
		order   []key
		fitness = make(map[key][]float64)
		seconds = make(map[key][]float64)
		refined = make(map[key]int)
	)
	for _, rec := range records {
		k := key{rec.Variant, rec.N}
		if _, ok := fitness[k]; !ok {
			order = append(order, k)
		}
		fitness[k] = append(fitness[k], rec.Fitness)
		seconds[k] = append(seconds[k], rec.Elapsed.Seconds())
		if rec.Refined {
			refined[k]++
		}
	}

	out := make([]Summary, 0, len(order))
	for _, k := range order {
		fs, ts := fitness[k], seconds[k]
		s := Summary{Variant: k.v, N: k.n, Runs: len(fs), Refined: refined[k]}
		s.BestFitness = slices.Min(fs)
		s.MeanFitness, s.StdFitness = meanStd(fs)
		s.MeanSeconds, s.StdSeconds = meanStd(ts)
		out = append(out, s)
	}
	slices.SortStableFunc(out, func(a, b Summary) int {
		if c := cmp.Compare(a.N, b.N); c != 0 {
			return c
		}
		return cmp.Compare(a.Variant, b.Variant)
	})

	return out
}

func meanStd(xs []float64) (float64, float64) {
	if len(xs) < 2 {
		return stat.Mean(xs, nil), 0
	}

	return stat.MeanStdDev(xs, nil)
}

// BestPerSize returns, for every size, the record with the lowest fitness
// (the earliest on ties), sorted by n.
func BestPerSize(records []Record) []Record {
	best := make(map[int]Record)
	for _, rec := range records {
		if cur, ok := best[rec.N]; !ok || rec.Fitness < cur.Fitness {
			best[rec.N] = rec
		}
	}

	out := make([]Record, 0, len(best))
	for _, rec := range best {
		out = append(out, rec)
	}
	slices.SortFunc(out, func(a, b Record) int { return cmp.Compare(a.N, b.N) })

	return out
}
