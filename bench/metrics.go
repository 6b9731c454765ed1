package bench

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the benchmark collectors on a private registry, so several
// Runners (or tests) never collide on the default one.
type Metrics struct {
	reg *prometheus.Registry

	runsTotal        *prometheus.CounterVec
	generationsTotal *prometheus.CounterVec
	evaluations      *prometheus.CounterVec
	bestFitness      *prometheus.GaugeVec
	runDuration      *prometheus.HistogramVec
	refinedTotal     *prometheus.CounterVec

	mu   sync.Mutex
	best map[string]float64
}

// NewMetrics registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		reg:  reg,
		best: make(map[string]float64),

		// runsTotal counts finished runs by variant and result
		runsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cuckoo_runs_total",
			Help: "Total search runs by variant and result",
		}, []string{"variant", "result"}),

		generationsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cuckoo_generations_total",
			Help: "Total generations executed by variant",
		}, []string{"variant"}),

		evaluations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cuckoo_fitness_evaluations_total",
			Help: "Total fitness evaluations by variant",
		}, []string{"variant"}),

		// bestFitness keeps the lowest fitness seen per variant and size
		bestFitness: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "cuckoo_best_fitness",
			Help: "Best tour length found by variant and problem size",
		}, []string{"variant", "n"}),

		runDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cuckoo_run_duration_seconds",
			Help:    "Search run duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 16), // 1ms to ~33s
		}, []string{"variant"}),

		refinedTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cuckoo_refined_total",
			Help: "Hybrid runs whose refined tour was adopted",
		}, []string{"variant"}),
	}
}

// Observe records a successful run. Safe for concurrent use.
func (m *Metrics) Observe(rec Record) {
	v := string(rec.Variant)
	m.runsTotal.WithLabelValues(v, "ok").Inc()
	m.generationsTotal.WithLabelValues(v).Add(float64(rec.Iterations))
	m.evaluations.WithLabelValues(v).Add(float64(rec.Evaluations))
	m.runDuration.WithLabelValues(v).Observe(rec.Elapsed.Seconds())
	if rec.Refined {
		m.refinedTotal.WithLabelValues(v).Inc()
	}
	m.updateBest(v, rec.N, rec.Fitness)
}

// ObserveError records a failed run.
func (m *Metrics) ObserveError(v Variant) {
	m.runsTotal.WithLabelValues(string(v), "error").Inc()
}

// updateBest lowers the gauge when fitness beats the value seen so far.
func (m *Metrics) updateBest(variant string, n int, fitness float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	size := strconv.Itoa(n)
	key := variant + "/" + size
	if cur, ok := m.best[key]; ok && cur <= fitness {
		return
	}
	m.best[key] = fitness
	m.bestFitness.WithLabelValues(variant, size).Set(fitness)
}

// Gatherer exposes the registry, e.g. for promhttp or tests.
func (m *Metrics) Gatherer() prometheus.Gatherer { return m.reg }

// WriteTextfile writes the current metrics in the text exposition format to
// path (atomically, via a temporary file), for the node-exporter textfile
// collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}
