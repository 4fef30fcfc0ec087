package analysis

import (
	"runtime"

	"github.com/calganaygun/networks-playground/config"
	"github.com/calganaygun/networks-playground/metrics"
	"github.com/calganaygun/networks-playground/nullmodel"
)

// Defaults of a zero-configured Analyzer.
const (
	DefaultEnsembleSize = 100
)

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithEnsembleSize sets the number of random graphs. Panics if n < 1.
func WithEnsembleSize(n int) Option {
	if n < 1 {
		panic("analysis: WithEnsembleSize(n<1)")
	}
	return func(a *Analyzer) { a.size = n }
}

// WithMinViable sets the fewest surviving members a run accepts. 0 restores
// the default of half the ensemble, rounded up.
func WithMinViable(n int) Option {
	if n < 0 {
		panic("analysis: WithMinViable(n<0)")
	}
	return func(a *Analyzer) { a.minViable = n }
}

// WithSeedBase offsets member seeds.
func WithSeedBase(base int64) Option {
	return func(a *Analyzer) { a.seedBase = base }
}

// WithWorkers bounds concurrently processed members. n ≤ 0 selects NumCPU.
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		if n <= 0 {
			n = runtime.NumCPU()
		}
		a.workers = n
	}
}

// WithCensusWorkers sets the goroutines used inside each census.
func WithCensusWorkers(n int) Option {
	return func(a *Analyzer) { a.censusWorkers = n }
}

// WithGenerator replaces the default nullmodel.Generator.
func WithGenerator(g *nullmodel.Generator) Option {
	if g == nil {
		panic("analysis: WithGenerator(nil)")
	}
	return func(a *Analyzer) { a.gen = g }
}

// WithMetrics attaches collectors; nil disables them.
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Analyzer) { a.metrics = m }
}

// FromConfig translates a validated configuration into options. c may be
// nil (no cache).
func FromConfig(cfg *config.Config, c nullmodel.Cache) []Option {
	gen := nullmodel.NewGenerator(
		nullmodel.WithCache(c),
		nullmodel.WithMaxAttempts(cfg.Randomizer.MaxAttempts),
		nullmodel.WithPairing(cfg.Pairing()),
	)
	return []Option{
		WithEnsembleSize(cfg.Ensemble.Size),
		WithMinViable(cfg.Ensemble.MinViable),
		WithSeedBase(cfg.Ensemble.SeedBase),
		WithWorkers(cfg.Ensemble.Workers),
		WithCensusWorkers(cfg.Census.Workers),
		WithGenerator(gen),
	}
}
