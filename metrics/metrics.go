// Package metrics holds the Prometheus collectors of an analysis run.
//
// A nil *Metrics is valid and records nothing, so callers never branch on
// whether metrics are enabled.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "motifs"

// Member outcomes, used as the "outcome" label.
const (
	OutcomeGenerated    = "generated"
	OutcomeCached       = "cached"
	OutcomeUnrealizable = "unrealizable"
	OutcomeMismatch     = "mismatch"
)

// Census targets, used as the "target" label.
const (
	TargetObserved = "observed"
	TargetRandom   = "random"
)

// Metrics groups the run collectors.
type Metrics struct {
	members        *prometheus.CounterVec   // by outcome
	attempts       prometheus.Histogram     // reshuffles per generated member
	censusDuration *prometheus.HistogramVec // by target
	cacheErrors    prometheus.Counter       // degraded Load/Store errors
	ensembleSize   prometheus.Gauge         // surviving members of the last run
	runs           *prometheus.CounterVec   // by status: ok, failed
}

// New creates the collectors and registers them with reg. A nil reg
// disables metrics and returns (nil, nil).
func New(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		return nil, nil
	}

	m := &Metrics{
		members: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "members_total",
			Help:      "Ensemble members processed, by outcome",
		}, []string{"outcome"}),

		attempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_attempts",
			Help:      "Stub-matching reshuffles spent per generated member",
			Buckets:   []float64{1, 2, 3, 5, 8, 10, 20, 50},
		}),

		censusDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "census_duration_seconds",
			Help:      "Motif census duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10), // 0.5ms .. ~2min
		}, []string{"target"}),

		cacheErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_errors_total",
			Help:      "Random-graph cache errors degraded to misses",
		}),

		ensembleSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ensemble_size",
			Help:      "Surviving ensemble members of the last run",
		}),

		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Analysis runs, by status",
		}, []string{"status"}),
	}

	for _, c := range []prometheus.Collector{
		m.members, m.attempts, m.censusDuration, m.cacheErrors, m.ensembleSize, m.runs,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// RecordMember counts one member outcome. attempts is observed only for
// freshly generated members.
func (m *Metrics) RecordMember(outcome string, attempts int) {
	if m == nil {
		return
	}
	m.members.WithLabelValues(outcome).Inc()
	if outcome == OutcomeGenerated {
		m.attempts.Observe(float64(attempts))
	}
}

// ObserveCensus records one census duration.
func (m *Metrics) ObserveCensus(target string, d time.Duration) {
	if m == nil {
		return
	}
	m.censusDuration.WithLabelValues(target).Observe(d.Seconds())
}

// RecordCacheError counts a degraded cache error.
func (m *Metrics) RecordCacheError() {
	if m == nil {
		return
	}
	m.cacheErrors.Inc()
}

// SetEnsembleSize records the surviving member count.
func (m *Metrics) SetEnsembleSize(n int) {
	if m == nil {
		return
	}
	m.ensembleSize.Set(float64(n))
}

// RecordRun counts a finished run.
func (m *Metrics) RecordRun(ok bool) {
	if m == nil {
		return
	}
	status := "ok"
	if !ok {
		status = "failed"
	}
	m.runs.WithLabelValues(status).Inc()
}
