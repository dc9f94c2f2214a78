// Package observability provides Prometheus instrumentation for the
// transition engine. A nil *Metrics is valid and records nothing, so the
// engine stays dependency-free for callers that do not scrape.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics aggregates the engine's run counters.
type Metrics struct {
	runsStarted    prometheus.Counter
	runsCompleted  prometheus.Counter
	runsCanceled   prometheus.Counter
	runsSuperseded prometheus.Counter
	activeRuns     prometheus.Gauge
}

// New creates the engine collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "transition",
			Name:      "runs_started_total",
			Help:      "Transition runs created, including superseding runs.",
		}),
		runsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "transition",
			Name:      "runs_completed_total",
			Help:      "Transition runs that reached cleanup via their timeout.",
		}),
		runsCanceled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "transition",
			Name:      "runs_canceled_total",
			Help:      "Transition runs ended by explicit cancellation.",
		}),
		runsSuperseded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "transition",
			Name:      "runs_superseded_total",
			Help:      "Transition runs displaced by a newer run on the same target.",
		}),
		activeRuns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "transition",
			Name:      "active_runs",
			Help:      "Runs currently in flight.",
		}),
	}
	reg.MustRegister(m.runsStarted, m.runsCompleted, m.runsCanceled, m.runsSuperseded, m.activeRuns)
	return m
}

// RunStarted records a new run.
func (m *Metrics) RunStarted() {
	if m == nil {
		return
	}
	m.runsStarted.Inc()
	m.activeRuns.Inc()
}

// RunCompleted records a run that cleaned up normally.
func (m *Metrics) RunCompleted() {
	if m == nil {
		return
	}
	m.runsCompleted.Inc()
	m.activeRuns.Dec()
}

// RunCanceled records an explicitly canceled run.
func (m *Metrics) RunCanceled() {
	if m == nil {
		return
	}
	m.runsCanceled.Inc()
	m.activeRuns.Dec()
}

// RunSuperseded records a run displaced by a newer one.
func (m *Metrics) RunSuperseded() {
	if m == nil {
		return
	}
	m.runsSuperseded.Inc()
	m.activeRuns.Dec()
}
