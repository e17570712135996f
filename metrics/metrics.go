// Package metrics holds the Prometheus instrumentation of dijkstep.
//
// A nil *Metrics is valid and records nothing, so callers never branch on
// whether instrumentation is enabled.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Navigation operations, used as the "op" label.
const (
	OpCreate   = "create"
	OpNext     = "next"
	OpPrevious = "previous"
	OpReset    = "reset"
	OpDelete   = "delete"
)

// Metrics groups the collectors of one process.
type Metrics struct {
	Runs           prometheus.Counter
	RunSteps       prometheus.Histogram
	Navigations    *prometheus.CounterVec
	SessionsActive prometheus.Gauge
}

// New creates the collectors and registers them on reg. A nil reg skips
// registration, which keeps tests independent of the default registry.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dijkstep_runs_total",
			Help: "Total number of completed Dijkstra runs",
		}),
		RunSteps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dijkstep_run_steps",
			Help:    "Number of recorded steps per run",
			Buckets: prometheus.ExponentialBuckets(2, 2, 10),
		}),
		Navigations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dijkstep_navigations_total",
				Help: "Total number of session operations",
			},
			[]string{"op"},
		),
		SessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dijkstep_sessions_active",
			Help: "Number of sessions held by this process",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Runs, m.RunSteps, m.Navigations, m.SessionsActive)
	}
	return m
}

// ObserveRun records one completed run of n steps.
func (m *Metrics) ObserveRun(n int) {
	if m == nil {
		return
	}
	m.Runs.Inc()
	m.RunSteps.Observe(float64(n))
}

// Navigated counts one session operation.
func (m *Metrics) Navigated(op string) {
	if m == nil {
		return
	}
	m.Navigations.WithLabelValues(op).Inc()
}

// SessionOpened and SessionClosed track the active session gauge.
func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.SessionsActive.Inc()
}

func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.SessionsActive.Dec()
}
