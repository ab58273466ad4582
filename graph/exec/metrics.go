package exec

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects Prometheus metrics for script execution, namespaced
// "flowgraph_":
//
//   - runs_total (counter, label status): completed runs by outcome.
//   - commands_total (counter, labels block and status): executed commands.
//   - command_latency_ms (histogram, label block): per-command latency.
//   - retries_total (counter, label block): retry attempts.
//   - inflight_runs (gauge): runs currently executing.
//
// Expose them by registering with a registry served over
// promhttp.HandlerFor.
type Metrics struct {
	runs           *prometheus.CounterVec
	commands       *prometheus.CounterVec
	commandLatency *prometheus.HistogramVec
	retries        *prometheus.CounterVec
	inflightRuns   prometheus.Gauge
}

// NewMetrics creates and registers the collectors. A nil registry uses the
// global default registerer.
//
// Use a private registry per runner in tests to avoid duplicate
// registration panics.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flowgraph",
			Name:      "runs_total",
			Help:      "Completed script runs by outcome.",
		}, []string{"status"}),
		commands: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flowgraph",
			Name:      "commands_total",
			Help:      "Executed commands by block and outcome.",
		}, []string{"block", "status"}),
		commandLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "flowgraph",
			Name:      "command_latency_ms",
			Help:      "Command execution latency in milliseconds.",
			Buckets:   []float64{1, 5, 10, 50, 100, 500, 1000, 5000, 10000},
		}, []string{"block"}),
		retries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flowgraph",
			Name:      "retries_total",
			Help:      "Command retry attempts by block.",
		}, []string{"block"}),
		inflightRuns: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "flowgraph",
			Name:      "inflight_runs",
			Help:      "Script runs currently executing.",
		}),
	}
}

// Nil-safe recording helpers; the runner calls these unconditionally.

func (m *Metrics) runStarted() {
	if m == nil {
		return
	}
	m.inflightRuns.Inc()
}

func (m *Metrics) runFinished(status string) {
	if m == nil {
		return
	}
	m.inflightRuns.Dec()
	m.runs.WithLabelValues(status).Inc()
}

func (m *Metrics) commandObserved(blockID, status string, latencyMS float64) {
	if m == nil {
		return
	}
	m.commands.WithLabelValues(blockID, status).Inc()
	m.commandLatency.WithLabelValues(blockID).Observe(latencyMS)
}

func (m *Metrics) retryObserved(blockID string) {
	if m == nil {
		return
	}
	m.retries.WithLabelValues(blockID).Inc()
}
