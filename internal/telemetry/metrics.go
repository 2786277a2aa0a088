package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects benchmark measurements on a private registry so several
// instances (one per command, one per test) never collide.
type Metrics struct {
	registry *prometheus.Registry

	TrialDuration *prometheus.HistogramVec
	AverageTime   *prometheus.GaugeVec
	ChartsTotal   *prometheus.CounterVec
}

// NewMetrics creates and registers all benchmark metrics
func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.TrialDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pqbench_trial_duration_seconds",
			Help:    "Wall-clock duration of individual benchmark trials",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 14),
		},
		[]string{"family", "algorithm", "operation"},
	)

	m.AverageTime = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pqbench_average_seconds",
			Help: "Mean trial duration reported for an algorithm and operation",
		},
		[]string{"family", "algorithm", "operation"},
	)

	m.ChartsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pqbench_charts_total",
			Help: "Report views by outcome (rendered, skipped, failed)",
		},
		[]string{"view", "status"},
	)

	m.registry.MustRegister(m.TrialDuration, m.AverageTime, m.ChartsTotal)
	return m
}

// ObserveTrial records one trial duration.
func (m *Metrics) ObserveTrial(family, algorithm, operation string, elapsed time.Duration) {
	m.TrialDuration.WithLabelValues(family, algorithm, operation).Observe(elapsed.Seconds())
}

// SetAverage records the averaged result for an algorithm and operation.
func (m *Metrics) SetAverage(family, algorithm, operation string, seconds float64) {
	m.AverageTime.WithLabelValues(family, algorithm, operation).Set(seconds)
}

// TrackChart counts one report view outcome.
func (m *Metrics) TrackChart(view, status string) {
	m.ChartsTotal.WithLabelValues(view, status).Inc()
}

// Registry exposes the underlying registry, e.g. for promhttp or tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes all metrics in the Prometheus text format, suitable
// for node_exporter's textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
