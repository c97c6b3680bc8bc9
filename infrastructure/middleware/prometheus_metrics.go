// Package middleware provides cross-cutting concerns for the dominance
// core: metrics and tracing wrappers around the cone engine. The core
// itself stays free of observability dependencies.
package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ahrav/go-drsa/internal/ports"
)

// PrometheusMetrics implements the MetricsCollector interface using
// Prometheus. It provides real-time monitoring of cone computation,
// predicate throughput, and cone cardinality for the dominance engine.
type PrometheusMetrics struct {
	predicateEvaluations *prometheus.CounterVec
	coneComputations     *prometheus.CounterVec
	computationLatency   *prometheus.HistogramVec
	coneCardinality      *prometheus.HistogramVec
	systemGauges         *prometheus.GaugeVec
}

// NewPrometheusMetrics creates a new PrometheusMetrics instance and
// registers all required metrics in the given registry. A nil registerer
// falls back to the global Prometheus registry.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		predicateEvaluations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dominance_predicate_evaluations_total",
				Help: "Total number of dominance predicate evaluations performed.",
			},
			[]string{"table"},
		),
		coneComputations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dominance_cone_computations_total",
				Help: "Total number of cone computations, by cone family and outcome.",
			},
			[]string{"cone", "status", "table"},
		),
		computationLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dominance_cone_computation_duration_seconds",
				Help:    "Time spent computing a single object's cone.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"cone", "table"},
		),
		coneCardinality: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dominance_cone_cardinality",
				Help:    "Number of objects in computed cones.",
				Buckets: prometheus.ExponentialBuckets(1, 2, 16),
			},
			[]string{"cone", "table"},
		),
		systemGauges: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dominance_engine_state",
				Help: "Current state values for the dominance engine.",
			},
			[]string{"metric", "table"},
		),
	}
}

// tableLabel extracts the owning table's label with a safe default.
func tableLabel(labels map[string]string) string {
	if t, ok := labels["table"]; ok {
		return t
	}
	return "unknown"
}

// RecordLatency implements the MetricsCollector interface by recording
// cone computation latency in a Prometheus histogram.
func (pm *PrometheusMetrics) RecordLatency(
	operation string,
	duration time.Duration,
	labels map[string]string,
) {
	pm.computationLatency.WithLabelValues(operation, tableLabel(labels)).Observe(duration.Seconds())
}

// RecordCounter implements the MetricsCollector interface by
// incrementing Prometheus counters.
func (pm *PrometheusMetrics) RecordCounter(
	metric string, value float64, labels map[string]string,
) {
	table := tableLabel(labels)

	switch metric {
	case "predicate_evaluations":
		pm.predicateEvaluations.WithLabelValues(table).Add(value)
	case "cone_computations":
		status, ok := labels["status"]
		if !ok {
			status = "success"
		}
		pm.coneComputations.WithLabelValues(labels["cone"], status, table).Add(value)
	default:
		pm.coneComputations.WithLabelValues(metric, "success", table).Add(value)
	}
}

// RecordGauge implements the MetricsCollector interface by setting
// Prometheus gauge values.
func (pm *PrometheusMetrics) RecordGauge(
	metric string, value float64, labels map[string]string,
) {
	pm.systemGauges.WithLabelValues(metric, tableLabel(labels)).Set(value)
}

// RecordHistogram implements the MetricsCollector interface by recording
// values in the cardinality histogram.
func (pm *PrometheusMetrics) RecordHistogram(
	metric string, value float64, labels map[string]string,
) {
	pm.coneCardinality.WithLabelValues(metric, tableLabel(labels)).Observe(value)
}

// Compile-time verification that PrometheusMetrics implements MetricsCollector.
var _ ports.MetricsCollector = (*PrometheusMetrics)(nil)
