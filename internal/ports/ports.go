// Package ports defines the interfaces through which collaborators
// consume the dominance core: cone accessors for approximation and
// rule-induction logic, and the metrics hook used by observability
// middleware.
package ports

import (
	"time"

	"github.com/ahrav/go-drsa/internal/domain"
)

// ConeProvider exposes per-object accessors for the four dominance
// cones of an information table. Implementations compute cones lazily
// and memoize them; two successive requests for the same object return
// sets with identical membership.
type ConeProvider interface {
	// NumberOfObjects returns the number of objects cones are kept for.
	NumberOfObjects() int

	// PositiveDCone returns D+(x) = {y : y D x}, the objects dominating x.
	PositiveDCone(objectIndex int) (*domain.IndexSet, error)

	// NegativeDCone returns D-(x) = {y : x D y}, the objects dominated by x.
	NegativeDCone(objectIndex int) (*domain.IndexSet, error)

	// PositiveInvDCone returns InvD+(x) = {y : x InvD y}, the objects x is
	// dominated by under the inverse relation.
	PositiveInvDCone(objectIndex int) (*domain.IndexSet, error)

	// NegativeInvDCone returns InvD-(x) = {y : y InvD x}, the objects
	// dominated by x under the inverse relation.
	NegativeInvDCone(objectIndex int) (*domain.IndexSet, error)
}

// MetricsCollector defines the interface for collecting operational
// metrics. Implementations should integrate with observability platforms
// like Prometheus, OpenTelemetry, or custom monitoring solutions.
type MetricsCollector interface {
	// RecordLatency records the execution time of an operation.
	// The labels map provides additional context for the metric.
	RecordLatency(operation string, duration time.Duration, labels map[string]string)

	// RecordCounter increments a counter metric.
	// This is useful for tracking events like predicate evaluations,
	// cache hits, errors, etc.
	RecordCounter(metric string, value float64, labels map[string]string)

	// RecordGauge sets the current value of a gauge metric.
	// This is useful for tracking values like cone sizes or table
	// dimensions.
	RecordGauge(metric string, value float64, labels map[string]string)

	// RecordHistogram records a value in a histogram.
	// This is useful for tracking distributions like cone cardinality.
	RecordHistogram(metric string, value float64, labels map[string]string)
}
