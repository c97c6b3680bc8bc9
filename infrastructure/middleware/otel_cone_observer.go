package middleware

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ahrav/go-drsa/internal/ports"
)

// ConeObserver receives notifications around individual cone
// computations so cross-cutting concerns can observe the engine without
// the engine knowing about them.
type ConeObserver interface {
	// PreCompute is called before a cone is requested.
	PreCompute(ctx context.Context, cone string, objectIndex int) context.Context

	// PostCompute is called after the request finished, with the cone's
	// cardinality (when the request succeeded), the number of predicate
	// evaluations the request cost, and the elapsed time.
	PostCompute(ctx context.Context, cone string, objectIndex int, cardinality int, evaluations uint64, elapsed time.Duration, err error)
}

var _ ConeObserver = (*OTelConeObserver)(nil)

// OTelConeObserver implements observability for cone computations using
// OpenTelemetry tracing. It creates a span per cone request, sets
// attributes describing the cone, and records events for cache behavior,
// while forwarding numeric measurements to a MetricsCollector.
type OTelConeObserver struct {
	metrics   ports.MetricsCollector
	tableName string
}

// NewOTelConeObserver creates a new OpenTelemetry cone observer. The
// table name labels every span and metric produced. A nil metrics
// collector disables metric forwarding but keeps tracing.
func NewOTelConeObserver(metrics ports.MetricsCollector, tableName string) *OTelConeObserver {
	return &OTelConeObserver{
		metrics:   metrics,
		tableName: tableName,
	}
}

// PreCompute implements the ConeObserver interface. It starts an
// OpenTelemetry span for the cone request.
func (o *OTelConeObserver) PreCompute(ctx context.Context, cone string, objectIndex int) context.Context {
	tracer := otel.Tracer("dominance-cone-engine")
	ctx, span := tracer.Start(ctx, "ConeEngine."+cone)
	span.SetAttributes(
		attribute.String("cone.family", cone),
		attribute.Int("cone.object_index", objectIndex),
		attribute.String("cone.table", o.tableName),
	)
	return ctx
}

// PostCompute implements the ConeObserver interface. It finalizes the
// span, distinguishes cache hits from fresh computations, and forwards
// measurements to the metrics collector.
func (o *OTelConeObserver) PostCompute(
	ctx context.Context,
	cone string,
	objectIndex int,
	cardinality int,
	evaluations uint64,
	elapsed time.Duration,
	err error,
) {
	span := trace.SpanFromContext(ctx)
	defer span.End()

	labels := map[string]string{"table": o.tableName, "cone": cone}

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		if o.metrics != nil {
			labels["status"] = "error"
			o.metrics.RecordCounter("cone_computations", 1, labels)
		}
		return
	}

	if evaluations == 0 {
		span.AddEvent("cone.cache_hit")
	} else {
		span.AddEvent("cone.computed", trace.WithAttributes(
			attribute.Int64("predicate_evaluations", int64(evaluations)),
		))
	}
	span.SetAttributes(attribute.Int("cone.cardinality", cardinality))
	span.SetStatus(codes.Ok, "cone request completed")

	if o.metrics != nil {
		o.metrics.RecordLatency(cone, elapsed, labels)
		o.metrics.RecordCounter("cone_computations", 1, labels)
		o.metrics.RecordHistogram(cone, float64(cardinality), labels)
		if evaluations > 0 {
			o.metrics.RecordCounter("predicate_evaluations", float64(evaluations), labels)
		}
	}
}
