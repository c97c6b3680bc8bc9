package middleware

import (
	"context"
	"time"

	"github.com/ahrav/go-drsa/internal/domain"
	"github.com/ahrav/go-drsa/internal/ports"
)

// MeasuredConeProvider is a cone provider that also reports how many
// predicate evaluations it has performed, allowing the wrapper to
// attribute evaluation cost to individual requests. The dominance
// engine satisfies this interface.
type MeasuredConeProvider interface {
	ports.ConeProvider
	PredicateEvaluations() uint64
}

var _ ports.ConeProvider = (*ObservedConeEngine)(nil)

// ObservedConeEngine decorates a cone provider with per-request
// observation: spans, cache-hit events, latency, and cardinality all
// flow through the configured ConeObserver. The wrapped provider stays
// unaware of observability.
//
// The wrapper inherits the provider's concurrency contract; it adds no
// synchronization of its own.
type ObservedConeEngine struct {
	inner    MeasuredConeProvider
	observer ConeObserver
	ctx      context.Context
}

// NewObservedConeEngine wraps a cone provider with an observer. Spans
// are parented to the given context; a nil context uses the background
// context.
func NewObservedConeEngine(ctx context.Context, inner MeasuredConeProvider, observer ConeObserver) *ObservedConeEngine {
	if ctx == nil {
		ctx = context.Background()
	}
	return &ObservedConeEngine{inner: inner, observer: observer, ctx: ctx}
}

// NumberOfObjects implements ports.ConeProvider.
func (e *ObservedConeEngine) NumberOfObjects() int { return e.inner.NumberOfObjects() }

// PositiveDCone implements ports.ConeProvider.
func (e *ObservedConeEngine) PositiveDCone(objectIndex int) (*domain.IndexSet, error) {
	return e.observe("PositiveDCone", objectIndex, e.inner.PositiveDCone)
}

// NegativeDCone implements ports.ConeProvider.
func (e *ObservedConeEngine) NegativeDCone(objectIndex int) (*domain.IndexSet, error) {
	return e.observe("NegativeDCone", objectIndex, e.inner.NegativeDCone)
}

// PositiveInvDCone implements ports.ConeProvider.
func (e *ObservedConeEngine) PositiveInvDCone(objectIndex int) (*domain.IndexSet, error) {
	return e.observe("PositiveInvDCone", objectIndex, e.inner.PositiveInvDCone)
}

// NegativeInvDCone implements ports.ConeProvider.
func (e *ObservedConeEngine) NegativeInvDCone(objectIndex int) (*domain.IndexSet, error) {
	return e.observe("NegativeInvDCone", objectIndex, e.inner.NegativeInvDCone)
}

func (e *ObservedConeEngine) observe(
	cone string,
	objectIndex int,
	request func(int) (*domain.IndexSet, error),
) (*domain.IndexSet, error) {
	ctx := e.observer.PreCompute(e.ctx, cone, objectIndex)

	evalsBefore := e.inner.PredicateEvaluations()
	start := time.Now()
	set, err := request(objectIndex)
	elapsed := time.Since(start)
	evaluations := e.inner.PredicateEvaluations() - evalsBefore

	cardinality := 0
	if set != nil {
		cardinality = set.Len()
	}
	e.observer.PostCompute(ctx, cone, objectIndex, cardinality, evaluations, elapsed, err)
	return set, err
}
