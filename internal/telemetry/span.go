package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Span is a single traced operation.
type Span struct {
	recorder *Recorder
	ctx      context.Context
	name     string
	span     trace.Span
}

// StartSpan starts a new span and counts the operation it represents.
//
// The returned context carries the span, and must be used for any telemetry
// recorded before [Span.End] is called.
func (r *Recorder) StartSpan(
	ctx context.Context,
	name string,
	attrs ...Attr,
) (context.Context, *Span) {
	ctx, span := r.tracer.Start(
		ctx,
		name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(asAttrKeyValues(attrs)...),
	)

	op := String("operation", name)
	r.operationCount(ctx, 1, op)
	r.operationsInFlightCount(ctx, 1, op)

	return ctx, &Span{r, ctx, name, span}
}

// SetAttributes adds attributes to the span.
func (s *Span) SetAttributes(attrs ...Attr) {
	s.span.SetAttributes(asAttrKeyValues(attrs)...)
}

// End completes the span.
func (s *Span) End() {
	s.recorder.operationsInFlightCount(
		s.ctx,
		-1,
		String("operation", s.name),
	)
	s.span.End()
}
