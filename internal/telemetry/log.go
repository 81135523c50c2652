package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/trace"
)

// Info records an informational event, both as a log record and as an event
// on the span in ctx.
func (r *Recorder) Info(ctx context.Context, event, message string, attrs ...Attr) {
	r.emit(ctx, log.SeverityInfo, event, message, attrs)
}

// Error records a failure, both as a log record and as an event on the span in
// ctx. The span's status is set to error and the "errors" counter is
// incremented.
func (r *Recorder) Error(ctx context.Context, event, message string, err error, attrs ...Attr) {
	attrs = append(
		attrs,
		String("error", err.Error()),
		String("error.type", fmt.Sprintf("%T", err)),
	)

	r.emit(ctx, log.SeverityError, event, message, attrs)
	r.errorCount(ctx, 1)

	span := trace.SpanFromContext(ctx)
	span.SetStatus(codes.Error, err.Error())
	span.RecordError(err)
}

// emit writes a log record with the given event name and attaches the same
// information to the current span. Nothing is recorded if the logger is not
// enabled for the severity.
func (r *Recorder) emit(
	ctx context.Context,
	severity log.Severity,
	event, message string,
	attrs []Attr,
) {
	enabled := r.logger.Enabled(ctx, log.EnabledParameters{Severity: severity})
	if !enabled {
		return
	}

	trace.SpanFromContext(ctx).AddEvent(
		event,
		trace.WithAttributes(attribute.String("message", message)),
		trace.WithAttributes(asAttrKeyValues(attrs)...),
	)

	var rec log.Record
	rec.SetEventName(event)
	rec.SetSeverity(severity)
	rec.SetBody(log.StringValue(message))

	if len(attrs) != 0 {
		rec.AddAttributes(asLogKeyValues(attrs)...)
	}

	r.logger.Emit(ctx, rec)
}
