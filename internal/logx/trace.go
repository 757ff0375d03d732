package logx

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// FromContext returns l enriched with the trace and span ids of the span
// carried by ctx, if any.
func FromContext(ctx context.Context, l Logger) Logger {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return l
	}
	return l.With(
		String("trace_id", sc.TraceID().String()),
		String("span_id", sc.SpanID().String()),
	)
}
