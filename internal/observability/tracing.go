// Package observability wires OpenTelemetry tracing.
package observability

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"loadvoice-synqall/internal/config"
)

const tracerName = "loadvoice-synqall"

// Shutdown flushes and stops the tracer provider.
type Shutdown func(context.Context) error

// Options tunes InitTracing. Writer is used by the stdout exporter.
type Options struct {
	Writer io.Writer
}

// InitTracing installs the global tracer provider selected by cfg.Exporter.
// The "none" exporter installs a noop provider.
func InitTracing(ctx context.Context, cfg config.Tracing, opts Options) (Shutdown, error) {
	exporter := strings.ToLower(strings.TrimSpace(cfg.Exporter))
	if exporter == "" || exporter == "none" {
		otel.SetTracerProvider(noop.NewTracerProvider())
		return func(context.Context) error { return nil }, nil
	}

	exp, err := buildExporter(ctx, exporter, cfg.Endpoint, opts)
	if err != nil {
		return nil, fmt.Errorf("tracing exporter: %w", err)
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceNameKey.String(cfg.ServiceName)))
	if err != nil {
		return nil, fmt.Errorf("tracing resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp.Shutdown, nil
}

// StartSpan starts a span on the global tracer.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(attrs...))
}

// EndSpan records err on span, if any, and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func buildExporter(ctx context.Context, name, endpoint string, opts Options) (sdktrace.SpanExporter, error) {
	switch name {
	case "stdout":
		var o []stdouttrace.Option
		if opts.Writer != nil {
			o = append(o, stdouttrace.WithWriter(opts.Writer))
		}
		return stdouttrace.New(o...)
	case "otlp":
		if endpoint == "" {
			endpoint = "http://localhost:4318"
		}
		o := []otlptracehttp.Option{otlptracehttp.WithEndpointURL(endpoint)}
		if strings.HasPrefix(endpoint, "http://") {
			o = append(o, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, o...)
	default:
		return nil, fmt.Errorf("unknown exporter %q", name)
	}
}
