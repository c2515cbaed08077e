// Package telemetry installs an OpenTelemetry trace provider, following
// the teacher's internal/observability/telemetry.go shape: one Init call
// returning a shutdown func, nothing else touches the SDK directly.
// netgraph and registry do not import this package; no engine entry
// point starts a span.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the module-wide tracer. Valid even before Init — it's a
// no-op tracer until a real provider is installed, so callers never have
// to check "is telemetry configured" before starting a span.
var Tracer = otel.Tracer("github.com/annel0/blocknetwork")

// ShutdownFunc flushes and releases telemetry resources. Safe to call
// once; callers typically defer it right after Init succeeds.
type ShutdownFunc func(context.Context) error

// Init configures the global trace provider to export spans via OTLP
// over HTTP to endpoint (e.g. "localhost:4318"). serviceName tags every
// span's resource attributes. If endpoint is empty, Init installs
// nothing and returns a no-op shutdown — the package's default no-op
// tracer keeps working either way.
func Init(ctx context.Context, endpoint, serviceName string) (ShutdownFunc, error) {
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	if err != nil {
		return nil, err
	}

	res, err := resource.Merge(resource.Default(), resource.NewSchemaless(
		attribute.String("service.name", serviceName),
	))
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)
	Tracer = provider.Tracer("github.com/annel0/blocknetwork")

	return func(shutdownCtx context.Context) error {
		c, cancel := context.WithTimeout(shutdownCtx, 5*time.Second)
		defer cancel()
		return provider.Shutdown(c)
	}, nil
}

// StartSpan is a thin convenience wrapper around Tracer.Start so callers
// don't need to import the otel trace API directly.
func StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return Tracer.Start(ctx, name)
}
