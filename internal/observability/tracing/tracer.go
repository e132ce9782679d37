// Package tracing provides OpenTelemetry tracing integration: a process-wide
// tracer, HTTP middleware that opens a server span per request, and tracer
// provider setup. No exporter is wired by default; spans are dropped until an
// operator registers one.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the global tracer instance for the negative-mentions service.
var tracer = otel.Tracer("negative-mentions")

// GetTracer returns the global tracer for creating spans.
func GetTracer() trace.Tracer {
	return tracer
}

// Setup installs an SDK tracer provider carrying the service resource and a
// W3C trace-context propagator, and returns a shutdown function for main to
// defer.
func Setup(serviceName, version string) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(sdkresource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String(version),
		)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp.Shutdown
}
