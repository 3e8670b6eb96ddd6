package otel

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/louisbranch/hitpoints/internal/platform/config"
)

// Setup initialises OpenTelemetry tracing for the given command.
//
// Tracing is opt-in: when HITPOINTS_OTEL_ENDPOINT is empty or
// HITPOINTS_OTEL_ENABLED is "false", Setup returns a no-op shutdown
// function and no global provider is registered. Session spans then go to
// the default no-op tracer.
//
// The returned shutdown function flushes pending spans and should be deferred
// by the caller.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	if enabled, _ := config.LookupEnv("OTEL_ENABLED"); strings.EqualFold(enabled, "false") {
		return noop, nil
	}

	endpoint, _ := config.LookupEnv("OTEL_ENDPOINT")
	if strings.TrimSpace(endpoint) == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(endpoint),
	)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName("hitpoints-"+serviceName),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}
