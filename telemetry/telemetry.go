// Package telemetry sets up OpenTelemetry tracing for a conneg application.
//
// Responders open a "render" span around every negotiated render,
// with "negotiate" and "alternates" spans nested inside it.
package telemetry

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// A ShutdownFn flushes and stops tracing.
type ShutdownFn func(context.Context) error

type options struct {
	w      io.Writer
	pretty bool
	sync   bool
}

// An OptFn configures InitTracer.
type OptFn func(*options)

// WithWriter exports spans to w rather than os.Stdout.
func WithWriter(w io.Writer) OptFn {
	return func(o *options) {
		o.w = w
	}
}

// WithPrettyPrint indents exported spans.
func WithPrettyPrint() OptFn {
	return func(o *options) {
		o.pretty = true
	}
}

// WithSyncer exports every span as soon as it ends instead of in batches.
func WithSyncer() OptFn {
	return func(o *options) {
		o.sync = true
	}
}

// InitTracer registers a global tracer provider exporting the spans of serviceName as JSON.
func InitTracer(serviceName string, opts ...OptFn) (ShutdownFn, error) {
	o := &options{w: os.Stdout}
	for _, opt := range opts {
		opt(o)
	}

	exOpts := []stdouttrace.Option{stdouttrace.WithWriter(o.w)}
	if o.pretty {
		exOpts = append(exOpts, stdouttrace.WithPrettyPrint())
	}

	exporter, err := stdouttrace.New(exOpts...)
	if err != nil {
		return nil, fmt.Errorf("telemetry exporter init failed: %w", err)
	}

	export := sdktrace.WithBatcher(exporter)
	if o.sync {
		export = sdktrace.WithSyncer(exporter)
	}

	provider := sdktrace.NewTracerProvider(
		export,
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		)),
	)

	otel.SetTracerProvider(provider)

	return provider.Shutdown, nil
}
