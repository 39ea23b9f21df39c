// Package telemetry installs the OpenTelemetry tracer and meter providers
// used by the search package.
//
// With the "none" exporter nothing is installed and the global no-op
// providers stay in place. With "stdout" spans and metrics are written as
// JSON to the configured writer when the returned shutdown function runs.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
)

// Exporter names accepted by Init.
const (
	ExporterNone   = "none"
	ExporterStdout = "stdout"
)

var (
	// ErrNilContext is returned when Init receives a nil context.
	ErrNilContext = errors.New("telemetry: nil context")

	// ErrUnknownExporter is returned for an exporter name Init does not know.
	ErrUnknownExporter = errors.New("telemetry: unknown exporter")
)

// Config controls which exporter is installed.
type Config struct {
	// ServiceName identifies the process in exported data.
	ServiceName string

	// ServiceVersion is reported next to ServiceName.
	ServiceVersion string

	// Exporter is ExporterNone or ExporterStdout.
	Exporter string

	// Writer receives stdout exports. Defaults to os.Stderr so that puzzle
	// output on stdout stays clean.
	Writer io.Writer
}

// Init installs the providers selected by cfg and returns a function that
// flushes and shuts them down. The shutdown function is never nil on success.
func Init(ctx context.Context, cfg Config) (shutdown func(context.Context) error, err error) {
	if ctx == nil {
		return nil, ErrNilContext
	}

	var shutdownFuncs []func(context.Context) error
	shutdown = func(ctx context.Context) error {
		var errs []error
		for _, fn := range shutdownFuncs {
			if err := fn(ctx); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}

	switch cfg.Exporter {
	case "", ExporterNone:
		return shutdown, nil
	case ExporterStdout:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownExporter, cfg.Exporter)
	}

	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	name := cfg.ServiceName
	if name == "" {
		name = "statespace"
	}
	res := resource.NewWithAttributes(
		"",
		attribute.String("service.name", name),
		attribute.String("service.version", cfg.ServiceVersion),
	)

	spanExp, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("create stdout trace exporter: %w", err)
	}
	tp := trace.NewTracerProvider(
		trace.WithBatcher(spanExp),
		trace.WithResource(res),
		trace.WithSampler(trace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)
	shutdownFuncs = append(shutdownFuncs, tp.Shutdown)

	metricExp, err := stdoutmetric.New(stdoutmetric.WithWriter(w))
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("create stdout metric exporter: %w", err)
	}
	mp := metric.NewMeterProvider(
		metric.WithResource(res),
		metric.WithReader(metric.NewPeriodicReader(metricExp)),
	)
	otel.SetMeterProvider(mp)
	shutdownFuncs = append(shutdownFuncs, mp.Shutdown)

	return shutdown, nil
}
