// Package telemetry sets up OpenTelemetry tracing and metrics and holds the
// instruments the service records.
//
//	p, err := telemetry.Setup(ctx, cfg.Telemetry)
//	defer p.Shutdown(ctx)
//	p.Metrics.RecordSubmission(ctx, telemetry.ResultValid)
package telemetry

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"

	"github.com/jsamuelsen11/exercise-kit/internal/platform/config"
)

// Exporter names accepted in TelemetryConfig.Exporter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

var (
	ErrUnsupportedExporter = errors.New("unsupported exporter")
	ErrMissingEndpoint     = errors.New("otlp exporter requires an endpoint")
)

// Providers owns the SDK providers created by Setup. Metrics is nil when
// telemetry is disabled; every Record method accepts a nil receiver.
type Providers struct {
	Metrics *Metrics

	shutdown []func(context.Context) error
}

// Setup installs global tracer and meter providers plus the W3C trace
// context and baggage propagators. With cfg.Enabled false it installs
// nothing and returns empty Providers.
func Setup(ctx context.Context, cfg config.TelemetryConfig) (*Providers, error) {
	p := &Providers{}
	if !cfg.Enabled {
		return p, nil
	}

	spans, readings, err := newExporters(ctx, cfg)
	if err != nil {
		return nil, err
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
	))
	if err != nil {
		_ = spans.Shutdown(ctx)
		_ = readings.Shutdown(ctx)
		return nil, fmt.Errorf("building resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(spans), sdktrace.WithResource(res))
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(readings)),
		sdkmetric.WithResource(res),
	)
	p.shutdown = append(p.shutdown, tp.Shutdown, mp.Shutdown)

	if p.Metrics, err = NewMetrics(mp, cfg.ServiceName); err != nil {
		_ = p.Shutdown(ctx)
		return nil, err
	}

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return p, nil
}

// Shutdown flushes and stops every provider Setup created.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	for _, stop := range p.shutdown {
		errs = append(errs, stop(ctx))
	}
	return errors.Join(errs...)
}

func newExporters(ctx context.Context, cfg config.TelemetryConfig) (sdktrace.SpanExporter, sdkmetric.Exporter, error) {
	switch cfg.Exporter {
	case ExporterStdout:
		spans, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, nil, fmt.Errorf("stdout span exporter: %w", err)
		}
		readings, err := stdoutmetric.New()
		if err != nil {
			return nil, nil, fmt.Errorf("stdout metric exporter: %w", err)
		}
		return spans, readings, nil

	case ExporterOTLP:
		if cfg.Endpoint == "" {
			return nil, nil, ErrMissingEndpoint
		}
		spans, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.Endpoint+"/v1/traces"))
		if err != nil {
			return nil, nil, fmt.Errorf("otlp span exporter: %w", err)
		}
		readings, err := otlpmetrichttp.New(ctx, otlpmetrichttp.WithEndpointURL(cfg.Endpoint+"/v1/metrics"))
		if err != nil {
			_ = spans.Shutdown(ctx)
			return nil, nil, fmt.Errorf("otlp metric exporter: %w", err)
		}
		return spans, readings, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedExporter, cfg.Exporter)
	}
}
