package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric label keys.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrGenerator   = attribute.Key("generator")
)

// Values for AttrResult.
const (
	ResultSuccess     = "success"
	ResultError       = "error"
	ResultValid       = "valid"
	ResultInvalid     = "invalid"
	ResultCircuitOpen = "circuit_open"
)

// Metrics holds the service's instruments. A nil *Metrics records nothing.
type Metrics struct {
	ServerRequestDuration  metric.Float64Histogram
	ServerRequestTotal     metric.Int64Counter
	ClientRequestDuration  metric.Float64Histogram
	ClientRequestTotal     metric.Int64Counter
	RegistrationSubmits    metric.Int64Counter
	CourseGenerateDuration metric.Float64Histogram
}

// NewMetrics registers every instrument on the meter named scope.
func NewMetrics(mp metric.MeterProvider, scope string) (*Metrics, error) {
	meter := mp.Meter(scope)

	var (
		m    Metrics
		errs []error
	)
	seconds := func(dst *metric.Float64Histogram, name, desc string) {
		h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
		if err != nil {
			errs = append(errs, fmt.Errorf("instrument %s: %w", name, err))
		}
		*dst = h
	}
	count := func(dst *metric.Int64Counter, name, desc, unit string) {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
		if err != nil {
			errs = append(errs, fmt.Errorf("instrument %s: %w", name, err))
		}
		*dst = c
	}

	seconds(&m.ServerRequestDuration, "http.server.request.duration", "Duration of incoming HTTP requests")
	count(&m.ServerRequestTotal, "http.server.request.total", "Incoming HTTP requests", "{request}")
	seconds(&m.ClientRequestDuration, "http.client.request.duration", "Duration of course API calls")
	count(&m.ClientRequestTotal, "http.client.request.total", "Course API calls", "{request}")
	count(&m.RegistrationSubmits, "registration.submit.total", "Registration submits by outcome", "{submission}")
	seconds(&m.CourseGenerateDuration, "course.generate.duration", "Time spent generating a course")

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &m, nil
}

// RecordSubmission counts a registration submit; result is ResultValid or
// ResultInvalid.
func (m *Metrics) RecordSubmission(ctx context.Context, result string) {
	if m == nil {
		return
	}
	m.RegistrationSubmits.Add(ctx, 1, metric.WithAttributes(AttrResult.String(result)))
}

func (m *Metrics) RecordClientRequest(
	ctx context.Context, peer, method string, status int, result string, elapsed time.Duration,
) {
	if m == nil {
		return
	}
	set := metric.WithAttributes(
		AttrPeerService.String(peer),
		AttrHTTPMethod.String(method),
		AttrHTTPStatus.Int(status),
		AttrResult.String(result),
	)
	m.ClientRequestDuration.Record(ctx, elapsed.Seconds(), set)
	m.ClientRequestTotal.Add(ctx, 1, set)
}

func (m *Metrics) RecordServerRequest(ctx context.Context, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	set := metric.WithAttributes(AttrHTTPMethod.String(method), AttrHTTPStatus.Int(status))
	m.ServerRequestDuration.Record(ctx, elapsed.Seconds(), set)
	m.ServerRequestTotal.Add(ctx, 1, set)
}

// RecordGeneration times one course generation by generator kind.
func (m *Metrics) RecordGeneration(ctx context.Context, generator, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.CourseGenerateDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(
		AttrGenerator.String(generator),
		AttrResult.String(result),
	))
}
