// Package httpclient is the outbound HTTP client that reaches the remote
// course generator. A call passes the circuit breaker, then the rate
// limiter, then gets ID headers and a client span, and finally runs the
// retry loop:
//
//	client := httpclient.New(&cfg.Client, "course-api", metrics, logger)
//	resp, err := client.Do(ctx, req)
//
// IDs placed on the context with WithRequestID and WithCorrelationID are
// sent as X-Request-ID and X-Correlation-ID.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/exercise-kit/internal/platform/config"
	"github.com/jsamuelsen11/exercise-kit/internal/platform/telemetry"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID marks ctx so outbound requests carry X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID marks ctx so outbound requests carry X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// retryConfig is config.RetryConfig copied into unexported fields.
type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Client wraps http.Client with breaker, limiter, retries and tracing for
// one downstream service.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	serviceName string
	breaker     *gobreaker.CircuitBreaker[struct{}]
	limiter     *rate.Limiter // nil disables rate limiting
	retryCfg    retryConfig
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// New builds a Client for serviceName, the peer name used in spans, metrics
// and breaker logs. metrics may be nil.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		serviceName: serviceName,
		retryCfg: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}

	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}

	cb := cfg.CircuitBreaker
	c.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        serviceName,
		MaxRequests: clampUint32(cb.HalfOpenLimit),
		Timeout:     cb.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cb.MaxFailures
		},
		IsSuccessful: callerGaveUp,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return c
}

// callerGaveUp treats a canceled caller as no verdict on the downstream, so
// abandoned requests do not trip the breaker.
func callerGaveUp(err error) bool {
	return err == nil || errors.Is(err, context.Canceled)
}

// Do sends req. On a non-retryable status resp is returned with an open
// body. When retries run out on a retryable status, both resp and err are
// non-nil and the caller still closes resp.Body. Breaker rejections, rate
// limiter waits that fail and transport errors return a nil resp.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, err
			}
		}

		setIDHeaders(ctx, req.Header)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()
		req = req.WithContext(spanCtx)

		err := c.doWithRetry(spanCtx, req, &resp)
		if resp != nil {
			span.SetAttributes(semconv.HTTPResponseStatusCodeKey.Int(resp.StatusCode))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return struct{}{}, err
	})

	c.recordMetrics(ctx, req.Method, start, resp, err)
	return resp, err
}

func (c *Client) BaseURL() string { return c.baseURL }

// Name identifies the downstream in the health registry.
func (c *Client) Name() string { return c.serviceName }

// CircuitBreakerState is "closed", "half-open" or "open".
func (c *Client) CircuitBreakerState() string {
	return c.breaker.State().String()
}

// HealthCheck reads the breaker without calling the downstream. Half-open
// counts as degraded and open as failing; both fail readiness.
func (c *Client) HealthCheck(_ context.Context) error {
	state := c.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.serviceName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.serviceName)
	}
	return fmt.Errorf("%s: unknown circuit breaker state %v", c.serviceName, state)
}

func setIDHeaders(ctx context.Context, h http.Header) {
	if id, _ := ctx.Value(requestIDKey{}).(string); id != "" {
		h.Set("X-Request-ID", id)
	}
	if id, _ := ctx.Value(correlationIDKey{}).(string); id != "" {
		h.Set("X-Correlation-ID", id)
	}
}

// startSpan opens the client span and writes W3C trace headers onto req.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := otel.GetTracerProvider().Tracer("httpclient").Start(ctx,
		"HTTP "+req.Method+" "+c.serviceName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			semconv.HTTPRequestMethodKey.String(req.Method),
			semconv.URLFullKey.String(req.URL.String()),
			attribute.String("peer.service", c.serviceName),
		),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

// recordMetrics runs outside the breaker so rejected calls are counted too.
func (c *Client) recordMetrics(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	status, result := 0, telemetry.ResultError
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = telemetry.ResultCircuitOpen
	case resp != nil:
		status = resp.StatusCode
		if status < http.StatusBadRequest {
			result = telemetry.ResultSuccess
		}
	}
	c.metrics.RecordClientRequest(ctx, c.serviceName, method, status, result, time.Since(start))
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case int64(v) > math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(v)
}
