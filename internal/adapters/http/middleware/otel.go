package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/exercise-kit/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/exercise-kit/internal/adapters/http/middleware"

// OpenTelemetry opens a server span per request, continuing any W3C trace
// the caller sent, and records request metrics on metrics (nil skips them).
// Once chi has routed the request the span is named after the route
// pattern, so every /courses/{id} request lands under one name.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	tracer := otel.Tracer(tracerName)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			parent := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))

			ctx, span := tracer.Start(parent, "HTTP "+r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					semconv.HTTPRequestMethodKey.String(r.Method),
					semconv.URLPathKey.String(r.URL.Path),
				))
			defer span.End()

			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r.WithContext(ctx))
			status := rec.Status()

			span.SetAttributes(
				semconv.HTTPResponseStatusCodeKey.Int(status),
				semconv.HTTPResponseBodySizeKey.Int64(rec.bytes),
			)
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}
			if route := routePattern(r); route != "" {
				span.SetName("HTTP " + r.Method + " " + route)
				span.SetAttributes(semconv.HTTPRouteKey.String(route))
			}

			metrics.RecordServerRequest(ctx, r.Method, status, time.Since(start))
		})
	}
}

// routePattern reads the pattern chi matched. The route context is shared
// by pointer, so it is filled in by the time next returns.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}
