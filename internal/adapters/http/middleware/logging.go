package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/exercise-kit/internal/platform/logging"
)

// Logging attaches a request-scoped logger (request and correlation IDs
// bound) to the context and writes one access line per request. The line's
// level follows the outcome: 5xx logs at error, 4xx at warn, the rest at
// info. Redacted request headers are logged at debug.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqLogger := logger.With(
				slog.String("request_id", RequestIDFromContext(r.Context())),
				slog.String("correlation_id", CorrelationIDFromContext(r.Context())),
			)
			ctx := logging.WithLogger(r.Context(), reqLogger)

			reqLogger.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			logHeaders(ctx, reqLogger, r.Header)

			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			status := rec.Status()
			reqLogger.Log(ctx, accessLevel(status), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int64("bytes", rec.bytes),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func logHeaders(ctx context.Context, logger *slog.Logger, h http.Header) {
	if !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs := RedactHeaders(h)
	logger.LogAttrs(ctx, slog.LevelDebug, "request headers", attrs...)
}

func accessLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
