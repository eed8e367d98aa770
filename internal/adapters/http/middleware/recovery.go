package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/exercise-kit/internal/adapters/http/dto"
	"github.com/jsamuelsen11/exercise-kit/internal/platform/logging"
)

// errPanic is what a client sees after a handler panics; the panic value
// and stack only go to the log.
var errPanic = errors.New("internal server error")

// Recovery turns a handler panic into a 500 problem response. The panic is
// logged with its stack through the request logger when one is bound, and
// marked on the active span. http.ErrAbortHandler is re-raised so net/http
// can abort the connection as intended.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := newStatusRecorder(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				ctx := r.Context()
				msg := fmt.Sprint(v)
				span := trace.SpanFromContext(ctx)
				span.SetStatus(codes.Error, "panic: "+msg)

				logging.FromContextOr(ctx, logger).ErrorContext(ctx, "panic recovered",
					slog.String("panic", msg),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)

				if !rec.Committed() {
					dto.WriteErrorResponse(rec, r, errPanic)
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
