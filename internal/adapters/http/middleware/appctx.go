package middleware

import (
	"log/slog"
	"net/http"

	appctx "github.com/jsamuelsen11/exercise-kit/internal/app/context"
	"github.com/jsamuelsen11/exercise-kit/internal/platform/logging"
)

// AppContext returns middleware that creates a new RequestContext for each
// HTTP request and stores it in the request context. Application services
// retrieve it with appctx.FromContextOrNew, stage their writes on it and
// commit before returning.
//
// Actions still queued when the handler returns were never committed; they
// are dropped and logged.
//
// Register after Logging so the warning carries the request IDs.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.New(r.Context())
			ctx := appctx.WithRequestContext(r.Context(), rc)
			next.ServeHTTP(w, r.WithContext(ctx))

			if n := rc.Pending(); n > 0 {
				logging.FromContext(ctx).WarnContext(ctx, "request finished with uncommitted actions",
					slog.String("path", r.URL.Path),
					slog.Int("pending", n),
				)
			}
		})
	}
}
