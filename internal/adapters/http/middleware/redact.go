package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/exercise-kit/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders turns headers into log attributes sorted by name. Values of
// the headers in logging.SensitiveHeaders become "[REDACTED]"; repeated
// values are joined with commas.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for _, name := range slices.Sorted(maps.Keys(headers)) {
		value := redacted
		if !logging.SensitiveHeaders[strings.ToLower(name)] {
			value = strings.Join(headers[name], ",")
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
