// Package logging builds the service's slog loggers and carries a
// request-scoped logger on the context.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With("request_id", id))
//	logging.FromContext(ctx).InfoContext(ctx, "course saved", slog.String("course_id", c.ID))
//
// Error logs name the operation and the entity and pass the error whole:
//
//	logger.ErrorContext(ctx, "failed to save course",
//	    slog.String("operation", "SaveCourse"),
//	    slog.String("course_id", id),
//	    slog.Any("error", err),
//	)
//
// Every logger from New masks credentials and registrant data; see
// masking.go.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

// New returns a logger writing to w. level is one of debug, info, warn or
// error in any case, with info used for anything else. format "text"
// selects slog's text handler and any other value JSON. Debug loggers also
// record the source position.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: maskAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel reads a level name the way slog does and falls back to info.
func ParseLevel(name string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the request logger, or slog.Default when none is set.
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOr(ctx, slog.Default())
}

// FromContextOr returns the request logger, or fallback when none is set.
// Components that own a logger pass it here so a request logger still wins.
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return fallback
}
