// Package notify holds the Notifier adapters: one that logs each message and
// one that prints it to a terminal or any other writer.
package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/exercise-kit/internal/platform/logging"
	"github.com/jsamuelsen11/exercise-kit/internal/ports"
)

var (
	_ ports.Notifier = (*Log)(nil)
	_ ports.Notifier = (*Writer)(nil)
)

// Log emits every message as an info record. The request-scoped logger from
// ctx is preferred so the record carries request and correlation IDs.
type Log struct {
	fallback *slog.Logger
}

// NewLog creates a Log notifier that falls back to logger when ctx carries
// none.
func NewLog(logger *slog.Logger) *Log {
	return &Log{fallback: logger}
}

// Notify logs message.
func (n *Log) Notify(ctx context.Context, message string) {
	logging.FromContextOr(ctx, n.fallback).InfoContext(ctx, "notification", slog.String("message", message))
}

// Writer prints each message on its own line, prefixed when a prefix is set.
// It is safe for concurrent use.
type Writer struct {
	mu     sync.Mutex
	w      io.Writer
	prefix string
	logger *slog.Logger
}

// NewWriter creates a Writer notifier printing to w.
func NewWriter(w io.Writer, prefix string, logger *slog.Logger) *Writer {
	return &Writer{w: w, prefix: prefix, logger: logger}
}

// Notify writes message. Write failures are logged since Notify has no
// error return.
func (n *Writer) Notify(ctx context.Context, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, err := fmt.Fprintf(n.w, "%s%s\n", n.prefix, message); err != nil {
		n.logger.WarnContext(ctx, "failed to write notification",
			slog.String("operation", "notify.Writer"),
			slog.Any("error", err),
		)
	}
}
