package appctx

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/jsamuelsen11/exercise-kit/internal/domain"
	"github.com/jsamuelsen11/exercise-kit/internal/platform/logging"
)

// Commit runs the staged actions in order. When one fails, the ones before
// it are rolled back newest first and the failure is returned; rollback
// errors are only logged. The context counts as committed either way, and
// a second Commit returns ErrAlreadyCommitted.
func (rc *RequestContext) Commit(ctx context.Context) error {
	queue, err := rc.drain()
	if err != nil {
		return err
	}

	logger := logging.FromContext(ctx).With(slog.Int("actions", len(queue)))
	for i, action := range queue {
		logger.DebugContext(ctx, "commit step", slog.Int("step", i+1), slog.String("action", action.Description()))

		if err := action.Execute(ctx); err != nil {
			logger.ErrorContext(ctx, "commit step failed; undoing earlier steps",
				slog.Int("step", i+1),
				slog.String("action", action.Description()),
				slog.Any("error", err))
			undo(ctx, logger, queue[:i])
			return fmt.Errorf("executing %s: %w", action.Description(), err)
		}
	}
	return nil
}

func (rc *RequestContext) drain() ([]domain.Action, error) {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed {
		return nil, ErrAlreadyCommitted
	}
	rc.committed = true
	return rc.queue, nil
}

func undo(ctx context.Context, logger *slog.Logger, done []domain.Action) {
	for _, action := range slices.Backward(done) {
		if err := action.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("action", action.Description()),
				slog.Any("error", err))
		}
	}
}
