package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/exercise-kit/internal/domain/calculator"
	"github.com/jsamuelsen11/exercise-kit/internal/ports"
)

var _ ports.CalculatorService = (*CalculatorService)(nil)

// CalculatorService implements ports.CalculatorService on top of the pure
// calculator package.
type CalculatorService struct {
	logger *slog.Logger
}

// NewCalculatorService creates a CalculatorService. A nil logger discards
// logs.
func NewCalculatorService(logger *slog.Logger) *CalculatorService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CalculatorService{logger: logger}
}

// Calculate applies op to left and right.
func (s *CalculatorService) Calculate(
	ctx context.Context, left float64, op calculator.Operator, right float64,
) (float64, error) {
	result, err := calculator.Calculate(left, op, right)
	if err != nil {
		s.logger.InfoContext(ctx, "calculation rejected",
			slog.Float64("left", left),
			slog.String("op", op.String()),
			slog.Float64("right", right),
			slog.String("reason", err.Error()),
		)
		return 0, err
	}

	s.logger.DebugContext(ctx, "calculated",
		slog.Float64("left", left),
		slog.String("op", op.String()),
		slog.Float64("right", right),
		slog.Float64("result", result),
	)
	return result, nil
}
