package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jsamuelsen11/exercise-kit/internal/app"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/calculator"
)

func TestCalculatorService_Calculate(t *testing.T) {
	t.Parallel()

	svc := app.NewCalculatorService(discardLogger())

	tests := []struct {
		name    string
		left    float64
		op      calculator.Operator
		right   float64
		want    float64
		wantErr error
	}{
		{name: "add", left: 2, op: calculator.OpAdd, right: 3, want: 5},
		{name: "divide", left: 7, op: calculator.OpDivide, right: 2, want: 3.5},
		{name: "divide by zero", left: 7, op: calculator.OpDivide, right: 0, wantErr: calculator.ErrDivisionByZero},
		{name: "unknown operator", left: 1, op: "%", right: 1, wantErr: calculator.ErrInvalidOperator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := svc.Calculate(context.Background(), tt.left, tt.op, tt.right)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Calculate() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Calculate() = %v, want %v", got, tt.want)
			}
		})
	}
}
