package calculator_test

import (
	"errors"
	"math"
	"testing"

	"github.com/jsamuelsen11/exercise-kit/internal/domain"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/calculator"
)

func TestCalculate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		left  float64
		op    calculator.Operator
		right float64
		want  float64
	}{
		{"add", 2, calculator.OpAdd, 3, 5},
		{"subtract", 2, calculator.OpSubtract, 3, -1},
		{"multiply", 2.5, calculator.OpMultiply, 4, 10},
		{"divide", 7, calculator.OpDivide, 2, 3.5},
		{"zero numerator", 0, calculator.OpDivide, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := calculator.Calculate(tt.left, tt.op, tt.right)
			if err != nil {
				t.Fatalf("Calculate() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Calculate(%v %s %v) = %v, want %v", tt.left, tt.op, tt.right, got, tt.want)
			}
		})
	}
}

func TestCalculate_DivisionByZero(t *testing.T) {
	t.Parallel()

	_, err := calculator.Calculate(1, calculator.OpDivide, 0)
	if !errors.Is(err, calculator.ErrDivisionByZero) {
		t.Fatalf("error = %v, want ErrDivisionByZero", err)
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Error("errors.Is(err, ErrValidation) = false, want true")
	}
	if err.Error() != "Cannot divide by zero" {
		t.Errorf("Error() = %q, want %q", err.Error(), "Cannot divide by zero")
	}
}

func TestCalculate_InvalidOperator(t *testing.T) {
	t.Parallel()

	for _, op := range []calculator.Operator{"%", "", "x", "//"} {
		_, err := calculator.Calculate(1, op, 2)
		if !errors.Is(err, calculator.ErrInvalidOperator) {
			t.Errorf("Calculate(op=%q) error = %v, want ErrInvalidOperator", op, err)
		}
	}
}

func TestCalculate_OutOfRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		left  float64
		op    calculator.Operator
		right float64
	}{
		{"multiply overflow", 1e308, calculator.OpMultiply, 10},
		{"negative sum overflow", -1e308, calculator.OpSubtract, 1e308},
		{"add overflow", math.MaxFloat64, calculator.OpAdd, math.MaxFloat64},
		{"divide by tiny", 1e308, calculator.OpDivide, 1e-10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := calculator.Calculate(tt.left, tt.op, tt.right)
			if !errors.Is(err, calculator.ErrOutOfRange) {
				t.Fatalf("Calculate(%v %s %v) = %v, %v; want ErrOutOfRange", tt.left, tt.op, tt.right, got, err)
			}
			if !errors.Is(err, domain.ErrValidation) {
				t.Error("errors.Is(err, ErrValidation) = false, want true")
			}
			if err.Error() != "Result is out of range" {
				t.Errorf("Error() = %q, want %q", err.Error(), "Result is out of range")
			}
		})
	}
}

func TestCalculate_LargeFiniteResult(t *testing.T) {
	t.Parallel()

	got, err := calculator.Calculate(math.MaxFloat64, calculator.OpSubtract, 1)
	if err != nil {
		t.Fatalf("Calculate() error: %v", err)
	}
	if got != math.MaxFloat64 {
		t.Errorf("Calculate() = %v, want MaxFloat64", got)
	}
}

func TestParseOperand(t *testing.T) {
	t.Parallel()

	got, err := calculator.ParseOperand("  -12.5 ")
	if err != nil || got != -12.5 {
		t.Errorf("ParseOperand() = %v, %v; want -12.5, nil", got, err)
	}

	for _, raw := range []string{"", "abc", "NaN", "Inf", "1,5"} {
		if _, err := calculator.ParseOperand(raw); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("ParseOperand(%q) error = %v, want validation error", raw, err)
		}
	}
}

func TestParseOperand_FieldMessage(t *testing.T) {
	t.Parallel()

	_, err := calculator.ParseOperand("abc")

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("ParseOperand() error = %T, want *domain.ValidationError", err)
	}
	if got, want := verr.Fields["operand"], `invalid number: "abc"`; got != want {
		t.Errorf("Fields[operand] = %q, want %q", got, want)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := map[float64]string{
		5:     "5",
		3.5:   "3.5",
		-0.25: "-0.25",
	}
	for in, want := range tests {
		if got := calculator.Format(in); got != want {
			t.Errorf("Format(%v) = %q, want %q", in, got, want)
		}
	}
}
