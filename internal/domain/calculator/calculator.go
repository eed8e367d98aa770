// Package calculator implements two-operand arithmetic for the calculator
// exercise.
package calculator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/exercise-kit/internal/domain"
)

// Operator is one of the four supported arithmetic operators.
type Operator string

const (
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "*"
	OpDivide   Operator = "/"
)

// Error is a calculation failure whose message is shown to the user as-is.
// It wraps domain.ErrValidation.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return domain.ErrValidation
}

// Calculation failures.
var (
	ErrDivisionByZero  = &Error{Message: "Cannot divide by zero"}
	ErrInvalidOperator = &Error{Message: "Invalid operator"}
	ErrOutOfRange      = &Error{Message: "Result is out of range"}
)

// Operators returns the supported operators in display order.
func Operators() []Operator {
	return []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide}
}

// IsValid returns true if the operator is one of the defined constants.
func (o Operator) IsValid() bool {
	switch o {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (o Operator) String() string {
	return string(o)
}

// Calculate applies op to left and right. A result that overflows float64
// is reported as ErrOutOfRange.
func Calculate(left float64, op Operator, right float64) (float64, error) {
	var result float64
	switch op {
	case OpAdd:
		result = left + right
	case OpSubtract:
		result = left - right
	case OpMultiply:
		result = left * right
	case OpDivide:
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		result = left / right
	default:
		return 0, ErrInvalidOperator
	}
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, ErrOutOfRange
	}
	return result, nil
}

// ParseOperand parses a decimal operand, ignoring surrounding whitespace.
// NaN and infinities are rejected.
func ParseOperand(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, domain.FieldError("operand", fmt.Sprintf("invalid number: %q", raw))
	}
	return v, nil
}

// Format renders a result the way the calculator prints it: integers without
// a fractional part, everything else in the shortest exact form.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
