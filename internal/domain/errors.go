package domain

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// Sentinels the HTTP layer maps to status codes. Wrap them with %w.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// ValidationError carries one message per offending field. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// FieldError is shorthand for a ValidationError on a single field.
func FieldError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// Error lists the fields in name order so messages are stable.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	for i, field := range slices.Sorted(maps.Keys(e.Fields)) {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(field + ": " + e.Fields[field])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
