// Package registration implements the registration form: a closed set of
// named fields, the rule-ordered Field Validator, and the Form State
// Controller that owns one form session's values.
package registration

import (
	"fmt"

	"github.com/jsamuelsen11/exercise-kit/internal/domain"
)

// FieldName identifies one input of the registration form.
type FieldName string

// The closed set of form fields, declared in validation order.
const (
	FieldFirstName FieldName = "firstName"
	FieldLastName  FieldName = "lastName"
	FieldEmail     FieldName = "email"
	FieldPassword  FieldName = "password"
	FieldAddress   FieldName = "address"
)

// ErrUnknownField is returned when a field name outside the closed set is used.
var ErrUnknownField = fmt.Errorf("unknown form field: %w", domain.ErrValidation)

// FieldNames returns every form field in validation order.
func FieldNames() []FieldName {
	return []FieldName{FieldFirstName, FieldLastName, FieldEmail, FieldPassword, FieldAddress}
}

// IsValid returns true if the name is one of the defined fields.
func (n FieldName) IsValid() bool {
	switch n {
	case FieldFirstName, FieldLastName, FieldEmail, FieldPassword, FieldAddress:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (n FieldName) String() string {
	return string(n)
}

// ParseFieldName converts raw input to a FieldName, rejecting names outside
// the closed set with ErrUnknownField.
func ParseFieldName(raw string) (FieldName, error) {
	n := FieldName(raw)
	if !n.IsValid() {
		return "", fmt.Errorf("%q: %w", raw, ErrUnknownField)
	}
	return n, nil
}

// Fields holds the current values of one form session. The zero value is
// the empty form. Struct field order matches rule order; the validator
// reports the first failing field by declaration order.
type Fields struct {
	FirstName string `json:"firstName" validate:"alpha,min=3"`
	LastName  string `json:"lastName"  validate:"required"`
	Email     string `json:"email"     validate:"narrow_email"`
	Password  string `json:"password"  validate:"min=6"`
	Address   string `json:"address"   validate:"required"`
}

// Get returns the value of the named field.
func (f Fields) Get(name FieldName) (string, error) {
	switch name {
	case FieldFirstName:
		return f.FirstName, nil
	case FieldLastName:
		return f.LastName, nil
	case FieldEmail:
		return f.Email, nil
	case FieldPassword:
		return f.Password, nil
	case FieldAddress:
		return f.Address, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnknownField)
	}
}

// With returns a copy of f with the named field replaced by value.
func (f Fields) With(name FieldName, value string) (Fields, error) {
	switch name {
	case FieldFirstName:
		f.FirstName = value
	case FieldLastName:
		f.LastName = value
	case FieldEmail:
		f.Email = value
	case FieldPassword:
		f.Password = value
	case FieldAddress:
		f.Address = value
	default:
		return f, fmt.Errorf("%q: %w", name, ErrUnknownField)
	}
	return f, nil
}

// IsEmpty reports whether every field holds the empty string.
func (f Fields) IsEmpty() bool {
	return f == Fields{}
}
