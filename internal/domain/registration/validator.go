package registration

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/exercise-kit/internal/domain"
)

// Rejection reasons, one per rule.
const (
	ReasonFirstName = "First Name must contain only alphabets and at least 3 characters."
	ReasonLastName  = "Last Name cannot be empty."
	ReasonEmail     = "Please enter a valid email address."
	ReasonPassword  = "Password must be at least 6 characters long."
	ReasonAddress   = "Address cannot be empty."
)

// emailPattern is deliberately narrow: lowercase domain and a 2-4 letter
// lowercase top-level segment only.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,4}$`)

// reasons maps the Go struct field to its form field and rejection reason.
var reasons = map[string]struct {
	field  FieldName
	reason string
}{
	"FirstName": {FieldFirstName, ReasonFirstName},
	"LastName":  {FieldLastName, ReasonLastName},
	"Email":     {FieldEmail, ReasonEmail},
	"Password":  {FieldPassword, ReasonPassword},
	"Address":   {FieldAddress, ReasonAddress},
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("narrow_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Result is the outcome of validating a Fields snapshot: either valid, or
// invalid with the first failing field and its reason.
type Result struct {
	Field  FieldName `json:"field,omitempty"`
	Reason string    `json:"reason,omitempty"`
}

// Valid reports whether every rule passed.
func (r Result) Valid() bool {
	return r.Reason == ""
}

// Err returns nil for a valid result, or a *ValidationFailure otherwise.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return &ValidationFailure{Field: r.Field, Reason: r.Reason}
}

// ValidationFailure is the single error kind produced by the validator. Its
// message is the rejection reason verbatim.
type ValidationFailure struct {
	Field  FieldName
	Reason string
}

func (e *ValidationFailure) Error() string {
	return e.Reason
}

func (e *ValidationFailure) Unwrap() error {
	return domain.ErrValidation
}

// Validate checks f against the five rules in fixed order and reports only
// the first violation. It performs no I/O.
func Validate(f Fields) Result {
	err := validate.Struct(f)
	if err == nil {
		return Result{}
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		// Only reachable on a programming error in the struct tags.
		panic(err)
	}

	r := reasons[verrs[0].StructField()]
	return Result{Field: r.field, Reason: r.reason}
}
