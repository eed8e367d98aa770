package registration

import (
	"context"
	"fmt"
)

// MsgRegistered is the default headline of the success notification.
const MsgRegistered = "Registration Successful!"

// Notifier surfaces a human-readable message to the user. It is used for
// both the success message and each rejection reason.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(ctx context.Context, message string)

// Notify calls f(ctx, message).
func (f NotifierFunc) Notify(ctx context.Context, message string) {
	f(ctx, message)
}

// Option configures a Controller.
type Option func(*Controller)

// WithSuccessMessage overrides the headline of the success notification.
func WithSuccessMessage(headline string) Option {
	return func(c *Controller) {
		c.headline = headline
	}
}

// Controller owns the FormFields of one form session. It applies single
// field updates, resets the whole form, and runs the validator on submit.
//
// A Controller is not safe for concurrent use; callers that share one across
// goroutines must serialize access.
type Controller struct {
	fields   Fields
	notifier Notifier
	headline string
	last     *Result
}

// NewController creates a Controller with every field empty. A nil notifier
// discards messages.
func NewController(notifier Notifier, opts ...Option) *Controller {
	if notifier == nil {
		notifier = NotifierFunc(func(context.Context, string) {})
	}
	c := &Controller{
		notifier: notifier,
		headline: MsgRegistered,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fields returns a copy of the current values.
func (c *Controller) Fields() Fields {
	return c.fields
}

// SetField replaces the value of one field and returns the updated form.
// Names outside the closed set return ErrUnknownField and leave the form
// untouched.
func (c *Controller) SetField(name FieldName, value string) (Fields, error) {
	updated, err := c.fields.With(name, value)
	if err != nil {
		return c.fields, err
	}
	c.fields = updated
	return c.fields, nil
}

// Load replaces every field with the values of f and returns the form.
func (c *Controller) Load(f Fields) Fields {
	c.fields = f
	return c.fields
}

// Reset clears every field at once and forgets the last submit outcome.
func (c *Controller) Reset() Fields {
	c.fields = Fields{}
	c.last = nil
	return c.fields
}

// Submit validates the current form. A valid form triggers exactly one
// success notification; an invalid form notifies the rejection reason and
// keeps the entered values so they can be corrected.
func (c *Controller) Submit(ctx context.Context) Result {
	res := Validate(c.fields)
	c.last = &res

	if !res.Valid() {
		c.notifier.Notify(ctx, res.Reason)
		return res
	}

	c.notifier.Notify(ctx, SuccessMessage(c.headline, c.fields))
	return res
}

// LastResult returns the outcome of the most recent Submit, or false if the
// form has not been submitted since creation or the last Reset.
func (c *Controller) LastResult() (Result, bool) {
	if c.last == nil {
		return Result{}, false
	}
	return *c.last, true
}

// SuccessMessage renders the confirmation shown after a valid submit.
func SuccessMessage(headline string, f Fields) string {
	return fmt.Sprintf("%s\nName: %s %s\nEmail: %s", headline, f.FirstName, f.LastName, f.Email)
}
