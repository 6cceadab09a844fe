package form

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/validation"
)

// Controller tracks values, touched fields and the errors derived from the
// values. Errors are recomputed synchronously inside every mutating call so
// readers never observe stale messages.
type Controller struct {
	schema   *validation.Schema
	logger   *zap.Logger
	onSubmit SubmitHandler

	initial model.Values
	values  model.Values
	touched model.Touched
	errors  model.Errors
}

// New constructs a controller with empty values unless WithInitialValues is
// provided.
func New(options ...Option) *Controller {
	c := &Controller{
		schema: validation.Default(),
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	c.values = c.initial
	c.touched = make(model.Touched)
	c.revalidate()
	return c
}

// SetFieldValue stores value for field and revalidates the whole form. The
// touched set is left alone.
func (c *Controller) SetFieldValue(field model.Field, value string) error {
	next, err := c.values.With(field, value)
	if err != nil {
		return fmt.Errorf("form: set value: %w", err)
	}
	c.values = next
	c.revalidate()

	c.logger.Debug("field changed",
		zap.String("field", field.String()),
		zap.Bool("fieldValid", !c.errors.Has(field)),
		zap.Bool("formValid", c.IsValid()),
	)
	return nil
}

// SetFieldTouched marks field as having lost focus. It does not revalidate;
// errors are already current.
func (c *Controller) SetFieldTouched(field model.Field) error {
	if !field.Valid() {
		return fmt.Errorf("form: set touched: %w: %q", model.ErrUnknownField, string(field))
	}
	if !c.touched.Has(field) {
		c.touched[field] = struct{}{}
		c.logger.Debug("field touched", zap.String("field", field.String()))
	}
	return nil
}

// TouchAll marks every field as touched, revealing all current errors.
func (c *Controller) TouchAll() {
	for _, field := range model.Fields() {
		c.touched[field] = struct{}{}
	}
}

// Submit delivers the current values to the submit handler when the form is
// valid and reports whether it did. An invalid form is left untouched.
func (c *Controller) Submit() bool {
	if !c.IsValid() {
		c.logger.Debug("submit blocked", zap.Int("errors", len(c.errors)))
		return false
	}
	c.logger.Info("form submitted")
	if c.onSubmit != nil {
		c.onSubmit(c.values)
	}
	return true
}

// Reset restores the initial values and clears the touched set.
func (c *Controller) Reset() {
	c.values = c.initial
	c.touched = make(model.Touched)
	c.revalidate()
	c.logger.Debug("form reset")
}

// IsValid reports whether no field carries an error.
func (c *Controller) IsValid() bool {
	return c.errors.Empty()
}

// Values returns the current value record.
func (c *Controller) Values() model.Values {
	return c.values
}

// Value returns the current value of field.
func (c *Controller) Value(field model.Field) string {
	return c.values.Get(field)
}

// Errors returns a copy of every current field error, touched or not.
func (c *Controller) Errors() model.Errors {
	return c.errors.Clone()
}

// Touched returns a copy of the touched set.
func (c *Controller) Touched() model.Touched {
	return c.touched.Clone()
}

// IsTouched reports whether field has lost focus at least once.
func (c *Controller) IsTouched(field model.Field) bool {
	return c.touched.Has(field)
}

// VisibleError returns the message a UI should display for field. Errors on
// untouched fields stay hidden.
func (c *Controller) VisibleError(field model.Field) string {
	if !c.touched.Has(field) {
		return ""
	}
	return c.errors[field]
}

// VisibleErrors returns the gated errors of every field.
func (c *Controller) VisibleErrors() model.Errors {
	out := make(model.Errors)
	for _, field := range model.Fields() {
		if msg := c.VisibleError(field); msg != "" {
			out[field] = msg
		}
	}
	return out
}

// HandleChange binds SetFieldValue to field, for UI adapters that wire one
// callback per input.
func (c *Controller) HandleChange(field model.Field) func(string) error {
	return func(value string) error {
		return c.SetFieldValue(field, value)
	}
}

// HandleBlur binds SetFieldTouched to field.
func (c *Controller) HandleBlur(field model.Field) func() error {
	return func() error {
		return c.SetFieldTouched(field)
	}
}

func (c *Controller) revalidate() {
	c.errors = c.schema.Validate(c.values)
}
