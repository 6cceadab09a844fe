package form

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/validation"
)

// SubmitHandler receives the collected values on a valid submit.
type SubmitHandler func(values model.Values)

// Option configures a Controller.
type Option func(*Controller)

// WithSubmitHandler registers the callback invoked by a valid Submit.
func WithSubmitHandler(fn SubmitHandler) Option {
	return func(c *Controller) {
		c.onSubmit = fn
	}
}

// WithInitialValues seeds the form. Reset returns to these values.
func WithInitialValues(values model.Values) Option {
	return func(c *Controller) {
		c.initial = values
	}
}

// WithSchema replaces the sign-up rules with a schema from
// validation.NewSchema.
func WithSchema(schema *validation.Schema) Option {
	return func(c *Controller) {
		if schema != nil {
			c.schema = schema
		}
	}
}

// WithLogger attaches a logger. Field values are never logged.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}
