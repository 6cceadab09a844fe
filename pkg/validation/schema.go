package validation

import (
	"fmt"

	"github.com/goliatone/go-signup/pkg/model"
)

// Rule pairs a predicate with the message reported when it fails. Check
// receives the full record so cross-field rules see live values.
type Rule struct {
	Check   func(values model.Values) bool
	Message string
}

// Schema is an immutable set of ordered rules keyed by field.
type Schema struct {
	rules map[model.Field][]Rule
}

var defaultSchema = newSignupSchema()

// NewSchema builds a schema from ordered rules per field. Unknown fields and
// rules without a check are rejected; fields without rules always pass.
func NewSchema(rules map[model.Field][]Rule) (*Schema, error) {
	copied := make(map[model.Field][]Rule, len(rules))
	for field, list := range rules {
		if !field.Valid() {
			return nil, fmt.Errorf("validation: %w: %q", model.ErrUnknownField, string(field))
		}
		for i, rule := range list {
			if rule.Check == nil {
				return nil, fmt.Errorf("validation: rule %d of %s has no check", i, field)
			}
		}
		copied[field] = append([]Rule(nil), list...)
	}
	return &Schema{rules: copied}, nil
}

// Default returns the process-wide sign-up schema.
func Default() *Schema {
	return defaultSchema
}

// Validate evaluates every field against the default schema.
func Validate(values model.Values) model.Errors {
	return defaultSchema.Validate(values)
}

// Validate evaluates every field and returns the first failing message per
// field. The result never contains empty messages.
func (s *Schema) Validate(values model.Values) model.Errors {
	errs := make(model.Errors)
	if s == nil {
		return errs
	}
	for _, field := range model.Fields() {
		if msg, failed := s.ValidateField(field, values); failed {
			errs[field] = msg
		}
	}
	return errs
}

// ValidateField runs the rules of a single field against values.
func (s *Schema) ValidateField(field model.Field, values model.Values) (string, bool) {
	if s == nil {
		return "", false
	}
	for _, rule := range s.rules[field] {
		if !rule.Check(values) {
			return rule.Message, true
		}
	}
	return "", false
}

// Rules returns a copy of the ordered rules attached to field.
func (s *Schema) Rules(field model.Field) []Rule {
	if s == nil {
		return nil
	}
	return append([]Rule(nil), s.rules[field]...)
}

func newSignupSchema() *Schema {
	return &Schema{
		rules: map[model.Field][]Rule{
			model.FieldName: {
				{Check: required(model.FieldName), Message: MsgNameRequired},
				{Check: minLength(model.FieldName, NameMinLength), Message: MsgNameTooShort},
				{Check: maxLength(model.FieldName, NameMaxLength), Message: MsgNameTooLong},
			},
			model.FieldEmail: {
				{Check: required(model.FieldEmail), Message: MsgEmailRequired},
				{Check: emailShape(model.FieldEmail), Message: MsgEmailInvalid},
			},
			model.FieldPassword: {
				{Check: required(model.FieldPassword), Message: MsgPasswordRequired},
				{Check: passwordPolicy(model.FieldPassword), Message: MsgPasswordPattern},
			},
			model.FieldConfirmPassword: {
				{Check: required(model.FieldConfirmPassword), Message: MsgConfirmRequired},
				{Check: minLength(model.FieldConfirmPassword, PasswordMinLength), Message: MsgConfirmTooShort},
				{Check: equalsField(model.FieldConfirmPassword, model.FieldPassword), Message: MsgConfirmMismatch},
			},
			model.FieldMobile: {
				{Check: required(model.FieldMobile), Message: MsgMobileRequired},
				{Check: exactLength(model.FieldMobile, MobileLength), Message: MsgMobileLength},
				{Check: digitsOnly(model.FieldMobile), Message: MsgMobileDigits},
			},
		},
	}
}
