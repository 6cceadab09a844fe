package validation

import "github.com/goliatone/go-signup/pkg/model"

// Constraint describes a field's rules declaratively so exporters and
// renderers can mirror them (HTML attributes, OpenAPI keywords) without
// evaluating predicates. Pattern is an ECMA-262 expression.
type Constraint struct {
	Required  bool
	MinLength int
	MaxLength int
	Format    string
	Pattern   string
	// EqualTo names a field whose live value must match.
	EqualTo model.Field
}

const (
	passwordPatternECMA = `^(?=.*?[A-Z])(?=.*?[a-z])(?=.*?[0-9])(?=.*?[#?!@$%^&*-]).{8,}$`
	digitsPatternECMA   = `^[0-9]+$`
)

// Constraints returns the declarative form of field's rules. Unknown fields
// return a zero Constraint.
func Constraints(field model.Field) Constraint {
	switch field {
	case model.FieldName:
		return Constraint{Required: true, MinLength: NameMinLength, MaxLength: NameMaxLength}
	case model.FieldEmail:
		return Constraint{Required: true, Format: "email"}
	case model.FieldPassword:
		return Constraint{Required: true, MinLength: PasswordMinLength, Format: "password", Pattern: passwordPatternECMA}
	case model.FieldConfirmPassword:
		return Constraint{Required: true, MinLength: PasswordMinLength, Format: "password", EqualTo: model.FieldPassword}
	case model.FieldMobile:
		return Constraint{Required: true, MinLength: MobileLength, MaxLength: MobileLength, Pattern: digitsPatternECMA}
	default:
		return Constraint{}
	}
}
