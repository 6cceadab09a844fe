package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownField is returned when a caller references a field outside the
// sign-up form.
var ErrUnknownField = errors.New("model: unknown field")

// Field identifies one input of the sign-up form.
type Field string

const (
	FieldName            Field = "name"
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
	FieldMobile          Field = "mobile"
)

var fieldOrder = []Field{
	FieldName,
	FieldEmail,
	FieldPassword,
	FieldConfirmPassword,
	FieldMobile,
}

// Fields returns every field in form order.
func Fields() []Field {
	return append([]Field(nil), fieldOrder...)
}

// Valid reports whether f is one of the five form fields.
func (f Field) Valid() bool {
	for _, known := range fieldOrder {
		if f == known {
			return true
		}
	}
	return false
}

func (f Field) String() string {
	return string(f)
}

// ParseField resolves a field identifier. Matching ignores case and
// surrounding whitespace so "confirmpassword" resolves to FieldConfirmPassword.
func ParseField(raw string) (Field, error) {
	trimmed := strings.TrimSpace(raw)
	for _, known := range fieldOrder {
		if strings.EqualFold(trimmed, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, raw)
}

// Values is the record of everything the user typed. The zero value is the
// initial state of the form.
type Values struct {
	Name            string `json:"name" yaml:"name"`
	Email           string `json:"email" yaml:"email"`
	Password        string `json:"password" yaml:"password"`
	ConfirmPassword string `json:"confirmPassword" yaml:"confirmPassword"`
	Mobile          string `json:"mobile" yaml:"mobile"`
}

// Get returns the value stored for field. Unknown fields read as empty.
func (v Values) Get(field Field) string {
	switch field {
	case FieldName:
		return v.Name
	case FieldEmail:
		return v.Email
	case FieldPassword:
		return v.Password
	case FieldConfirmPassword:
		return v.ConfirmPassword
	case FieldMobile:
		return v.Mobile
	default:
		return ""
	}
}

// With returns a copy of v with field set to value.
func (v Values) With(field Field, value string) (Values, error) {
	switch field {
	case FieldName:
		v.Name = value
	case FieldEmail:
		v.Email = value
	case FieldPassword:
		v.Password = value
	case FieldConfirmPassword:
		v.ConfirmPassword = value
	case FieldMobile:
		v.Mobile = value
	default:
		return v, fmt.Errorf("%w: %q", ErrUnknownField, string(field))
	}
	return v, nil
}

// Map flattens the record into field name/value pairs.
func (v Values) Map() map[string]string {
	out := make(map[string]string, len(fieldOrder))
	for _, field := range fieldOrder {
		out[string(field)] = v.Get(field)
	}
	return out
}

// Errors maps a field to the message of its first failing rule. A missing key
// means the field is valid.
type Errors map[Field]string

// Has reports whether field carries a message.
func (e Errors) Has(field Field) bool {
	return e[field] != ""
}

// Empty reports whether no field carries a message.
func (e Errors) Empty() bool {
	for _, msg := range e {
		if msg != "" {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	for field, msg := range e {
		if msg == "" {
			continue
		}
		out[field] = msg
	}
	return out
}

// Touched is the set of fields that lost focus at least once.
type Touched map[Field]struct{}

// Has reports whether field has been touched.
func (t Touched) Has(field Field) bool {
	_, ok := t[field]
	return ok
}

// Clone returns an independent copy.
func (t Touched) Clone() Touched {
	out := make(Touched, len(t))
	for field := range t {
		out[field] = struct{}{}
	}
	return out
}

// List returns the touched fields in form order.
func (t Touched) List() []Field {
	var out []Field
	for _, field := range fieldOrder {
		if t.Has(field) {
			out = append(out, field)
		}
	}
	return out
}
