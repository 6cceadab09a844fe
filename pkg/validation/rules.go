package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-signup/pkg/model"
)

const (
	NameMinLength     = 6
	NameMaxLength     = 50
	PasswordMinLength = 8
	MobileLength      = 11

	// PasswordSpecials lists the accepted special characters.
	PasswordSpecials = "#?!@$%^&*-"
)

// WHATWG "valid e-mail address" local part and labels, but the domain must
// carry at least one dot: "a@b" and "alice@localhost" are rejected.
var emailPattern = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$")

func required(field model.Field) func(model.Values) bool {
	return func(v model.Values) bool {
		return v.Get(field) != ""
	}
}

func minLength(field model.Field, n int) func(model.Values) bool {
	return func(v model.Values) bool {
		return utf8.RuneCountInString(v.Get(field)) >= n
	}
}

func maxLength(field model.Field, n int) func(model.Values) bool {
	return func(v model.Values) bool {
		return utf8.RuneCountInString(v.Get(field)) <= n
	}
}

func exactLength(field model.Field, n int) func(model.Values) bool {
	return func(v model.Values) bool {
		return utf8.RuneCountInString(v.Get(field)) == n
	}
}

func emailShape(field model.Field) func(model.Values) bool {
	return func(v model.Values) bool {
		return emailPattern.MatchString(v.Get(field))
	}
}

func equalsField(field, other model.Field) func(model.Values) bool {
	return func(v model.Values) bool {
		return v.Get(field) == v.Get(other)
	}
}

func digitsOnly(field model.Field) func(model.Values) bool {
	return func(v model.Values) bool {
		value := v.Get(field)
		if value == "" {
			return false
		}
		for _, r := range value {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	}
}

func passwordPolicy(field model.Field) func(model.Values) bool {
	return func(v model.Values) bool {
		return PasswordMeetsPolicy(v.Get(field))
	}
}

// PasswordMeetsPolicy reports whether password has at least eight
// characters, one ASCII upper and lower case letter, one digit and one of
// PasswordSpecials. Line terminators are rejected outright.
func PasswordMeetsPolicy(password string) bool {
	if utf8.RuneCountInString(password) < PasswordMinLength {
		return false
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case isLineTerminator(r):
			return false
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(PasswordSpecials, r):
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSpecial
}

func isLineTerminator(r rune) bool {
	switch r {
	case '\n', '\r', '\u2028', '\u2029':
		return true
	default:
		return false
	}
}
