package uischema

import (
	"strings"

	"github.com/goliatone/go-signup/pkg/model"
)

// Keyboard hints mirror the mobile keyboard types a native client would use.
const (
	KeyboardDefault = "default"
	KeyboardEmail   = "email-address"
	KeyboardPhone   = "phone-pad"
)

// Form holds the hints for the whole form. Treat it as immutable once loaded.
type Form struct {
	Source      string
	Title       string
	Subtitle    string
	SubmitLabel string
	Metadata    map[string]string
	Fields      map[model.Field]FieldConfig
}

// FormConfig is the top-level section of a hints file.
type FormConfig struct {
	Title       string            `json:"title" yaml:"title"`
	Subtitle    string            `json:"subtitle" yaml:"subtitle"`
	SubmitLabel string            `json:"submitLabel" yaml:"submitLabel"`
	Metadata    map[string]string `json:"metadata" yaml:"metadata"`
}

// FieldConfig customises how a field is presented.
type FieldConfig struct {
	Label       string `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	HelpText    string `json:"helpText,omitempty" yaml:"helpText,omitempty"`
	Keyboard    string `json:"keyboard,omitempty" yaml:"keyboard,omitempty"`
	Secret      bool   `json:"secret,omitempty" yaml:"secret,omitempty"`
	CSSClass    string `json:"cssClass,omitempty" yaml:"cssClass,omitempty"`
}

// Field returns the hints for field, filling the label from the field name
// and the keyboard with KeyboardDefault when the file leaves them blank.
func (f *Form) Field(field model.Field) FieldConfig {
	var cfg FieldConfig
	if f != nil {
		cfg = f.Fields[field]
	}
	if strings.TrimSpace(cfg.Label) == "" {
		cfg.Label = humanize(field.String())
	}
	if cfg.Keyboard == "" {
		cfg.Keyboard = KeyboardDefault
	}
	return cfg
}

// Meta returns a form-level metadata entry.
func (f *Form) Meta(key string) string {
	if f == nil {
		return ""
	}
	return f.Metadata[key]
}

// humanize turns "confirmPassword" into "Confirm Password".
func humanize(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case i == 0:
			b.WriteString(strings.ToUpper(string(r)))
		case r >= 'A' && r <= 'Z':
			b.WriteRune(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
