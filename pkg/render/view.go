package render

import (
	"github.com/goliatone/go-signup/pkg/form"
	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/uischema"
	"github.com/goliatone/go-signup/pkg/validation"
)

// View is the presentation snapshot of a form: everything a renderer needs,
// with errors already gated on touched state.
type View struct {
	Title       string
	Subtitle    string
	SubmitLabel string
	Valid       bool
	// SubmitEnabled is Valid unless RenderOptions.ServerValidation is set.
	SubmitEnabled bool
	Action        string
	Method        string
	Hidden        []HiddenField
	Fields        []FieldView
	Theme         map[string]string
}

// FieldView describes a single input.
type FieldView struct {
	Name        string
	Label       string
	Placeholder string
	HelpText    string
	Keyboard    string
	InputType   string
	Secret      bool
	CSSClass    string
	Value       string
	Error       string
	Touched     bool
	Constraint  validation.Constraint
}

// NewView snapshots controller using the hints from options.
func NewView(controller *form.Controller, options RenderOptions) View {
	hints := options.Hints()

	method := options.Method
	if method == "" {
		method = "POST"
	}

	view := View{
		Title:         hints.Title,
		Subtitle:      hints.Subtitle,
		SubmitLabel:   hints.SubmitLabel,
		Valid:         controller.IsValid(),
		SubmitEnabled: controller.IsValid() || options.ServerValidation,
		Action:        options.Action,
		Method:        method,
		Hidden:        SortedHiddenFields(options.Hidden),
		Theme:         hints.Metadata,
	}

	for _, field := range model.Fields() {
		cfg := hints.Field(field)
		view.Fields = append(view.Fields, FieldView{
			Name:        field.String(),
			Label:       cfg.Label,
			Placeholder: cfg.Placeholder,
			HelpText:    cfg.HelpText,
			Keyboard:    cfg.Keyboard,
			InputType:   inputType(cfg),
			Secret:      cfg.Secret,
			CSSClass:    cfg.CSSClass,
			Value:       controller.Value(field),
			Error:       controller.VisibleError(field),
			Touched:     controller.IsTouched(field),
			Constraint:  validation.Constraints(field),
		})
	}
	return view
}

func inputType(cfg uischema.FieldConfig) string {
	switch {
	case cfg.Secret:
		return "password"
	case cfg.Keyboard == uischema.KeyboardEmail:
		return "email"
	case cfg.Keyboard == uischema.KeyboardPhone:
		return "tel"
	default:
		return "text"
	}
}
