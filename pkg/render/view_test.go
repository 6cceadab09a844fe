package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-signup/pkg/form"
	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/render"
	"github.com/goliatone/go-signup/pkg/validation"
)

func TestNewView_GatesErrorsOnTouched(t *testing.T) {
	c := form.New()
	_ = c.SetFieldValue(model.FieldName, "Al")
	_ = c.SetFieldValue(model.FieldMobile, "123")
	_ = c.SetFieldTouched(model.FieldMobile)

	view := render.NewView(c, render.RenderOptions{})

	if view.Valid {
		t.Fatalf("view should report invalid form")
	}
	if view.Title != "Sign Up" || view.SubmitLabel != "Submit" || view.Method != "POST" {
		t.Fatalf("unexpected header: %+v", view)
	}

	got := make(map[string]string)
	for _, field := range view.Fields {
		got[field.Name] = field.Error
	}
	want := map[string]string{
		"name":            "",
		"email":           "",
		"password":        "",
		"confirmPassword": "",
		"mobile":          validation.MsgMobileLength,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("visible errors mismatch (-want +got):\n%s", diff)
	}
}

func TestNewView_FieldPresentation(t *testing.T) {
	c := form.New()
	view := render.NewView(c, render.RenderOptions{
		Method: "PUT",
		Hidden: map[string]string{"_csrf": "abc"},
	})

	types := make(map[string]string)
	for _, field := range view.Fields {
		types[field.Name] = field.InputType
	}
	want := map[string]string{
		"name":            "text",
		"email":           "email",
		"password":        "password",
		"confirmPassword": "password",
		"mobile":          "tel",
	}
	if diff := cmp.Diff(want, types); diff != "" {
		t.Fatalf("input types mismatch (-want +got):\n%s", diff)
	}
	if view.Method != "PUT" {
		t.Fatalf("method override ignored: %q", view.Method)
	}
	if diff := cmp.Diff([]render.HiddenField{{Name: "_csrf", Value: "abc"}}, view.Hidden); diff != "" {
		t.Fatalf("hidden fields mismatch (-want +got):\n%s", diff)
	}
	if view.Fields[4].Constraint.MaxLength != 11 {
		t.Fatalf("mobile constraint missing: %+v", view.Fields[4].Constraint)
	}
}
