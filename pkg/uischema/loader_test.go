package uischema_test

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/uischema"
)

func TestDefault_BundledHints(t *testing.T) {
	form := uischema.Default()

	if form.Title != "Sign Up" {
		t.Fatalf("title mismatch: %q", form.Title)
	}
	if form.SubmitLabel != "Submit" {
		t.Fatalf("submit label mismatch: %q", form.SubmitLabel)
	}

	want := map[model.Field]string{
		model.FieldName:            "Full Name",
		model.FieldEmail:           "Email Address",
		model.FieldPassword:        "Password",
		model.FieldConfirmPassword: "Confirm Password",
		model.FieldMobile:          "Mobile Number",
	}
	got := make(map[model.Field]string)
	for _, field := range model.Fields() {
		got[field] = form.Field(field).Placeholder
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("placeholders mismatch (-want +got):\n%s", diff)
	}

	if kb := form.Field(model.FieldMobile).Keyboard; kb != uischema.KeyboardPhone {
		t.Fatalf("mobile keyboard mismatch: %q", kb)
	}
	if kb := form.Field(model.FieldName).Keyboard; kb != uischema.KeyboardDefault {
		t.Fatalf("name keyboard should default, got %q", kb)
	}
	if !form.Field(model.FieldPassword).Secret || !form.Field(model.FieldConfirmPassword).Secret {
		t.Fatalf("password fields should be secret")
	}
	if form.Meta("background") != "#2C3333" {
		t.Fatalf("background metadata mismatch: %q", form.Meta("background"))
	}
}

func TestParse_JSON(t *testing.T) {
	data := []byte(`{
		"form": {"title": "Join"},
		"fields": {
			"confirmpassword": {"label": "Repeat password", "secret": true},
			"mobile": {"keyboard": "phone-pad", "helpText": "<b>11</b> digits <script>alert(1)</script>"}
		}
	}`)

	form, err := uischema.Parse(data, "hints.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if form.Title != "Join" || form.SubmitLabel != "Submit" {
		t.Fatalf("form config mismatch: %+v", form)
	}

	confirm := form.Field(model.FieldConfirmPassword)
	if confirm.Label != "Repeat password" || !confirm.Secret {
		t.Fatalf("confirm hints mismatch: %+v", confirm)
	}

	help := form.Field(model.FieldMobile).HelpText
	if strings.Contains(help, "script") {
		t.Fatalf("help text not sanitised: %q", help)
	}
	if !strings.Contains(help, "<b>11</b>") {
		t.Fatalf("allowed markup dropped: %q", help)
	}
}

func TestParse_YAMLStripsMarkupFromLabels(t *testing.T) {
	data := []byte("fields:\n  name:\n    label: \"<i>Tom</i> & Jerry\"\n")

	form, err := uischema.Parse(data, "hints.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := form.Field(model.FieldName).Label; got != "Tom & Jerry" {
		t.Fatalf("label mismatch: %q", got)
	}
	if got := form.Field(model.FieldEmail).Label; got != "Email" {
		t.Fatalf("fallback label mismatch: %q", got)
	}
	if got := form.Field(model.FieldConfirmPassword).Label; got != "Confirm Password" {
		t.Fatalf("fallback label mismatch: %q", got)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"empty", "   ", "is empty"},
		{"unknown field", "fields:\n  nickname:\n    label: Nick\n", "unknown field"},
		{"duplicate after normalisation", "fields:\n  confirmPassword: {}\n  confirmpassword: {}\n", "twice"},
		{"bad keyboard", "fields:\n  mobile:\n    keyboard: numeric\n", "unsupported keyboard"},
		{"bad yaml", "fields: [", "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uischema.Parse([]byte(tt.data), "hints.yaml")
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestParse_UnknownFieldWrapsSentinel(t *testing.T) {
	_, err := uischema.Parse([]byte("fields:\n  nickname: {}\n"), "hints.yaml")
	if !errors.Is(err, model.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"custom.yaml": &fstest.MapFile{Data: []byte("form:\n  title: Register\n")},
	}

	form, err := uischema.LoadFS(fsys, "custom.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if form.Title != "Register" || form.Source != "custom.yaml" {
		t.Fatalf("unexpected form: %+v", form)
	}

	if _, err := uischema.LoadFS(fsys, "missing.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
