package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-signup/pkg/form"
	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/render"
	"github.com/goliatone/go-signup/pkg/validation"
)

type stubDriver struct {
	inputs       []string
	passwords    []string
	confirm      []bool
	selectIdx    []int
	infoMessages []string
	prompts      []string
	inputPos     int
	passPos      int
	confirmPos   int
	selectPos    int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, cfg InputConfig) (string, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func errorMessages(s *stubDriver) []string {
	var out []string
	for _, msg := range s.infoMessages {
		if strings.HasPrefix(msg, "x ") {
			out = append(out, strings.TrimPrefix(msg, "x "))
		}
	}
	return out
}

func TestRender_HappyPathSubmitsJSON(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Alice Smith", "alice@example.com", "12345678901"},
		passwords: []string{"Abcdef1!", "Abcdef1!"},
		confirm:   []bool{true},
	}
	var delivered []model.Values
	c := form.New(form.WithSubmitHandler(func(v model.Values) {
		delivered = append(delivered, v)
	}))

	out, err := New(WithPromptDriver(driver)).Render(context.Background(), c, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := `{"name":"Alice Smith","email":"alice@example.com","password":"Abcdef1!","confirmPassword":"Abcdef1!","mobile":"12345678901"}`
	if string(out) != want {
		t.Fatalf("output mismatch:\nwant %s\ngot  %s", want, out)
	}
	if len(delivered) != 1 {
		t.Fatalf("expected one delivery, got %d", len(delivered))
	}
	if got := errorMessages(driver); len(got) != 0 {
		t.Fatalf("unexpected errors shown: %v", got)
	}

	wantPrompts := []string{"Full Name", "Email Address", "Password", "Confirm Password", "Mobile Number"}
	if diff := cmp.Diff(wantPrompts, driver.prompts); diff != "" {
		t.Fatalf("prompt order mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_RepromptsUntilFieldIsValid(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Al", "Alice Smith", "alice@example.com", "123", "1234567890a", "12345678901"},
		passwords: []string{"abcdefgh", "Abcdef1!", "Abcdef1!"},
		confirm:   []bool{true},
	}
	c := form.New()

	if _, err := New(WithPromptDriver(driver)).Render(context.Background(), c, render.RenderOptions{}); err != nil {
		t.Fatalf("render: %v", err)
	}

	want := []string{
		"Too Short!",
		validation.MsgPasswordPattern,
		validation.MsgMobileLength,
		validation.MsgMobileDigits,
	}
	if diff := cmp.Diff(want, errorMessages(driver)); diff != "" {
		t.Fatalf("shown errors mismatch (-want +got):\n%s", diff)
	}
	if !c.IsValid() {
		t.Fatalf("controller should end valid, errors: %v", c.Errors())
	}
}

func TestRender_EditingPasswordRevisitsConfirmation(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Alice Smith", "alice@example.com", "12345678901"},
		passwords: []string{"Abcdef1!", "Abcdef1!", "Zyxwvu2@", "Zyxwvu2@"},
		confirm:   []bool{false, true},
		selectIdx: []int{2},
	}
	c := form.New()

	out, err := New(WithPromptDriver(driver), WithOutputFormat(OutputFormatPrettyText)).
		Render(context.Background(), c, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if diff := cmp.Diff([]string{validation.MsgConfirmMismatch}, errorMessages(driver)); diff != "" {
		t.Fatalf("shown errors mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(string(out), "confirmPassword=Zyxwvu2@\n") {
		t.Fatalf("pretty output missing confirmation:\n%s", out)
	}
}

func TestRender_FormEncodedOutput(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Alice Smith", "alice@example.com", "12345678901"},
		passwords: []string{"Abcdef1!", "Abcdef1!"},
		confirm:   []bool{true},
	}
	r := New(WithPromptDriver(driver), WithOutputFormat(OutputFormatFormURLEncoded))
	if r.ContentType() != "application/x-www-form-urlencoded" {
		t.Fatalf("content type mismatch: %s", r.ContentType())
	}

	out, err := r.Render(context.Background(), form.New(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "name=Alice+Smith") || !strings.Contains(string(out), "email=alice%40example.com") {
		t.Fatalf("unexpected form body: %s", out)
	}
}

func TestRender_WithThemePrefixesMessages(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Al", "Alice Smith", "alice@example.com", "12345678901"},
		passwords: []string{"Abcdef1!", "Abcdef1!"},
		confirm:   []bool{true},
	}
	r := New(WithPromptDriver(driver), WithTheme(Theme{InfoPrefix: "> ", ErrorPrefix: "! "}))

	if _, err := r.Render(context.Background(), form.New(), render.RenderOptions{}); err != nil {
		t.Fatalf("render: %v", err)
	}

	want := []string{"> " + render.RenderOptions{}.Hints().Title, "! " + validation.MsgNameTooShort}
	if diff := cmp.Diff(want, driver.infoMessages); diff != "" {
		t.Fatalf("info messages mismatch (-want +got):\n%s", diff)
	}
	if got := errorMessages(driver); len(got) != 0 {
		t.Fatalf("default error prefix should not appear: %v", got)
	}
}

func TestRender_PropagatesDriverErrors(t *testing.T) {
	driver := &stubDriver{}
	_, err := New(WithPromptDriver(driver)).Render(context.Background(), form.New(), render.RenderOptions{})
	if err == nil || !strings.Contains(err.Error(), "no input scripted") {
		t.Fatalf("expected driver error, got %v", err)
	}
}

func TestRender_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(WithPromptDriver(&stubDriver{})).Render(ctx, form.New(), render.RenderOptions{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
