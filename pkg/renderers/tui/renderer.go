package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-signup/pkg/form"
	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/render"
	"github.com/goliatone/go-signup/pkg/uischema"
)

const editMenuMessage = "Which field do you want to change?"

// Renderer implements render.Renderer as an interactive terminal session.
// Every prompt answer is a change event and the end of the prompt is a blur,
// so errors surface exactly as they would in the on-screen form.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	theme        Theme
}

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) *Renderer {
	r := &Renderer{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatJSON,
		theme: Theme{
			InfoPrefix:  "i ",
			ErrorPrefix: "x ",
		},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Render walks the user through every field, re-prompting any field whose
// visible error is set, then asks for confirmation and submits. The returned
// bytes are the submitted values in the configured output format.
func (r *Renderer) Render(ctx context.Context, c *form.Controller, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.New("tui: form controller is nil")
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	hints := opts.Hints()
	if hints.Title != "" {
		if err := r.driver.Info(ctx, r.theme.InfoPrefix+hints.Title); err != nil {
			return nil, err
		}
	}

	for _, field := range model.Fields() {
		if err := r.promptField(ctx, c, hints, field); err != nil {
			return nil, err
		}
	}

	for {
		// A later answer can invalidate an earlier field (changing the
		// password breaks the confirmation), so sweep again before asking.
		if field, ok := firstInvalid(c); ok {
			if err := c.SetFieldTouched(field); err != nil {
				return nil, err
			}
			if err := r.showError(ctx, c, field); err != nil {
				return nil, err
			}
			if err := r.promptField(ctx, c, hints, field); err != nil {
				return nil, err
			}
			continue
		}

		submit, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: hints.SubmitLabel + "?",
			Default: true,
		})
		if err != nil {
			return nil, err
		}
		if submit {
			break
		}

		field, err := r.chooseField(ctx, hints)
		if err != nil {
			return nil, err
		}
		if err := r.promptField(ctx, c, hints, field); err != nil {
			return nil, err
		}
	}

	if !c.Submit() {
		return nil, errors.New("tui: form became invalid before submit")
	}
	return r.serialize(c.Values())
}

func (r *Renderer) promptField(ctx context.Context, c *form.Controller, hints *uischema.Form, field model.Field) error {
	cfg := hints.Field(field)
	onChange := c.HandleChange(field)
	onBlur := c.HandleBlur(field)

	for {
		value, err := r.ask(ctx, cfg, c.Value(field))
		if err != nil {
			return err
		}
		if err := onChange(value); err != nil {
			return fmt.Errorf("tui: %s: %w", field, err)
		}
		if err := onBlur(); err != nil {
			return fmt.Errorf("tui: %s: %w", field, err)
		}
		if c.VisibleError(field) == "" {
			return nil
		}
		if err := r.showError(ctx, c, field); err != nil {
			return err
		}
	}
}

func (r *Renderer) ask(ctx context.Context, cfg uischema.FieldConfig, current string) (string, error) {
	input := InputConfig{
		Message: cfg.Label,
		Help:    helpText(cfg),
	}
	if cfg.Secret {
		return r.driver.Password(ctx, input)
	}
	input.Default = current
	return r.driver.Input(ctx, input)
}

func (r *Renderer) showError(ctx context.Context, c *form.Controller, field model.Field) error {
	msg := c.VisibleError(field)
	if msg == "" {
		return nil
	}
	return r.driver.Info(ctx, r.theme.ErrorPrefix+msg)
}

func (r *Renderer) chooseField(ctx context.Context, hints *uischema.Form) (model.Field, error) {
	fields := model.Fields()
	if len(fields) == 0 {
		return "", ErrNoFields
	}
	options := make([]string, len(fields))
	for i, field := range fields {
		options[i] = hints.Field(field).Label
	}
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message: editMenuMessage,
		Options: options,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(fields) {
		return "", fmt.Errorf("tui: selection %d out of range", idx)
	}
	return fields[idx], nil
}

func firstInvalid(c *form.Controller) (model.Field, bool) {
	errs := c.Errors()
	for _, field := range model.Fields() {
		if errs.Has(field) {
			return field, true
		}
	}
	return "", false
}

func helpText(cfg uischema.FieldConfig) string {
	if cfg.HelpText != "" {
		return uischema.PlainText(cfg.HelpText)
	}
	return cfg.Placeholder
}

func (r *Renderer) serialize(values model.Values) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return []byte(flattenForm(values)), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(values)), nil
	default:
		return json.Marshal(values)
	}
}

func flattenForm(values model.Values) string {
	out := url.Values{}
	for _, field := range model.Fields() {
		out.Set(field.String(), values.Get(field))
	}
	return out.Encode()
}

func prettyPrint(values model.Values) string {
	var b strings.Builder
	for _, field := range model.Fields() {
		fmt.Fprintf(&b, "%s=%s\n", field, values.Get(field))
	}
	return b.String()
}
