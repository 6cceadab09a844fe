package vanilla

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-signup/pkg/form"
	"github.com/goliatone/go-signup/pkg/render"
	rendertemplate "github.com/goliatone/go-signup/pkg/render/template"
	gotemplate "github.com/goliatone/go-signup/pkg/render/template/gotemplate"
)

// FormTemplate is the template the renderer executes, relative to the
// template bundle root.
const FormTemplate = "templates/form.tmpl"

// FormPartial is the theme partial key that can point the renderer at a
// different template in the bundle.
const FormPartial = "form"

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateDir      string
	templateRenderer rendertemplate.TemplateRenderer
	theme            *theme.RendererConfig
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must contain templates/form.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk laid out like
// TemplatesFS (templates/form.tmpl). Templates missing from the directory
// fall back to the embedded bundle.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templateDir = strings.TrimSpace(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTheme applies a resolved go-theme configuration. CSS variables from
// the theme override the colours bundled with the UI hints and a theme asset
// URL for the stylesheet replaces the inline stylesheet.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

// Renderer renders the current form state as an HTML fragment.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	theme     *theme.RendererConfig
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithBaseDir(cfg.templateDir),
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, theme: cfg.theme}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render snapshots controller and renders the sign-up markup. Errors appear
// only for touched fields and the submit button follows View.SubmitEnabled.
func (r *Renderer) Render(ctx context.Context, controller *form.Controller, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("vanilla renderer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, errors.New("vanilla renderer: template renderer is nil")
	}
	if controller == nil {
		return nil, errors.New("vanilla renderer: form controller is nil")
	}

	view := render.NewView(controller, opts)
	method, override := htmlMethod(view.Method)

	result, err := r.templates.RenderTemplate(r.formTemplate(), map[string]any{
		"view":       view,
		"fields":     buildFields(view.Fields),
		"form":       map[string]any{"method": method, "override": override},
		"theme":      r.themeContext(view.Theme),
		"stylesheet": r.stylesheet(),
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

type fieldData struct {
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
	Required    bool
	MinLength   string
	MaxLength   string
}

func buildFields(fields []render.FieldView) []fieldData {
	out := make([]fieldData, 0, len(fields))
	for _, f := range fields {
		out = append(out, fieldData{
			Name:        f.Name,
			Label:       f.Label,
			Placeholder: f.Placeholder,
			HelpText:    f.HelpText,
			Keyboard:    f.Keyboard,
			InputType:   f.InputType,
			Secret:      f.Secret,
			CSSClass:    f.CSSClass,
			Value:       f.Value,
			Error:       f.Error,
			Touched:     f.Touched,
			Required:    f.Constraint.Required,
			MinLength:   positive(f.Constraint.MinLength),
			MaxLength:   positive(f.Constraint.MaxLength),
		})
	}
	return out
}

func positive(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// htmlMethod maps verbs browsers cannot submit onto POST plus an override.
func htmlMethod(method string) (string, bool) {
	switch upper := strings.ToUpper(strings.TrimSpace(method)); upper {
	case "", "POST":
		return "post", false
	case "GET":
		return "get", false
	default:
		return "post", true
	}
}

// Hint metadata keys mapped onto CSS custom properties.
var colourVars = map[string]string{
	"background":     "--signup-background",
	"surface":        "--signup-surface",
	"ink":            "--signup-ink",
	"error":          "--signup-error",
	"submit":         "--signup-submit",
	"submitDisabled": "--signup-submit-disabled",
}

func (r *Renderer) themeContext(hintColours map[string]string) map[string]any {
	vars := make(map[string]string)
	for key, cssVar := range colourVars {
		if value := strings.TrimSpace(hintColours[key]); value != "" {
			vars[cssVar] = value
		}
	}

	ctx := map[string]any{}
	if r.theme != nil {
		for name, value := range r.theme.CSSVars {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if !strings.HasPrefix(name, "--") {
				name = "--" + name
			}
			vars[name] = value
		}
		ctx["name"] = r.theme.Theme
		ctx["variant"] = r.theme.Variant
	}
	ctx["cssVars"] = cssVarsStyle(vars)
	return ctx
}

func (r *Renderer) formTemplate() string {
	if r.theme != nil {
		if name := strings.TrimSpace(r.theme.Partials[FormPartial]); name != "" {
			return name
		}
	}
	return FormTemplate
}

func (r *Renderer) stylesheet() map[string]any {
	if resolver := themeAssetResolver(r.theme); resolver != nil {
		if href := strings.TrimSpace(resolver(StylesheetName)); href != "" {
			return map[string]any{"href": href}
		}
	}
	return map[string]any{"inline": defaultStylesheet()}
}

func themeAssetResolver(cfg *theme.RendererConfig) func(string) string {
	if cfg == nil {
		return nil
	}
	return cfg.AssetURL
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, vars[name]))
	}
	return strings.Join(parts, "; ")
}
