package signup

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-signup/pkg/form"
	"github.com/goliatone/go-signup/pkg/openapi"
	"github.com/goliatone/go-signup/pkg/render"
	"github.com/goliatone/go-signup/pkg/renderers/tui"
	"github.com/goliatone/go-signup/pkg/renderers/vanilla"
)

// RenderOptions aliases render.RenderOptions for callers that only import the
// root package.
type RenderOptions = render.RenderOptions

// Option configures the renderers built by NewRegistry.
type Option func(*config)

type config struct {
	theme        *theme.RendererConfig
	selector     theme.ThemeSelector
	themeName    string
	themeVariant string
	templateDir  string
	driver       tui.PromptDriver
	outputFormat tui.OutputFormat
	tuiTheme     *tui.Theme
	apiVersion   string
	operationID  string
}

// WithTheme forwards a resolved go-theme configuration to the HTML renderer.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

// WithThemeSelector resolves name and variant through selector when the
// registry is built. The selection's tokens become CSS variables on the form
// and its assets resolve the stylesheet URL. It takes precedence over
// WithTheme.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(c *config) {
		c.selector = selector
		c.themeName = name
		c.themeVariant = variant
	}
}

// WithThemeProvider builds a go-theme selector over provider. Empty names
// passed to the selector fall back to defaultTheme and defaultVariant.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) Option {
	return WithThemeSelector(theme.Selector{
		Registry:       provider,
		DefaultTheme:   defaultTheme,
		DefaultVariant: defaultVariant,
	}, defaultTheme, defaultVariant)
}

// WithTemplatesDir loads HTML templates from dir before the embedded bundle.
func WithTemplatesDir(dir string) Option {
	return func(c *config) {
		c.templateDir = dir
	}
}

// WithTerminalTheme sets the message prefixes of the terminal renderer.
func WithTerminalTheme(t tui.Theme) Option {
	return func(c *config) {
		c.tuiTheme = &t
	}
}

// WithPromptDriver replaces the survey-backed terminal driver.
func WithPromptDriver(driver tui.PromptDriver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// WithOutputFormat selects how the terminal renderer serializes submitted
// values.
func WithOutputFormat(format tui.OutputFormat) Option {
	return func(c *config) {
		c.outputFormat = format
	}
}

// WithAPIVersion sets info.version of exported OpenAPI documents.
func WithAPIVersion(version string) Option {
	return func(c *config) {
		c.apiVersion = version
	}
}

// WithOperationID sets the operationId of exported OpenAPI documents.
func WithOperationID(id string) Option {
	return func(c *config) {
		c.operationID = id
	}
}

// NewForm exposes the controller constructor from the top-level module.
func NewForm(options ...form.Option) *form.Controller {
	return form.New(options...)
}

// NewRegistry returns a registry holding the built-in renderers: "vanilla"
// (HTML), "tui" (interactive terminal) and "openapi" (schema export).
func NewRegistry(options ...Option) (*render.Registry, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}

	themeCfg := cfg.theme
	if cfg.selector != nil {
		resolved, err := resolveTheme(cfg.selector, cfg.themeName, cfg.themeVariant)
		if err != nil {
			return nil, err
		}
		themeCfg = resolved
	}

	html, err := vanilla.New(
		vanilla.WithTemplatesDir(cfg.templateDir),
		vanilla.WithTheme(themeCfg),
	)
	if err != nil {
		return nil, fmt.Errorf("signup: vanilla renderer: %w", err)
	}

	tuiOptions := []tui.Option{tui.WithPromptDriver(cfg.driver), tui.WithOutputFormat(cfg.outputFormat)}
	if cfg.tuiTheme != nil {
		tuiOptions = append(tuiOptions, tui.WithTheme(*cfg.tuiTheme))
	}

	registry := render.NewRegistry()
	for _, r := range []render.Renderer{
		html,
		tui.New(tuiOptions...),
		openapi.New(openapi.WithVersion(cfg.apiVersion), openapi.WithOperationID(cfg.operationID)),
	} {
		if err := registry.Register(r); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func resolveTheme(selector theme.ThemeSelector, name, variant string) (*theme.RendererConfig, error) {
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("signup: select theme: %w", err)
	}
	if selection == nil {
		return nil, errors.New("signup: theme selector returned no selection")
	}
	rendererCfg := selection.RendererTheme(map[string]string{vanilla.FormPartial: vanilla.FormTemplate})
	return &rendererCfg, nil
}

// Render looks up the named renderer and renders the controller's state.
func Render(ctx context.Context, registry *render.Registry, name string, controller *form.Controller, opts RenderOptions) ([]byte, error) {
	if registry == nil {
		return nil, errors.New("signup: registry is nil")
	}
	renderer, err := registry.Get(name)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, controller, opts)
}
