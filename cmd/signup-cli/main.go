package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	signup "github.com/goliatone/go-signup"
	"github.com/goliatone/go-signup/pkg/form"
	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/render"
	"github.com/goliatone/go-signup/pkg/renderers/tui"
	"github.com/goliatone/go-signup/pkg/uischema"
)

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"renderer":       "renderer",
	"output":         "output",
	"ui":             "ui",
	"values":         "values",
	"format":         "format",
	"action":         "action",
	"method":         "method",
	"csrf":           "csrf",
	"templates":      "templates",
	"theme":          "theme.name",
	"variant":        "theme.variant",
	"theme-manifest": "theme.manifest",
	"api-version":    "api.version",
	"operation-id":   "api.operation_id",
	"log-level":      "log.level",
	"dev":            "log.development",
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	v, err := loadConfig(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(v.GetString("log.level"), v.GetBool("log.development"))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	hints := uischema.Default()
	if path := v.GetString("ui"); path != "" {
		hints, err = uischema.LoadFile(path)
		if err != nil {
			return err
		}
	}

	initial, err := loadValues(v.GetString("values"))
	if err != nil {
		return err
	}

	format := tui.OutputFormat(v.GetString("format"))
	switch format {
	case tui.OutputFormatJSON, tui.OutputFormatFormURLEncoded, tui.OutputFormatPrettyText:
	default:
		return fmt.Errorf("signup-cli: unsupported format %q", format)
	}

	options := []signup.Option{
		signup.WithOutputFormat(format),
		signup.WithAPIVersion(v.GetString("api.version")),
		signup.WithOperationID(v.GetString("api.operation_id")),
		signup.WithTemplatesDir(v.GetString("templates")),
	}
	themeOption, err := loadTheme(v.GetString("theme.manifest"), v.GetString("theme.name"), v.GetString("theme.variant"))
	if err != nil {
		return err
	}
	if themeOption != nil {
		options = append(options, themeOption)
	}

	registry, err := signup.NewRegistry(options...)
	if err != nil {
		return err
	}

	controller := signup.NewForm(
		form.WithInitialValues(initial),
		form.WithLogger(logger.Named("form")),
		form.WithSubmitHandler(func(values model.Values) {
			logger.Info("values submitted", zap.Int("fields", len(values.Map())))
		}),
	)

	renderOpts := render.RenderOptions{
		UI:     hints,
		Action: v.GetString("action"),
		Method: v.GetString("method"),
	}
	if token := v.GetString("csrf"); token != "" {
		renderOpts.Hidden = render.MergeHiddenFields(nil, render.CSRFToken("_csrf", token))
	}

	rendererName := v.GetString("renderer")
	logger.Debug("rendering form", zap.String("renderer", rendererName), zap.String("ui", hints.Source))

	out, err := signup.Render(ctx, registry, rendererName, controller, renderOpts)
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			logger.Info("session aborted")
			return nil
		}
		return fmt.Errorf("signup-cli: render: %w", err)
	}

	if path := v.GetString("output"); path != "" {
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return fmt.Errorf("signup-cli: write output: %w", err)
		}
		fmt.Fprintf(stdout, "Form written to %s\n", path)
		return nil
	}
	_, err = fmt.Fprintln(stdout, string(out))
	return err
}

// loadConfig layers flags over SIGNUP_* environment variables, an optional
// config file and defaults. Only flags set explicitly override lower layers.
func loadConfig(args []string) (*viper.Viper, error) {
	fs := flag.NewFlagSet("signup-cli", flag.ContinueOnError)
	configFile := fs.String("config", "", "config file (yaml, json or toml)")
	fs.String("renderer", "vanilla", "renderer to use (vanilla, tui, openapi)")
	fs.String("output", "", "output file (stdout if empty)")
	fs.String("ui", "", "UI hints file overriding the bundled labels")
	fs.String("values", "", "YAML or JSON file with initial values")
	fs.String("format", string(tui.OutputFormatJSON), "tui output format (json, form, pretty)")
	fs.String("action", "", "form action / OpenAPI path")
	fs.String("method", "", "form method (POST if empty)")
	fs.String("csrf", "", "CSRF token emitted as a hidden field")
	fs.String("templates", "", "directory with templates/form.tmpl overriding the bundled template")
	fs.String("theme", "", "theme name")
	fs.String("variant", "", "theme variant")
	fs.String("theme-manifest", "", "go-theme manifest (yaml or json) providing tokens and assets")
	fs.String("api-version", "1.0.0", "OpenAPI info.version")
	fs.String("operation-id", "signup", "OpenAPI operationId")
	fs.String("log-level", "info", "log level")
	fs.Bool("dev", false, "development logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	fs.VisitAll(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			v.SetDefault(key, f.DefValue)
		}
	})
	v.SetEnvPrefix("SIGNUP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("signup-cli: read config: %w", err)
		}
	}

	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			v.Set(key, f.Value.String())
		}
	})
	return v, nil
}

func newLogger(level string, development bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("signup-cli: log level: %w", err)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// loadTheme registers the manifest at path and selects name and variant from
// it. Without a manifest, a bare theme name or variant only tags the markup.
func loadTheme(path, name, variant string) (signup.Option, error) {
	if path == "" {
		if name == "" && variant == "" {
			return nil, nil
		}
		return signup.WithTheme(&theme.RendererConfig{Theme: name, Variant: variant}), nil
	}

	manifest, err := theme.LoadFile(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("signup-cli: theme manifest: %w", err)
	}
	provider := theme.NewRegistry()
	if err := provider.Register(manifest); err != nil {
		return nil, fmt.Errorf("signup-cli: theme manifest: %w", err)
	}
	return signup.WithThemeSelector(theme.Selector{
		Registry:     provider,
		DefaultTheme: manifest.Name,
	}, name, variant), nil
}

func loadValues(path string) (model.Values, error) {
	if path == "" {
		return model.Values{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Values{}, fmt.Errorf("signup-cli: read values: %w", err)
	}
	var values model.Values
	if err := yaml.Unmarshal(data, &values); err != nil {
		return model.Values{}, fmt.Errorf("signup-cli: parse values: %w", err)
	}
	return values, nil
}
