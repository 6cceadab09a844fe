package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRun_VanillaWithValuesAndCSRF(t *testing.T) {
	values := writeFile(t, "values.yaml", "name: Alice Smith\nmobile: \"12345678901\"\n")

	var out bytes.Buffer
	err := run(context.Background(), []string{"-values", values, "-csrf", "tok", "-log-level", "error"}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	html := out.String()
	for _, want := range []string{`value="Alice Smith"`, `value="12345678901"`, `name="_csrf" value="tok"`} {
		if !strings.Contains(html, want) {
			t.Fatalf("output missing %q:\n%s", want, html)
		}
	}
}

func TestRun_EnvironmentSelectsRenderer(t *testing.T) {
	t.Setenv("SIGNUP_RENDERER", "openapi")
	t.Setenv("SIGNUP_API_VERSION", "3.2.1")

	var out bytes.Buffer
	if err := run(context.Background(), []string{"-log-level", "error"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), `"openapi": "3.0.3"`) || !strings.Contains(out.String(), `"version": "3.2.1"`) {
		t.Fatalf("expected OpenAPI document:\n%s", out.String())
	}
}

func TestRun_FlagsOverrideConfigFile(t *testing.T) {
	config := writeFile(t, "signup.yaml", "renderer: openapi\naction: /from-config\nlog:\n  level: error\n")
	output := filepath.Join(t.TempDir(), "form.html")

	var out bytes.Buffer
	err := run(context.Background(), []string{"-config", config, "-renderer", "vanilla", "-output", output}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Form written to") {
		t.Fatalf("unexpected stdout: %q", out.String())
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), `action="/from-config"`) {
		t.Fatalf("config action not applied:\n%s", data)
	}
}

func TestRun_ThemeManifestVariant(t *testing.T) {
	manifest := writeFile(t, "theme.yaml", `name: acme
version: 1.0.0
tokens:
  signup-background: "#ffffff"
assets:
  prefix: /static/acme
  files:
    signup.css: signup.css
variants:
  dark:
    tokens:
      signup-background: "#000000"
`)

	var out bytes.Buffer
	err := run(context.Background(), []string{"-theme-manifest", manifest, "-variant", "dark", "-log-level", "error"}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	html := out.String()
	for _, want := range []string{`data-theme="acme"`, "--signup-background: #000000", `href="/static/acme/signup.css"`} {
		if !strings.Contains(html, want) {
			t.Fatalf("output missing %q:\n%s", want, html)
		}
	}
}

func TestRun_TemplatesDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "templates"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "templates", "form.tmpl"), []byte(`<p>{{ view.Title }}</p>`), 0o600); err != nil {
		t.Fatalf("write template: %v", err)
	}

	var out bytes.Buffer
	if err := run(context.Background(), []string{"-templates", dir, "-log-level", "error"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.String() != "<p>Sign Up</p>\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRun_OperationID(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"-renderer", "openapi", "-operation-id", "registerAccount", "-log-level", "error"}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), `"operationId": "registerAccount"`) {
		t.Fatalf("expected custom operation id:\n%s", out.String())
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown renderer", []string{"-renderer", "react"}, "not found"},
		{"bad format", []string{"-format", "xml"}, "unsupported format"},
		{"bad log level", []string{"-log-level", "loud"}, "log level"},
		{"missing ui file", []string{"-ui", "does-not-exist.yaml"}, "does-not-exist.yaml"},
		{"missing theme manifest", []string{"-theme-manifest", "missing-theme.yaml"}, "theme manifest"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(context.Background(), append([]string{"-log-level", "error"}, tt.args...), &out)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
