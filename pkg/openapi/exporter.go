package openapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-signup/pkg/form"
	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/render"
	"github.com/goliatone/go-signup/pkg/uischema"
	"github.com/goliatone/go-signup/pkg/validation"
)

const (
	// DefaultName is the registry identifier of the exporter.
	DefaultName = "openapi"
	// DefaultPath is used when RenderOptions.Action is empty.
	DefaultPath = "/signup"
	// SchemaName is the components entry holding the request body.
	SchemaName = "SignupValues"
	// ExtensionEqualTo marks a property whose value must equal another one.
	ExtensionEqualTo = "x-equal-to"
)

// Option configures the exporter.
type Option func(*Exporter)

// WithVersion sets info.version. Defaults to "1.0.0".
func WithVersion(version string) Option {
	return func(e *Exporter) {
		if version != "" {
			e.version = version
		}
	}
}

// WithOperationID overrides the operation identifier ("signup").
func WithOperationID(id string) Option {
	return func(e *Exporter) {
		if id != "" {
			e.operationID = id
		}
	}
}

// Exporter implements render.Renderer by emitting an OpenAPI document.
type Exporter struct {
	version     string
	operationID string
}

// New constructs an exporter.
func New(options ...Option) *Exporter {
	e := &Exporter{
		version:     "1.0.0",
		operationID: "signup",
	}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

func (e *Exporter) Name() string {
	return DefaultName
}

func (e *Exporter) ContentType() string {
	return "application/json"
}

// Render builds the document for the form, validates it and returns it as
// indented JSON. The controller only contributes its current values as the
// schema example when they pass validation.
func (e *Exporter) Render(ctx context.Context, c *form.Controller, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("openapi: context is required")
	}
	doc, err := e.Document(opts, c)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(ctx, openapi3.DisableSchemaPatternValidation(), openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("openapi: validate document: %w", err)
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("openapi: marshal document: %w", err)
	}
	return out, nil
}

// Document assembles the OpenAPI model without validating it.
func (e *Exporter) Document(opts render.RenderOptions, c *form.Controller) (*openapi3.T, error) {
	hints := opts.Hints()

	method := strings.ToUpper(strings.TrimSpace(opts.Method))
	if method == "" {
		method = http.MethodPost
	}
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
	default:
		return nil, fmt.Errorf("openapi: method %q cannot carry a request body", method)
	}

	path := strings.TrimSpace(opts.Action)
	if path == "" {
		path = DefaultPath
	}
	if !strings.HasPrefix(path, "/") {
		return nil, fmt.Errorf("openapi: action %q must be an absolute path", path)
	}

	body := valuesSchema(hints)
	if c != nil && c.IsValid() {
		body.Example = exampleValues(c.Values())
	}
	ref := openapi3.NewSchemaRef("#/components/schemas/"+SchemaName, body)

	operation := &openapi3.Operation{
		OperationID: e.operationID,
		Summary:     hints.Title,
		Description: hints.Subtitle,
		RequestBody: &openapi3.RequestBodyRef{
			Value: &openapi3.RequestBody{
				Required: true,
				Content: openapi3.Content{
					"application/json":                  &openapi3.MediaType{Schema: ref},
					"application/x-www-form-urlencoded": &openapi3.MediaType{Schema: ref},
				},
			},
		},
		Responses: openapi3.NewResponses(
			openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{
				Value: openapi3.NewResponse().WithDescription("Values accepted"),
			}),
			openapi3.WithStatus(http.StatusUnprocessableEntity, &openapi3.ResponseRef{
				Value: openapi3.NewResponse().WithDescription("One or more fields failed validation"),
			}),
		),
	}

	item := &openapi3.PathItem{}
	item.SetOperation(method, operation)

	paths := openapi3.NewPaths()
	paths.Set(path, item)

	title := hints.Title
	if title == "" {
		title = "Sign Up"
	}

	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   title,
			Version: e.version,
		},
		Paths: paths,
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				SchemaName: openapi3.NewSchemaRef("", body),
			},
		},
	}, nil
}

func valuesSchema(hints *uischema.Form) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	for _, field := range model.Fields() {
		constraint := validation.Constraints(field)
		schema.WithProperty(field.String(), propertySchema(hints.Field(field), constraint))
		if constraint.Required {
			schema.Required = append(schema.Required, field.String())
		}
	}
	return schema
}

func propertySchema(cfg uischema.FieldConfig, c validation.Constraint) *openapi3.Schema {
	prop := openapi3.NewStringSchema()
	prop.Title = cfg.Label
	if cfg.HelpText != "" {
		prop.Description = uischema.PlainText(cfg.HelpText)
	}
	if c.MinLength > 0 {
		prop.WithMinLength(int64(c.MinLength))
	} else if c.Required {
		prop.WithMinLength(1)
	}
	if c.MaxLength > 0 {
		prop.WithMaxLength(int64(c.MaxLength))
	}
	if c.Format != "" {
		prop.WithFormat(c.Format)
	}
	if c.Pattern != "" {
		prop.WithPattern(c.Pattern)
	}
	if c.EqualTo != "" {
		prop.Extensions = map[string]any{ExtensionEqualTo: c.EqualTo.String()}
	}
	if cfg.Secret {
		prop.WriteOnly = true
	}
	return prop
}

func exampleValues(values model.Values) map[string]any {
	out := make(map[string]any, len(model.Fields()))
	for _, field := range model.Fields() {
		if validation.Constraints(field).Format == "password" {
			continue
		}
		out[field.String()] = values.Get(field)
	}
	return out
}
