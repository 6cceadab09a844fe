package render

import (
	"context"

	"github.com/goliatone/go-signup/pkg/form"
)

// Renderer turns the live state of a sign-up form into a byte representation
// (HTML markup, an OpenAPI document, a terminal session's submitted payload).
// Renderers only use the controller's public contract.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, controller *form.Controller, options RenderOptions) ([]byte, error)
}
