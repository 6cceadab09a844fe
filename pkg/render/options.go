package render

import "github.com/goliatone/go-signup/pkg/uischema"

// RenderOptions describe per-request data that renderers can use to customise
// their output without touching the form state.
type RenderOptions struct {
	// UI supplies labels and placeholders. Nil falls back to the bundled
	// hints.
	UI *uischema.Form
	// Action is the URL an HTML form posts to. Empty keeps the current page.
	Action string
	// Method defaults to POST.
	Method string
	// Hidden adds hidden inputs such as CSRF tokens.
	Hidden map[string]string
	// ServerValidation keeps the submit control enabled while the form is
	// invalid, for pages without client script where the server replays the
	// post against a controller.
	ServerValidation bool
}

// Hints returns the configured UI hints or the bundled defaults.
func (o RenderOptions) Hints() *uischema.Form {
	if o.UI != nil {
		return o.UI
	}
	return uischema.Default()
}
