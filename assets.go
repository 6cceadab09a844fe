package signup

import (
	"io/fs"

	"github.com/goliatone/go-signup/pkg/renderers/vanilla"
)

// AssetsFS exposes the stylesheet used by the HTML renderer so applications
// can serve it next to the rendered markup.
//
// Typical mount:
//
//	mux.Handle("/signup/assets/",
//	  http.StripPrefix("/signup/assets/",
//	    http.FileServerFS(signup.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return vanilla.AssetsFS()
}

// EmbeddedTemplates exposes the built-in HTML templates so callers can extend
// them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}
