// Package signup is the top-level entry point for the sign-up form: it builds
// form controllers and a registry of renderers (HTML, terminal, OpenAPI) that
// present them.
package signup
