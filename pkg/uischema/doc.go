// Package uischema loads presentation hints for the sign-up form: the title,
// submit label, and per-field labels, placeholders, keyboard hints and
// secrecy flags. Hints never influence validation. The bundled defaults are
// embedded; callers may load replacements from JSON or YAML.
package uischema
