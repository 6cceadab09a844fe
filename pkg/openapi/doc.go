// Package openapi exports the sign-up form as an OpenAPI 3 document: one
// operation whose request body mirrors the validation rules, so a backend
// can accept exactly what the form submits.
package openapi
