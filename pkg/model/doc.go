// Package model defines the sign-up form's data model: the five field
// identifiers, the value record the controller owns, the derived per-field
// error map and the touched set used to gate error display. The types carry
// no behaviour beyond accessors; validation lives in pkg/validation and the
// mutable lifecycle in pkg/form.
package model
