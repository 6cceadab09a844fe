// Package form implements the sign-up form controller: it owns the value
// record and the touched set, recomputes field errors after every mutation
// and delivers the values to a submit handler only while the form is valid.
//
// A Controller belongs to a single UI session and is not safe for concurrent
// use.
package form
