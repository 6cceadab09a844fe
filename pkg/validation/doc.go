// Package validation holds the sign-up form's static rule set. Each field owns
// an ordered list of rules; evaluation stops at the first failing rule so a
// field reports at most one message. Rules read the whole value record, which
// lets the confirmation rule compare against the live password.
package validation
