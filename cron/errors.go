package cron

import "errors"

// Sentinel errors for the four failure classes. Errors returned by this
// package wrap one of these with field-level context; test with errors.Is.
var (
	// ErrSyntax reports a structurally malformed expression: wrong field
	// count, unknown token, unparsable number or name.
	ErrSyntax = errors.New("malformed cron expression")

	// ErrRange reports a numeric value outside its field's domain, an
	// inverted range, a non-positive step, or an nth occurrence outside 1-5.
	ErrRange = errors.New("cron value out of range")

	// ErrConflict reports a cross-field violation, such as day-of-month and
	// day-of-week both carrying explicit values, or a day that cannot exist
	// in any selected month.
	ErrConflict = errors.New("conflicting cron fields")

	// ErrNoFireTime reports that no matching instant exists within the
	// bounded search window. Unlike the parse-time errors it depends on the
	// reference instant, not on the expression alone.
	ErrNoFireTime = errors.New("no fire time within search bounds")
)
