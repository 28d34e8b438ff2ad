// Package cron parses Quartz-style cron expressions and computes the
// instants at which they fire. A parsed Expression is immutable and answers
// Next, Previous and Describe with calendar-correct, timezone-aware
// semantics, including the L, LW, W and #N day modifiers.
package cron

import (
	"fmt"
	"strings"
	"time"
)

// Expression is a parsed cron schedule. It is immutable after construction
// and safe for concurrent use.
type Expression struct {
	source  string
	loc     *time.Location
	seconds []int // sorted, 0-59
	minutes []int // sorted, 0-59
	hours   []int // sorted, 0-23
	months  []int // sorted, 1-12
	years   []int // sorted, 1970-2099; nil when unconstrained
	dom     fieldSpec
	dow     fieldSpec
}

// descriptors are rewritten to their field form before parsing.
var descriptors = map[string]string{
	"@yearly":   "0 0 0 1 1 ?",
	"@annually": "0 0 0 1 1 ?",
	"@monthly":  "0 0 0 1 * ?",
	"@weekly":   "0 0 0 ? * 1",
	"@daily":    "0 0 0 * * ?",
	"@midnight": "0 0 0 * * ?",
	"@hourly":   "0 0 * * * ?",
}

// Parse builds an Expression from a cron string and an IANA timezone name.
//
// The expression has 5, 6 or 7 whitespace-separated fields:
//
//	[seconds] minutes hours day-of-month month day-of-week [year]
//
// With 5 fields seconds default to 0; the year field is only read in the
// 7-field form and defaults to unconstrained. Month and weekday names
// (JAN..DEC, SUN..SAT) are accepted, weekday numbers run 1=Sunday through
// 7=Saturday. The day-of-month field additionally accepts L, L-N, LW and
// NW; the day-of-week field accepts W#N and WL.
func Parse(expression, timezone string) (*Expression, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q", ErrSyntax, timezone)
	}
	return ParseInLocation(expression, loc)
}

// MustParse is like Parse but panics on error. Intended for expressions
// known valid at compile time.
func MustParse(expression, timezone string) *Expression {
	e, err := Parse(expression, timezone)
	if err != nil {
		panic(err)
	}
	return e
}

// ParseInLocation is like Parse with an already resolved location.
func ParseInLocation(expression string, loc *time.Location) (*Expression, error) {
	if loc == nil {
		loc = time.UTC
	}
	src := strings.TrimSpace(expression)
	if rewrite, ok := descriptors[strings.ToLower(src)]; ok {
		src = rewrite
	}
	fields := strings.Fields(src)
	if len(fields) < 5 || len(fields) > 7 {
		return nil, fmt.Errorf("%w: expected 5 to 7 fields, got %d", ErrSyntax, len(fields))
	}

	e := &Expression{source: expression, loc: loc}
	i := 0
	var err error

	if len(fields) >= 6 {
		e.seconds, err = parseTimeField("second", fields[i], secondBounds)
		if err != nil {
			return nil, err
		}
		i++
	} else {
		e.seconds = []int{0}
	}
	if e.minutes, err = parseTimeField("minute", fields[i], minuteBounds); err != nil {
		return nil, err
	}
	i++
	if e.hours, err = parseTimeField("hour", fields[i], hourBounds); err != nil {
		return nil, err
	}
	i++
	if e.dom, err = parseDayOfMonth(fields[i]); err != nil {
		return nil, fmt.Errorf("day of month: %w", err)
	}
	i++
	if e.months, err = parseTimeField("month", fields[i], monthBounds); err != nil {
		return nil, err
	}
	i++
	if e.dow, err = parseDayOfWeek(fields[i]); err != nil {
		return nil, fmt.Errorf("day of week: %w", err)
	}
	i++
	if i < len(fields) {
		spec, err := parseField(fields[i], yearBounds)
		if err != nil {
			return nil, fmt.Errorf("year: %w", err)
		}
		if spec.kind == kindValues {
			e.years = spec.values
		}
	}

	if err := e.validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// parseTimeField resolves one of the plain numeric fields, expanding a
// wildcard to the full domain.
func parseTimeField(name, field string, b bounds) ([]int, error) {
	spec, err := parseField(field, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if spec.kind == kindWildcard {
		values := make([]int, 0, b.max-b.min+1)
		for v := b.min; v <= b.max; v++ {
			values = append(values, v)
		}
		return values, nil
	}
	return spec.values, nil
}

// String returns the source expression.
func (e *Expression) String() string {
	return e.source
}

// Location returns the timezone the schedule is evaluated in.
func (e *Expression) Location() *time.Location {
	return e.loc
}
