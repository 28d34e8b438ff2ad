package cron

import (
	"fmt"
	"time"
)

// validate enforces the cross-field invariants after all fields parsed.
// The first violation aborts construction.
func (e *Expression) validate() error {
	domValues := e.dom.kind == kindValues
	dowValues := e.dow.kind == kindValues

	// Exactly one day dimension may carry explicit values; the modifiers
	// encode their own exclusivity.
	if domValues && dowValues {
		return fmt.Errorf("%w: day of month and day of week cannot both be specified", ErrConflict)
	}
	if e.dow.kind == kindLastOfWeekday && domValues {
		return fmt.Errorf("%w: last weekday of month requires an unrestricted day of month", ErrConflict)
	}

	// Every explicit day must be plausible for every explicitly selected
	// month. An unrestricted month field leaves short months to the
	// search-time day filter, so "31" with a month wildcard simply skips
	// them. February 29 is likewise deferred to search time, where the
	// leap year is known.
	if domValues && len(e.months) < 12 {
		for _, m := range e.months {
			limit := plausibleDays(time.Month(m))
			for _, d := range e.dom.values {
				if d > limit {
					return fmt.Errorf("%w: day %d does not exist in %s", ErrConflict, d, time.Month(m))
				}
			}
		}
	}
	return nil
}

// plausibleDays is the largest day a month can ever have: 29 for February
// so that leap-year validity can be decided during search.
func plausibleDays(month time.Month) int {
	switch month {
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		return 29
	default:
		return 31
	}
}
