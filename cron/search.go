package cron

import "time"

// maxSearchIterations bounds the calendar walk; a well-formed expression
// resolves in far fewer jumps, the cap guards against models that can
// never match.
const maxSearchIterations = 10000

// unboundedYearSpan is how far the search looks when the year field is
// unconstrained, measured from the reference year.
const unboundedYearSpan = 10

// Next returns the first fire time strictly after from, in the schedule's
// timezone. It fails with ErrNoFireTime when no match exists within the
// year bound.
func (e *Expression) Next(from time.Time) (time.Time, error) {
	return e.search(from, 1)
}

// Previous returns the latest fire time strictly before from. A match one
// second prior to a whole-second from is included, an exact match at from
// is not.
func (e *Expression) Previous(from time.Time) (time.Time, error) {
	return e.search(from, -1)
}

// NextUnix is Next reported as a whole-second epoch timestamp.
func (e *Expression) NextUnix(from time.Time) (int64, error) {
	t, err := e.Next(from)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

// PreviousUnix is Previous reported as a whole-second epoch timestamp.
func (e *Expression) PreviousUnix(from time.Time) (int64, error) {
	t, err := e.Previous(from)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

// NextN returns up to n fire times after from, in ascending order. The
// slice is shorter than n when the schedule exhausts its search window.
func (e *Expression) NextN(from time.Time, n int) []time.Time {
	times := make([]time.Time, 0, n)
	for len(times) < n {
		next, err := e.Next(from)
		if err != nil {
			break
		}
		times = append(times, next)
		from = next
	}
	return times
}

// search walks the calendar from the reference instant in the given
// direction (+1 forward, -1 backward) until every field matches. Each pass
// checks year, month, day, hour, minute and second in order; the first
// mismatching unit jumps the cursor to the nearest candidate and resets
// all lower units to the direction's origin, so a carry is just another
// pass of the loop.
func (e *Expression) search(from time.Time, dir int) (time.Time, error) {
	from = from.In(e.loc)
	t := from.Truncate(time.Second)
	if dir > 0 {
		t = t.Add(time.Second)
	} else if !t.Before(from) {
		// A sub-second reference already sits strictly after its own
		// whole second, which therefore stays inside the window.
		t = t.Add(-time.Second)
	}
	lo, hi := e.yearWindow(from.Year())

	for i := 0; i < maxSearchIterations; i++ {
		y := t.Year()
		if (dir > 0 && y > hi) || (dir < 0 && y < lo) {
			return time.Time{}, ErrNoFireTime
		}
		if e.years != nil && !containsInt(e.years, y) {
			ny, ok := seek(e.years, y, dir)
			if !ok {
				return time.Time{}, ErrNoFireTime
			}
			t = e.yearOrigin(ny, dir)
			continue
		}

		m := int(t.Month())
		if !containsInt(e.months, m) {
			if nm, ok := seek(e.months, m, dir); ok {
				t = e.monthOrigin(y, nm, dir)
			} else {
				t = e.yearOrigin(y+dir, dir)
			}
			continue
		}

		days := e.effectiveDays(y, m)
		if len(days) == 0 {
			t = e.adjacentMonth(y, m, dir)
			continue
		}
		d := t.Day()
		if !containsInt(days, d) {
			if nd, ok := seek(days, d, dir); ok {
				t = e.dayOrigin(y, m, nd, dir)
			} else {
				t = e.adjacentMonth(y, m, dir)
			}
			continue
		}

		if h := t.Hour(); !containsInt(e.hours, h) {
			if nh, ok := seek(e.hours, h, dir); ok {
				t = e.wall(y, m, d, nh, originMinute(dir), originSecond(dir), dir)
			} else {
				t = e.adjacentDay(y, m, d, dir)
			}
			continue
		}
		if min := t.Minute(); !containsInt(e.minutes, min) {
			if nm, ok := seek(e.minutes, min, dir); ok {
				t = e.wall(y, m, d, t.Hour(), nm, originSecond(dir), dir)
			} else {
				t = e.adjacentHour(t, dir)
			}
			continue
		}
		if s := t.Second(); !containsInt(e.seconds, s) {
			if ns, ok := seek(e.seconds, s, dir); ok {
				t = e.wall(y, m, d, t.Hour(), t.Minute(), ns, dir)
			} else {
				t = e.adjacentMinute(t, dir)
			}
			continue
		}

		// Defensive recheck: a cursor that crossed a DST transition can
		// carry wall fields that no longer satisfy every constraint.
		if e.matches(t) {
			return t, nil
		}
		t = t.Add(time.Duration(dir) * time.Second)
	}
	return time.Time{}, ErrNoFireTime
}

// matches reports whether t satisfies every constraint of the schedule.
func (e *Expression) matches(t time.Time) bool {
	t = t.In(e.loc)
	if e.years != nil && !containsInt(e.years, t.Year()) {
		return false
	}
	if !containsInt(e.months, int(t.Month())) {
		return false
	}
	if !containsInt(e.effectiveDays(t.Year(), int(t.Month())), t.Day()) {
		return false
	}
	return containsInt(e.hours, t.Hour()) &&
		containsInt(e.minutes, t.Minute()) &&
		containsInt(e.seconds, t.Second())
}

// effectiveDays resolves the concrete day-of-month set for one (year,
// month), leap-year aware. A modifier on either day field computes the
// day and takes precedence over explicit value sets; with no modifier,
// explicit day-of-month values apply, then the weekday set, then every
// day of the month. An empty result means the month cannot fire and is
// skipped.
func (e *Expression) effectiveDays(year, month int) []int {
	last := daysInMonth(year, time.Month(month))

	switch e.dom.kind {
	case kindLastDay:
		d := last - e.dom.offset
		if d < 1 {
			return nil
		}
		return []int{d}
	case kindLastWeekday:
		return []int{lastWorkday(year, month, last)}
	case kindNearestWeekday:
		if e.dom.day > last {
			return nil
		}
		return []int{nearestWorkday(year, month, e.dom.day, last)}
	}
	switch e.dow.kind {
	case kindNthWeekday:
		d := firstWeekday(year, month, e.dow.weekday) + 7*(e.dow.nth-1)
		if d > last {
			return nil
		}
		return []int{d}
	case kindLastOfWeekday:
		return []int{last - (weekdayOf(year, month, last)-e.dow.weekday+7)%7}
	}

	if e.dom.kind == kindValues {
		days := make([]int, 0, len(e.dom.values))
		for _, d := range e.dom.values {
			if d <= last {
				days = append(days, d)
			}
		}
		return days
	}
	if e.dow.kind == kindValues {
		var days []int
		for d := 1; d <= last; d++ {
			if containsInt(e.dow.values, weekdayOf(year, month, d)) {
				days = append(days, d)
			}
		}
		return days
	}

	days := make([]int, last)
	for i := range days {
		days[i] = i + 1
	}
	return days
}

// yearWindow returns the inclusive year bounds of the search: the span of
// the year set when constrained, otherwise the reference year widened by
// unboundedYearSpan and clamped to the field domain.
func (e *Expression) yearWindow(ref int) (int, int) {
	if e.years != nil {
		return e.years[0], e.years[len(e.years)-1]
	}
	lo, hi := ref-unboundedYearSpan, ref+unboundedYearSpan
	if lo < yearBounds.min {
		lo = yearBounds.min
	}
	if hi > yearBounds.max {
		hi = yearBounds.max
	}
	return lo, hi
}

// wall builds an instant from wall-clock fields. When the requested local
// time falls in a DST spring-forward gap, time.Date normalizes to a real
// instant on one side of it: along the search direction that is a valid
// resume point, against it the cursor would oscillate against the seek,
// so the gap is crossed explicitly instead.
func (e *Expression) wall(y, m, d, h, min, s, dir int) time.Time {
	t := time.Date(y, time.Month(m), d, h, min, s, 0, e.loc)
	if t.Day() == d && t.Hour() == h && t.Minute() == min && t.Second() == s {
		return t
	}
	if (dir > 0) == wallBefore(t, y, m, d, h, min, s) {
		return crossTransition(t, dir)
	}
	return t
}

// wallBefore reports whether t's wall-clock reading is earlier than the
// given civil time.
func wallBefore(t time.Time, y, m, d, h, min, s int) bool {
	ty, tm, td := t.Date()
	a := [6]int{ty, int(tm), td, t.Hour(), t.Minute(), t.Second()}
	b := [6]int{y, m, d, h, min, s}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// crossTransition walks to the nearest zone offset change: forward it
// returns the first instant on the far side of the transition, backward
// the last instant before it. Transitions sit on whole minutes and the
// scan starts adjacent to one, so the walk is short.
func crossTransition(t time.Time, dir int) time.Time {
	_, off := t.Zone()
	u := t.Truncate(time.Minute)
	for i := 0; i < 48*60; i++ {
		u = u.Add(time.Duration(dir) * time.Minute)
		if _, o := u.Zone(); o != off {
			if dir < 0 {
				return u.Add(59 * time.Second)
			}
			return u
		}
	}
	return t
}

// Cursor origins: the first representable instant of a unit going forward,
// the last going backward.

func (e *Expression) yearOrigin(y, dir int) time.Time {
	if dir > 0 {
		return e.wall(y, 1, 1, 0, 0, 0, dir)
	}
	return e.wall(y, 12, 31, 23, 59, 59, dir)
}

func (e *Expression) monthOrigin(y, m, dir int) time.Time {
	if dir > 0 {
		return e.wall(y, m, 1, 0, 0, 0, dir)
	}
	return e.wall(y, m, daysInMonth(y, time.Month(m)), 23, 59, 59, dir)
}

func (e *Expression) dayOrigin(y, m, d, dir int) time.Time {
	if dir > 0 {
		return e.wall(y, m, d, 0, 0, 0, dir)
	}
	return e.wall(y, m, d, 23, 59, 59, dir)
}

func (e *Expression) adjacentMonth(y, m, dir int) time.Time {
	if dir > 0 {
		if m == 12 {
			return e.yearOrigin(y+1, dir)
		}
		return e.monthOrigin(y, m+1, dir)
	}
	if m == 1 {
		return e.yearOrigin(y-1, dir)
	}
	return e.monthOrigin(y, m-1, dir)
}

func (e *Expression) adjacentDay(y, m, d, dir int) time.Time {
	if dir > 0 {
		if d >= daysInMonth(y, time.Month(m)) {
			return e.adjacentMonth(y, m, dir)
		}
		return e.wall(y, m, d+1, 0, 0, 0, dir)
	}
	if d <= 1 {
		return e.adjacentMonth(y, m, dir)
	}
	return e.wall(y, m, d-1, 23, 59, 59, dir)
}

func (e *Expression) adjacentHour(t time.Time, dir int) time.Time {
	y, m, d := t.Year(), int(t.Month()), t.Day()
	if dir > 0 {
		if t.Hour() == 23 {
			return e.adjacentDay(y, m, d, dir)
		}
		return e.wall(y, m, d, t.Hour()+1, 0, 0, dir)
	}
	if t.Hour() == 0 {
		return e.adjacentDay(y, m, d, dir)
	}
	return e.wall(y, m, d, t.Hour()-1, 59, 59, dir)
}

func (e *Expression) adjacentMinute(t time.Time, dir int) time.Time {
	y, m, d := t.Year(), int(t.Month()), t.Day()
	if dir > 0 {
		if t.Minute() == 59 {
			return e.adjacentHour(t, dir)
		}
		return e.wall(y, m, d, t.Hour(), t.Minute()+1, 0, dir)
	}
	if t.Minute() == 0 {
		return e.adjacentHour(t, dir)
	}
	return e.wall(y, m, d, t.Hour(), t.Minute()-1, 59, dir)
}

func originMinute(dir int) int {
	if dir > 0 {
		return 0
	}
	return 59
}

func originSecond(dir int) int {
	if dir > 0 {
		return 0
	}
	return 59
}

// seek returns the nearest value in the search direction from v within a
// sorted set, or false when the set is exhausted in that direction.
func seek(values []int, v, dir int) (int, bool) {
	if dir > 0 {
		for _, c := range values {
			if c >= v {
				return c, true
			}
		}
		return 0, false
	}
	for i := len(values) - 1; i >= 0; i-- {
		if values[i] <= v {
			return values[i], true
		}
	}
	return 0, false
}

func containsInt(values []int, v int) bool {
	for _, c := range values {
		if c == v {
			return true
		}
	}
	return false
}

// weekdayOf returns the weekday of a civil date, 0=Sunday..6=Saturday.
// The weekday of a calendar date does not depend on the timezone.
func weekdayOf(year, month, day int) int {
	return int(time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC).Weekday())
}

// firstWeekday returns the day of month of the first occurrence of the
// given weekday.
func firstWeekday(year, month, weekday int) int {
	return 1 + (weekday-weekdayOf(year, month, 1)+7)%7
}

// nearestWorkday maps a target day to the closest Monday-Friday day,
// never crossing the month boundary: a Saturday moves to the preceding
// Friday, a Sunday to the following Monday, with the month edges folding
// the other way.
func nearestWorkday(year, month, target, last int) int {
	switch weekdayOf(year, month, target) {
	case 6: // Saturday
		if target > 1 {
			return target - 1
		}
		return target + 2
	case 0: // Sunday
		if target < last {
			return target + 1
		}
		return target - 2
	}
	return target
}

// lastWorkday walks back from the month's last day to a Monday-Friday day.
func lastWorkday(year, month, last int) int {
	d := last
	for wd := weekdayOf(year, month, d); wd == 0 || wd == 6; wd = weekdayOf(year, month, d) {
		d--
	}
	return d
}

// daysInMonth returns the number of days in a given month of a specific year.
func daysInMonth(year int, month time.Month) int {
	switch month {
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if isLeap(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// isLeap returns true if the given year is a leap year.
func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
