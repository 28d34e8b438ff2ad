package cron

import (
	"fmt"
	"strings"
)

var dayNames = [...]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Describe renders the schedule as an English sentence. It is a pure
// function of the parsed model: repeated calls return the same string.
// Field sets covering their full domain read as unconstrained and are
// omitted.
func (e *Expression) Describe() string {
	clauses := e.timeClauses()
	if c := e.dayClause(); c != "" {
		clauses = append(clauses, c)
	}
	if c := e.monthClause(); c != "" {
		clauses = append(clauses, c)
	}
	if e.years != nil && len(e.years) == 1 {
		clauses = append(clauses, fmt.Sprintf("in year %d", e.years[0]))
	}
	return strings.Join(clauses, ", ")
}

func (e *Expression) timeClauses() []string {
	secondsAll := len(e.seconds) == 60
	minutesAll := len(e.minutes) == 60
	hoursAll := len(e.hours) == 24
	secondsSilent := len(e.seconds) == 1 && e.seconds[0] == 0

	if len(e.seconds) == 1 && len(e.minutes) == 1 && len(e.hours) == 1 {
		if e.seconds[0] == 0 && e.minutes[0] == 0 && e.hours[0] == 0 {
			return []string{"at midnight"}
		}
		return []string{"at " + clockTime(e.hours[0], e.minutes[0], e.seconds[0])}
	}

	var clauses []string
	switch {
	case secondsAll:
		clauses = append(clauses, "every second")
	case !secondsSilent:
		clauses = append(clauses, unitClause(e.seconds, secondBounds, "second", "seconds"))
	}
	if minutesAll {
		if !secondsAll && secondsSilent {
			clauses = append(clauses, "every minute")
		}
	} else {
		clauses = append(clauses, unitClause(e.minutes, minuteBounds, "minute", "minutes"))
	}
	if !hoursAll {
		clauses = append(clauses, unitClause(e.hours, hourBounds, "hour", "hours"))
	}
	if len(clauses) == 0 {
		return []string{"every minute"}
	}
	return clauses
}

// unitClause phrases one time unit: a uniform stride from the domain start
// reads as a frequency, anything else as an enumeration.
func unitClause(values []int, b bounds, singular, plural string) string {
	if stride, ok := uniformStride(values, b); ok {
		return fmt.Sprintf("every %d %s", stride, plural)
	}
	if len(values) == 1 {
		return fmt.Sprintf("at %s %d", singular, values[0])
	}
	return fmt.Sprintf("at %s %s", plural, joinInts(values))
}

// uniformStride reports whether the values are exactly min, min+s, min+2s…
// up to the domain edge.
func uniformStride(values []int, b bounds) (int, bool) {
	if len(values) < 2 || values[0] != b.min {
		return 0, false
	}
	stride := values[1] - values[0]
	for i := 1; i < len(values); i++ {
		if values[i]-values[i-1] != stride {
			return 0, false
		}
	}
	if values[len(values)-1]+stride <= b.max {
		return 0, false
	}
	return stride, true
}

func clockTime(hour, minute, second int) string {
	meridiem := "AM"
	display := hour
	switch {
	case hour == 0:
		display = 12
	case hour == 12:
		meridiem = "PM"
	case hour > 12:
		display = hour - 12
		meridiem = "PM"
	}
	if second != 0 {
		return fmt.Sprintf("%d:%02d:%02d %s", display, minute, second, meridiem)
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, meridiem)
}

func (e *Expression) dayClause() string {
	switch e.dom.kind {
	case kindLastDay:
		switch e.dom.offset {
		case 0:
			return "on the last day of the month"
		case 1:
			return "1 day before the last day of the month"
		default:
			return fmt.Sprintf("%d days before the last day of the month", e.dom.offset)
		}
	case kindLastWeekday:
		return "on the last weekday of the month"
	case kindNearestWeekday:
		return fmt.Sprintf("on the nearest weekday to the %s of the month", ordinal(e.dom.day))
	case kindValues:
		if len(e.dom.values) == 1 {
			return fmt.Sprintf("on day %d of the month", e.dom.values[0])
		}
		return fmt.Sprintf("on days %s of the month", joinInts(e.dom.values))
	}

	switch e.dow.kind {
	case kindNthWeekday:
		return fmt.Sprintf("on the %s %s of the month", ordinal(e.dow.nth), dayNames[e.dow.weekday])
	case kindLastOfWeekday:
		return fmt.Sprintf("on the last %s of the month", dayNames[e.dow.weekday])
	case kindValues:
		if len(e.dow.values) == 1 {
			return "on " + dayNames[e.dow.values[0]]
		}
		names := make([]string, len(e.dow.values))
		for i, w := range e.dow.values {
			names[i] = dayNames[w]
		}
		return "on days " + strings.Join(names, ", ")
	}
	return ""
}

func (e *Expression) monthClause() string {
	if len(e.months) == 12 {
		return ""
	}
	if len(e.months) == 1 {
		return "in " + monthNames[e.months[0]-1]
	}
	names := make([]string, len(e.months))
	for i, m := range e.months {
		names[i] = monthNames[m-1]
	}
	return "in months " + strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ", ")
}

func ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
