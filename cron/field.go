package cron

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type fieldKind int

const (
	kindWildcard fieldKind = iota
	kindValues
	kindLastDay        // L or L-N, day of month
	kindLastWeekday    // LW, day of month
	kindNearestWeekday // NW, day of month
	kindNthWeekday     // W#N, day of week
	kindLastOfWeekday  // WL, day of week
)

// fieldSpec is the parsed form of a single cron field. Exactly one variant
// is active; values is populated only for kindValues.
type fieldSpec struct {
	kind    fieldKind
	values  []int
	day     int // target day for kindNearestWeekday
	weekday int // 0=Sunday..6=Saturday for the weekday variants
	nth     int // occurrence for kindNthWeekday
	offset  int // days before the last day for kindLastDay
}

// bounds describes a field's numeric domain plus its name aliases.
type bounds struct {
	min, max int
	names    map[string]int
}

var (
	secondBounds = bounds{0, 59, nil}
	minuteBounds = bounds{0, 59, nil}
	hourBounds   = bounds{0, 23, nil}
	domBounds    = bounds{1, 31, nil}
	yearBounds   = bounds{1970, 2099, nil}

	monthBounds = bounds{1, 12, map[string]int{
		"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
		"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
	}}

	// Day of week is parsed in the Quartz convention, 1=Sunday..7=Saturday.
	dowBounds = bounds{1, 7, map[string]int{
		"sun": 1, "mon": 2, "tue": 3, "wed": 4, "thu": 5, "fri": 6, "sat": 7,
	}}
)

// value resolves a single token against the domain, trying name aliases
// before numeric parsing.
func (b bounds) value(s string) (int, error) {
	if b.names != nil {
		if v, ok := b.names[strings.ToLower(s)]; ok {
			return v, nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	if n < b.min || n > b.max {
		return 0, fmt.Errorf("%w: %d not in %d-%d", ErrRange, n, b.min, b.max)
	}
	return n, nil
}

// parseField resolves the shared field grammar: wildcards, comma lists,
// inclusive ranges and stepped ranges. A values set covering the whole
// domain is normalized to a wildcard.
func parseField(field string, b bounds) (fieldSpec, error) {
	if field == "*" || field == "?" {
		return fieldSpec{kind: kindWildcard}, nil
	}
	seen := make(map[int]bool)
	for _, part := range strings.Split(field, ",") {
		step := 1
		hasStep := false
		rangePart := part
		if strings.Contains(part, "/") {
			subs := strings.SplitN(part, "/", 2)
			rangePart = subs[0]
			n, err := strconv.Atoi(subs[1])
			if err != nil {
				return fieldSpec{}, fmt.Errorf("%w: step %q", ErrSyntax, subs[1])
			}
			if n <= 0 {
				return fieldSpec{}, fmt.Errorf("%w: step must be positive, got %d", ErrRange, n)
			}
			step = n
			hasStep = true
		}

		rmin, rmax := b.min, b.max
		switch {
		case rangePart == "*":
			// Full domain, usually as a step base. A bare "?" only
			// stands in for the whole field, never for a list member.
		case strings.Contains(rangePart, "-"):
			lohi := strings.SplitN(rangePart, "-", 2)
			lo, err := b.value(lohi[0])
			if err != nil {
				return fieldSpec{}, err
			}
			hi, err := b.value(lohi[1])
			if err != nil {
				return fieldSpec{}, err
			}
			if lo > hi {
				return fieldSpec{}, fmt.Errorf("%w: inverted range %s", ErrRange, rangePart)
			}
			rmin, rmax = lo, hi
		default:
			v, err := b.value(rangePart)
			if err != nil {
				return fieldSpec{}, err
			}
			rmin = v
			if !hasStep {
				rmax = v
			}
		}

		for i := rmin; i <= rmax; i += step {
			seen[i] = true
		}
	}

	values := make([]int, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Ints(values)
	if len(values) == b.max-b.min+1 {
		return fieldSpec{kind: kindWildcard}, nil
	}
	return fieldSpec{kind: kindValues, values: values}, nil
}

// parseDayOfMonth handles the day-of-month modifiers L, L-N, LW and NW
// before falling back to the shared grammar.
func parseDayOfMonth(field string) (fieldSpec, error) {
	u := strings.ToUpper(field)
	switch {
	case u == "L":
		return fieldSpec{kind: kindLastDay}, nil
	case u == "LW":
		return fieldSpec{kind: kindLastWeekday}, nil
	case strings.HasPrefix(u, "L-"):
		n, err := strconv.Atoi(u[2:])
		if err != nil {
			return fieldSpec{}, fmt.Errorf("%w: last-day offset %q", ErrSyntax, u[2:])
		}
		if n < 0 {
			return fieldSpec{}, fmt.Errorf("%w: negative last-day offset %d", ErrRange, n)
		}
		if n > 30 {
			return fieldSpec{}, fmt.Errorf("%w: last-day offset %d exceeds any month", ErrRange, n)
		}
		return fieldSpec{kind: kindLastDay, offset: n}, nil
	case strings.HasSuffix(u, "W") && u != "W":
		d, err := domBounds.value(strings.TrimSuffix(u, "W"))
		if err != nil {
			return fieldSpec{}, err
		}
		return fieldSpec{kind: kindNearestWeekday, day: d}, nil
	}
	return parseField(field, domBounds)
}

// parseDayOfWeek handles the day-of-week modifiers W#N and WL before
// falling back to the shared grammar. Values are normalized from the
// Quartz 1=Sunday..7=Saturday domain to canonical 0=Sunday..6=Saturday.
func parseDayOfWeek(field string) (fieldSpec, error) {
	if strings.Contains(field, "#") {
		subs := strings.SplitN(field, "#", 2)
		w, err := dowBounds.value(subs[0])
		if err != nil {
			return fieldSpec{}, err
		}
		n, err := strconv.Atoi(subs[1])
		if err != nil {
			return fieldSpec{}, fmt.Errorf("%w: nth occurrence %q", ErrSyntax, subs[1])
		}
		if n < 1 || n > 5 {
			return fieldSpec{}, fmt.Errorf("%w: nth occurrence %d not in 1-5", ErrRange, n)
		}
		return fieldSpec{kind: kindNthWeekday, weekday: w - 1, nth: n}, nil
	}
	if u := strings.ToUpper(field); strings.HasSuffix(u, "L") && u != "L" {
		w, err := dowBounds.value(strings.TrimSuffix(u, "L"))
		if err != nil {
			return fieldSpec{}, err
		}
		return fieldSpec{kind: kindLastOfWeekday, weekday: w - 1}, nil
	}
	spec, err := parseField(field, dowBounds)
	if err != nil {
		return fieldSpec{}, err
	}
	if spec.kind == kindValues {
		for i := range spec.values {
			spec.values[i]--
		}
	}
	return spec, nil
}
