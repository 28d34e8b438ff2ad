package cron

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFieldValues(t *testing.T) {
	cases := []struct {
		name  string
		field string
		b     bounds
		want  []int
	}{
		{
			name:  "single value",
			field: "5",
			b:     minuteBounds,
			want:  []int{5},
		},
		{
			name:  "comma list",
			field: "1,15,30",
			b:     minuteBounds,
			want:  []int{1, 15, 30},
		},
		{
			name:  "deduplicated and sorted",
			field: "30,1,30",
			b:     minuteBounds,
			want:  []int{1, 30},
		},
		{
			name:  "inclusive range",
			field: "8-11",
			b:     hourBounds,
			want:  []int{8, 9, 10, 11},
		},
		{
			name:  "stepped range",
			field: "10-30/10",
			b:     minuteBounds,
			want:  []int{10, 20, 30},
		},
		{
			name:  "value with step runs to domain end",
			field: "45/5",
			b:     minuteBounds,
			want:  []int{45, 50, 55},
		},
		{
			name:  "wildcard with step",
			field: "*/15",
			b:     minuteBounds,
			want:  []int{0, 15, 30, 45},
		},
		{
			name:  "month names",
			field: "jan,JUL",
			b:     monthBounds,
			want:  []int{1, 7},
		},
		{
			name:  "weekday name range",
			field: "MON-FRI",
			b:     dowBounds,
			want:  []int{2, 3, 4, 5, 6},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec, err := parseField(c.field, c.b)
			assert.NoError(t, err)
			assert.Equal(t, kindValues, spec.kind)
			assert.Equal(t, c.want, spec.values)
		})
	}
}

func TestParseFieldWildcards(t *testing.T) {
	for _, field := range []string{"*", "?", "0-59", "*/1"} {
		spec, err := parseField(field, minuteBounds)
		assert.NoError(t, err, field)
		assert.Equal(t, kindWildcard, spec.kind, field)
	}
}

func TestParseFieldErrors(t *testing.T) {
	cases := []struct {
		name  string
		field string
		b     bounds
		want  error
	}{
		{"zero step", "*/0", minuteBounds, ErrRange},
		{"negative step", "5-30/-2", minuteBounds, ErrRange},
		{"non-numeric step", "*/x", minuteBounds, ErrSyntax},
		{"inverted range", "30-10", minuteBounds, ErrRange},
		{"value above domain", "61", minuteBounds, ErrRange},
		{"value below domain", "0", dowBounds, ErrRange},
		{"garbage token", "abc", minuteBounds, ErrSyntax},
		{"unknown name", "XYZ", monthBounds, ErrSyntax},
		{"trailing comma", "5,", minuteBounds, ErrSyntax},
		{"leading comma", ",5", minuteBounds, ErrSyntax},
		{"question mark in list", "1,?", minuteBounds, ErrSyntax},
		{"question mark as step base", "?/5", minuteBounds, ErrSyntax},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := parseField(c.field, c.b)
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func TestParseDayOfMonth(t *testing.T) {
	spec, err := parseDayOfMonth("L")
	assert.NoError(t, err)
	assert.Equal(t, fieldSpec{kind: kindLastDay}, spec)

	spec, err = parseDayOfMonth("L-3")
	assert.NoError(t, err)
	assert.Equal(t, fieldSpec{kind: kindLastDay, offset: 3}, spec)

	spec, err = parseDayOfMonth("lw")
	assert.NoError(t, err)
	assert.Equal(t, kindLastWeekday, spec.kind)

	spec, err = parseDayOfMonth("15W")
	assert.NoError(t, err)
	assert.Equal(t, fieldSpec{kind: kindNearestWeekday, day: 15}, spec)

	spec, err = parseDayOfMonth("7,14")
	assert.NoError(t, err)
	assert.Equal(t, []int{7, 14}, spec.values)

	_, err = parseDayOfMonth("L--1")
	assert.ErrorIs(t, err, ErrRange)
	_, err = parseDayOfMonth("L-40")
	assert.ErrorIs(t, err, ErrRange)
	_, err = parseDayOfMonth("32W")
	assert.ErrorIs(t, err, ErrRange)
	_, err = parseDayOfMonth("xW")
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestParseDayOfWeek(t *testing.T) {
	spec, err := parseDayOfWeek("MON#2")
	assert.NoError(t, err)
	assert.Equal(t, fieldSpec{kind: kindNthWeekday, weekday: 1, nth: 2}, spec)

	spec, err = parseDayOfWeek("6#1")
	assert.NoError(t, err)
	assert.Equal(t, fieldSpec{kind: kindNthWeekday, weekday: 5, nth: 1}, spec)

	spec, err = parseDayOfWeek("FRIL")
	assert.NoError(t, err)
	assert.Equal(t, fieldSpec{kind: kindLastOfWeekday, weekday: 5}, spec)

	spec, err = parseDayOfWeek("7L")
	assert.NoError(t, err)
	assert.Equal(t, fieldSpec{kind: kindLastOfWeekday, weekday: 6}, spec)

	// Quartz numbering shifted to canonical 0=Sunday.
	spec, err = parseDayOfWeek("1,7")
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 6}, spec.values)

	_, err = parseDayOfWeek("MON#6")
	assert.ErrorIs(t, err, ErrRange)
	_, err = parseDayOfWeek("MON#0")
	assert.ErrorIs(t, err, ErrRange)
	_, err = parseDayOfWeek("8")
	assert.ErrorIs(t, err, ErrRange)
}
