package cron

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"0 0 0 * * ?", "at midnight"},
		{"0 30 8 * * ?", "at 8:30 AM"},
		{"0 0 12 * * ?", "at 12:00 PM"},
		{"0 15 0 * * ?", "at 12:15 AM"},
		{"30 15 14 * * ?", "at 2:15:30 PM"},
		{"0 */15 * * * ?", "every 15 minutes"},
		{"*/10 * * * * ?", "every 10 seconds"},
		{"0 0,30,45 * * * ?", "at minutes 0, 30, 45"},
		{"0 30 * * * ?", "at minute 30"},
		{"* * * * * ?", "every second"},
		{"* * * * *", "every minute"},
		{"0 0 0 L * ?", "at midnight, on the last day of the month"},
		{"0 0 0 L-3 * ?", "at midnight, 3 days before the last day of the month"},
		{"0 0 0 LW * ?", "at midnight, on the last weekday of the month"},
		{"0 0 0 15W * ?", "at midnight, on the nearest weekday to the 15th of the month"},
		{"0 0 12 ? * MON#1", "at 12:00 PM, on the 1st Monday of the month"},
		{"0 0 12 ? * FRI#3", "at 12:00 PM, on the 3rd Friday of the month"},
		{"0 0 0 ? * FRIL", "at midnight, on the last Friday of the month"},
		{"0 0 0 ? * MON", "at midnight, on Monday"},
		{"0 0 0 ? * SAT,SUN", "at midnight, on days Sunday, Saturday"},
		{"0 0 0 1,15 * ?", "at midnight, on days 1, 15 of the month"},
		{"0 0 0 29 2 ?", "at midnight, on day 29 of the month, in February"},
		{"0 0 0 1 1,7 ?", "at midnight, on day 1 of the month, in months January and July"},
		{"0 0 0 1 1 ? 2030", "at midnight, on day 1 of the month, in January, in year 2030"},
	}

	for _, c := range cases {
		t.Run(c.expr, func(t *testing.T) {
			e, err := Parse(c.expr, "UTC")
			if err != nil {
				t.Fatalf("failed to parse expression: %v", err)
			}
			assert.Equal(t, c.want, e.Describe())
		})
	}
}

func TestOrdinal(t *testing.T) {
	assert.Equal(t, "1st", ordinal(1))
	assert.Equal(t, "2nd", ordinal(2))
	assert.Equal(t, "3rd", ordinal(3))
	assert.Equal(t, "4th", ordinal(4))
	assert.Equal(t, "11th", ordinal(11))
	assert.Equal(t, "21st", ordinal(21))
	assert.Equal(t, "31st", ordinal(31))
}
