package cron

import (
	"testing"
	"time"

	robfig "github.com/robfig/cron/v3"
	"github.com/stretchr/testify/require"
)

// TestNextAgreesWithRobfig cross-checks the search engine against the
// robfig parser on modifier-free five-field expressions, walking each
// schedule forward through a year of fires. Day-of-week uses names so both
// parsers share a numbering.
func TestNextAgreesWithRobfig(t *testing.T) {
	exprs := []string{
		"*/15 * * * *",
		"30 6 * * *",
		"0 9 * * MON-FRI",
		"0 0 1 * *",
		"15 14 1 3 *",
		"0,30 8-18 * * *",
	}
	start := time.Date(2025, 1, 31, 22, 11, 5, 0, time.UTC)

	for _, raw := range exprs {
		t.Run(raw, func(t *testing.T) {
			ours, err := Parse(raw, "UTC")
			require.NoError(t, err)
			theirs, err := robfig.ParseStandard(raw)
			require.NoError(t, err)

			at := start
			for i := 0; i < 25; i++ {
				want := theirs.Next(at)
				got, err := ours.Next(at)
				require.NoError(t, err)
				require.True(t, got.Equal(want),
					"step %d: got %s, want %s", i, got, want)
				at = got
			}
		})
	}
}
