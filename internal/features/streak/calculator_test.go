package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ironkeep/fitness-bot/internal/common"
)

// totalsFor builds a date→points map where daily[len-1] lands on today.
func totalsFor(today time.Time, daily []float64) map[string]float64 {
	totals := make(map[string]float64, len(daily))
	for idx, pts := range daily {
		offset := len(daily) - 1 - idx
		totals[common.Day(today.AddDate(0, 0, -offset))] = pts
	}
	return totals
}

func TestComputeEmptyWindow(t *testing.T) {
	current, best := Compute(nil, time.Now(), GoodDayThreshold, WindowDays)
	require.Equal(t, 0, current)
	require.Equal(t, 0, best)
}

func TestComputeBrokenThenRecovered(t *testing.T) {
	today := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	// oldest → newest, the zero day breaks the run
	totals := totalsFor(today, []float64{5, 5, 0, 5, 5, 5, 5, 5})

	current, best := Compute(totals, today, 4.0, WindowDays)
	require.Equal(t, 5, current)
	require.Equal(t, 5, best)
}

func TestComputeBestExceedsCurrent(t *testing.T) {
	today := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	// a six-day run in the past, only two days live now
	totals := totalsFor(today, []float64{4, 4, 4, 4, 4, 4, 0, 4, 4})

	current, best := Compute(totals, today, 4.0, WindowDays)
	require.Equal(t, 2, current)
	require.Equal(t, 6, best)
}

func TestComputeMissingDayBreaksCurrent(t *testing.T) {
	today := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	totals := map[string]float64{
		common.Day(today):                   5,
		common.Day(today.AddDate(0, 0, -2)): 5, // yesterday absent
	}

	current, best := Compute(totals, today, 4.0, WindowDays)
	require.Equal(t, 1, current)
	require.Equal(t, 1, best)
}

func TestComputeThresholdIsInclusive(t *testing.T) {
	today := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	totals := totalsFor(today, []float64{4.0, 3.99})

	current, best := Compute(totals, today, 4.0, WindowDays)
	require.Equal(t, 0, current, "3.99 today is not a good day")
	require.Equal(t, 1, best, "exactly 4.0 counts")
}

func TestComputeRespectsWindow(t *testing.T) {
	today := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	totals := make(map[string]float64)
	for offset := 0; offset < 120; offset++ {
		totals[common.Day(today.AddDate(0, 0, -offset))] = 5
	}

	current, best := Compute(totals, today, 4.0, 90)
	require.Equal(t, 90, current)
	require.Equal(t, 90, best)
}

func TestBadgeTiers(t *testing.T) {
	cases := []struct {
		streak int
		want   string
	}{
		{0, "✨ No badge yet — keep going!"},
		{2, "✨ No badge yet — keep going!"},
		{3, "🔥 3-Day Spark"},
		{4, "🔥 3-Day Spark"},
		{5, "💪 5-Day Grinder"},
		{7, "🏅 7-Day Warrior"},
		{14, "🐉 14-Day Beast"},
		{21, "👑 21-Day Monarch"},
		{30, "🚀 30-Day Legend"},
		{90, "🚀 30-Day Legend"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Badge(tc.streak), "streak=%d", tc.streak)
	}
}
