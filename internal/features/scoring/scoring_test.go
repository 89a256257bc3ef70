package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStrengthPointsBoundaries(t *testing.T) {
	cases := []struct {
		minutes int
		want    float64
	}{
		{0, 0.0},
		{29, 0.0},
		{30, 1.0},
		{44, 1.0},
		{45, 1.25},
		{59, 1.25},
		{60, 1.5},
		{300, 1.5},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, StrengthPoints(tc.minutes), "minutes=%d", tc.minutes)
	}
}

func TestStrengthPointsMonotonic(t *testing.T) {
	prev := StrengthPoints(0)
	for m := 1; m <= MaxActivityMinutes; m++ {
		pts := StrengthPoints(m)
		require.GreaterOrEqual(t, pts, prev, "minutes=%d", m)
		require.Contains(t, []float64{0.0, 1.0, 1.25, 1.5}, pts)
		prev = pts
	}
}

func TestCardioMatchesStrength(t *testing.T) {
	for _, m := range []int{0, 29, 30, 44, 45, 59, 60, 120} {
		require.Equal(t, StrengthPoints(m), CardioPoints(m))
	}
}

func TestStepsPointsBoundaries(t *testing.T) {
	require.Equal(t, 0.0, StepsPoints(9_999))
	require.Equal(t, 1.0, StepsPoints(10_000))
	require.Equal(t, 1.0, StepsPoints(14_999))
	require.Equal(t, 1.5, StepsPoints(15_000))
}

func TestSleepPointsBoundaries(t *testing.T) {
	require.Equal(t, 0.0, SleepPoints(5.9))
	require.Equal(t, 1.0, SleepPoints(6))
	require.Equal(t, 1.0, SleepPoints(7.9))
	require.Equal(t, 2.0, SleepPoints(8))
	require.Equal(t, 2.0, SleepPoints(12))
}

func TestProteinPointsCap(t *testing.T) {
	require.Equal(t, 0.0, ProteinPoints(0, 0))
	require.Equal(t, 0.5, ProteinPoints(0, 1))
	require.Equal(t, 1.0, ProteinPoints(1, 0))
	require.Equal(t, 1.5, ProteinPoints(1, 1))
	// 2*1.0 + 3*0.5 = 3.5, capped at 1.5
	require.Equal(t, 1.5, ProteinPoints(2, 3))
}

func TestSupplementPoints(t *testing.T) {
	require.Equal(t, 0.0, SupplementPoints(false, false, false, false))
	require.Equal(t, 0.25, SupplementPoints(true, false, false, false))
	require.Equal(t, 0.5, SupplementPoints(true, false, true, false))
	require.Equal(t, 1.0, SupplementPoints(true, true, true, true))
	require.Equal(t, 3, SupplementCount(true, false, true, true))
}

func TestWaterPoints(t *testing.T) {
	require.Equal(t, 0.0, WaterPoints(79))
	require.Equal(t, 0.5, WaterPoints(80))
	require.Equal(t, 0.5, WaterPoints(300))
}

func TestAlcoholPenaltyFloorDivision(t *testing.T) {
	require.Equal(t, 0.0, AlcoholPenalty(0))
	require.Equal(t, 0.0, AlcoholPenalty(2))
	require.Equal(t, -1.0, AlcoholPenalty(3))
	require.Equal(t, -1.0, AlcoholPenalty(5))
	require.Equal(t, -2.0, AlcoholPenalty(6))
	require.Equal(t, -10.0, AlcoholPenalty(30))
}

func TestJunkFoodPenalties(t *testing.T) {
	require.Equal(t, 0.0, PastryPenalty(0))
	require.Equal(t, -3.0, PastryPenalty(3))
	require.Equal(t, -1.0, FastFoodPenalty(1))
	require.Equal(t, -10.0, FastFoodPenalty(10))
}
