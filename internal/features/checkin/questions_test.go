package checkin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func questionByKey(t *testing.T, key string) Question {
	t.Helper()
	for _, q := range questions {
		if q.Key == key {
			return q
		}
	}
	t.Fatalf("no question %q", key)
	return Question{}
}

func TestQuestionOrder(t *testing.T) {
	keys := make([]string, 0, len(questions))
	for _, q := range questions {
		keys = append(keys, q.Key)
	}
	require.Equal(t, []string{
		"strength", "cardio", "steps", "sleep",
		"heavy_meals", "shakes",
		"vitamins", "creatine", "magnesium", "omega3",
		"water", "alcohol", "pastry", "fastfood",
	}, keys)
}

func TestParseNumber(t *testing.T) {
	q := questionByKey(t, "strength")

	val, ok, _ := q.Parse("45")
	require.True(t, ok)
	require.Equal(t, 45.0, val)

	val, ok, _ = q.Parse("  0  ")
	require.True(t, ok)
	require.Equal(t, 0.0, val)

	_, ok, msg := q.Parse("banana")
	require.False(t, ok)
	require.Equal(t, "Please enter a valid number or `skip`.", msg)

	// ints reject float syntax
	_, ok, _ = q.Parse("45.5")
	require.False(t, ok)

	_, ok, msg = q.Parse("301")
	require.False(t, ok)
	require.Equal(t, "Please enter a value ≤ 300, or `skip`.", msg)

	_, ok, _ = q.Parse("-1")
	require.False(t, ok)
}

func TestParseFloat(t *testing.T) {
	q := questionByKey(t, "sleep")

	val, ok, _ := q.Parse("7.5")
	require.True(t, ok)
	require.Equal(t, 7.5, val)

	_, ok, msg := q.Parse("17")
	require.False(t, ok)
	require.Equal(t, "Please enter a value ≤ 16, or `skip`.", msg)
}

func TestParseYesNo(t *testing.T) {
	q := questionByKey(t, "vitamins")

	for _, answer := range []string{"yes", "y", "YES", " Yes "} {
		val, ok, _ := q.Parse(answer)
		require.True(t, ok, "answer=%q", answer)
		require.Equal(t, 1.0, val)
	}
	for _, answer := range []string{"no", "n", "No"} {
		val, ok, _ := q.Parse(answer)
		require.True(t, ok, "answer=%q", answer)
		require.Equal(t, 0.0, val)
	}

	_, ok, msg := q.Parse("maybe")
	require.False(t, ok)
	require.Equal(t, "Please reply with `yes`, `no`, or `skip`.", msg)
}

func TestParseSkipUsesDefault(t *testing.T) {
	for _, key := range []string{"strength", "sleep", "vitamins"} {
		val, ok, _ := questionByKey(t, key).Parse("skip")
		require.True(t, ok, "key=%s", key)
		require.Equal(t, 0.0, val)
	}
}
