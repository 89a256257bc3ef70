package reminder

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironkeep/fitness-bot/internal/features/logbook"
)

func TestMarkOnceFirstWinsPerDay(t *testing.T) {
	c := NewDayCache()

	require.True(t, c.MarkOnce("g1", "u1", "2026-08-30"))
	require.False(t, c.MarkOnce("g1", "u1", "2026-08-30"))
}

func TestMarkOnceResetsOnNewDay(t *testing.T) {
	c := NewDayCache()

	require.True(t, c.MarkOnce("g1", "u1", "2026-08-30"))
	require.True(t, c.MarkOnce("g1", "u1", "2026-08-31"))
	require.False(t, c.MarkOnce("g1", "u1", "2026-08-31"))
}

func TestMarkOnceKeysByGuildAndUser(t *testing.T) {
	c := NewDayCache()

	require.True(t, c.MarkOnce("g1", "u1", "2026-08-30"))
	require.True(t, c.MarkOnce("g2", "u1", "2026-08-30"))
	require.True(t, c.MarkOnce("g1", "u2", "2026-08-30"))
}

func TestMarkOnceConcurrentSingleWinner(t *testing.T) {
	c := NewDayCache()

	const n = 32
	wins := make(chan bool, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wins <- c.MarkOnce("g1", "u1", "2026-08-30")
		}()
	}
	wg.Wait()
	close(wins)

	won := 0
	for w := range wins {
		if w {
			won++
		}
	}
	require.Equal(t, 1, won)
}

func TestBuildScoreboardMarksCaller(t *testing.T) {
	rows := []logbook.UserTotal{
		{UserID: "1", Username: "alice", Points: 5.25},
		{UserID: "2", Username: "bob", Points: 3},
	}

	board := buildScoreboard("2", "2026-08-30", rows)
	require.Contains(t, board, "Today’s scores (2026-08-30)")
	require.Contains(t, board, "1. `alice` — **5.25 pts**")
	require.Contains(t, board, "👉 `bob` — **3.00 pts**")
}

func TestBuildScoreboardEmpty(t *testing.T) {
	board := buildScoreboard("2", "2026-08-30", nil)
	require.Contains(t, board, "Be the first to start the grind")
}

func TestBuildReminderIncludesTotalAndHints(t *testing.T) {
	msg := buildReminder("<@2>", "2", "2026-08-30", 4.5, nil)
	require.Contains(t, msg, "<@2> welcome back, warrior")
	require.Contains(t, msg, "**4.50 pts**")
	require.Contains(t, msg, "/checkin")
	require.Contains(t, msg, "/log_lift")
}
