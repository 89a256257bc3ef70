package logbook

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironkeep/fitness-bot/internal/db/sqlite"
)

func newTestRepo(t *testing.T) (*Repository, *sql.DB) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, sqlite.Migrate(context.Background(), db))
	return NewRepository(db), db
}

func insert(t *testing.T, r *Repository, userID, username, date string, cat Category, value, points float64) {
	t.Helper()
	require.NoError(t, r.Insert(context.Background(), &Entry{
		UserID:   userID,
		Username: username,
		Date:     date,
		Category: cat,
		Value:    value,
		Points:   points,
	}))
}

func TestDailyTotalEmptyIsZero(t *testing.T) {
	repo, _ := newTestRepo(t)

	total, err := repo.DailyTotal(context.Background(), "u1", "2025-06-01")
	require.NoError(t, err)
	require.Equal(t, 0.0, total)
}

func TestDuplicateEntriesAreAdditive(t *testing.T) {
	repo, _ := newTestRepo(t)

	// the same entry twice: two independent rows, doubled total
	insert(t, repo, "u1", "ana", "2025-06-01", CategoryStrength, 45, 1.25)
	insert(t, repo, "u1", "ana", "2025-06-01", CategoryStrength, 45, 1.25)

	total, err := repo.DailyTotal(context.Background(), "u1", "2025-06-01")
	require.NoError(t, err)
	require.Equal(t, 2.5, total)

	var rows int
	require.NoError(t, repo.db.QueryRow("SELECT COUNT(*) FROM logs").Scan(&rows))
	require.Equal(t, 2, rows)
}

func TestDailyBreakdownGroupsAndOrders(t *testing.T) {
	repo, _ := newTestRepo(t)

	insert(t, repo, "u1", "ana", "2025-06-01", CategoryStrength, 45, 1.25)
	insert(t, repo, "u1", "ana", "2025-06-01", CategorySteps, 10_000, 1.0)
	insert(t, repo, "u1", "ana", "2025-06-02", CategorySleep, 8, 2.0) // other day, excluded
	insert(t, repo, "u2", "bo", "2025-06-01", CategoryWater, 90, 0.5) // other user, excluded

	breakdown, err := repo.DailyBreakdown(context.Background(), "u1", "2025-06-01")
	require.NoError(t, err)
	require.Equal(t, []CategoryTotal{
		{Category: CategorySteps, Points: 1.0},
		{Category: CategoryStrength, Points: 1.25},
	}, breakdown)

	total, err := repo.DailyTotal(context.Background(), "u1", "2025-06-01")
	require.NoError(t, err)
	require.Equal(t, 2.25, total)
}

func TestRangeLeaderboardOrderingAndTies(t *testing.T) {
	repo, _ := newTestRepo(t)

	insert(t, repo, "u2", "bo", "2025-06-01", CategorySleep, 8, 2.0)
	insert(t, repo, "u1", "ana", "2025-06-02", CategorySleep, 8, 2.0)
	insert(t, repo, "u3", "cy", "2025-06-03", CategorySleep, 8, 2.0)
	insert(t, repo, "u3", "cy", "2025-06-03", CategoryWater, 90, 0.5)
	insert(t, repo, "u4", "di", "2025-05-01", CategorySleep, 8, 2.0) // outside range

	board, err := repo.RangeLeaderboard(context.Background(), "2025-06-01", "2025-06-07", 10)
	require.NoError(t, err)

	// u3 leads; u1 and u2 tie at 2.0 and must come back in user_id order
	require.Equal(t, []UserTotal{
		{UserID: "u3", Username: "cy", Points: 2.5},
		{UserID: "u1", Username: "ana", Points: 2.0},
		{UserID: "u2", Username: "bo", Points: 2.0},
	}, board)

	// deterministic given identical input
	again, err := repo.RangeLeaderboard(context.Background(), "2025-06-01", "2025-06-07", 10)
	require.NoError(t, err)
	require.Equal(t, board, again)
}

func TestRangeLeaderboardLimit(t *testing.T) {
	repo, _ := newTestRepo(t)

	insert(t, repo, "u1", "ana", "2025-06-01", CategorySleep, 8, 2.0)
	insert(t, repo, "u2", "bo", "2025-06-01", CategorySleep, 7, 1.0)
	insert(t, repo, "u3", "cy", "2025-06-01", CategoryWater, 90, 0.5)

	board, err := repo.RangeLeaderboard(context.Background(), "2025-06-01", "2025-06-01", 2)
	require.NoError(t, err)
	require.Len(t, board, 2)
	require.Equal(t, "u1", board[0].UserID)
}

func TestDailySeriesSkipsMissingDays(t *testing.T) {
	repo, _ := newTestRepo(t)

	insert(t, repo, "u1", "ana", "2025-06-01", CategorySleep, 8, 2.0)
	insert(t, repo, "u1", "ana", "2025-06-01", CategoryStrength, 60, 1.5)
	insert(t, repo, "u1", "ana", "2025-06-03", CategoryWater, 90, 0.5)

	series, err := repo.DailySeries(context.Background(), "u1", "2025-06-01", "2025-06-07")
	require.NoError(t, err)
	require.Equal(t, []DayTotal{
		{Date: "2025-06-01", Points: 3.5},
		{Date: "2025-06-03", Points: 0.5},
	}, series)
}

func TestNegativePointsSumIntoTotals(t *testing.T) {
	repo, _ := newTestRepo(t)

	insert(t, repo, "u1", "ana", "2025-06-01", CategorySleep, 8, 2.0)
	insert(t, repo, "u1", "ana", "2025-06-01", CategoryAlcohol, 6, -2.0)
	insert(t, repo, "u1", "ana", "2025-06-01", CategoryPastry, 1, -1.0)

	total, err := repo.DailyTotal(context.Background(), "u1", "2025-06-01")
	require.NoError(t, err)
	require.Equal(t, -1.0, total)
}
