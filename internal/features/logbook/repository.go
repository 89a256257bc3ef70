// repository.go runs the SQL against the logs table.
// The table is append-only: Insert is the only write path, everything else
// is a filtered/grouped SUM.

package logbook

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Repository provides access to the logs table.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a log repository on top of the shared handle.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Insert appends one entry. CreatedAt is stamped here; callers fill in
// everything else.
func (r *Repository) Insert(ctx context.Context, e *Entry) error {
	query := `
		INSERT INTO logs (user_id, username, date, category, value, points, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		e.UserID, e.Username, e.Date, string(e.Category), e.Value, e.Points,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting log entry: %w", err)
	}
	return nil
}

// DailyTotal returns the summed points for a user on one day.
// A day with no entries is 0, not an error.
func (r *Repository) DailyTotal(ctx context.Context, userID, date string) (float64, error) {
	query := `SELECT COALESCE(SUM(points), 0) FROM logs WHERE user_id = ? AND date = ?`
	var total float64
	if err := r.db.QueryRowContext(ctx, query, userID, date).Scan(&total); err != nil {
		return 0, fmt.Errorf("querying daily total (user_id=%s): %w", userID, err)
	}
	return total, nil
}

// DailyBreakdown returns a user's per-category point sums for one day,
// ordered by category name.
func (r *Repository) DailyBreakdown(ctx context.Context, userID, date string) ([]CategoryTotal, error) {
	query := `
		SELECT category, SUM(points)
		FROM logs
		WHERE user_id = ? AND date = ?
		GROUP BY category
		ORDER BY category
	`
	rows, err := r.db.QueryContext(ctx, query, userID, date)
	if err != nil {
		return nil, fmt.Errorf("querying daily breakdown: %w", err)
	}
	defer rows.Close()

	var breakdown []CategoryTotal
	for rows.Next() {
		var ct CategoryTotal
		var category string
		if err := rows.Scan(&category, &ct.Points); err != nil {
			return nil, fmt.Errorf("scanning breakdown row: %w", err)
		}
		ct.Category = Category(category)
		breakdown = append(breakdown, ct)
	}
	return breakdown, rows.Err()
}

// RangeLeaderboard returns per-user totals over an inclusive day range,
// best first. Ties are broken by user_id so identical inputs always
// produce identical ordering.
func (r *Repository) RangeLeaderboard(ctx context.Context, startDate, endDate string, limit int) ([]UserTotal, error) {
	query := `
		SELECT user_id, username, SUM(points) AS total_pts
		FROM logs
		WHERE date BETWEEN ? AND ?
		GROUP BY user_id, username
		ORDER BY total_pts DESC, user_id ASC
		LIMIT ?
	`
	rows, err := r.db.QueryContext(ctx, query, startDate, endDate, limit)
	if err != nil {
		return nil, fmt.Errorf("querying leaderboard: %w", err)
	}
	defer rows.Close()

	var board []UserTotal
	for rows.Next() {
		var ut UserTotal
		if err := rows.Scan(&ut.UserID, &ut.Username, &ut.Points); err != nil {
			return nil, fmt.Errorf("scanning leaderboard row: %w", err)
		}
		board = append(board, ut)
	}
	return board, rows.Err()
}

// DailySeries returns a user's per-day totals over an inclusive day range,
// oldest first. Days without entries are absent from the result.
func (r *Repository) DailySeries(ctx context.Context, userID, startDate, endDate string) ([]DayTotal, error) {
	query := `
		SELECT date, SUM(points) AS total_pts
		FROM logs
		WHERE user_id = ? AND date BETWEEN ? AND ?
		GROUP BY date
		ORDER BY date
	`
	rows, err := r.db.QueryContext(ctx, query, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("querying daily series: %w", err)
	}
	defer rows.Close()

	var series []DayTotal
	for rows.Next() {
		var dt DayTotal
		if err := rows.Scan(&dt.Date, &dt.Points); err != nil {
			return nil, fmt.Errorf("scanning series row: %w", err)
		}
		series = append(series, dt)
	}
	return series, rows.Err()
}
