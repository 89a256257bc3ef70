// service.go is the write path: score, append, return
// the fresh daily total for the reply.

package logbook

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ironkeep/fitness-bot/internal/common"
)

// Service wraps the repository with the logging workflow used by the
// slash commands and the guided check-in.
type Service struct {
	repo *Repository
}

// NewService creates a logbook service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Log appends one scored entry for the given day and returns the user's
// new total for that day. Points must already be computed by the scoring
// engine; this layer never re-derives them.
func (s *Service) Log(ctx context.Context, userID, username, date string, category Category, value, points float64) (float64, error) {
	entry := &Entry{
		UserID:   userID,
		Username: username,
		Date:     date,
		Category: category,
		Value:    value,
		Points:   points,
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return 0, fmt.Errorf("logging %s: %w", category, err)
	}

	total, err := s.repo.DailyTotal(ctx, userID, date)
	if err != nil {
		return 0, err
	}

	log.WithFields(log.Fields{
		"user_id":  userID,
		"date":     date,
		"category": category,
		"value":    value,
		"points":   points,
	}).Debug("entry logged")

	return total, nil
}

// DailyTotal returns the summed points for a user on one day.
func (s *Service) DailyTotal(ctx context.Context, userID, date string) (float64, error) {
	return s.repo.DailyTotal(ctx, userID, date)
}

// DailyBreakdown returns a user's per-category sums for one day.
func (s *Service) DailyBreakdown(ctx context.Context, userID, date string) ([]CategoryTotal, error) {
	return s.repo.DailyBreakdown(ctx, userID, date)
}

// Leaderboard returns ranked totals over the trailing window of days
// ending today.
func (s *Service) Leaderboard(ctx context.Context, days, limit int) ([]UserTotal, error) {
	start, end := common.TrailingRange(time.Now(), days)
	return s.repo.RangeLeaderboard(ctx, start, end, limit)
}

// Series returns a user's per-day totals over the trailing window of days
// ending today, oldest first.
func (s *Service) Series(ctx context.Context, userID string, days int) ([]DayTotal, error) {
	start, end := common.TrailingRange(time.Now(), days)
	return s.repo.DailySeries(ctx, userID, start, end)
}

// SeriesMap is Series flattened into a date→points map, the shape the
// streak calculator consumes. Missing days are simply absent.
func (s *Service) SeriesMap(ctx context.Context, userID string, days int) (map[string]float64, error) {
	series, err := s.Series(ctx, userID, days)
	if err != nil {
		return nil, err
	}
	totals := make(map[string]float64, len(series))
	for _, dt := range series {
		totals[dt.Date] = dt.Points
	}
	return totals, nil
}
