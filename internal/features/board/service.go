// Package board renders the competitive read-side: leaderboards, the
// weekly winners announcement, and per-user week summaries. It owns no
// storage of its own; everything is composed from logbook aggregates and
// streak lookups.
package board

import (
	"context"
	"fmt"

	"github.com/ironkeep/fitness-bot/internal/features/logbook"
	"github.com/ironkeep/fitness-bot/internal/features/streak"
)

// Row is one rendered leaderboard row: a user's range total annotated
// with their streak state.
type Row struct {
	Rank          int
	UserID        string
	Username      string
	Points        float64
	CurrentStreak int
	BestStreak    int
	Badge         string
}

// Service assembles leaderboard rows.
type Service struct {
	logs    *logbook.Service
	streaks *streak.Service
}

// NewService creates a board service.
func NewService(logs *logbook.Service, streaks *streak.Service) *Service {
	return &Service{logs: logs, streaks: streaks}
}

// TopRows returns the ranked, streak-annotated rows for the trailing
// window of days. An empty result means nobody logged in the range.
func (s *Service) TopRows(ctx context.Context, days, limit int) ([]Row, error) {
	totals, err := s.logs.Leaderboard(ctx, days, limit)
	if err != nil {
		return nil, fmt.Errorf("loading leaderboard: %w", err)
	}

	rows := make([]Row, 0, len(totals))
	for idx, ut := range totals {
		current, best, err := s.streaks.ForUser(ctx, ut.UserID)
		if err != nil {
			return nil, fmt.Errorf("annotating streak for %s: %w", ut.UserID, err)
		}
		rows = append(rows, Row{
			Rank:          idx + 1,
			UserID:        ut.UserID,
			Username:      ut.Username,
			Points:        ut.Points,
			CurrentStreak: current,
			BestStreak:    best,
			Badge:         streak.Badge(current),
		})
	}
	return rows, nil
}

// WeekSummary bundles everything /week_summary shows for one user.
type WeekSummary struct {
	Days          []logbook.DayTotal
	Total         float64
	CurrentStreak int
	BestStreak    int
}

// SummaryForUser returns the caller's per-day totals over the trailing
// window plus their streak state.
func (s *Service) SummaryForUser(ctx context.Context, userID string, days int) (*WeekSummary, error) {
	series, err := s.logs.Series(ctx, userID, days)
	if err != nil {
		return nil, fmt.Errorf("loading week summary: %w", err)
	}

	summary := &WeekSummary{Days: series}
	for _, dt := range series {
		summary.Total += dt.Points
	}

	summary.CurrentStreak, summary.BestStreak, err = s.streaks.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return summary, nil
}
