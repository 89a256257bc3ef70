// service.go fetches the daily series and runs the
// calculator over it.

package streak

import (
	"context"
	"fmt"
	"time"

	"github.com/ironkeep/fitness-bot/internal/features/logbook"
)

// Service computes streaks for users from the activity log.
type Service struct {
	logs *logbook.Service
}

// NewService creates a streak service on top of the logbook.
func NewService(logs *logbook.Service) *Service {
	return &Service{logs: logs}
}

// ForUser returns the user's current and best streaks over the trailing
// 90-day window ending today.
func (s *Service) ForUser(ctx context.Context, userID string) (current, best int, err error) {
	totals, err := s.logs.SeriesMap(ctx, userID, WindowDays)
	if err != nil {
		return 0, 0, fmt.Errorf("loading daily series: %w", err)
	}
	current, best = Compute(totals, time.Now(), GoodDayThreshold, WindowDays)
	return current, best, nil
}
