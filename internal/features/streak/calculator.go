// Package streak derives consecutive-day streaks from a user's daily
// point totals. calculator.go is pure: it sees only a date→points map and
// a reference day, so it is trivially testable and never touches the store.
package streak

import (
	"time"

	"github.com/ironkeep/fitness-bot/internal/common"
)

// A "good day" is any day whose summed points meet the threshold
// (inclusive). The window bounds how far back either streak can reach.
const (
	GoodDayThreshold = 4.0
	WindowDays       = 90
)

// Compute returns the current and best streaks over the trailing window
// ending at today.
//
// Current streak: walk backward from today, counting while each day's
// total is ≥ threshold; a day missing from totals counts as 0 and breaks
// the run.
//
// Best streak: walk the window forward keeping a running count of
// consecutive good days; the best is the maximum ever observed.
func Compute(totals map[string]float64, today time.Time, threshold float64, windowDays int) (current, best int) {
	end := today.UTC()

	for offset := 0; offset < windowDays; offset++ {
		day := common.Day(end.AddDate(0, 0, -offset))
		if totals[day] >= threshold {
			current++
		} else {
			break
		}
	}

	start := end.AddDate(0, 0, -(windowDays - 1))
	running := 0
	for offset := 0; offset < windowDays; offset++ {
		day := common.Day(start.AddDate(0, 0, offset))
		if totals[day] >= threshold {
			running++
			if running > best {
				best = running
			}
		} else {
			running = 0
		}
	}

	return current, best
}
