// Package common holds the small utilities every feature package leans on:
// calendar-day handling and point formatting.
//
// All "days" in this bot are UTC calendar days. The scoring day boundary
// therefore does not follow any guild's local midnight; that is the
// long-standing behavior of the challenge and members plan around it, so
// it stays UTC rather than per-guild local time.
package common

import (
	"fmt"
	"time"
)

// DayFormat is the calendar-day layout stored in the logs table.
const DayFormat = "2006-01-02"

// Day renders t as a UTC calendar day string.
//
// Examples:
//
//	Day(time.Date(2025, 3, 9, 23, 30, 0, 0, time.UTC)) → "2025-03-09"
func Day(t time.Time) string {
	return t.UTC().Format(DayFormat)
}

// Today returns the current UTC day string.
func Today() string {
	return Day(time.Now())
}

// Yesterday returns the previous UTC day string.
func Yesterday() string {
	return Day(time.Now().AddDate(0, 0, -1))
}

// TrailingRange returns the inclusive [start, end] day strings for a window
// of days ending at end. days=1 yields start == end.
func TrailingRange(end time.Time, days int) (string, string) {
	e := end.UTC()
	s := e.AddDate(0, 0, -(days - 1))
	return Day(s), Day(e)
}

// FormatPoints renders a point value the way every reply shows it.
// Example: FormatPoints(1.25) → "1.25"
func FormatPoints(pts float64) string {
	return fmt.Sprintf("%.2f", pts)
}

// PluralizeDays returns "day" or "days" for n.
func PluralizeDays(n int) string {
	if n == 1 || n == -1 {
		return "day"
	}
	return "days"
}
