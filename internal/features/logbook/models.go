// Package logbook owns the append-only activity log: one row per logged
// activity, plus the read-side aggregates every other feature is built on.
// models.go describes the stored entry and the aggregate row shapes.
package logbook

import "time"

// Category is the fixed activity enumeration. Values are stored verbatim
// in the logs table, so they never change once shipped.
type Category string

const (
	CategoryStrength    Category = "strength"
	CategoryCardio      Category = "cardio"
	CategorySteps       Category = "steps"
	CategorySleep       Category = "sleep"
	CategoryProtein     Category = "protein"
	CategorySupplements Category = "supplements"
	CategoryWater       Category = "water"
	CategoryAlcohol     Category = "alcohol"
	CategoryPastry      Category = "pastry"
	CategoryFastFood    Category = "fastfood"
)

// Entry is one persisted activity log row. Entries are immutable: they are
// inserted exactly once and never updated or deleted. Repeated logging of
// the same category on the same day is additive by design.
type Entry struct {
	ID        int64     `db:"id"`
	UserID    string    `db:"user_id"`    // Discord snowflake
	Username  string    `db:"username"`   // display-name snapshot at log time
	Date      string    `db:"date"`       // UTC calendar day the activity counts toward
	Category  Category  `db:"category"`   //
	Value     float64   `db:"value"`      // the reported quantity (minutes, steps, oz, ...)
	Points    float64   `db:"points"`     // computed at write time, may be negative
	CreatedAt time.Time `db:"created_at"` // audit only, never used in scoring
}

// CategoryTotal is one row of a per-day category breakdown.
type CategoryTotal struct {
	Category Category
	Points   float64
}

// UserTotal is one leaderboard row: summed points for a user over a range.
type UserTotal struct {
	UserID   string
	Username string
	Points   float64
}

// DayTotal is one row of a per-user daily time series.
type DayTotal struct {
	Date   string
	Points float64
}
