// migrations.go applies the schema migrations in order.
// Migrations are embedded as string constants so a deploy is a single
// binary plus the database file; applied versions are tracked in
// schema_migrations and re-running is a no-op.

package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var migrations = []struct {
	version int
	sql     string
}{
	{1, migration001Logs},
}

// Migrate brings the database up to the current schema version.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at TEXT NOT NULL DEFAULT (datetime('now'))
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations: %w", err)
	}

	for _, m := range migrations {
		if err := execMigration(ctx, db, m.version, m.sql); err != nil {
			return fmt.Errorf("migration %d: %w", m.version, err)
		}
	}
	return nil
}

// execMigration applies one migration inside a transaction, skipping it if
// the version was already recorded.
func execMigration(ctx context.Context, db *sql.DB, version int, query string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = ?)", version,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking applied version: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("executing migration: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO schema_migrations (version) VALUES (?)", version,
	); err != nil {
		return fmt.Errorf("recording version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.WithField("version", version).Info("migration applied")
	return nil
}

// The activity log. Append-only: no update or delete path exists anywhere
// in the codebase. The indexes are read-path optimizations for the daily
// total and leaderboard queries, not a correctness requirement.
const migration001Logs = `
CREATE TABLE IF NOT EXISTS logs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id TEXT NOT NULL,
    username TEXT NOT NULL,
    date TEXT NOT NULL,
    category TEXT NOT NULL,
    value REAL NOT NULL,
    points REAL NOT NULL,
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_logs_user_date ON logs(user_id, date);
CREATE INDEX IF NOT EXISTS idx_logs_date ON logs(date);
`
