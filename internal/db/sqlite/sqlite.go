// Package sqlite manages the embedded SQLite database.
//
// The whole persistence layer is a single append-only table, so the store
// runs in-process: one *sql.DB handle shared by every repository, WAL mode
// for concurrent readers while a write is in flight, and a busy timeout so
// simultaneous appends queue instead of failing.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"
)

// Open opens (creating if needed) the database file and verifies it is
// reachable. The caller owns the returned handle and must Close it.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// SQLite serializes writes; more than one writer connection just adds
	// lock contention, so keep a single connection for the whole process.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	log.WithField("path", path).Info("sqlite database opened")
	return db, nil
}
