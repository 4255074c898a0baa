// Package sqlite is the SQLite-backed implementation of the assistant
// repository. One file per entity, schema migrated on open.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"personal-assistant/internal/assistant/repository"
	"personal-assistant/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	task TEXT NOT NULL,
	deadline TEXT,
	category TEXT,
	priority INTEGER DEFAULT 2,
	done BOOLEAN DEFAULT FALSE,
	created_at TIMESTAMP NOT NULL,
	completed_at TIMESTAMP
);

CREATE TABLE IF NOT EXISTS budget_entries (
	id TEXT PRIMARY KEY,
	description TEXT NOT NULL,
	amount REAL NOT NULL,
	category TEXT,
	type TEXT CHECK(type IN ('income', 'expense')) NOT NULL,
	date TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS schedule_events (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT,
	start_time TIMESTAMP NOT NULL,
	end_time TIMESTAMP,
	location TEXT,
	reminder_minutes INTEGER DEFAULT 15,
	created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tasks_done ON tasks(done);
CREATE INDEX IF NOT EXISTS idx_budget_entries_date ON budget_entries(date);
CREATE INDEX IF NOT EXISTS idx_schedule_events_start ON schedule_events(start_time);
`

// Open opens (or creates) the database file and migrates the schema.
// Use ":memory:" for an ephemeral store.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	// SQLite serializes writers anyway; one connection also keeps
	// ":memory:" databases from silently splitting per connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate sqlite %q: %w", path, err)
	}
	return db, nil
}

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("assistant/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("assistant/repository/sqlite.%s", method)
}
