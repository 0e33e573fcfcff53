// Package history persists finished countdown runs to a local sqlite
// database. The timer itself never reads this; it exists for the report.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Outcome classifies how a run ended.
type Outcome string

const (
	OutcomeExpired   Outcome = "expired"
	OutcomeAbandoned Outcome = "abandoned"
)

// Run is one finished countdown.
type Run struct {
	ID                int64
	ConfiguredSeconds int
	StartedAt         time.Time
	FinishedAt        time.Time
	Outcome           Outcome
}

// Store wraps the sqlite connection.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the run database and ensures the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history db: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		configured_seconds INTEGER NOT NULL,
		started_at DATETIME NOT NULL,
		finished_at DATETIME NOT NULL,
		outcome TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create runs table: %w", err)
	}

	return &Store{db: db}, nil
}

// Record inserts a finished run.
func (s *Store) Record(run Run) error {
	_, err := s.db.Exec(
		"INSERT INTO runs (configured_seconds, started_at, finished_at, outcome) VALUES (?, ?, ?, ?)",
		run.ConfiguredSeconds, run.StartedAt.UTC(), run.FinishedAt.UTC(), string(run.Outcome),
	)
	return err
}

// Recent returns the most recent runs, newest first.
func (s *Store) Recent(limit int) ([]Run, error) {
	rows, err := s.db.Query(
		"SELECT id, configured_seconds, started_at, finished_at, outcome FROM runs ORDER BY finished_at DESC, id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var outcome string
		if err := rows.Scan(&r.ID, &r.ConfiguredSeconds, &r.StartedAt, &r.FinishedAt, &outcome); err != nil {
			return nil, err
		}
		r.Outcome = Outcome(outcome)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
