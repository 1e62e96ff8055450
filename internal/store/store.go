// Package store persists a history of solve runs in a local SQLite database.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/fracplace/fracplace/pkg/placement"
)

const DBFileName = "history.db"

// Run is one recorded solve invocation. The objective columns are NULL when
// the solve did not produce a valid mapping.
type Run struct {
	ID                  int64           `db:"id"`
	CreatedAt           time.Time       `db:"created_at"`
	Infra               string          `db:"infra"`
	Service             string          `db:"service"`
	Worked              bool            `db:"worked"`
	Objective           sql.NullFloat64 `db:"objective"`
	FractionalObjective sql.NullFloat64 `db:"fractional_objective"`
}

// Store records and lists solve runs.
type Store struct {
	db *sqlx.DB
}

// Open creates a new connection to the history SQLite database at path and
// runs schema migrations if necessary.
func Open(path string) (*Store, error) {
	// - Write-Ahead Logging (WAL) mode for better read/write performance.
	// - Busy timeout (5s) to make concurrent writes wait on each other instead of failing immediately.
	conn := path + "?_pragma=journal_mode=WAL&_pragma=synchronous=NORMAL&_pragma=busy_timeout=5000&_time_format=sqlite"
	db, err := sqlx.Connect("sqlite", conn)
	if err != nil {
		return nil, fmt.Errorf("connect to SQLite database '%s': %w", conn, err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS runs (
	    id INTEGER PRIMARY KEY AUTOINCREMENT,
	    -- 'subsecond' modifier is used to store timestamps with millisecond precision.
	    created_at TIMESTAMP NOT NULL DEFAULT (datetime('subsecond')),
	    infra TEXT NOT NULL,
	    service TEXT NOT NULL,
	    worked BOOLEAN NOT NULL,
	    objective REAL,
	    fractional_objective REAL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs (created_at);
    `

	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// RecordRun stores the outcome of one solve of the named inputs.
func (s *Store) RecordRun(infra, service string, sol *placement.Solution) error {
	run := Run{
		Infra:   infra,
		Service: service,
		Worked:  sol.Worked,
	}
	if sol.Worked {
		run.Objective = sql.NullFloat64{Float64: sol.Objective, Valid: true}
		run.FractionalObjective = sql.NullFloat64{Float64: sol.FractionalObjective, Valid: true}
	}

	_, err := s.db.NamedExec(
		`INSERT INTO runs (infra, service, worked, objective, fractional_objective)
		 VALUES (:infra, :service, :worked, :objective, :fractional_objective)`, run)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	var runs []Run
	err := s.db.Select(&runs,
		`SELECT id, created_at, infra, service, worked, objective, fractional_objective
		 FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("select runs: %w", err)
	}
	return runs, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
