package metrics

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store persists runs to a SQLite database. Open migrates the schema
// on connect; ":memory:" works for throwaway stores.
type Store struct {
	db *sql.DB
}

// Open connects to the database at path and creates the schema if it
// does not exist yet.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("metrics: open %s: %w", path, err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()

		return nil, fmt.Errorf("metrics: migrate: %w", err)
	}

	return s, nil
}

// migrate creates the runs table if needed.
func (s *Store) migrate() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		label TEXT NOT NULL,
		start TEXT NOT NULL,
		goal TEXT NOT NULL,
		cost REAL NOT NULL,
		expanded INTEGER NOT NULL,
		elapsed_ns INTEGER NOT NULL,
		at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_query ON runs(start, goal);
	CREATE INDEX IF NOT EXISTS idx_runs_label ON runs(label);
	`
	_, err := s.db.Exec(schema)

	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts one run. The run must already carry an ID and timestamp
// (Collector.Record stamps both).
func (s *Store) Save(r Run) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (id, label, start, goal, cost, expanded, elapsed_ns, at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID.String(), r.Label, r.Start, r.Goal, r.Cost, r.Expanded,
		r.Elapsed.Nanoseconds(), r.At.UTC(),
	)

	return err
}

// Recent returns the most recently recorded runs, newest first.
func (s *Store) Recent(limit int) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, label, start, goal, cost, expanded, elapsed_ns, at
		 FROM runs ORDER BY at DESC, id LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRuns(rows)
}

// ForQuery returns every stored run matching (start, goal), in
// recording order.
func (s *Store) ForQuery(start, goal string) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, label, start, goal, cost, expanded, elapsed_ns, at
		 FROM runs WHERE start = ? AND goal = ? ORDER BY at, id`,
		start, goal,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	var out []Run
	for rows.Next() {
		var (
			r         Run
			id        string
			elapsedNS int64
		)
		if err := rows.Scan(&id, &r.Label, &r.Start, &r.Goal, &r.Cost,
			&r.Expanded, &elapsedNS, &r.At); err != nil {
			return nil, err
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("metrics: corrupt run id %q: %w", id, err)
		}
		r.ID = parsed
		r.Elapsed = time.Duration(elapsedNS)
		out = append(out, r)
	}

	return out, rows.Err()
}
