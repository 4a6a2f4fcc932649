// Package sqlite provides a SQLite-backed implementation of the
// storage.Journal interface using Go's standard database/sql package.
//
// The database lives in memory only. Nothing is written to disk and the
// journal disappears with the process.
//
// The blank import below registers the sqlite3 driver with database/sql.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/aanand-mishra/student-structs/internal/storage"
	"github.com/aanand-mishra/student-structs/internal/types"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Journal.
type SQLite struct {
	Db *sql.DB
}

// New opens an in-memory SQLite database, creates the snapshots table and
// returns a ready-to-use *SQLite.
func New() (*SQLite, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// Every new connection to ":memory:" gets its OWN empty database.
	// Pinning the pool to one connection keeps all queries on the same one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Schema:
	//   id       — insertion order
	//   run_id   — one demonstration run
	//   step     — the step that just completed
	//   label    — the scenario variable (s1, s2, ...)
	//   remaining columns mirror types.Student
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id     TEXT    NOT NULL,
			step       TEXT    NOT NULL,
			label      TEXT    NOT NULL,
			first_name TEXT    NOT NULL,
			last_name  TEXT    NOT NULL,
			age        INTEGER NOT NULL,
			average    REAL    NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// Record inserts one snapshot row.
func (s *SQLite) Record(runID, step, label string, st types.Student) (int64, error) {
	stmt, err := s.Db.Prepare(
		`INSERT INTO snapshots (run_id, step, label, first_name, last_name, age, average)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, fmt.Errorf("Record: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(runID, step, label, st.FirstName, st.LastName, st.Age, st.Average)
	if err != nil {
		return 0, fmt.Errorf("Record: exec: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("Record: last insert id: %w", err)
	}

	return id, nil
}

// Snapshots returns all rows of a run ordered by id.
func (s *SQLite) Snapshots(runID string) ([]types.Snapshot, error) {
	stmt, err := s.Db.Prepare(
		`SELECT id, run_id, step, label, first_name, last_name, age, average
		 FROM snapshots WHERE run_id = ? ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("Snapshots: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query(runID)
	if err != nil {
		return nil, fmt.Errorf("Snapshots: query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]types.Snapshot, 0)
	for rows.Next() {
		snap, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("Snapshots: scan row: %w", err)
		}
		snapshots = append(snapshots, snap)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Snapshots: rows iteration: %w", err)
	}

	return snapshots, nil
}

// Snapshot returns the most recent row for (run, step, label).
func (s *SQLite) Snapshot(runID, step, label string) (types.Snapshot, error) {
	stmt, err := s.Db.Prepare(
		`SELECT id, run_id, step, label, first_name, last_name, age, average
		 FROM snapshots WHERE run_id = ? AND step = ? AND label = ?
		 ORDER BY id DESC LIMIT 1`,
	)
	if err != nil {
		return types.Snapshot{}, fmt.Errorf("Snapshot: prepare: %w", err)
	}
	defer stmt.Close()

	snap, err := scan(stmt.QueryRow(runID, step, label))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Snapshot{}, fmt.Errorf("%w: run %s step %s label %s",
				storage.ErrNotFound, runID, step, label)
		}
		return types.Snapshot{}, fmt.Errorf("Snapshot: scan: %w", err)
	}

	return snap, nil
}

// Close closes the database; the in-memory data is gone afterwards.
func (s *SQLite) Close() error {
	return s.Db.Close()
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scan(r scanner) (types.Snapshot, error) {
	var snap types.Snapshot
	err := r.Scan(
		&snap.ID,
		&snap.RunID,
		&snap.Step,
		&snap.Label,
		&snap.FirstName,
		&snap.LastName,
		&snap.Age,
		&snap.Average,
	)
	return snap, err
}
