// Package storage defines the Journal interface: a record of what the
// caller-side Student looked like after every demonstration step.
//
// WHY AN INTERFACE?
// ─────────────────
// The demo runner should not know which backend keeps the snapshots.
// Depending only on this interface lets the runner work with the SQLite
// journal, with a no-op journal when journaling is switched off, or with
// a fake in tests.
package storage

import (
	"errors"

	"github.com/aanand-mishra/student-structs/internal/types"
)

// ErrNotFound is returned when no snapshot matches a lookup.
var ErrNotFound = errors.New("snapshot not found")

// Journal is the snapshot contract.
type Journal interface {
	// Record stores the state of s after step, under the variable name
	// label, and returns the new snapshot ID.
	Record(runID, step, label string, s types.Student) (int64, error)

	// Snapshots returns every snapshot of a run in insertion order.
	// Returns an empty slice (not nil) if the run recorded nothing.
	Snapshots(runID string) ([]types.Snapshot, error)

	// Snapshot returns the latest snapshot of label taken after step.
	// Returns ErrNotFound if there is none.
	Snapshot(runID, step, label string) (types.Snapshot, error)

	// Close releases the backend.
	Close() error
}

// Discard is a Journal that keeps nothing.
type Discard struct{}

func (Discard) Record(string, string, string, types.Student) (int64, error) { return 0, nil }

func (Discard) Snapshots(string) ([]types.Snapshot, error) { return []types.Snapshot{}, nil }

func (Discard) Snapshot(string, string, string) (types.Snapshot, error) {
	return types.Snapshot{}, ErrNotFound
}

func (Discard) Close() error { return nil }
