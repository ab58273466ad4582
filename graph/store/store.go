// Package store persists script run history: the state after each executed
// command, and named checkpoints for manual resumption points.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a requested run, step, or checkpoint does not
// exist.
var ErrNotFound = errors.New("not found")

// Store persists run state step by step. Type parameter S is the state type;
// the SQL-backed implementations require it to be JSON-serializable.
//
// Implementations in this package: MemStore (tests, ephemeral runs),
// SQLiteStore (single-process persistence, zero setup), MySQLStore (shared
// persistence).
type Store[S any] interface {
	// SaveStep persists the state after one command execution. Steps are
	// identified by runID plus a 1-based step number; saving the same step
	// twice overwrites it, which is what a retried command wants.
	SaveStep(ctx context.Context, runID string, step int, nodeID string, state S) error

	// LoadStep retrieves the state saved at a specific step. Returns
	// ErrNotFound when the run or step does not exist.
	LoadStep(ctx context.Context, runID string, step int) (state S, nodeID string, err error)

	// LoadLatest retrieves the most recent state for a run, with its step
	// number. Returns ErrNotFound when the run does not exist.
	LoadLatest(ctx context.Context, runID string) (state S, step int, err error)

	// SaveCheckpoint snapshots state under a user-chosen id. Saving an
	// existing id overwrites it.
	SaveCheckpoint(ctx context.Context, cpID string, state S, step int) error

	// LoadCheckpoint retrieves a named snapshot. Returns ErrNotFound when
	// the checkpoint does not exist.
	LoadCheckpoint(ctx context.Context, cpID string) (state S, step int, err error)
}
