package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteStore is a SQLite-backed Store. Single-file database with zero
// setup, suited to development and single-process deployments. Uses WAL
// mode so readers do not block behind the writer.
//
// Schema, created on first use:
//   - run_steps: per-command run history
//   - run_checkpoints: named snapshots
//
// Example:
//
//	st, err := store.NewSQLiteStore[RunState]("./runs.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer st.Close()
//
// Pass ":memory:" for an ephemeral database in tests.
type SQLiteStore[S any] struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
	path   string
}

// NewSQLiteStore opens (creating if needed) the database at path and runs
// the schema migration.
func NewSQLiteStore[S any](path string) (*SQLiteStore[S], error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// SQLite supports one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx := context.Background()
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("applying %q: %w", pragma, err)
		}
	}

	s := &SQLiteStore[S]{db: db, path: path}
	if err := s.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore[S]) createTables(ctx context.Context) error {
	stepsTable := `
		CREATE TABLE IF NOT EXISTS run_steps (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			step INTEGER NOT NULL,
			node_id TEXT NOT NULL,
			state TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(run_id, step)
		)
	`
	if _, err := s.db.ExecContext(ctx, stepsTable); err != nil {
		return err
	}

	checkpointsTable := `
		CREATE TABLE IF NOT EXISTS run_checkpoints (
			checkpoint_id TEXT PRIMARY KEY,
			state TEXT NOT NULL,
			step INTEGER NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := s.db.ExecContext(ctx, checkpointsTable)
	return err
}

func (s *SQLiteStore[S]) guard() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return fmt.Errorf("store is closed")
	}
	return nil
}

// SaveStep implements Store. Saving an existing step replaces it.
func (s *SQLiteStore[S]) SaveStep(ctx context.Context, runID string, step int, nodeID string, state S) error {
	if err := s.guard(); err != nil {
		return err
	}
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}
	query := `
		INSERT INTO run_steps (run_id, step, node_id, state)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(run_id, step) DO UPDATE SET
			node_id = excluded.node_id,
			state = excluded.state
	`
	if _, err := s.db.ExecContext(ctx, query, runID, step, nodeID, string(stateJSON)); err != nil {
		return fmt.Errorf("saving step: %w", err)
	}
	return nil
}

// LoadStep implements Store.
func (s *SQLiteStore[S]) LoadStep(ctx context.Context, runID string, step int) (state S, nodeID string, err error) {
	var zero S
	if err := s.guard(); err != nil {
		return zero, "", err
	}
	query := `SELECT node_id, state FROM run_steps WHERE run_id = ? AND step = ?`
	var stateJSON string
	err = s.db.QueryRowContext(ctx, query, runID, step).Scan(&nodeID, &stateJSON)
	if err == sql.ErrNoRows {
		return zero, "", ErrNotFound
	}
	if err != nil {
		return zero, "", fmt.Errorf("loading step: %w", err)
	}
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return zero, "", fmt.Errorf("unmarshaling state: %w", err)
	}
	return state, nodeID, nil
}

// LoadLatest implements Store.
func (s *SQLiteStore[S]) LoadLatest(ctx context.Context, runID string) (state S, step int, err error) {
	var zero S
	if err := s.guard(); err != nil {
		return zero, 0, err
	}
	query := `SELECT step, state FROM run_steps WHERE run_id = ? ORDER BY step DESC LIMIT 1`
	var stateJSON string
	err = s.db.QueryRowContext(ctx, query, runID).Scan(&step, &stateJSON)
	if err == sql.ErrNoRows {
		return zero, 0, ErrNotFound
	}
	if err != nil {
		return zero, 0, fmt.Errorf("loading latest step: %w", err)
	}
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return zero, 0, fmt.Errorf("unmarshaling state: %w", err)
	}
	return state, step, nil
}

// SaveCheckpoint implements Store. An existing id is updated.
func (s *SQLiteStore[S]) SaveCheckpoint(ctx context.Context, cpID string, state S, step int) error {
	if err := s.guard(); err != nil {
		return err
	}
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}
	query := `
		INSERT INTO run_checkpoints (checkpoint_id, state, step)
		VALUES (?, ?, ?)
		ON CONFLICT(checkpoint_id) DO UPDATE SET
			state = excluded.state,
			step = excluded.step,
			updated_at = CURRENT_TIMESTAMP
	`
	if _, err := s.db.ExecContext(ctx, query, cpID, string(stateJSON), step); err != nil {
		return fmt.Errorf("saving checkpoint: %w", err)
	}
	return nil
}

// LoadCheckpoint implements Store.
func (s *SQLiteStore[S]) LoadCheckpoint(ctx context.Context, cpID string) (state S, step int, err error) {
	var zero S
	if err := s.guard(); err != nil {
		return zero, 0, err
	}
	query := `SELECT state, step FROM run_checkpoints WHERE checkpoint_id = ?`
	var stateJSON string
	err = s.db.QueryRowContext(ctx, query, cpID).Scan(&stateJSON, &step)
	if err == sql.ErrNoRows {
		return zero, 0, ErrNotFound
	}
	if err != nil {
		return zero, 0, fmt.Errorf("loading checkpoint: %w", err)
	}
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return zero, 0, fmt.Errorf("unmarshaling state: %w", err)
	}
	return state, step, nil
}

// Close closes the database. Further calls on the store fail.
func (s *SQLiteStore[S]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// Ping verifies the database connection.
func (s *SQLiteStore[S]) Ping(ctx context.Context) error {
	if err := s.guard(); err != nil {
		return err
	}
	return s.db.PingContext(ctx)
}

// Path returns the database file path.
func (s *SQLiteStore[S]) Path() string { return s.path }
