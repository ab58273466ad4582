package store

import (
	"context"
	"sync"
)

// StepRecord is one saved step of a run.
type StepRecord[S any] struct {
	Step   int    `json:"step"`
	NodeID string `json:"node_id"`
	State  S      `json:"state"`
}

type checkpoint[S any] struct {
	state S
	step  int
}

// MemStore is the in-memory Store implementation. Thread-safe; data lives
// only for the life of the process. Use it for tests and short-lived runs.
type MemStore[S any] struct {
	mu          sync.RWMutex
	steps       map[string][]StepRecord[S]
	checkpoints map[string]checkpoint[S]
}

// NewMemStore creates an empty in-memory store.
func NewMemStore[S any]() *MemStore[S] {
	return &MemStore[S]{
		steps:       make(map[string][]StepRecord[S]),
		checkpoints: make(map[string]checkpoint[S]),
	}
}

// SaveStep implements Store. Saving an existing step overwrites it.
func (m *MemStore[S]) SaveStep(_ context.Context, runID string, step int, nodeID string, state S) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	records := m.steps[runID]
	for i, r := range records {
		if r.Step == step {
			records[i] = StepRecord[S]{Step: step, NodeID: nodeID, State: state}
			return nil
		}
	}
	m.steps[runID] = append(records, StepRecord[S]{Step: step, NodeID: nodeID, State: state})
	return nil
}

// LoadStep implements Store.
func (m *MemStore[S]) LoadStep(_ context.Context, runID string, step int) (state S, nodeID string, err error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, r := range m.steps[runID] {
		if r.Step == step {
			return r.State, r.NodeID, nil
		}
	}
	var zero S
	return zero, "", ErrNotFound
}

// LoadLatest implements Store. The highest step number wins, so out-of-order
// saves behave correctly.
func (m *MemStore[S]) LoadLatest(_ context.Context, runID string) (state S, step int, err error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := m.steps[runID]
	if len(records) == 0 {
		var zero S
		return zero, 0, ErrNotFound
	}
	latest := records[0]
	for _, r := range records[1:] {
		if r.Step > latest.Step {
			latest = r
		}
	}
	return latest.State, latest.Step, nil
}

// SaveCheckpoint implements Store. An existing id is overwritten.
func (m *MemStore[S]) SaveCheckpoint(_ context.Context, cpID string, state S, step int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkpoints[cpID] = checkpoint[S]{state: state, step: step}
	return nil
}

// LoadCheckpoint implements Store.
func (m *MemStore[S]) LoadCheckpoint(_ context.Context, cpID string) (state S, step int, err error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cp, ok := m.checkpoints[cpID]
	if !ok {
		var zero S
		return zero, 0, ErrNotFound
	}
	return cp.state, cp.step, nil
}

// Steps returns a copy of a run's saved steps in save order. Test helper.
func (m *MemStore[S]) Steps(runID string) []StepRecord[S] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]StepRecord[S], len(m.steps[runID]))
	copy(out, m.steps[runID])
	return out
}
