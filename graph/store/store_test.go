package store

import (
	"context"
	"errors"
	"os"
	"testing"
)

// runState is the state shape persisted in these tests: node id to output
// values.
type runState map[string]map[string]float64

// storeFactory builds a fresh store for one subtest; cleanup runs after.
type storeFactory func(t *testing.T) Store[runState]

// storeSuite runs the Store contract against any implementation.
func storeSuite(t *testing.T, factory storeFactory) {
	ctx := context.Background()

	t.Run("save and load step", func(t *testing.T) {
		st := factory(t)
		state := runState{"adder": {"output": 5}}
		if err := st.SaveStep(ctx, "run-001", 1, "adder", state); err != nil {
			t.Fatalf("SaveStep: %v", err)
		}
		got, nodeID, err := st.LoadStep(ctx, "run-001", 1)
		if err != nil {
			t.Fatalf("LoadStep: %v", err)
		}
		if nodeID != "adder" {
			t.Errorf("node id = %q, want adder", nodeID)
		}
		if got["adder"]["output"] != 5 {
			t.Errorf("state = %v", got)
		}
	})

	t.Run("save step overwrites", func(t *testing.T) {
		st := factory(t)
		if err := st.SaveStep(ctx, "run-001", 1, "adder", runState{"adder": {"output": 1}}); err != nil {
			t.Fatal(err)
		}
		if err := st.SaveStep(ctx, "run-001", 1, "adder", runState{"adder": {"output": 2}}); err != nil {
			t.Fatal(err)
		}
		got, _, err := st.LoadStep(ctx, "run-001", 1)
		if err != nil {
			t.Fatal(err)
		}
		if got["adder"]["output"] != 2 {
			t.Errorf("state = %v, want the overwrite", got)
		}
	})

	t.Run("load latest picks highest step", func(t *testing.T) {
		st := factory(t)
		for _, step := range []int{2, 1, 3} {
			state := runState{"n": {"output": float64(step)}}
			if err := st.SaveStep(ctx, "run-001", step, "n", state); err != nil {
				t.Fatal(err)
			}
		}
		state, step, err := st.LoadLatest(ctx, "run-001")
		if err != nil {
			t.Fatalf("LoadLatest: %v", err)
		}
		if step != 3 || state["n"]["output"] != 3 {
			t.Errorf("step = %d state = %v, want step 3", step, state)
		}
	})

	t.Run("missing run reports ErrNotFound", func(t *testing.T) {
		st := factory(t)
		if _, _, err := st.LoadLatest(ctx, "ghost"); !errors.Is(err, ErrNotFound) {
			t.Errorf("LoadLatest err = %v, want ErrNotFound", err)
		}
		if _, _, err := st.LoadStep(ctx, "ghost", 1); !errors.Is(err, ErrNotFound) {
			t.Errorf("LoadStep err = %v, want ErrNotFound", err)
		}
	})

	t.Run("checkpoint round trip", func(t *testing.T) {
		st := factory(t)
		state := runState{"merge": {"output": 42}}
		if err := st.SaveCheckpoint(ctx, "after-merge", state, 4); err != nil {
			t.Fatalf("SaveCheckpoint: %v", err)
		}
		got, step, err := st.LoadCheckpoint(ctx, "after-merge")
		if err != nil {
			t.Fatalf("LoadCheckpoint: %v", err)
		}
		if step != 4 || got["merge"]["output"] != 42 {
			t.Errorf("step = %d state = %v", step, got)
		}
	})

	t.Run("checkpoint overwrite and missing id", func(t *testing.T) {
		st := factory(t)
		if err := st.SaveCheckpoint(ctx, "cp", runState{"a": {"output": 1}}, 1); err != nil {
			t.Fatal(err)
		}
		if err := st.SaveCheckpoint(ctx, "cp", runState{"a": {"output": 2}}, 2); err != nil {
			t.Fatal(err)
		}
		got, step, err := st.LoadCheckpoint(ctx, "cp")
		if err != nil {
			t.Fatal(err)
		}
		if step != 2 || got["a"]["output"] != 2 {
			t.Errorf("step = %d state = %v, want the overwrite", step, got)
		}
		if _, _, err := st.LoadCheckpoint(ctx, "ghost"); !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestMemStore(t *testing.T) {
	storeSuite(t, func(t *testing.T) Store[runState] {
		return NewMemStore[runState]()
	})
}

func TestSQLiteStore(t *testing.T) {
	storeSuite(t, func(t *testing.T) Store[runState] {
		st, err := NewSQLiteStore[runState](":memory:")
		if err != nil {
			t.Fatalf("NewSQLiteStore: %v", err)
		}
		t.Cleanup(func() { _ = st.Close() })
		return st
	})
}

func TestMySQLStore(t *testing.T) {
	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("Skipping MySQL tests: TEST_MYSQL_DSN not set")
	}
	storeSuite(t, func(t *testing.T) Store[runState] {
		st, err := NewMySQLStore[runState](dsn)
		if err != nil {
			t.Fatalf("NewMySQLStore: %v", err)
		}
		t.Cleanup(func() {
			ctx := context.Background()
			_, _ = st.db.ExecContext(ctx, "DELETE FROM run_steps")
			_, _ = st.db.ExecContext(ctx, "DELETE FROM run_checkpoints")
			_ = st.Close()
		})
		return st
	})
}

// TestSQLiteStore_Lifecycle covers close semantics and ping.
func TestSQLiteStore_Lifecycle(t *testing.T) {
	st, err := NewSQLiteStore[runState](":memory:")
	if err != nil {
		t.Fatal(err)
	}
	if err := st.Ping(context.Background()); err != nil {
		t.Errorf("Ping: %v", err)
	}
	if got := st.Path(); got != ":memory:" {
		t.Errorf("Path = %q", got)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}
	if err := st.SaveStep(context.Background(), "r", 1, "n", runState{}); err == nil {
		t.Error("SaveStep after Close should fail")
	}
}
