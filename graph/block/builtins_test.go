package block

import (
	"context"
	"errors"
	"testing"

	"github.com/flowlang/flowgraph-go/graph"
)

func execute(t *testing.T, r *Registry, id string, in Inputs) (Outputs, error) {
	t.Helper()
	b, ok := r.Lookup(id)
	if !ok {
		t.Fatalf("block %s not registered", id)
	}
	return b.Execute(context.Background(), in, NewExecContext(r))
}

// TestBuiltins_Math exercises the arithmetic blocks.
func TestBuiltins_Math(t *testing.T) {
	r := Builtins()

	cases := []struct {
		id   string
		a, b float64
		want float64
	}{
		{"math.add", 2, 3, 5},
		{"math.subtract", 10, 4, 6},
		{"math.multiply", 6, 7, 42},
		{"math.divide", 9, 3, 3},
	}
	for _, tc := range cases {
		t.Run(tc.id, func(t *testing.T) {
			in := NewInputs().With("a", graph.Number(tc.a)).With("b", graph.Number(tc.b))
			out, err := execute(t, r, tc.id, in)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			got, ok := out.Get("output")
			if !ok {
				t.Fatal("no output produced")
			}
			if got.Num != tc.want {
				t.Errorf("output = %v, want %v", got.Num, tc.want)
			}
		})
	}

	t.Run("divide by zero", func(t *testing.T) {
		in := NewInputs().With("a", graph.Number(1)).With("b", graph.Number(0))
		_, err := execute(t, r, "math.divide", in)
		var eerr *ExecutionError
		if !errors.As(err, &eerr) {
			t.Fatalf("expected *ExecutionError, got %v", err)
		}
		if eerr.BlockID != "math.divide" {
			t.Errorf("block id = %s, want math.divide", eerr.BlockID)
		}
	})

	t.Run("wrong input kind", func(t *testing.T) {
		in := NewInputs().With("a", graph.String("2")).With("b", graph.Number(3))
		if _, err := execute(t, r, "math.add", in); err == nil {
			t.Error("string input to math.add should fail")
		}
	})

	t.Run("unbound input", func(t *testing.T) {
		in := NewInputs().With("a", graph.Number(2))
		if _, err := execute(t, r, "math.add", in); err == nil {
			t.Error("missing input should fail")
		}
	})
}

// TestBuiltins_Text exercises the string blocks.
func TestBuiltins_Text(t *testing.T) {
	r := Builtins()

	t.Run("concat", func(t *testing.T) {
		in := NewInputs().With("a", graph.String("flow")).With("b", graph.String("graph"))
		out, err := execute(t, r, "text.concat", in)
		if err != nil {
			t.Fatal(err)
		}
		if got, _ := out.Get("output"); got.Str != "flowgraph" {
			t.Errorf("output = %q, want flowgraph", got.Str)
		}
	})

	t.Run("uppercase", func(t *testing.T) {
		in := NewInputs().With("input", graph.String("quiet"))
		out, err := execute(t, r, "text.uppercase", in)
		if err != nil {
			t.Fatal(err)
		}
		if got, _ := out.Get("output"); got.Str != "QUIET" {
			t.Errorf("output = %q, want QUIET", got.Str)
		}
	})

	t.Run("trim", func(t *testing.T) {
		in := NewInputs().With("input", graph.String("  padded \n"))
		out, err := execute(t, r, "text.trim", in)
		if err != nil {
			t.Fatal(err)
		}
		if got, _ := out.Get("output"); got.Str != "padded" {
			t.Errorf("output = %q, want padded", got.Str)
		}
	})
}

// TestBuiltins_Logic exercises the boolean blocks.
func TestBuiltins_Logic(t *testing.T) {
	r := Builtins()

	cases := []struct {
		id   string
		a, b bool
		want bool
	}{
		{"logic.and", true, true, true},
		{"logic.and", true, false, false},
		{"logic.or", false, false, false},
		{"logic.or", false, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.id, func(t *testing.T) {
			in := NewInputs().With("a", graph.Boolean(tc.a)).With("b", graph.Boolean(tc.b))
			out, err := execute(t, r, tc.id, in)
			if err != nil {
				t.Fatal(err)
			}
			if got, _ := out.Get("output"); got.Bool != tc.want {
				t.Errorf("output = %v, want %v", got.Bool, tc.want)
			}
		})
	}

	t.Run("not", func(t *testing.T) {
		in := NewInputs().With("input", graph.Boolean(true))
		out, err := execute(t, r, "logic.not", in)
		if err != nil {
			t.Fatal(err)
		}
		if got, _ := out.Get("output"); got.Bool {
			t.Error("not true should be false")
		}
	})
}

// TestBuiltins_Contract verifies every builtin declares itself pure and
// deterministic.
func TestBuiltins_Contract(t *testing.T) {
	r := Builtins()
	for _, spec := range r.Specs() {
		b, _ := r.Lookup(spec.ID())
		if b.Purity() != Pure {
			t.Errorf("%s should be pure", spec.ID())
		}
		if b.Determinism() != Deterministic {
			t.Errorf("%s should be deterministic", spec.ID())
		}
	}
}
