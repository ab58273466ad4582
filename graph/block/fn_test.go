package block

import (
	"context"
	"errors"
	"testing"

	"github.com/flowlang/flowgraph-go/graph"
)

// TestFunc_Defaults verifies the adapter's default contract.
func TestFunc_Defaults(t *testing.T) {
	f := NewFunc(Spec{Namespace: "app", Name: "fn"},
		func(ctx context.Context, in Inputs, ec *ExecContext) (Outputs, error) {
			return NewOutputs().With("output", graph.Number(1)), nil
		})

	if f.Purity() != Pure || f.Determinism() != Deterministic {
		t.Error("function blocks default to pure and deterministic")
	}
	out, err := f.Execute(context.Background(), NewInputs(), NewExecContext(nil))
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := out.Get("output"); v.Num != 1 {
		t.Errorf("output = %v, want 1", v.Num)
	}
}

// TestFunc_SpecOverrides verifies purity and determinism follow the spec
// when declared.
func TestFunc_SpecOverrides(t *testing.T) {
	f := NewFunc(Spec{
		Namespace:   "app",
		Name:        "rand",
		Purity:      Impure,
		Determinism: Nondeterministic,
	}, func(ctx context.Context, in Inputs, ec *ExecContext) (Outputs, error) {
		return NewOutputs(), nil
	})
	if f.Purity() != Impure || f.Determinism() != Nondeterministic {
		t.Error("spec-declared purity and determinism should win")
	}
}

// TestFunc_Validate verifies required-parameter checking and the custom
// hook.
func TestFunc_Validate(t *testing.T) {
	spec := Spec{
		Namespace: "app",
		Name:      "fn",
		Params:    []ParamDef{{Name: "limit", Type: graph.TypeNumber, Required: true}},
	}
	body := func(ctx context.Context, in Inputs, ec *ExecContext) (Outputs, error) {
		return NewOutputs(), nil
	}

	t.Run("missing required parameter", func(t *testing.T) {
		f := NewFunc(spec, body)
		if err := f.Validate(NewParams()); err == nil {
			t.Error("expected validation failure")
		}
		if err := f.Validate(NewParams().With("limit", graph.Number(5))); err != nil {
			t.Errorf("expected success with parameter set, got %v", err)
		}
	})

	t.Run("custom hook wins", func(t *testing.T) {
		sentinel := errors.New("rejected")
		f := NewFunc(spec, body).WithValidate(func(Params) error { return sentinel })
		if err := f.Validate(NewParams().With("limit", graph.Number(5))); !errors.Is(err, sentinel) {
			t.Errorf("expected sentinel, got %v", err)
		}
	})
}
