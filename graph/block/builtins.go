package block

import (
	"context"
	"strings"

	"github.com/flowlang/flowgraph-go/graph"
)

// Builtins returns a registry pre-populated with the standard block
// library: math add/subtract/multiply/divide, text concat/uppercase/trim,
// and logic and/or/not. All builtins are pure and deterministic.
func Builtins() *Registry {
	r := NewRegistry()
	r.MustRegister(mathBlock("add", func(a, b float64) (float64, error) { return a + b, nil }))
	r.MustRegister(mathBlock("subtract", func(a, b float64) (float64, error) { return a - b, nil }))
	r.MustRegister(mathBlock("multiply", func(a, b float64) (float64, error) { return a * b, nil }))
	r.MustRegister(mathBlock("divide", func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, execErr("math.divide", "division by zero")
		}
		return a / b, nil
	}))
	r.MustRegister(textConcat())
	r.MustRegister(textUnary("uppercase", strings.ToUpper))
	r.MustRegister(textUnary("trim", strings.TrimSpace))
	r.MustRegister(logicBinary("and", func(a, b bool) bool { return a && b }))
	r.MustRegister(logicBinary("or", func(a, b bool) bool { return a || b }))
	r.MustRegister(logicNot())
	return r
}

func numberPair() []PortDef {
	return []PortDef{
		{ID: "a", Type: graph.TypeNumber, Required: true},
		{ID: "b", Type: graph.TypeNumber, Required: true},
	}
}

// requireKind fetches an input and checks its runtime kind. Port types
// guard graph wiring, but literal args bypass that check, so builtins
// verify at execution time too.
func requireKind(blockID string, in Inputs, portID string, kind graph.ValueKind) (graph.Value, error) {
	v, ok := in.Get(portID)
	if !ok {
		return graph.Value{}, execErr(blockID, "input %q not bound", portID)
	}
	if v.Kind != kind {
		return graph.Value{}, execErr(blockID, "input %q: expected %s, got %s", portID, kind, v.Kind)
	}
	return v, nil
}

func mathBlock(name string, op func(a, b float64) (float64, error)) Block {
	spec := Spec{
		Namespace: "math",
		Name:      name,
		Title:     "math " + name,
		Tags:      []string{"math", "builtin"},
		Inputs:    numberPair(),
		Outputs:   []PortDef{{ID: "output", Type: graph.TypeNumber}},
	}
	return NewFunc(spec, func(ctx context.Context, in Inputs, ec *ExecContext) (Outputs, error) {
		a, err := requireKind(spec.ID(), in, "a", graph.ValueNumber)
		if err != nil {
			return Outputs{}, err
		}
		b, err := requireKind(spec.ID(), in, "b", graph.ValueNumber)
		if err != nil {
			return Outputs{}, err
		}
		n, err := op(a.Num, b.Num)
		if err != nil {
			return Outputs{}, err
		}
		return NewOutputs().With("output", graph.Number(n)), nil
	})
}

func textConcat() Block {
	spec := Spec{
		Namespace: "text",
		Name:      "concat",
		Title:     "text concat",
		Tags:      []string{"text", "builtin"},
		Inputs: []PortDef{
			{ID: "a", Type: graph.TypeString, Required: true},
			{ID: "b", Type: graph.TypeString, Required: true},
		},
		Outputs: []PortDef{{ID: "output", Type: graph.TypeString}},
	}
	return NewFunc(spec, func(ctx context.Context, in Inputs, ec *ExecContext) (Outputs, error) {
		a, err := requireKind(spec.ID(), in, "a", graph.ValueString)
		if err != nil {
			return Outputs{}, err
		}
		b, err := requireKind(spec.ID(), in, "b", graph.ValueString)
		if err != nil {
			return Outputs{}, err
		}
		return NewOutputs().With("output", graph.String(a.Str+b.Str)), nil
	})
}

func textUnary(name string, op func(string) string) Block {
	spec := Spec{
		Namespace: "text",
		Name:      name,
		Title:     "text " + name,
		Tags:      []string{"text", "builtin"},
		Inputs:    []PortDef{{ID: "input", Type: graph.TypeString, Required: true}},
		Outputs:   []PortDef{{ID: "output", Type: graph.TypeString}},
	}
	return NewFunc(spec, func(ctx context.Context, in Inputs, ec *ExecContext) (Outputs, error) {
		v, err := requireKind(spec.ID(), in, "input", graph.ValueString)
		if err != nil {
			return Outputs{}, err
		}
		return NewOutputs().With("output", graph.String(op(v.Str))), nil
	})
}

func logicBinary(name string, op func(a, b bool) bool) Block {
	spec := Spec{
		Namespace: "logic",
		Name:      name,
		Title:     "logic " + name,
		Tags:      []string{"logic", "builtin"},
		Inputs: []PortDef{
			{ID: "a", Type: graph.TypeBoolean, Required: true},
			{ID: "b", Type: graph.TypeBoolean, Required: true},
		},
		Outputs: []PortDef{{ID: "output", Type: graph.TypeBoolean}},
	}
	return NewFunc(spec, func(ctx context.Context, in Inputs, ec *ExecContext) (Outputs, error) {
		a, err := requireKind(spec.ID(), in, "a", graph.ValueBoolean)
		if err != nil {
			return Outputs{}, err
		}
		b, err := requireKind(spec.ID(), in, "b", graph.ValueBoolean)
		if err != nil {
			return Outputs{}, err
		}
		return NewOutputs().With("output", graph.Boolean(op(a.Bool, b.Bool))), nil
	})
}

func logicNot() Block {
	spec := Spec{
		Namespace: "logic",
		Name:      "not",
		Title:     "logic not",
		Tags:      []string{"logic", "builtin"},
		Inputs:    []PortDef{{ID: "input", Type: graph.TypeBoolean, Required: true}},
		Outputs:   []PortDef{{ID: "output", Type: graph.TypeBoolean}},
	}
	return NewFunc(spec, func(ctx context.Context, in Inputs, ec *ExecContext) (Outputs, error) {
		v, err := requireKind(spec.ID(), in, "input", graph.ValueBoolean)
		if err != nil {
			return Outputs{}, err
		}
		return NewOutputs().With("output", graph.Boolean(!v.Bool)), nil
	})
}
