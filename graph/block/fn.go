package block

import "context"

// FuncBody is the signature of a function-backed block.
type FuncBody func(ctx context.Context, inputs Inputs, ec *ExecContext) (Outputs, error)

// Func adapts a plain function into a Block. It is the quickest way to
// define a block when no configuration or custom validation is needed:
//
//	double := block.NewFunc(block.Spec{
//	    Namespace: "math",
//	    Name:      "double",
//	    Inputs:    []block.PortDef{{ID: "input", Type: graph.TypeNumber, Required: true}},
//	    Outputs:   []block.PortDef{{ID: "output", Type: graph.TypeNumber}},
//	}, func(ctx context.Context, in block.Inputs, ec *block.ExecContext) (block.Outputs, error) {
//	    v, _ := in.Get("input")
//	    return block.Outputs{}.With("output", graph.Number(v.Num*2)), nil
//	})
type Func struct {
	spec        Spec
	body        FuncBody
	purity      Purity
	determinism Determinism
	validate    func(Params) error
}

// NewFunc builds a pure, deterministic function block.
func NewFunc(spec Spec, body FuncBody) *Func {
	f := &Func{spec: spec, body: body, purity: Pure, determinism: Deterministic}
	if spec.Purity != "" {
		f.purity = spec.Purity
	}
	if spec.Determinism != "" {
		f.determinism = spec.Determinism
	}
	return f
}

// WithValidate sets a parameter validation hook and returns the block.
func (f *Func) WithValidate(fn func(Params) error) *Func {
	f.validate = fn
	return f
}

// Spec implements Block.
func (f *Func) Spec() Spec { return f.spec }

// Execute implements Block.
func (f *Func) Execute(ctx context.Context, inputs Inputs, ec *ExecContext) (Outputs, error) {
	return f.body(ctx, inputs, ec)
}

// Validate implements Block. Without a hook it checks only that required
// parameters are present.
func (f *Func) Validate(params Params) error {
	if f.validate != nil {
		return f.validate(params)
	}
	for _, p := range f.spec.Params {
		if p.Required && !params.Contains(p.Name) {
			return execErr(f.spec.ID(), "missing required parameter %q", p.Name)
		}
	}
	return nil
}

// Purity implements Block.
func (f *Func) Purity() Purity { return f.purity }

// Determinism implements Block.
func (f *Func) Determinism() Determinism { return f.determinism }
