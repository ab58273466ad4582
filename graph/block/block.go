// Package block defines the execution contract consumed by the graph core:
// a Block is a typed, named unit of computation with declared input and
// output ports. The core treats blocks as opaque capability-bearing objects
// and never inspects them beyond their declared Spec.
package block

import "context"

// Purity states whether a block has observable side effects.
type Purity string

const (
	// Pure blocks depend only on their inputs and touch nothing else.
	Pure Purity = "pure"

	// Impure blocks perform I/O or otherwise affect the outside world.
	Impure Purity = "impure"
)

// Determinism states whether a block always produces the same outputs for
// the same inputs.
type Determinism string

const (
	Deterministic    Determinism = "deterministic"
	Nondeterministic Determinism = "nondeterministic"
)

// Block is the interface all executable blocks implement.
//
// Implementations must be safe for concurrent use: a single registered block
// instance serves every command that names it. Execute takes a context
// because blocks may perform I/O; pure blocks should still honor
// cancellation on long computations.
//
// Example implementation:
//
//	type upper struct{}
//
//	func (upper) Spec() Spec {
//	    return Spec{
//	        Namespace: "text",
//	        Name:      "uppercase",
//	        Inputs:    []PortDef{{ID: "input", Type: graph.TypeString, Required: true}},
//	        Outputs:   []PortDef{{ID: "output", Type: graph.TypeString}},
//	    }
//	}
//
//	func (upper) Execute(ctx context.Context, in Inputs, ec *ExecContext) (Outputs, error) {
//	    s, _ := in.Get("input")
//	    return Outputs{}.With("output", graph.String(strings.ToUpper(s.Str))), nil
//	}
type Block interface {
	// Spec returns the block's declared interface: ports, parameters, and
	// identity. It must be cheap and must return the same spec every call.
	Spec() Spec

	// Execute runs the block. Inputs hold one value per satisfied input
	// port, keyed by port id. The returned Outputs must contain a value
	// for every declared output port.
	Execute(ctx context.Context, inputs Inputs, ec *ExecContext) (Outputs, error)

	// Validate checks configuration parameters before any execution.
	Validate(params Params) error

	// Purity reports whether the block has side effects.
	Purity() Purity

	// Determinism reports whether repeated execution with equal inputs
	// yields equal outputs.
	Determinism() Determinism
}
