package block

import (
	"encoding/json"

	"github.com/flowlang/flowgraph-go/graph"
)

// Inputs holds the values bound to a block's input ports for one execution,
// keyed by port id.
type Inputs struct {
	values map[string]graph.Value
}

// NewInputs builds an empty input set.
func NewInputs() Inputs {
	return Inputs{values: make(map[string]graph.Value)}
}

// With returns a copy of the inputs with the given port bound. The zero
// Inputs is usable.
func (in Inputs) With(portID string, v graph.Value) Inputs {
	next := make(map[string]graph.Value, len(in.values)+1)
	for k, val := range in.values {
		next[k] = val
	}
	next[portID] = v
	return Inputs{values: next}
}

// Get returns the value bound to the port.
func (in Inputs) Get(portID string) (graph.Value, bool) {
	v, ok := in.values[portID]
	return v, ok
}

// Contains reports whether the port is bound.
func (in Inputs) Contains(portID string) bool {
	_, ok := in.values[portID]
	return ok
}

// Len returns the number of bound ports.
func (in Inputs) Len() int { return len(in.values) }

// Outputs holds the values a block produced, keyed by output port id. Same
// shape as Inputs; kept distinct so signatures document direction.
type Outputs struct {
	values map[string]graph.Value
}

// NewOutputs builds an empty output set.
func NewOutputs() Outputs {
	return Outputs{values: make(map[string]graph.Value)}
}

// With returns a copy of the outputs with the given port set. The zero
// Outputs is usable.
func (out Outputs) With(portID string, v graph.Value) Outputs {
	next := make(map[string]graph.Value, len(out.values)+1)
	for k, val := range out.values {
		next[k] = val
	}
	next[portID] = v
	return Outputs{values: next}
}

// Get returns the value produced on the port.
func (out Outputs) Get(portID string) (graph.Value, bool) {
	v, ok := out.values[portID]
	return v, ok
}

// Contains reports whether the port was produced.
func (out Outputs) Contains(portID string) bool {
	_, ok := out.values[portID]
	return ok
}

// Len returns the number of produced ports.
func (out Outputs) Len() int { return len(out.values) }

// MarshalJSON encodes the outputs as a plain port-to-value object, so run
// state containing outputs can be persisted.
func (out Outputs) MarshalJSON() ([]byte, error) {
	return json.Marshal(out.values)
}

// UnmarshalJSON decodes the port-to-value object form.
func (out *Outputs) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &out.values)
}

// Params holds a block's configuration parameters by name.
type Params struct {
	values map[string]graph.Value
}

// NewParams builds an empty parameter set.
func NewParams() Params {
	return Params{values: make(map[string]graph.Value)}
}

// With returns a copy with the given parameter set. The zero Params is
// usable.
func (p Params) With(name string, v graph.Value) Params {
	next := make(map[string]graph.Value, len(p.values)+1)
	for k, val := range p.values {
		next[k] = val
	}
	next[name] = v
	return Params{values: next}
}

// Get returns the named parameter.
func (p Params) Get(name string) (graph.Value, bool) {
	v, ok := p.values[name]
	return v, ok
}

// Contains reports whether the parameter is set.
func (p Params) Contains(name string) bool {
	_, ok := p.values[name]
	return ok
}

// Len returns the number of set parameters.
func (p Params) Len() int { return len(p.values) }
