package block

import (
	"github.com/flowlang/flowgraph-go/graph"
)

// PortKind classifies how data crosses a port.
type PortKind string

const (
	// KindValue ports carry a single value per execution. Every builtin
	// block uses value ports.
	KindValue PortKind = "value"

	// KindStream ports carry an ordered sequence of values.
	KindStream PortKind = "stream"

	// KindEvent ports carry discrete occurrences without payload ordering
	// guarantees.
	KindEvent PortKind = "event"

	// KindComposite ports bundle several logical channels behind one port.
	KindComposite PortKind = "composite"
)

// PortDef declares one input or output port of a block.
type PortDef struct {
	// ID is the port identifier referenced by connections and identifier
	// arguments.
	ID string `json:"id"`

	// Name is the human-readable label. Defaults to ID when empty.
	Name string `json:"name,omitempty"`

	// Type constrains what the port accepts or produces.
	Type graph.PortType `json:"type"`

	// Kind defaults to KindValue when empty.
	Kind PortKind `json:"kind,omitempty"`

	// Required marks an input that must be bound before execution.
	// Ignored on outputs.
	Required bool `json:"required,omitempty"`

	// Default is used for an unbound optional input.
	Default *graph.Value `json:"default,omitempty"`
}

// ParamDef declares one configuration parameter of a block. Parameters are
// fixed at graph-authoring time, unlike inputs which flow per execution.
type ParamDef struct {
	Name        string         `json:"name"`
	Type        graph.PortType `json:"type"`
	Required    bool           `json:"required,omitempty"`
	Default     *graph.Value   `json:"default,omitempty"`
	Description string         `json:"description,omitempty"`
}

// EngineReq states what the executing engine must provide for the block to
// run.
type EngineReq struct {
	// VersionReq is a semver constraint on the engine version, empty for
	// any.
	VersionReq string `json:"version_req,omitempty"`

	// Capabilities lists required engine capability flags, for example
	// "net" or "fs".
	Capabilities []string `json:"capabilities,omitempty"`
}

// Spec is a block's declared interface: identity, typed ports, parameters,
// and engine requirements.
type Spec struct {
	// Namespace and Name identify the block; together they form the
	// "app.function" key a command resolves against.
	Namespace string `json:"namespace"`
	Name      string `json:"name"`

	Version     string   `json:"version,omitempty"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`

	Purity      Purity      `json:"purity,omitempty"`
	Determinism Determinism `json:"determinism,omitempty"`

	Inputs  []PortDef  `json:"inputs,omitempty"`
	Outputs []PortDef  `json:"outputs,omitempty"`
	Params  []ParamDef `json:"params,omitempty"`

	Engine EngineReq `json:"engine"`
}

// ID returns the registry key, "<namespace>.<name>".
func (s Spec) ID() string {
	return s.Namespace + "." + s.Name
}

// Input returns the input port definition with the given id.
func (s Spec) Input(id string) (PortDef, bool) {
	return findDef(s.Inputs, id)
}

// Output returns the output port definition with the given id.
func (s Spec) Output(id string) (PortDef, bool) {
	return findDef(s.Outputs, id)
}

// Param returns the parameter definition with the given name.
func (s Spec) Param(name string) (ParamDef, bool) {
	for _, p := range s.Params {
		if p.Name == name {
			return p, true
		}
	}
	return ParamDef{}, false
}

func findDef(defs []PortDef, id string) (PortDef, bool) {
	for _, d := range defs {
		if d.ID == id {
			return d, true
		}
	}
	return PortDef{}, false
}
