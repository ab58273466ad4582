package graph

// PortDirection distinguishes input ports from output ports.
type PortDirection string

const (
	// Input marks a port that receives values.
	Input PortDirection = "input"

	// Output marks a port that produces values.
	Output PortDirection = "output"
)

// Port is a typed, named slot on a node through which values flow.
//
// A port is owned exclusively by the node that declares it. Port IDs must be
// unique within their owning node and direction; the same ID may appear on
// both an input and an output of the same node.
type Port struct {
	// ID identifies the port within its node and direction.
	ID string `json:"id"`

	// Name is the display name shown in an editor.
	Name string `json:"name"`

	// Type is the port's static type used for connection checking.
	Type PortType `json:"type"`

	// Direction is Input or Output. Connection validation does not trust
	// this field alone: a port only counts as an input when it is found in
	// the node's input list, and likewise for outputs.
	Direction PortDirection `json:"direction"`
}

// DefaultInput returns the synthesized input port used for nodes that
// predate the port model. Its Any type accepts every connection.
func DefaultInput() Port {
	return Port{ID: "input", Name: "Input", Type: TypeAny, Direction: Input}
}

// DefaultOutput returns the synthesized output port used for nodes that
// predate the port model. Its ID is the canonical "output" name that
// identifier references use.
func DefaultOutput() Port {
	return Port{ID: "output", Name: "Output", Type: TypeAny, Direction: Output}
}

func findPort(ports []Port, id string) (Port, bool) {
	for _, p := range ports {
		if p.ID == id {
			return p, true
		}
	}
	return Port{}, false
}
