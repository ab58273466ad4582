package graph

// Position locates a node on the editor canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// VisualProperties carries optional styling for a node or edge. The core
// round-trips this data without interpreting it.
type VisualProperties struct {
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
	Size  *Size  `json:"size,omitempty"`
	Style string `json:"style,omitempty"`
}

// Size is a width/height pair for VisualProperties.
type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Node is a placed instance of a block in a graph: an app/function pair with
// argument values, typed ports, and editor metadata.
//
// Nodes are owned exclusively by the Graph that contains them. Inputs and
// outputs live in separate lists; connection validation searches the list
// matching the required direction, so a port can never be wired backwards by
// having its Direction field mislabeled.
type Node struct {
	// ID identifies the node within its graph.
	ID string `json:"id"`

	// App is the namespace of the function this node invokes.
	App string `json:"app"`

	// Function names the operation within App.
	Function string `json:"function"`

	// Args are the node's argument values. Slots fed by a connection are
	// rewritten to identifier references during lowering.
	Args []Value `json:"args"`

	// Position is the node's location on the canvas. Lost on lowering.
	Position Position `json:"position"`

	// InputPorts are the node's typed inputs.
	InputPorts []Port `json:"input_ports"`

	// OutputPorts are the node's typed outputs.
	OutputPorts []Port `json:"output_ports"`

	// Visual carries styling the core does not interpret.
	Visual VisualProperties `json:"visual"`

	// UserData carries arbitrary caller metadata.
	UserData map[string]Value `json:"user_data,omitempty"`
}

// NewNode creates a node with the given identity and no ports.
func NewNode(id, app, function string, args ...Value) *Node {
	return &Node{
		ID:       id,
		App:      app,
		Function: function,
		Args:     args,
	}
}

// InputPort returns the input port with the given ID, if any.
func (n *Node) InputPort(id string) (Port, bool) {
	return findPort(n.InputPorts, id)
}

// OutputPort returns the output port with the given ID, if any.
func (n *Node) OutputPort(id string) (Port, bool) {
	return findPort(n.OutputPorts, id)
}

// inputIndex returns the position of the input port with the given ID, or -1.
// The index doubles as the argument slot the port feeds during lowering.
func (n *Node) inputIndex(id string) int {
	for i, p := range n.InputPorts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// AddInputPort appends an input port, forcing its direction.
func (n *Node) AddInputPort(p Port) {
	p.Direction = Input
	n.InputPorts = append(n.InputPorts, p)
}

// AddOutputPort appends an output port, forcing its direction.
func (n *Node) AddOutputPort(p Port) {
	p.Direction = Output
	n.OutputPorts = append(n.OutputPorts, p)
}

// SetUserData stores a metadata value on the node.
func (n *Node) SetUserData(key string, v Value) {
	if n.UserData == nil {
		n.UserData = make(map[string]Value)
	}
	n.UserData[key] = v
}

// clone returns a deep-enough copy for FromScript reconstruction: port
// slices and args are copied, nested values are shared (values are treated
// as immutable once set).
func (n *Node) clone() *Node {
	c := *n
	c.Args = append([]Value(nil), n.Args...)
	c.InputPorts = append([]Port(nil), n.InputPorts...)
	c.OutputPorts = append([]Port(nil), n.OutputPorts...)
	if n.UserData != nil {
		c.UserData = make(map[string]Value, len(n.UserData))
		for k, v := range n.UserData {
			c.UserData[k] = v
		}
	}
	return &c
}
