package graph

import (
	"fmt"

	"github.com/google/uuid"
)

// Connection is a directed, type-checked link from one node's output port to
// another node's input port.
//
// A connection is valid only when both endpoint nodes exist, the source port
// is found among the source node's outputs, the target port is found among
// the target node's inputs, and the two port types are compatible. Direction
// correctness comes from which list each port is found in, never from a
// stored direction field.
type Connection struct {
	// ID identifies the connection within its graph.
	ID string `json:"id"`

	// FromNode and FromPort name the producing endpoint.
	FromNode string `json:"from_node"`
	FromPort string `json:"from_port"`

	// ToNode and ToPort name the consuming endpoint.
	ToNode string `json:"to_node"`
	ToPort string `json:"to_port"`

	// Policy is the edge's flow-control metadata.
	Policy EdgePolicy `json:"policy"`
}

// NewConnection builds a connection with the default policy. An empty id is
// replaced with a generated UUID.
func NewConnection(id, fromNode, fromPort, toNode, toPort string) Connection {
	if id == "" {
		id = uuid.NewString()
	}
	return Connection{
		ID:       id,
		FromNode: fromNode,
		FromPort: fromPort,
		ToNode:   toNode,
		ToPort:   toPort,
		Policy:   DefaultPolicy(),
	}
}

// WithPolicy returns a copy of the connection carrying the given policy.
func (c Connection) WithPolicy(p EdgePolicy) Connection {
	c.Policy = p
	return c
}

// Validate checks the connection against the given node set and returns a
// *ValidationError describing the first failed check, or nil.
//
// It has no side effects and must be called before a connection is inserted
// into a graph (validate-before-insert).
func (c Connection) Validate(nodes map[string]*Node) *ValidationError {
	from, ok := nodes[c.FromNode]
	if !ok {
		return &ValidationError{
			Code:         CodeNodeNotFound,
			ConnectionID: c.ID,
			NodeID:       c.FromNode,
			Message:      fmt.Sprintf("source node %q does not exist", c.FromNode),
		}
	}
	to, ok := nodes[c.ToNode]
	if !ok {
		return &ValidationError{
			Code:         CodeNodeNotFound,
			ConnectionID: c.ID,
			NodeID:       c.ToNode,
			Message:      fmt.Sprintf("target node %q does not exist", c.ToNode),
		}
	}

	// Search only the output list: a port that exists on the source node
	// but not as an output is a direction error, not a missing port.
	fromPort, ok := from.OutputPort(c.FromPort)
	if !ok {
		code, msg := CodePortNotFound, fmt.Sprintf("port %q not found on node %q", c.FromPort, c.FromNode)
		if _, isInput := from.InputPort(c.FromPort); isInput {
			code = CodeWrongDirection
			msg = fmt.Sprintf("port %q on node %q is an input, not an output", c.FromPort, c.FromNode)
		}
		return &ValidationError{
			Code:         code,
			ConnectionID: c.ID,
			NodeID:       c.FromNode,
			PortID:       c.FromPort,
			Message:      msg,
		}
	}

	toPort, ok := to.InputPort(c.ToPort)
	if !ok {
		code, msg := CodePortNotFound, fmt.Sprintf("port %q not found on node %q", c.ToPort, c.ToNode)
		if _, isOutput := to.OutputPort(c.ToPort); isOutput {
			code = CodeWrongDirection
			msg = fmt.Sprintf("port %q on node %q is an output, not an input", c.ToPort, c.ToNode)
		}
		return &ValidationError{
			Code:         code,
			ConnectionID: c.ID,
			NodeID:       c.ToNode,
			PortID:       c.ToPort,
			Message:      msg,
		}
	}

	if !AreCompatible(fromPort.Type, toPort.Type) {
		return &ValidationError{
			Code:         CodeIncompatibleTypes,
			ConnectionID: c.ID,
			NodeID:       c.ToNode,
			PortID:       c.ToPort,
			Message: fmt.Sprintf("cannot connect %s port %q.%q to %s port %q.%q",
				fromPort.Type, c.FromNode, c.FromPort, toPort.Type, c.ToNode, c.ToPort),
		}
	}

	return nil
}

// IsValid is the boolean form of Validate.
func (c Connection) IsValid(nodes map[string]*Node) bool {
	return c.Validate(nodes) == nil
}

// references reports whether the connection touches the given node.
func (c Connection) references(nodeID string) bool {
	return c.FromNode == nodeID || c.ToNode == nodeID
}
