package graph

import (
	"fmt"
	"strings"
)

// Command is one step of a lowered script: a function invocation with
// positional arguments. Arguments that carry data from an earlier command are
// encoded as Identifier values of the form "<node_id>.<port_id>".
//
// Node records which graph node the command was lowered from. It is optional
// in hand-written scripts; FromScript synthesizes ids for commands that omit
// it.
type Command struct {
	App      string  `json:"app"`
	Function string  `json:"function"`
	Args     []Value `json:"args"`
	Node     string  `json:"node,omitempty"`
}

// Script is the lowered, executable form of a graph: an ordered command
// sequence where data flow is expressed through identifier arguments instead
// of explicit edges.
type Script struct {
	Commands []Command `json:"commands"`
}

// Format renders the script as readable text, one command per line.
func (s *Script) Format() string {
	var b strings.Builder
	for i, cmd := range s.Commands {
		args := make([]string, len(cmd.Args))
		for j, a := range cmd.Args {
			args[j] = a.String()
		}
		fmt.Fprintf(&b, "%d: %s.%s(%s)\n", i, cmd.App, cmd.Function, strings.Join(args, ", "))
	}
	return b.String()
}

// ToScript lowers the graph into a script.
//
// Commands are emitted in topological order of the data dependencies: a node
// that consumes another node's output always appears after its producer.
// Nodes with no dependency relationship keep their insertion order, so the
// same graph always lowers to the same script. Each node becomes exactly one
// command; every incoming connection rewrites the argument slot of its target
// input port (by position among the node's input ports) into an identifier
// reference to the producing port.
//
// Lowering fails with a *LoweringError if the graph contains a cycle, or if
// a connection references a node or port that no longer exists. The second
// case cannot arise through AddConnection alone but is checked anyway since
// node replacement can strand a connection.
func (g *Graph) ToScript() (*Script, error) {
	if err := g.checkLowerable(); err != nil {
		return nil, err
	}

	order, err := g.topoOrder()
	if err != nil {
		return nil, err
	}

	script := &Script{Commands: make([]Command, 0, len(order))}
	for _, id := range order {
		n := g.nodes[id]
		args := make([]Value, len(n.Args))
		copy(args, n.Args)
		for _, c := range g.incoming(id) {
			ref := Ref(c.FromNode, c.FromPort)
			idx := n.inputIndex(c.ToPort)
			if idx < 0 {
				args = append(args, ref)
				continue
			}
			// The slot must match the port's position even when the node
			// declares fewer args than input ports, otherwise rewrites for
			// different ports collide.
			for len(args) <= idx {
				args = append(args, Null())
			}
			args[idx] = ref
		}
		script.Commands = append(script.Commands, Command{
			App:      n.App,
			Function: n.Function,
			Args:     args,
			Node:     n.ID,
		})
	}
	return script, nil
}

// checkLowerable verifies every connection still resolves to existing nodes
// and correctly directed ports.
func (g *Graph) checkLowerable() *LoweringError {
	for _, c := range g.connections {
		from, ok := g.nodes[c.FromNode]
		if !ok {
			return &LoweringError{
				Code:    CodeDanglingNode,
				NodeID:  c.FromNode,
				Message: fmt.Sprintf("connection %q references missing node %q", c.ID, c.FromNode),
			}
		}
		to, ok := g.nodes[c.ToNode]
		if !ok {
			return &LoweringError{
				Code:    CodeDanglingNode,
				NodeID:  c.ToNode,
				Message: fmt.Sprintf("connection %q references missing node %q", c.ID, c.ToNode),
			}
		}
		if _, ok := from.OutputPort(c.FromPort); !ok {
			return &LoweringError{
				Code:    CodeDanglingPort,
				NodeID:  c.FromNode,
				Message: fmt.Sprintf("connection %q references missing output port %q on node %q", c.ID, c.FromPort, c.FromNode),
			}
		}
		if _, ok := to.InputPort(c.ToPort); !ok {
			return &LoweringError{
				Code:    CodeDanglingPort,
				NodeID:  c.ToNode,
				Message: fmt.Sprintf("connection %q references missing input port %q on node %q", c.ID, c.ToPort, c.ToNode),
			}
		}
	}
	return nil
}

// topoOrder returns the node ids in dependency order, breaking ties by
// insertion order. Kahn's algorithm over the connection edges; duplicate
// edges between the same node pair count once.
func (g *Graph) topoOrder() ([]string, error) {
	indegree := make(map[string]int, len(g.nodes))
	for id := range g.nodes {
		indegree[id] = 0
	}
	seen := make(map[[2]string]bool, len(g.connections))
	edges := make(map[string][]string, len(g.connections))
	for _, c := range g.connections {
		key := [2]string{c.FromNode, c.ToNode}
		if seen[key] {
			continue
		}
		seen[key] = true
		edges[c.FromNode] = append(edges[c.FromNode], c.ToNode)
		indegree[c.ToNode]++
	}

	order := make([]string, 0, len(g.nodes))
	emitted := make(map[string]bool, len(g.nodes))
	for len(order) < len(g.nodes) {
		next := ""
		for _, id := range g.order {
			if !emitted[id] && indegree[id] == 0 {
				next = id
				break
			}
		}
		if next == "" {
			return nil, &LoweringError{
				Code:    CodeCyclicGraph,
				Message: "graph contains a dependency cycle",
			}
		}
		emitted[next] = true
		order = append(order, next)
		for _, to := range edges[next] {
			indegree[to]--
		}
	}
	return order, nil
}

// FromScript reconstructs a graph from a script.
//
// Each command becomes one node, using the command's recorded node id or a
// synthesized "node<i>" when absent. Connections are inferred by scanning
// arguments for Identifier values whose "<node_id>.<port_id>" reference
// resolves to another command's node; each such argument produces a
// connection from that node's output port to an input port synthesized on the
// consuming node at the argument's position. Visual positions are not
// recoverable from a script, so nodes are laid out on a simple row.
func FromScript(s *Script) *Graph {
	g := New("", "")

	ids := make([]string, len(s.Commands))
	for i, cmd := range s.Commands {
		id := cmd.Node
		if id == "" {
			id = fmt.Sprintf("node%d", i)
		}
		ids[i] = id

		n := NewNode(id, cmd.App, cmd.Function, cmd.Args...)
		n.Position = Position{X: float64(i) * 200, Y: 100}
		n.OutputPorts = []Port{DefaultOutput()}
		g.AddNode(n)
	}

	known := make(map[string]bool, len(ids))
	for _, id := range ids {
		known[id] = true
	}

	for i, cmd := range s.Commands {
		n := g.Node(ids[i])
		for j, arg := range cmd.Args {
			fromNode, fromPort, ok := arg.ParseRef()
			if !ok || !known[fromNode] || fromNode == n.ID {
				continue
			}
			src := g.Node(fromNode)
			if _, ok := src.OutputPort(fromPort); !ok {
				src.AddOutputPort(Port{ID: fromPort, Name: fromPort, Type: TypeAny})
			}
			in := Port{ID: fmt.Sprintf("in%d", j), Name: fmt.Sprintf("in%d", j), Type: TypeAny}
			if _, ok := n.InputPort(in.ID); !ok {
				n.AddInputPort(in)
			}
			conn := NewConnection("", fromNode, fromPort, n.ID, in.ID)
			if err := g.AddConnection(conn); err != nil {
				// Both endpoints were just created with Any ports, so
				// this cannot fail; skip rather than panic if it does.
				continue
			}
		}
	}
	return g
}
