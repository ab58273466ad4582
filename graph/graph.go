package graph

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Graph is the aggregate a visual editor manipulates: a set of nodes plus the
// validated connections between them.
//
// Nodes are keyed by id and also carry a stable insertion order, which breaks
// ties during lowering so that equivalent graphs lower to the same script.
// Connections only enter the graph through AddConnection, which validates
// before inserting, so every stored connection is valid with respect to the
// nodes present at insertion time.
type Graph struct {
	ID       string
	Name     string
	Metadata map[string]Value

	nodes       map[string]*Node
	order       []string
	connections []Connection
}

// New creates an empty graph. An empty id is replaced with a generated UUID.
func New(id, name string) *Graph {
	if id == "" {
		id = uuid.NewString()
	}
	return &Graph{
		ID:    id,
		Name:  name,
		nodes: make(map[string]*Node),
	}
}

// AddNode inserts the node, replacing any existing node with the same id.
// Replacement keeps the original insertion slot, so the graph's node order is
// stable under edits. Connections that referenced the old node are kept and
// re-checked lazily by Validate; they are not removed here.
func (g *Graph) AddNode(n *Node) {
	if g.nodes == nil {
		g.nodes = make(map[string]*Node)
	}
	if _, exists := g.nodes[n.ID]; !exists {
		g.order = append(g.order, n.ID)
	}
	g.nodes[n.ID] = n
}

// Node returns the node with the given id, or nil.
func (g *Graph) Node(id string) *Node {
	return g.nodes[id]
}

// Nodes returns the graph's nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// RemoveNode deletes the node and every connection touching it. It reports
// whether a node was removed.
func (g *Graph) RemoveNode(id string) bool {
	if _, ok := g.nodes[id]; !ok {
		return false
	}
	delete(g.nodes, id)
	for i, ord := range g.order {
		if ord == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	kept := g.connections[:0]
	for _, c := range g.connections {
		if !c.references(id) {
			kept = append(kept, c)
		}
	}
	g.connections = kept
	return true
}

// AddConnection validates the connection against the current node set and
// appends it only if valid. On failure the graph is unchanged and the
// validation error is returned. An empty connection id is replaced with a
// generated UUID; a zero policy is replaced with the default policy.
func (g *Graph) AddConnection(c Connection) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Policy.isZero() {
		c.Policy = DefaultPolicy()
	}
	if err := c.Validate(g.nodes); err != nil {
		return err
	}
	g.connections = append(g.connections, c)
	return nil
}

// Connections returns the graph's connections in insertion order.
func (g *Graph) Connections() []Connection {
	out := make([]Connection, len(g.connections))
	copy(out, g.connections)
	return out
}

// Connection returns the connection with the given id.
func (g *Graph) Connection(id string) (Connection, bool) {
	for _, c := range g.connections {
		if c.ID == id {
			return c, true
		}
	}
	return Connection{}, false
}

// RemoveConnection deletes the connection with the given id and reports
// whether one was removed.
func (g *Graph) RemoveConnection(id string) bool {
	for i, c := range g.connections {
		if c.ID == id {
			g.connections = append(g.connections[:i], g.connections[i+1:]...)
			return true
		}
	}
	return false
}

// incoming returns the connections feeding the given node, in insertion
// order.
func (g *Graph) incoming(nodeID string) []Connection {
	var out []Connection
	for _, c := range g.connections {
		if c.ToNode == nodeID {
			out = append(out, c)
		}
	}
	return out
}

// Validate re-checks every connection against the current node set and
// returns all failures. Editing operations can invalidate previously valid
// connections (for example replacing a node with one whose ports differ), so
// a full validation pass is the authoritative consistency check.
func (g *Graph) Validate() []*ValidationError {
	var errs []*ValidationError
	for _, c := range g.connections {
		if err := c.Validate(g.nodes); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// IsValid reports whether every connection validates.
func (g *Graph) IsValid() bool {
	for _, c := range g.connections {
		if !c.IsValid(g.nodes) {
			return false
		}
	}
	return true
}

// SetMetadata stores a metadata value on the graph.
func (g *Graph) SetMetadata(key string, v Value) {
	if g.Metadata == nil {
		g.Metadata = make(map[string]Value)
	}
	g.Metadata[key] = v
}

// Clone returns a deep copy of the graph.
func (g *Graph) Clone() *Graph {
	out := New(g.ID, g.Name)
	for _, n := range g.Nodes() {
		out.AddNode(n.clone())
	}
	out.connections = make([]Connection, len(g.connections))
	copy(out.connections, g.connections)
	if g.Metadata != nil {
		out.Metadata = make(map[string]Value, len(g.Metadata))
		for k, v := range g.Metadata {
			out.Metadata[k] = v
		}
	}
	return out
}

// graphJSON is the wire shape of a graph. Nodes serialize as an array so the
// insertion order survives a round trip.
type graphJSON struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Nodes       []*Node          `json:"nodes"`
	Connections []Connection     `json:"connections"`
	Metadata    map[string]Value `json:"metadata,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (g *Graph) MarshalJSON() ([]byte, error) {
	return json.Marshal(graphJSON{
		ID:          g.ID,
		Name:        g.Name,
		Nodes:       g.Nodes(),
		Connections: g.connections,
		Metadata:    g.Metadata,
	})
}

// UnmarshalJSON implements json.Unmarshaler. Connections are re-validated
// against the decoded nodes; an invalid connection makes the whole decode
// fail, keeping the no-invalid-connections invariant for loaded graphs.
func (g *Graph) UnmarshalJSON(data []byte) error {
	var raw graphJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decoded := New(raw.ID, raw.Name)
	for _, n := range raw.Nodes {
		if n == nil {
			continue
		}
		decoded.AddNode(n)
	}
	for _, c := range raw.Connections {
		if err := decoded.AddConnection(c); err != nil {
			return fmt.Errorf("graph %q: connection %q: %w", raw.ID, c.ID, err)
		}
	}
	decoded.Metadata = raw.Metadata
	*g = *decoded
	return nil
}
