package block

import (
	"fmt"
	"sort"
	"sync"

	"github.com/flowlang/flowgraph-go/graph"
)

// Registry is a thread-safe collection of blocks keyed by their
// "namespace.name" id. A script command with app "math" and function "add"
// resolves against the key "math.add".
type Registry struct {
	mu     sync.RWMutex
	blocks map[string]Block
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{blocks: make(map[string]Block)}
}

// Register adds a block under its spec id. Registering a duplicate id is an
// error; blocks are identities, not configurations, so silent replacement
// would hide wiring mistakes.
func (r *Registry) Register(b Block) error {
	id := b.Spec().ID()
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.blocks[id]; exists {
		return fmt.Errorf("block %q already registered", id)
	}
	r.blocks[id] = b
	return nil
}

// MustRegister is Register that panics on error, for package init wiring.
func (r *Registry) MustRegister(b Block) {
	if err := r.Register(b); err != nil {
		panic(err)
	}
}

// Lookup returns the block registered under the id.
func (r *Registry) Lookup(id string) (Block, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.blocks[id]
	return b, ok
}

// Len returns the number of registered blocks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.blocks)
}

// Specs returns the registered specs sorted by id.
func (r *Registry) Specs() []Spec {
	r.mu.RLock()
	defer r.mu.RUnlock()
	specs := make([]Spec, 0, len(r.blocks))
	for _, b := range r.blocks {
		specs = append(specs, b.Spec())
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].ID() < specs[j].ID() })
	return specs
}

// NodeForSpec builds a graph node whose ports mirror the spec's declared
// ports, ready to be added to a graph and wired. Args are the node's
// initial positional arguments.
func NodeForSpec(nodeID string, spec Spec, args ...graph.Value) *graph.Node {
	n := graph.NewNode(nodeID, spec.Namespace, spec.Name, args...)
	for _, d := range spec.Inputs {
		n.AddInputPort(graph.Port{ID: d.ID, Name: defName(d), Type: d.Type})
	}
	for _, d := range spec.Outputs {
		n.AddOutputPort(graph.Port{ID: d.ID, Name: defName(d), Type: d.Type})
	}
	return n
}

func defName(d PortDef) string {
	if d.Name != "" {
		return d.Name
	}
	return d.ID
}
