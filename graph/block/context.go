package block

import (
	"github.com/google/uuid"

	"github.com/flowlang/flowgraph-go/graph"
)

// ExecContext carries per-execution state into a block: an execution id for
// correlation, the registry the run resolves against, and free-form
// metadata set by the runner.
type ExecContext struct {
	// ExecutionID identifies one block execution within a run.
	ExecutionID string

	// Registry lets composite blocks resolve other blocks. May be nil.
	Registry *Registry

	// Metadata holds runner-provided values, for example the run id or the
	// originating node id.
	Metadata map[string]graph.Value
}

// NewExecContext builds a context with a generated execution id.
func NewExecContext(reg *Registry) *ExecContext {
	return &ExecContext{
		ExecutionID: uuid.NewString(),
		Registry:    reg,
		Metadata:    make(map[string]graph.Value),
	}
}

// SetMeta stores a metadata value.
func (ec *ExecContext) SetMeta(key string, v graph.Value) {
	if ec.Metadata == nil {
		ec.Metadata = make(map[string]graph.Value)
	}
	ec.Metadata[key] = v
}

// Meta returns a metadata value.
func (ec *ExecContext) Meta(key string) (graph.Value, bool) {
	v, ok := ec.Metadata[key]
	return v, ok
}
