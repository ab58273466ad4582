// Package exec runs lowered scripts locally: commands execute sequentially
// in script order, resolving blocks from a registry and identifier
// arguments from upstream outputs.
package exec

import (
	"context"
	"fmt"
	"time"

	"github.com/flowlang/flowgraph-go/graph"
	"github.com/flowlang/flowgraph-go/graph/block"
	"github.com/flowlang/flowgraph-go/graph/emit"
	"github.com/flowlang/flowgraph-go/graph/store"
)

// RunState is the persisted shape of a run: outputs of every executed
// command, keyed by node id.
type RunState map[string]block.Outputs

// Runner executes scripts against a block registry.
//
// Execution is sequential in script order; lowering already ordered the
// commands so every producer precedes its consumers. Positional arguments
// bind to the block's declared input ports by index, identifier arguments
// resolve to the referenced node's output from earlier in the run.
type Runner struct {
	registry   *block.Registry
	store      store.Store[RunState]
	emitter    emit.Emitter
	metrics    *Metrics
	retries    int
	cmdTimeout time.Duration
}

// NewRunner builds a runner over the registry.
func NewRunner(registry *block.Registry, opts ...Option) (*Runner, error) {
	if registry == nil {
		return nil, fmt.Errorf("registry is required")
	}
	r := &Runner{registry: registry}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Run executes the script and returns every node's outputs.
//
// Each command resolves its block by "app.function", binds and resolves
// its arguments, validates, then executes with the configured retry budget.
// When a store is configured the accumulated run state is persisted after
// every command. The first unrecoverable failure stops the run and is
// returned as a *RunError.
func (r *Runner) Run(ctx context.Context, runID string, script *graph.Script) (map[string]block.Outputs, error) {
	r.emit(emit.Event{RunID: runID, Msg: "run_start", Meta: map[string]interface{}{
		"commands": len(script.Commands),
	}})
	r.metrics.runStarted()

	outputs := make(map[string]block.Outputs, len(script.Commands))
	for i, cmd := range script.Commands {
		step := i + 1
		nodeID := cmd.Node
		if nodeID == "" {
			nodeID = fmt.Sprintf("node%d", i)
		}
		if err := r.runCommand(ctx, runID, step, nodeID, cmd, outputs); err != nil {
			r.emit(emit.Event{RunID: runID, Step: step, NodeID: nodeID, Msg: "run_error",
				Meta: map[string]interface{}{"error": err.Error()}})
			r.metrics.runFinished("error")
			return nil, err
		}
	}

	r.emit(emit.Event{RunID: runID, Msg: "run_complete"})
	r.metrics.runFinished("success")
	return outputs, nil
}

func (r *Runner) runCommand(ctx context.Context, runID string, step int, nodeID string, cmd graph.Command, outputs map[string]block.Outputs) error {
	blockID := cmd.App + "." + cmd.Function
	b, ok := r.registry.Lookup(blockID)
	if !ok {
		return &RunError{
			Code:    CodeBlockNotFound,
			RunID:   runID,
			Step:    step,
			NodeID:  nodeID,
			Message: fmt.Sprintf("no block registered for %q", blockID),
		}
	}
	spec := b.Spec()

	inputs, err := r.bindInputs(runID, step, nodeID, spec, cmd.Args, outputs)
	if err != nil {
		return err
	}

	if verr := b.Validate(block.NewParams()); verr != nil {
		return &RunError{
			Code:    CodeExecutionFailed,
			RunID:   runID,
			Step:    step,
			NodeID:  nodeID,
			Message: fmt.Sprintf("block %q rejected its configuration", blockID),
			Cause:   verr,
		}
	}

	r.emit(emit.Event{RunID: runID, Step: step, NodeID: nodeID, Msg: "command_start",
		Meta: map[string]interface{}{"block": blockID}})

	out, execErr := r.executeWithRetries(ctx, runID, step, nodeID, blockID, b, inputs)
	if execErr != nil {
		return execErr
	}
	outputs[nodeID] = out

	if r.store != nil {
		snapshot := make(RunState, len(outputs))
		for k, v := range outputs {
			snapshot[k] = v
		}
		if err := r.store.SaveStep(ctx, runID, step, nodeID, snapshot); err != nil {
			return &RunError{
				Code:    CodeStoreError,
				RunID:   runID,
				Step:    step,
				NodeID:  nodeID,
				Message: "persisting step",
				Cause:   err,
			}
		}
	}
	return nil
}

// bindInputs maps positional arguments onto the block's declared input
// ports and resolves identifier references from earlier outputs. Arguments
// beyond the declared inputs are ignored; unbound optional inputs take
// their declared default.
func (r *Runner) bindInputs(runID string, step int, nodeID string, spec block.Spec, args []graph.Value, outputs map[string]block.Outputs) (block.Inputs, error) {
	inputs := block.NewInputs()
	for j, arg := range args {
		if j >= len(spec.Inputs) {
			break
		}
		portID := spec.Inputs[j].ID

		if arg.IsIdentifier() {
			resolved, err := r.resolveRef(runID, step, nodeID, arg, outputs)
			if err != nil {
				return inputs, err
			}
			inputs = inputs.With(portID, resolved)
			continue
		}
		inputs = inputs.With(portID, arg)
	}

	for _, def := range spec.Inputs {
		if inputs.Contains(def.ID) {
			continue
		}
		if def.Default != nil {
			inputs = inputs.With(def.ID, *def.Default)
			continue
		}
		if def.Required {
			return inputs, &RunError{
				Code:    CodeExecutionFailed,
				RunID:   runID,
				Step:    step,
				NodeID:  nodeID,
				Message: fmt.Sprintf("required input %q not bound", def.ID),
			}
		}
	}
	return inputs, nil
}

func (r *Runner) resolveRef(runID string, step int, nodeID string, arg graph.Value, outputs map[string]block.Outputs) (graph.Value, error) {
	fromNode, fromPort, ok := arg.ParseRef()
	if !ok {
		return graph.Value{}, &RunError{
			Code:    CodeUnresolvedRef,
			RunID:   runID,
			Step:    step,
			NodeID:  nodeID,
			Message: fmt.Sprintf("malformed reference %q", arg.Str),
		}
	}
	upstream, ok := outputs[fromNode]
	if !ok {
		return graph.Value{}, &RunError{
			Code:    CodeUnresolvedRef,
			RunID:   runID,
			Step:    step,
			NodeID:  nodeID,
			Message: fmt.Sprintf("reference %q: node %q has not produced outputs", arg.Str, fromNode),
		}
	}
	v, ok := upstream.Get(fromPort)
	if !ok {
		return graph.Value{}, &RunError{
			Code:    CodeUnresolvedRef,
			RunID:   runID,
			Step:    step,
			NodeID:  nodeID,
			Message: fmt.Sprintf("reference %q: node %q has no output %q", arg.Str, fromNode, fromPort),
		}
	}
	return v, nil
}

func (r *Runner) executeWithRetries(ctx context.Context, runID string, step int, nodeID, blockID string, b block.Block, inputs block.Inputs) (block.Outputs, error) {
	var lastErr error
	for attempt := 0; attempt <= r.retries; attempt++ {
		if attempt > 0 {
			r.metrics.retryObserved(blockID)
			r.emit(emit.Event{RunID: runID, Step: step, NodeID: nodeID, Msg: "command_retry",
				Meta: map[string]interface{}{"block": blockID, "attempt": attempt}})
		}

		out, latency, err := r.executeOnce(ctx, runID, b, inputs)
		if err == nil {
			r.metrics.commandObserved(blockID, "success", latency)
			r.emit(emit.Event{RunID: runID, Step: step, NodeID: nodeID, Msg: "command_end",
				Meta: map[string]interface{}{"block": blockID, "duration_ms": latency, "attempt": attempt}})
			return out, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}

	r.metrics.commandObserved(blockID, "error", 0)
	r.emit(emit.Event{RunID: runID, Step: step, NodeID: nodeID, Msg: "command_error",
		Meta: map[string]interface{}{"block": blockID, "error": lastErr.Error()}})
	return block.Outputs{}, &RunError{
		Code:    CodeExecutionFailed,
		RunID:   runID,
		Step:    step,
		NodeID:  nodeID,
		Message: fmt.Sprintf("block %q failed after %d attempts", blockID, r.retries+1),
		Cause:   lastErr,
	}
}

func (r *Runner) executeOnce(ctx context.Context, runID string, b block.Block, inputs block.Inputs) (block.Outputs, float64, error) {
	execCtx := ctx
	if r.cmdTimeout > 0 {
		var cancel context.CancelFunc
		execCtx, cancel = context.WithTimeout(ctx, r.cmdTimeout)
		defer cancel()
	}

	ec := block.NewExecContext(r.registry)
	ec.SetMeta("run_id", graph.String(runID))

	start := time.Now()
	out, err := b.Execute(execCtx, inputs, ec)
	latency := float64(time.Since(start)) / float64(time.Millisecond)
	if err != nil {
		return block.Outputs{}, latency, err
	}
	return out, latency, nil
}

func (r *Runner) emit(event emit.Event) {
	if r.emitter == nil {
		return
	}
	r.emitter.Emit(event)
}
