package exec

import (
	"fmt"
	"time"

	"github.com/flowlang/flowgraph-go/graph/emit"
	"github.com/flowlang/flowgraph-go/graph/store"
)

// Option configures a Runner.
//
// Options are chainable and all optional; a bare NewRunner(registry) gives
// a runner with no persistence, no events, no metrics, and no retries.
//
// Example:
//
//	runner, err := exec.NewRunner(registry,
//	    exec.WithStore(st),
//	    exec.WithEmitter(emit.NewLogEmitter(os.Stdout, false)),
//	    exec.WithRetries(2),
//	)
type Option func(*Runner) error

// WithStore persists run state after every command.
func WithStore(st store.Store[RunState]) Option {
	return func(r *Runner) error {
		r.store = st
		return nil
	}
}

// WithEmitter delivers run and command events to the emitter.
func WithEmitter(e emit.Emitter) Option {
	return func(r *Runner) error {
		r.emitter = e
		return nil
	}
}

// WithMetrics records run counts, command latencies, and retries.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) error {
		r.metrics = m
		return nil
	}
}

// WithRetries re-executes a failed command up to n additional times before
// the run fails. Default 0 (fail on first error).
func WithRetries(n int) Option {
	return func(r *Runner) error {
		if n < 0 {
			return fmt.Errorf("retries must be >= 0, got %d", n)
		}
		r.retries = n
		return nil
	}
}

// WithCommandTimeout bounds each command execution attempt. Zero means no
// per-command bound; the run context still applies.
func WithCommandTimeout(d time.Duration) Option {
	return func(r *Runner) error {
		if d < 0 {
			return fmt.Errorf("command timeout must be >= 0, got %v", d)
		}
		r.cmdTimeout = d
		return nil
	}
}
