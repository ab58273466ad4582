// Package emit is the observability surface for script execution: runners
// emit events, and pluggable emitters deliver them to logs, buffers, or
// tracing backends.
package emit

// Event is one observability record from a script run.
//
// Runners emit events for run start and completion, per-command execution,
// retries, and failures. Emitters decide what to do with them.
type Event struct {
	// RunID identifies the script run that emitted this event.
	RunID string

	// Step is the 1-indexed command position in the script. Zero for
	// run-level events (run_start, run_complete, run_error).
	Step int

	// NodeID is the graph node the command was lowered from. Empty for
	// run-level events.
	NodeID string

	// Msg names the event, for example "command_start" or "command_retry".
	Msg string

	// Meta holds additional structured data. Common keys:
	//   - "block": the resolved block id
	//   - "duration_ms": command latency in milliseconds
	//   - "error": failure details
	//   - "attempt": retry attempt number
	Meta map[string]interface{}
}
