package emit

// Emitter receives observability events from script execution.
//
// Implementations must be:
//   - Non-blocking: never slow down the run
//   - Thread-safe: emitted to concurrently when runs overlap
//   - Resilient: a failing backend must not fail the run
//
// Common patterns are buffering for tests (BufferedEmitter), line logging
// (LogEmitter), tracing (OTelEmitter), and fan-out to several backends.
type Emitter interface {
	// Emit delivers one event. It must not panic; backend errors are
	// handled internally, never surfaced to the run.
	Emit(event Event)
}
