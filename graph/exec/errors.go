package exec

import "fmt"

// Run error codes.
const (
	// CodeBlockNotFound: a command names a block the registry does not
	// hold.
	CodeBlockNotFound = "BLOCK_NOT_FOUND"

	// CodeUnresolvedRef: an identifier argument references an output no
	// earlier command produced.
	CodeUnresolvedRef = "UNRESOLVED_REF"

	// CodeExecutionFailed: the block itself failed, after exhausting
	// retries. The block's error is wrapped, never interpreted.
	CodeExecutionFailed = "EXECUTION_FAILED"

	// CodeStoreError: persisting a step failed.
	CodeStoreError = "STORE_ERROR"
)

// RunError reports a script run failure with enough context to locate the
// failing command.
type RunError struct {
	// Code is one of the Code* run constants.
	Code string

	// RunID identifies the run.
	RunID string

	// Step is the 1-based position of the failing command, zero for
	// run-level failures.
	Step int

	// NodeID is the graph node the command was lowered from.
	NodeID string

	// Message describes the failure.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *RunError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *RunError) Unwrap() error {
	return e.Cause
}
