package block

import "fmt"

// ExecutionError reports a block execution failure. The layers above the
// block package propagate it opaquely and never interpret the message.
type ExecutionError struct {
	// BlockID is the "namespace.name" of the failing block.
	BlockID string

	// Message describes the failure.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("block %s: %s: %v", e.BlockID, e.Message, e.Cause)
	}
	return fmt.Sprintf("block %s: %s", e.BlockID, e.Message)
}

// Unwrap returns the underlying cause.
func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

// execErr is a shorthand constructor used by the builtins.
func execErr(blockID, format string, args ...any) *ExecutionError {
	return &ExecutionError{BlockID: blockID, Message: fmt.Sprintf(format, args...)}
}
