package graph

// Validation error codes. Each connection check failure maps to exactly one
// code so callers and tests can assert on the precise cause.
const (
	CodeNodeNotFound      = "NODE_NOT_FOUND"
	CodePortNotFound      = "PORT_NOT_FOUND"
	CodeWrongDirection    = "WRONG_DIRECTION"
	CodeIncompatibleTypes = "INCOMPATIBLE_TYPES"
)

// Lowering error codes.
const (
	CodeCyclicGraph  = "CYCLIC_GRAPH"
	CodeDanglingNode = "DANGLING_NODE"
	CodeDanglingPort = "DANGLING_PORT"
)

// ValidationError reports why a connection was rejected.
//
// It carries the connection, node, and port identifiers involved so a caller
// can surface a precise message without parsing the error text.
type ValidationError struct {
	// Code is one of the Code* validation constants.
	Code string

	// ConnectionID identifies the rejected connection, when known.
	ConnectionID string

	// NodeID is the node involved in the failed check.
	NodeID string

	// PortID is the port involved in the failed check, if any.
	PortID string

	// Message is the human-readable description.
	Message string
}

func (e *ValidationError) Error() string {
	if e.Code != "" {
		return e.Code + ": " + e.Message
	}
	return e.Message
}

// LoweringError reports a failure converting between a graph and a script.
//
// Lowering fails only for structurally inconsistent graphs: dependency
// cycles, or connections whose endpoints no longer exist (which AddConnection
// should have prevented; the check here is defensive).
type LoweringError struct {
	// Code is one of the Code* lowering constants.
	Code string

	// NodeID is the node involved, when the failure is attributable to one.
	NodeID string

	// Message is the human-readable description.
	Message string
}

func (e *LoweringError) Error() string {
	if e.Code != "" {
		return e.Code + ": " + e.Message
	}
	return e.Message
}
