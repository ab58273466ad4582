package graph

// Edge policies are data only. The core carries them faithfully through
// graph mutation and serialization; their runtime semantics belong to
// whatever engine consumes the graph. Lowering discards them: a script
// command has no edge to hang a policy on, and adapters reference symbolic
// functions a script runner cannot evaluate.

// AdapterKind enumerates the transformation adapters an edge can carry.
type AdapterKind string

const (
	AdapterNone     AdapterKind = "none"
	AdapterMap      AdapterKind = "map"
	AdapterFilter   AdapterKind = "filter"
	AdapterBuffer   AdapterKind = "buffer"
	AdapterWindow   AdapterKind = "window"
	AdapterDebounce AdapterKind = "debounce"
	AdapterMerge    AdapterKind = "merge"
	AdapterZip      AdapterKind = "zip"
	AdapterBoundary AdapterKind = "boundary"
)

// EdgeAdapter is a transformation attached to an edge. Only the fields
// relevant to the Kind are meaningful; the rest stay zero.
type EdgeAdapter struct {
	Kind AdapterKind `json:"kind"`

	// Transform names the mapping function for AdapterMap.
	Transform string `json:"transform,omitempty"`

	// Predicate names the filter function for AdapterFilter.
	Predicate string `json:"predicate,omitempty"`

	// Capacity is the buffer size for AdapterBuffer.
	Capacity int `json:"capacity,omitempty"`

	// Size and Slide configure AdapterWindow. A zero Slide means a
	// tumbling window.
	Size  int `json:"size,omitempty"`
	Slide int `json:"slide,omitempty"`

	// DelayMS is the quiet period for AdapterDebounce.
	DelayMS int64 `json:"delay_ms,omitempty"`

	// Strategy selects the merge discipline for AdapterMerge, e.g.
	// "round_robin" or "priority".
	Strategy string `json:"strategy,omitempty"`
}

// BackpressureStrategy selects behavior when a downstream consumer is full.
type BackpressureStrategy string

const (
	// Block stalls the producer until capacity frees up.
	Block BackpressureStrategy = "block"

	// DropOldest discards the oldest buffered item.
	DropOldest BackpressureStrategy = "drop_oldest"

	// DropNewest discards the incoming item.
	DropNewest BackpressureStrategy = "drop_newest"

	// Expand grows the buffer without bound.
	Expand BackpressureStrategy = "expand"
)

// OrderingStrategy selects how items on an edge are ordered.
type OrderingStrategy string

const (
	// OrderSource preserves producer emission order.
	OrderSource OrderingStrategy = "source"

	// OrderTimestamp orders items by their timestamps.
	OrderTimestamp OrderingStrategy = "timestamp"

	// OrderStableKey orders items by a stable key.
	OrderStableKey OrderingStrategy = "stable_key"
)

// EdgePolicy bundles the flow-control metadata attached to a connection.
type EdgePolicy struct {
	Adapter      EdgeAdapter          `json:"adapter"`
	Backpressure BackpressureStrategy `json:"backpressure"`
	Ordering     OrderingStrategy     `json:"ordering"`
}

// DefaultPolicy returns the policy applied to connections that do not set
// one: direct pass-through, blocking backpressure, source ordering.
func DefaultPolicy() EdgePolicy {
	return EdgePolicy{
		Adapter:      EdgeAdapter{Kind: AdapterNone},
		Backpressure: Block,
		Ordering:     OrderSource,
	}
}

// isZero reports whether p was left unset by the caller.
func (p EdgePolicy) isZero() bool {
	return p.Adapter.Kind == "" && p.Backpressure == "" && p.Ordering == ""
}
