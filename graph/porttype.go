// Package graph provides the core data model for visual dataflow graphs:
// typed ports, nodes, validated connections, edge policies, and the lowering
// of a graph into an executable script.
package graph

// PortTypeKind enumerates the built-in port type variants.
type PortTypeKind string

const (
	KindNumber  PortTypeKind = "number"
	KindString  PortTypeKind = "string"
	KindBoolean PortTypeKind = "boolean"
	KindObject  PortTypeKind = "object"
	KindArray   PortTypeKind = "array"
	KindAny     PortTypeKind = "any"
	KindCustom  PortTypeKind = "custom"
)

// PortType describes the static type of a port.
//
// Custom types are identified by name; two custom types are the same type
// only when their names match exactly. There is no subtyping and no implicit
// numeric widening: compatibility is structural equality, with Any as the
// single wildcard.
type PortType struct {
	// Kind is the type variant.
	Kind PortTypeKind `json:"kind"`

	// Name is set only for KindCustom and identifies the custom type.
	Name string `json:"name,omitempty"`
}

// Built-in port types.
var (
	TypeNumber  = PortType{Kind: KindNumber}
	TypeString  = PortType{Kind: KindString}
	TypeBoolean = PortType{Kind: KindBoolean}
	TypeObject  = PortType{Kind: KindObject}
	TypeArray   = PortType{Kind: KindArray}
	TypeAny     = PortType{Kind: KindAny}
)

// Custom returns a named custom port type.
func Custom(name string) PortType {
	return PortType{Kind: KindCustom, Name: name}
}

// AreCompatible reports whether a value flowing out of a port typed a may
// flow into a port typed b.
//
// The rule is symmetric and total:
//   - either side Any matches anything
//   - equal built-in kinds match
//   - custom types match only on equal names
//   - every other pairing is incompatible
func AreCompatible(a, b PortType) bool {
	if a.Kind == KindAny || b.Kind == KindAny {
		return true
	}
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == KindCustom {
		return a.Name == b.Name
	}
	return true
}

// Compatible reports whether t is compatible with u. See AreCompatible.
func (t PortType) Compatible(u PortType) bool {
	return AreCompatible(t, u)
}

// String returns a human-readable name for the type.
func (t PortType) String() string {
	if t.Kind == KindCustom {
		return "custom:" + t.Name
	}
	return string(t.Kind)
}
