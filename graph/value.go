package graph

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ValueKind enumerates the variants of the Value union.
type ValueKind string

const (
	ValueNull       ValueKind = "null"
	ValueNumber     ValueKind = "number"
	ValueString     ValueKind = "string"
	ValueBoolean    ValueKind = "boolean"
	ValueIdentifier ValueKind = "identifier"
	ValueObject     ValueKind = "object"
	ValueArray      ValueKind = "array"
)

// Value is the tagged union used for node arguments, parameter values, and
// port payload samples.
//
// An Identifier value is a textual reference to another node's output in the
// form "<node_id>.<port_id>"; it is how the script format encodes data-flow
// edges. All other variants are plain literals.
type Value struct {
	// Kind selects the active variant.
	Kind ValueKind

	// Num holds the value for ValueNumber.
	Num float64

	// Str holds the value for ValueString and ValueIdentifier.
	Str string

	// Bool holds the value for ValueBoolean.
	Bool bool

	// Obj holds the value for ValueObject.
	Obj map[string]Value

	// Arr holds the value for ValueArray.
	Arr []Value
}

// Null returns the null value. Lowering uses it to pad argument slots that
// no literal or connection fills.
func Null() Value { return Value{Kind: ValueNull} }

// Number returns a numeric literal value.
func Number(n float64) Value { return Value{Kind: ValueNumber, Num: n} }

// String returns a string literal value.
func String(s string) Value { return Value{Kind: ValueString, Str: s} }

// Boolean returns a boolean literal value.
func Boolean(b bool) Value { return Value{Kind: ValueBoolean, Bool: b} }

// Identifier returns a reference value of the form "<node_id>.<port_id>".
func Identifier(ref string) Value { return Value{Kind: ValueIdentifier, Str: ref} }

// Object returns an object value. The map is used as-is, not copied.
func Object(m map[string]Value) Value { return Value{Kind: ValueObject, Obj: m} }

// Array returns an array value. The slice is used as-is, not copied.
func Array(vs ...Value) Value { return Value{Kind: ValueArray, Arr: vs} }

// Ref builds an identifier value referencing the given node and port.
func Ref(nodeID, portID string) Value {
	return Identifier(nodeID + "." + portID)
}

// IsIdentifier reports whether v is a reference to another node's output.
func (v Value) IsIdentifier() bool {
	return v.Kind == ValueIdentifier
}

// ParseRef splits an identifier value into its node and port components.
// The second return is false when v is not an identifier or does not follow
// the "<node_id>.<port_id>" convention.
func (v Value) ParseRef() (nodeID, portID string, ok bool) {
	if v.Kind != ValueIdentifier {
		return "", "", false
	}
	i := strings.Index(v.Str, ".")
	if i <= 0 || i == len(v.Str)-1 {
		return "", "", false
	}
	return v.Str[:i], v.Str[i+1:], true
}

// Equal reports deep equality of two values. Object key order is ignored.
func (v Value) Equal(u Value) bool {
	if v.Kind != u.Kind {
		return false
	}
	switch v.Kind {
	case ValueNull:
		return true
	case ValueNumber:
		return v.Num == u.Num
	case ValueString, ValueIdentifier:
		return v.Str == u.Str
	case ValueBoolean:
		return v.Bool == u.Bool
	case ValueObject:
		if len(v.Obj) != len(u.Obj) {
			return false
		}
		for k, vv := range v.Obj {
			uv, ok := u.Obj[k]
			if !ok || !vv.Equal(uv) {
				return false
			}
		}
		return true
	case ValueArray:
		if len(v.Arr) != len(u.Arr) {
			return false
		}
		for i := range v.Arr {
			if !v.Arr[i].Equal(u.Arr[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders the value for display and script formatting.
func (v Value) String() string {
	switch v.Kind {
	case ValueNull:
		return "null"
	case ValueNumber:
		return formatNumber(v.Num)
	case ValueString:
		return fmt.Sprintf("%q", v.Str)
	case ValueBoolean:
		if v.Bool {
			return "true"
		}
		return "false"
	case ValueIdentifier:
		return v.Str
	case ValueObject:
		return "{object}"
	case ValueArray:
		return "[array]"
	}
	return "<invalid>"
}

func formatNumber(n float64) string {
	return fmt.Sprintf("%g", n)
}

// valueJSON is the wire shape of a Value. Parameters edited in the visual
// editor are persisted as JSON, so the encoding must be stable.
type valueJSON struct {
	Type  ValueKind       `json:"type"`
	Value json.RawMessage `json:"value"`
}

// MarshalJSON encodes the value as {"type": <kind>, "value": <payload>}.
func (v Value) MarshalJSON() ([]byte, error) {
	var payload any
	switch v.Kind {
	case ValueNull:
		payload = nil
	case ValueNumber:
		payload = v.Num
	case ValueString, ValueIdentifier:
		payload = v.Str
	case ValueBoolean:
		payload = v.Bool
	case ValueObject:
		payload = v.Obj
	case ValueArray:
		if v.Arr == nil {
			payload = []Value{}
		} else {
			payload = v.Arr
		}
	default:
		return nil, fmt.Errorf("cannot marshal value of kind %q", v.Kind)
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(valueJSON{Type: v.Kind, Value: raw})
}

// UnmarshalJSON decodes the {"type": ..., "value": ...} wire shape.
func (v *Value) UnmarshalJSON(data []byte) error {
	var w valueJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch w.Type {
	case ValueNull:
		*v = Null()
	case ValueNumber:
		var n float64
		if err := json.Unmarshal(w.Value, &n); err != nil {
			return err
		}
		*v = Number(n)
	case ValueString:
		var s string
		if err := json.Unmarshal(w.Value, &s); err != nil {
			return err
		}
		*v = String(s)
	case ValueIdentifier:
		var s string
		if err := json.Unmarshal(w.Value, &s); err != nil {
			return err
		}
		*v = Identifier(s)
	case ValueBoolean:
		var b bool
		if err := json.Unmarshal(w.Value, &b); err != nil {
			return err
		}
		*v = Boolean(b)
	case ValueObject:
		var m map[string]Value
		if err := json.Unmarshal(w.Value, &m); err != nil {
			return err
		}
		*v = Object(m)
	case ValueArray:
		var a []Value
		if err := json.Unmarshal(w.Value, &a); err != nil {
			return err
		}
		*v = Value{Kind: ValueArray, Arr: a}
	default:
		return fmt.Errorf("unknown value kind %q", w.Type)
	}
	return nil
}
