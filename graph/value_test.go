package graph

import (
	"encoding/json"
	"testing"
)

// TestValue_Refs verifies identifier construction and parsing.
func TestValue_Refs(t *testing.T) {
	t.Run("ref round trip", func(t *testing.T) {
		v := Ref("node1", "output")
		if !v.IsIdentifier() {
			t.Fatal("Ref should produce an identifier value")
		}
		node, port, ok := v.ParseRef()
		if !ok {
			t.Fatal("ParseRef failed on a well-formed reference")
		}
		if node != "node1" || port != "output" {
			t.Errorf("parsed (%q, %q), want (node1, output)", node, port)
		}
	})

	t.Run("port id may contain dots", func(t *testing.T) {
		node, port, ok := Identifier("n.a.b").ParseRef()
		if !ok || node != "n" || port != "a.b" {
			t.Errorf("parsed (%q, %q, %v), want (n, a.b, true)", node, port, ok)
		}
	})

	t.Run("malformed references", func(t *testing.T) {
		for _, s := range []string{"", "noseparator", ".port", "node.", "."} {
			if _, _, ok := Identifier(s).ParseRef(); ok {
				t.Errorf("ParseRef(%q) should fail", s)
			}
		}
	})

	t.Run("non-identifier values never parse", func(t *testing.T) {
		if _, _, ok := String("node1.output").ParseRef(); ok {
			t.Error("a plain string is not a reference")
		}
	})
}

// TestValue_Equal verifies deep equality across the value kinds.
func TestValue_Equal(t *testing.T) {
	cases := []struct {
		name string
		a, b Value
		want bool
	}{
		{"nulls are equal", Null(), Null(), true},
		{"null vs number", Null(), Number(0), false},
		{"equal numbers", Number(42), Number(42), true},
		{"unequal numbers", Number(42), Number(43), false},
		{"number vs string", Number(1), String("1"), false},
		{"equal identifiers", Identifier("a.b"), Identifier("a.b"), true},
		{
			"equal objects",
			Object(map[string]Value{"k": Number(1)}),
			Object(map[string]Value{"k": Number(1)}),
			true,
		},
		{
			"objects differ by value",
			Object(map[string]Value{"k": Number(1)}),
			Object(map[string]Value{"k": Number(2)}),
			false,
		},
		{"equal arrays", Array(Number(1), String("x")), Array(Number(1), String("x")), true},
		{"arrays differ by length", Array(Number(1)), Array(Number(1), Number(2)), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Errorf("Equal = %v, want %v", got, tc.want)
			}
		})
	}
}

// TestValue_JSON verifies the tagged wire encoding survives a round trip.
func TestValue_JSON(t *testing.T) {
	values := []Value{
		Null(),
		Number(3.5),
		String("hello"),
		Boolean(true),
		Identifier("node1.output"),
		Object(map[string]Value{"limit": Number(10), "name": String("x")}),
		Array(Number(1), Boolean(false), Array(String("nested"))),
	}
	for _, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal %s: %v", v, err)
		}
		var back Value
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if !v.Equal(back) {
			t.Errorf("round trip changed value: %s -> %s", v, back)
		}
	}
}

// TestValue_JSONTag verifies the encoding carries an explicit type tag so
// identifiers and strings stay distinguishable.
func TestValue_JSONTag(t *testing.T) {
	data, err := json.Marshal(Identifier("node1.output"))
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	if _, ok := raw["type"]; !ok {
		t.Errorf("encoded value missing type tag: %s", data)
	}
}
