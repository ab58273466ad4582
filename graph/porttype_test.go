package graph

import "testing"

// TestAreCompatible_Symmetry verifies compatibility is symmetric across all
// type pairings.
func TestAreCompatible_Symmetry(t *testing.T) {
	types := []PortType{
		TypeNumber,
		TypeString,
		TypeBoolean,
		TypeObject,
		TypeArray,
		TypeAny,
		Custom("AnalyticsData"),
		Custom("Telemetry"),
	}
	for _, a := range types {
		for _, b := range types {
			if AreCompatible(a, b) != AreCompatible(b, a) {
				t.Errorf("asymmetric compatibility: %s vs %s", a, b)
			}
		}
	}
}

// TestAreCompatible_AnyAbsorbs verifies Any matches every type including
// customs.
func TestAreCompatible_AnyAbsorbs(t *testing.T) {
	types := []PortType{
		TypeNumber,
		TypeString,
		TypeBoolean,
		TypeObject,
		TypeArray,
		TypeAny,
		Custom("AnyType"),
	}
	for _, tt := range types {
		if !AreCompatible(TypeAny, tt) {
			t.Errorf("Any should be compatible with %s", tt)
		}
		if !AreCompatible(tt, TypeAny) {
			t.Errorf("%s should be compatible with Any", tt)
		}
	}
}

// TestAreCompatible_CustomExactMatch verifies custom types match by name
// only.
func TestAreCompatible_CustomExactMatch(t *testing.T) {
	t.Run("same name matches", func(t *testing.T) {
		if !AreCompatible(Custom("X"), Custom("X")) {
			t.Error("identical custom types should be compatible")
		}
	})

	t.Run("different names do not match", func(t *testing.T) {
		if AreCompatible(Custom("X"), Custom("Y")) {
			t.Error("distinct custom types should be incompatible")
		}
	})

	t.Run("custom never matches a builtin kind", func(t *testing.T) {
		if AreCompatible(Custom("Number"), TypeNumber) {
			t.Error("custom type named after a builtin should not match it")
		}
	})
}

// TestAreCompatible_Builtins verifies distinct builtin kinds never match.
func TestAreCompatible_Builtins(t *testing.T) {
	cases := []struct {
		name string
		a, b PortType
		want bool
	}{
		{"number with number", TypeNumber, TypeNumber, true},
		{"string with string", TypeString, TypeString, true},
		{"number with boolean", TypeNumber, TypeBoolean, false},
		{"number with string", TypeNumber, TypeString, false},
		{"object with array", TypeObject, TypeArray, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AreCompatible(tc.a, tc.b); got != tc.want {
				t.Errorf("AreCompatible(%s, %s) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

// TestPortType_String verifies the display form used in error messages.
func TestPortType_String(t *testing.T) {
	if got := TypeNumber.String(); got != "number" {
		t.Errorf("expected %q, got %q", "number", got)
	}
	if got := Custom("AnalyticsData").String(); got != "custom:AnalyticsData" {
		t.Errorf("expected %q, got %q", "custom:AnalyticsData", got)
	}
}
