package graph

import "testing"

// testNodes returns a node map for validating connections directly, without
// a surrounding graph.
func testNodes() map[string]*Node {
	node1 := NewNode("node1", "math", "double")
	node1.AddOutputPort(Port{ID: "out1", Name: "result", Type: TypeNumber})

	node2 := NewNode("node2", "math", "negate")
	node2.AddInputPort(Port{ID: "in1", Name: "value", Type: TypeNumber})
	node2.AddOutputPort(Port{ID: "out1", Name: "result", Type: TypeNumber})

	node3 := NewNode("node3", "text", "upper")
	node3.AddInputPort(Port{ID: "in1", Name: "text", Type: TypeString})

	return map[string]*Node{"node1": node1, "node2": node2, "node3": node3}
}

// TestConnection_Validate covers the full error taxonomy, one code per
// failure mode.
func TestConnection_Validate(t *testing.T) {
	nodes := testNodes()

	cases := []struct {
		name string
		conn Connection
		code string
	}{
		{
			"valid number wire",
			Connection{ID: "c", FromNode: "node1", FromPort: "out1", ToNode: "node2", ToPort: "in1"},
			"",
		},
		{
			"missing source node",
			Connection{ID: "c", FromNode: "ghost", FromPort: "out1", ToNode: "node2", ToPort: "in1"},
			CodeNodeNotFound,
		},
		{
			"missing target node",
			Connection{ID: "c", FromNode: "node1", FromPort: "out1", ToNode: "ghost", ToPort: "in1"},
			CodeNodeNotFound,
		},
		{
			"missing source port",
			Connection{ID: "c", FromNode: "node1", FromPort: "phantom", ToNode: "node2", ToPort: "in1"},
			CodePortNotFound,
		},
		{
			"missing target port",
			Connection{ID: "c", FromNode: "node1", FromPort: "out1", ToNode: "node2", ToPort: "phantom"},
			CodePortNotFound,
		},
		{
			"input used as source",
			Connection{ID: "c", FromNode: "node2", FromPort: "in1", ToNode: "node2", ToPort: "in1"},
			CodeWrongDirection,
		},
		{
			"output used as target",
			Connection{ID: "c", FromNode: "node1", FromPort: "out1", ToNode: "node2", ToPort: "out1"},
			CodeWrongDirection,
		},
		{
			"number into string input",
			Connection{ID: "c", FromNode: "node1", FromPort: "out1", ToNode: "node3", ToPort: "in1"},
			CodeIncompatibleTypes,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.conn.Validate(nodes)
			if tc.code == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				if !tc.conn.IsValid(nodes) {
					t.Error("IsValid disagrees with Validate")
				}
				return
			}
			if err == nil {
				t.Fatalf("expected %s, got nil", tc.code)
			}
			if err.Code != tc.code {
				t.Errorf("code = %s, want %s (%s)", err.Code, tc.code, err.Message)
			}
			if tc.conn.IsValid(nodes) {
				t.Error("IsValid disagrees with Validate")
			}
		})
	}
}

// TestConnection_InputToInput pins down the direction trap: a port id that
// exists on both sides must still be rejected when both ends are inputs.
func TestConnection_InputToInput(t *testing.T) {
	a := NewNode("a", "app", "fn")
	a.AddInputPort(Port{ID: "in1", Name: "in", Type: TypeAny})
	b := NewNode("b", "app", "fn")
	b.AddInputPort(Port{ID: "in1", Name: "in", Type: TypeAny})
	nodes := map[string]*Node{"a": a, "b": b}

	conn := Connection{ID: "c", FromNode: "a", FromPort: "in1", ToNode: "b", ToPort: "in1"}
	err := conn.Validate(nodes)
	if err == nil {
		t.Fatal("input to input connection must not validate")
	}
	if err.Code != CodeWrongDirection {
		t.Errorf("code = %s, want %s", err.Code, CodeWrongDirection)
	}
}

// TestNewConnection verifies id generation and the default policy.
func TestNewConnection(t *testing.T) {
	c := NewConnection("", "a", "out", "b", "in")
	if c.ID == "" {
		t.Error("empty id should be replaced with a generated one")
	}
	if c.Policy != DefaultPolicy() {
		t.Errorf("policy = %+v, want default", c.Policy)
	}

	p := DefaultPolicy()
	p.Backpressure = DropOldest
	if got := c.WithPolicy(p).Policy.Backpressure; got != DropOldest {
		t.Errorf("backpressure = %s, want %s", got, DropOldest)
	}
}
