package block

import (
	"context"
	"sync"
	"testing"

	"github.com/flowlang/flowgraph-go/graph"
)

func noopBlock(namespace, name string) Block {
	return NewFunc(Spec{Namespace: namespace, Name: name},
		func(ctx context.Context, in Inputs, ec *ExecContext) (Outputs, error) {
			return NewOutputs(), nil
		})
}

// TestRegistry_Register verifies registration and the duplicate guard.
func TestRegistry_Register(t *testing.T) {
	t.Run("register and look up", func(t *testing.T) {
		r := NewRegistry()
		if err := r.Register(noopBlock("app", "fn")); err != nil {
			t.Fatal(err)
		}
		if _, ok := r.Lookup("app.fn"); !ok {
			t.Error("registered block not found")
		}
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		r := NewRegistry()
		if err := r.Register(noopBlock("app", "fn")); err != nil {
			t.Fatal(err)
		}
		if err := r.Register(noopBlock("app", "fn")); err == nil {
			t.Error("duplicate registration should fail")
		}
		if r.Len() != 1 {
			t.Errorf("len = %d, want 1", r.Len())
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		r := NewRegistry()
		if _, ok := r.Lookup("ghost.fn"); ok {
			t.Error("lookup of unknown id should fail")
		}
	})
}

// TestRegistry_Specs verifies the listing is sorted by id.
func TestRegistry_Specs(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := r.Register(noopBlock("app", name)); err != nil {
			t.Fatal(err)
		}
	}
	specs := r.Specs()
	want := []string{"app.alpha", "app.mid", "app.zeta"}
	for i, s := range specs {
		if s.ID() != want[i] {
			t.Errorf("specs[%d] = %s, want %s", i, s.ID(), want[i])
		}
	}
}

// TestRegistry_Concurrent verifies concurrent register and lookup do not
// race.
func TestRegistry_Concurrent(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		name := string(rune('a' + i))
		go func() {
			defer wg.Done()
			_ = r.Register(noopBlock("app", name))
		}()
		go func() {
			defer wg.Done()
			_, _ = r.Lookup("app." + name)
		}()
	}
	wg.Wait()
	if r.Len() != 10 {
		t.Errorf("len = %d, want 10", r.Len())
	}
}

// TestNodeForSpec verifies the generated node mirrors the spec's ports and
// wires cleanly into a graph.
func TestNodeForSpec(t *testing.T) {
	r := Builtins()
	addSpec, _ := r.Lookup("math.add")
	upperSpec, _ := r.Lookup("text.uppercase")

	n := NodeForSpec("adder", addSpec.Spec(), graph.Number(1), graph.Number(2))
	if len(n.InputPorts) != 2 || len(n.OutputPorts) != 1 {
		t.Fatalf("ports = %d in, %d out; want 2 and 1", len(n.InputPorts), len(n.OutputPorts))
	}
	if p, ok := n.InputPort("a"); !ok || p.Type != graph.TypeNumber {
		t.Error("input port a missing or mistyped")
	}

	g := graph.New("", "wired")
	g.AddNode(n)
	g.AddNode(NodeForSpec("upper", upperSpec.Spec()))

	// Number output into a String input must be rejected by the port model.
	err := g.AddConnection(graph.NewConnection("", "adder", "output", "upper", "input"))
	if err == nil {
		t.Error("number into string input should fail validation")
	}
}
