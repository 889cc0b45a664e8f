package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/motif/core"
)

// TestAddVertex_DenseIds verifies insertion order assigns 0..N-1.
func TestAddVertex_DenseIds(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 5; i++ {
		if id := g.AddVertex(core.Label(i % 2)); id != i {
			t.Fatalf("AddVertex #%d returned id %d", i, id)
		}
	}
	if got := g.Order(); got != 5 {
		t.Errorf("Order = %d; want 5", got)
	}
}

// TestAddEdge_Errors verifies endpoint validation and the loop policy.
func TestAddEdge_Errors(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex(0)
	b := g.AddVertex(0)

	if err := g.AddEdge(a, 99); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("dangling target: want ErrVertexNotFound, got %v", err)
	}
	if err := g.AddEdge(-1, b); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("negative source: want ErrVertexNotFound, got %v", err)
	}
	if err := g.AddEdge(a, a); !errors.Is(err, core.ErrLoopNotAllowed) {
		t.Errorf("loop without WithLoops: want ErrLoopNotAllowed, got %v", err)
	}

	gl := core.NewGraph(core.WithLoops())
	v := gl.AddVertex(0)
	if err := gl.AddEdge(v, v); err != nil {
		t.Errorf("loop with WithLoops: unexpected error %v", err)
	}
}

// TestAddEdge_Idempotent ensures duplicate arcs do not inflate Size.
func TestAddEdge_Idempotent(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex(1)
	b := g.AddVertex(2)
	for i := 0; i < 3; i++ {
		if err := g.AddEdge(a, b); err != nil {
			t.Fatal(err)
		}
	}
	if got := g.Size(); got != 1 {
		t.Errorf("Size = %d; want 1", got)
	}
	if !g.HasEdge(a, b) || g.HasEdge(b, a) {
		t.Errorf("HasEdge(a,b)=%v HasEdge(b,a)=%v; want true,false", g.HasEdge(a, b), g.HasEdge(b, a))
	}
}

// TestAccessors covers Label, Successors, OutDegree and their error paths.
func TestAccessors(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex(7)
	b := g.AddVertex(7)
	c := g.AddVertex(3)
	_ = g.AddEdge(a, b)
	_ = g.AddEdge(a, c)

	if l, err := g.Label(c); err != nil || l != 3 {
		t.Errorf("Label(c) = %d, %v; want 3, nil", l, err)
	}
	if _, err := g.Label(42); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("Label(42): want ErrVertexNotFound, got %v", err)
	}

	succ, err := g.Successors(a)
	if err != nil {
		t.Fatal(err)
	}
	if got := succ.ToArray(); len(got) != 2 || got[0] != uint32(b) || got[1] != uint32(c) {
		t.Errorf("Successors(a) = %v; want [%d %d]", got, b, c)
	}
	if _, err = g.Successors(-3); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("Successors(-3): want ErrVertexNotFound, got %v", err)
	}
	if got := g.OutDegree(a); got != 2 {
		t.Errorf("OutDegree(a) = %d; want 2", got)
	}
	if got := g.OutDegree(99); got != 0 {
		t.Errorf("OutDegree(99) = %d; want 0", got)
	}
}

// TestVerticesWithLabel verifies the label index, including the empty class.
func TestVerticesWithLabel(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex(5)
	g.AddVertex(9)
	g.AddVertex(5)

	with5 := g.VerticesWithLabel(5).ToArray()
	if len(with5) != 2 || with5[0] != 0 || with5[1] != 2 {
		t.Errorf("VerticesWithLabel(5) = %v; want [0 2]", with5)
	}
	if !g.VerticesWithLabel(123).IsEmpty() {
		t.Errorf("VerticesWithLabel(123) not empty")
	}
}
