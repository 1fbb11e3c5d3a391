package graph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromGDL(t *testing.T) {
	g, err := FromGDL(`
		(n0 { label: 0 }),
		(n1 { label: 1 }),
		(n2 { label: 2 }),
		(n3 { label: 1 }),
		(n4 { label: 2 }),
		(n0)-->(n1),
		(n0)-->(n2),
		(n1)-->(n2),
		(n1)-->(n3),
		(n2)-->(n4),
		(n3)-->(n4)`)
	if err != nil {
		t.Fatalf("FromGDL: %v", err)
	}

	if got, want := g.NodeCount(), 5; got != want {
		t.Errorf("NodeCount() = %d, want %d", got, want)
	}
	if got, want := g.EdgeCount(), 6; got != want {
		t.Errorf("EdgeCount() = %d, want %d", got, want)
	}
	if got, want := g.LabelCount(), 3; got != want {
		t.Errorf("LabelCount() = %d, want %d", got, want)
	}

	wantNeighbors := [][]int{{1, 2}, {0, 2, 3}, {0, 1, 4}, {1, 4}, {2, 3}}
	for v, want := range wantNeighbors {
		if diff := cmp.Diff(want, g.Neighbors(v)); diff != "" {
			t.Errorf("Neighbors(%d) mismatch (-want +got):\n%s", v, diff)
		}
	}
	if !g.HasNeighborLabelFrequencies() {
		t.Error("GDL graphs should always carry the NLF index")
	}
}

func TestFromGDLLabelSyntax(t *testing.T) {
	g, err := FromGDL("(a:L3), (b { label: 5 }), (c), (a)-->(b), (b)-->(c)")
	if err != nil {
		t.Fatalf("FromGDL: %v", err)
	}
	wantLabels := []int{3, 5, 0}
	for v, want := range wantLabels {
		if got := g.Label(v); got != want {
			t.Errorf("Label(%d) = %d, want %d", v, got, want)
		}
	}
}

func TestFromGDLInlineDeclaration(t *testing.T) {
	// nodes may be introduced by their first edge appearance
	g, err := FromGDL("(a:L1)-->(b:L2), (b)-->(c:L1)")
	if err != nil {
		t.Fatalf("FromGDL: %v", err)
	}
	if got, want := g.NodeCount(), 3; got != want {
		t.Fatalf("NodeCount() = %d, want %d", got, want)
	}
	if got, want := g.EdgeCount(), 2; got != want {
		t.Errorf("EdgeCount() = %d, want %d", got, want)
	}
	if got, want := g.Label(1), 2; got != want {
		t.Errorf("Label(1) = %d, want %d", got, want)
	}
}

func TestFromGDLErrors(t *testing.T) {
	if _, err := FromGDL(""); err == nil {
		t.Error("expected error for empty input")
	}
	if _, err := FromGDL("(a:L0)-->(a)"); err == nil {
		t.Error("expected error for self loop")
	}
}
