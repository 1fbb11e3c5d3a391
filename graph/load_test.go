package graph

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	g, err := Parse(strings.NewReader(testGraphText), LoadConfig{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got, want := g.NodeCount(), 5; got != want {
		t.Errorf("NodeCount() = %d, want %d", got, want)
	}
	if got, want := g.EdgeCount(), 6; got != want {
		t.Errorf("EdgeCount() = %d, want %d", got, want)
	}
	wantNeighbors := [][]int{{1, 2}, {0, 2, 3}, {0, 1, 4}, {1, 4}, {2, 3}}
	for v, want := range wantNeighbors {
		if diff := cmp.Diff(want, g.Neighbors(v)); diff != "" {
			t.Errorf("Neighbors(%d) mismatch (-want +got):\n%s", v, diff)
		}
	}
	if g.HasNeighborLabelFrequencies() {
		t.Error("NLF index built without being requested")
	}
}

func TestParseMatchesGDL(t *testing.T) {
	fromText, err := Parse(strings.NewReader(testGraphText), LoadConfig{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	fromGdl := MustFromGDL(`
		(n0:L0),(n1:L1),(n2:L2),(n3:L1),(n4:L2)
		(n0)-->(n1)
		(n0)-->(n2)
		(n1)-->(n2)
		(n1)-->(n3)
		(n2)-->(n4)
		(n3)-->(n4)`)

	if fromText.NodeCount() != fromGdl.NodeCount() || fromText.EdgeCount() != fromGdl.EdgeCount() {
		t.Fatalf("size mismatch: text %v vs gdl %v", fromText, fromGdl)
	}
	for v := 0; v < fromText.NodeCount(); v++ {
		if fromText.Label(v) != fromGdl.Label(v) {
			t.Errorf("Label(%d): text %d vs gdl %d", v, fromText.Label(v), fromGdl.Label(v))
		}
		if diff := cmp.Diff(fromText.Neighbors(v), fromGdl.Neighbors(v)); diff != "" {
			t.Errorf("Neighbors(%d) mismatch (-text +gdl):\n%s", v, diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"missing header", "v 0 0 0\n"},
		{"short header", "t 5\n"},
		{"non numeric header", "t five 6\n"},
		{"duplicate header", "t 1 0\nt 1 0\nv 0 0 0\n"},
		{"unknown record", "t 1 0\nx 0 0 0\n"},
		{"short node record", "t 1 0\nv 0 0\n"},
		{"non numeric label", "t 1 0\nv 0 zero 0\n"},
		{"node out of order", "t 2 0\nv 1 0 0\nv 0 0 0\n"},
		{"node count mismatch", "t 2 0\nv 0 0 0\n"},
		{"short edge record", "t 2 1\nv 0 0 1\nv 1 0 1\ne 0\n"},
		{"edge count mismatch", "t 2 2\nv 0 0 1\nv 1 0 1\ne 0 1\n"},
		{"edge out of range", "t 2 1\nv 0 0 1\nv 1 0 1\ne 0 7\n"},
		{"negative label", "t 1 0\nv 0 -1 0\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tc.input), LoadConfig{}); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tc.input)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	g, err := Load("testdata/g0.graph", LoadConfig{NeighborLabelFrequency: true})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := g.NodeCount(), 5; got != want {
		t.Errorf("NodeCount() = %d, want %d", got, want)
	}
	if !g.HasNeighborLabelFrequencies() {
		t.Error("NLF index missing despite being requested")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("testdata/does-not-exist.graph", LoadConfig{}); err == nil {
		t.Error("expected error for missing file")
	}
}
