package matching

import (
	"slices"
	"testing"

	"github.com/ldemailly/submatch/graph"
)

// The shared data graph used across the pipeline tests:
//
//	    0:L0
//	   /    \
//	1:L1 - 2:L2
//	 |       |
//	3:L1 - 4:L2
//
// edges 0-1, 0-2, 1-2, 1-3, 2-4, 3-4.
const dataGraphGDL = `
	(n0:L0)
	(n1:L1)
	(n2:L2)
	(n3:L1)
	(n4:L2)
	(n0)-->(n1)
	(n0)-->(n2)
	(n1)-->(n2)
	(n1)-->(n3)
	(n2)-->(n4)
	(n3)-->(n4)`

const lineQueryGDL = `
	(n0:L0),(n1:L1),(n2:L2)
	(n0)-->(n1)
	(n1)-->(n2)`

const diamondQueryGDL = `
	(n0:L1),(n1:L2),(n2:L1),(n3:L2)
	(n0)-->(n1)
	(n0)-->(n2)
	(n1)-->(n3)
	(n2)-->(n3)`

func gdl(t *testing.T, s string) *graph.Graph {
	t.Helper()
	g, err := graph.FromGDL(s)
	if err != nil {
		t.Fatalf("FromGDL: %v", err)
	}
	return g
}

// assertSound fails unless the embedding is injective and maps every
// query edge onto a data edge with matching labels.
func assertSound(t *testing.T, dataGraph, queryGraph *graph.Graph, embedding []int) {
	t.Helper()
	used := make(map[int]bool, len(embedding))
	for u, v := range embedding {
		if used[v] {
			t.Errorf("embedding %v maps two query nodes to data node %d", embedding, v)
		}
		used[v] = true
		if queryGraph.Label(u) != dataGraph.Label(v) {
			t.Errorf("embedding %v: label mismatch at query node %d", embedding, u)
		}
	}
	for u := 0; u < queryGraph.NodeCount(); u++ {
		for _, w := range queryGraph.Neighbors(u) {
			if !dataGraph.Exists(embedding[u], embedding[w]) {
				t.Errorf("embedding %v drops query edge (%d,%d)", embedding, u, w)
			}
		}
	}
}

// assertSubsetRows fails unless every row of inner is contained in the
// matching row of outer.
func assertSubsetRows(t *testing.T, outer, inner *Candidates, queryNodeCount int) {
	t.Helper()
	for u := 0; u < queryNodeCount; u++ {
		for _, v := range inner.Get(u) {
			if !slices.Contains(outer.Get(u), v) {
				t.Errorf("C(%d): node %d in the stricter set but not in the weaker one", u, v)
			}
		}
	}
}
