package matching

import (
	"github.com/ldemailly/submatch/graph"
)

// LDFFilter computes label-and-degree candidate sets:
//
//	C(u) = { v ∈ V(G) | L(v) = L(u) ∧ d(v) >= d(u) }
//
// It returns nil as soon as any query node ends up without candidates.
func LDFFilter(dataGraph, queryGraph *graph.Graph) *Candidates {
	candidates := newCandidates(dataGraph, queryGraph)

	for queryNode := 0; queryNode < queryGraph.NodeCount(); queryNode++ {
		label := queryGraph.Label(queryNode)
		degree := queryGraph.Degree(queryNode)

		for _, dataNode := range dataGraph.NodesByLabel(label) {
			if dataGraph.Degree(dataNode) >= degree {
				candidates.Add(queryNode, dataNode)
			}
		}

		// break early
		if candidates.Count(queryNode) == 0 {
			return nil
		}
	}

	return candidates
}
