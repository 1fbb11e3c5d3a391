package matching

import (
	"github.com/ldemailly/submatch/graph"
)

// NLFFilter strengthens LDF with neighbor label multiset dominance: a
// data node v survives for query node u only if, for every label,
// N(v) carries at least as many neighbors of that label as N(u) does.
// Labels absent from v's neighborhood count as zero.
//
// Both graphs must have been loaded with neighbor label frequencies.
func NLFFilter(dataGraph, queryGraph *graph.Graph) *Candidates {
	if !dataGraph.HasNeighborLabelFrequencies() || !queryGraph.HasNeighborLabelFrequencies() {
		panic("matching: NLF filter requires neighbor label frequencies on both graphs")
	}

	candidates := newCandidates(dataGraph, queryGraph)

	for queryNode := 0; queryNode < queryGraph.NodeCount(); queryNode++ {
		label := queryGraph.Label(queryNode)
		degree := queryGraph.Degree(queryNode)
		queryNlf := queryGraph.NeighborLabelFrequency(queryNode)

		for _, dataNode := range dataGraph.NodesByLabel(label) {
			if dataGraph.Degree(dataNode) < degree {
				continue
			}
			dataNlf := dataGraph.NeighborLabelFrequency(dataNode)
			if len(dataNlf) < len(queryNlf) {
				continue
			}
			if dominates(dataNlf, queryNlf) {
				candidates.Add(queryNode, dataNode)
			}
		}

		if candidates.Count(queryNode) == 0 {
			return nil
		}
	}

	return candidates
}

// dominates reports whether every label count in query is covered by
// data. A label missing from data has count 0 and fails the check.
func dominates(dataNlf, queryNlf map[int]int) bool {
	for label, queryCount := range queryNlf {
		if dataNlf[label] < queryCount {
			return false
		}
	}
	return true
}
