package matching

import (
	"slices"

	"github.com/ldemailly/submatch/graph"
)

// Visitor receives each enumerated embedding. embedding[u] is the data
// node assigned to query node u. The slice is reused between calls and
// must be copied if retained; the visitor must not mutate it. Return
// false to stop the enumeration, the embedding just seen is still
// counted.
type Visitor func(embedding []int) bool

// Enumerate counts all embeddings reachable from the given candidate
// sets and matching order.
func Enumerate(dataGraph, queryGraph *graph.Graph, candidates *Candidates, order []int) int {
	return EnumerateWith(dataGraph, queryGraph, candidates, order, nil)
}

// EnumerateWith runs the iterative backtracking DFS and invokes visit
// for every embedding found (visit may be nil). At each depth d the
// valid candidates for order[d] are generated from C(order[d]) by
// checking the edges back to the already placed query neighbors.
func EnumerateWith(dataGraph, queryGraph *graph.Graph, candidates *Candidates, order []int, visit Visitor) int {
	embeddingCount := 0

	// For each depth, the neighbors of order[d] that come earlier in
	// the matching order.
	visitedNeighbors := visitedNeighbors(queryGraph, order)

	startNode := order[0]
	maxDepth := queryGraph.NodeCount()

	// Tracks which data nodes the current partial embedding uses.
	visited := make([]bool, dataGraph.NodeCount())

	// Valid candidates per depth. Depth 0 is fixed to C(order[0]); the
	// deeper rows are refilled on every descent.
	validCandidates := make([][]int, maxDepth)
	validCandidates[0] = slices.Clone(candidates.Get(startNode))
	for d := 1; d < maxDepth; d++ {
		validCandidates[d] = make([]int, candidates.Count(order[d]))
	}

	// idx is the cursor, idxCount the fill level of each depth row.
	idx := make([]int, maxDepth)
	idxCount := make([]int, maxDepth)
	// embedding is indexed by query node id, not by depth.
	embedding := make([]int, maxDepth)

	curDepth := 0
	idx[curDepth] = 0
	idxCount[curDepth] = candidates.Count(startNode)

	for {
		for idx[curDepth] < idxCount[curDepth] {
			u := order[curDepth]
			v := validCandidates[curDepth][idx[curDepth]]

			embedding[u] = v
			visited[v] = true
			idx[curDepth]++

			if curDepth == maxDepth-1 {
				embeddingCount++
				// clear before the callback so an observer sees the
				// completed embedding, not a half-open traversal state
				visited[v] = false
				if visit != nil && !visit(embedding) {
					return embeddingCount
				}
			} else {
				curDepth++
				idx[curDepth] = 0
				generateValidCandidates(dataGraph, curDepth, embedding, idxCount,
					validCandidates, visited, visitedNeighbors, order, candidates)
			}
		}

		if curDepth == 0 {
			break
		}
		// backtrack
		curDepth--
		visited[embedding[order[curDepth]]] = false
	}

	return embeddingCount
}

// visitedNeighbors computes, for each position in the matching order,
// the query neighbors that are placed earlier. Position 0 has none.
func visitedNeighbors(queryGraph *graph.Graph, order []int) [][]int {
	maxDepth := queryGraph.NodeCount()

	placedBefore := make([][]int, maxDepth)
	visited := make([]bool, maxDepth)
	visited[order[0]] = true

	for i := 1; i < maxDepth; i++ {
		curNode := order[i]
		for _, neighbor := range queryGraph.Neighbors(curNode) {
			if visited[neighbor] {
				placedBefore[i] = append(placedBefore[i], neighbor)
			}
		}
		visited[curNode] = true
	}

	return placedBefore
}

// generateValidCandidates fills validCandidates[depth] with the
// candidates of order[depth] that are unused by the partial embedding
// and connected to every already placed query neighbor.
func generateValidCandidates(dataGraph *graph.Graph, depth int, embedding, idxCount []int,
	validCandidates [][]int, visited []bool, visitedNeighbors [][]int, order []int, candidates *Candidates,
) {
	u := order[depth]

	idxCount[depth] = 0

	for _, v := range candidates.Get(u) {
		if visited[v] {
			continue
		}
		valid := true

		// Every edge from u back into the placed part of the query
		// graph needs a corresponding data edge ending in v.
		for _, uNbr := range visitedNeighbors[depth] {
			if !dataGraph.Exists(v, embedding[uNbr]) {
				valid = false
				break
			}
		}

		if valid {
			validCandidates[depth][idxCount[depth]] = v
			idxCount[depth]++
		}
	}
}
