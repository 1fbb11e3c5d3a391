package matching

import (
	"github.com/ldemailly/submatch/graph"
)

// GQLOrder builds a matching order by starting with the query node
// with the minimum number of candidates and then repeatedly selecting
// the unvisited node adjacent to the already selected ones that has
// the minimum number of candidates. Rooting at the most constrained
// node and only extending along query edges means every newly placed
// node carries at least one edge constraint back into the partial
// embedding.
func GQLOrder(dataGraph, queryGraph *graph.Graph, candidates *Candidates) []int {
	nodeCount := queryGraph.NodeCount()

	visited := make([]bool, nodeCount)
	adjacent := make([]bool, nodeCount)
	order := make([]int, 0, nodeCount)

	start := gqlStartNode(queryGraph, candidates)
	order = append(order, start)

	updateFrontier(queryGraph, start, visited, adjacent)

	for i := 1; i < nodeCount; i++ {
		nextNode := notFound
		minValue := dataGraph.NodeCount() + 1

		for currNode := 0; currNode < nodeCount; currNode++ {
			if visited[currNode] || !adjacent[currNode] {
				continue
			}
			numCandidates := candidates.Count(currNode)

			if numCandidates < minValue {
				minValue = numCandidates
				nextNode = currNode
			} else if numCandidates == minValue &&
				queryGraph.Degree(currNode) > queryGraph.Degree(nextNode) {
				nextNode = currNode
			}
		}
		updateFrontier(queryGraph, nextNode, visited, adjacent)
		order = append(order, nextNode)
	}

	return order
}

// gqlStartNode selects the node with the minimum number of candidates,
// ties broken by picking the node with the higher degree.
func gqlStartNode(queryGraph *graph.Graph, candidates *Candidates) int {
	start := 0

	for node := 1; node < queryGraph.NodeCount(); node++ {
		numNodeCandidates := candidates.Count(node)
		numStartCandidates := candidates.Count(start)

		if numNodeCandidates < numStartCandidates ||
			(numNodeCandidates == numStartCandidates &&
				queryGraph.Degree(node) > queryGraph.Degree(start)) {
			start = node
		}
	}

	return start
}

func updateFrontier(queryGraph *graph.Graph, queryNode int, visited, adjacent []bool) {
	visited[queryNode] = true
	for _, neighbor := range queryGraph.Neighbors(queryNode) {
		adjacent[neighbor] = true
	}
}
