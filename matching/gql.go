package matching

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/ldemailly/submatch/graph"
)

// notFound marks an unmatched side in the bipartite matching buffers.
const notFound = -1

// Number of refinement sweeps over all (query node, candidate) pairs.
// The construction converges quickly; a third pass rarely prunes.
const gqlRefinementPasses = 2

// GQLFilter produces the tightest candidate sets of the three filters.
// Starting from LDF, a candidate v for query node u survives only if
// the neighbors of u can be injectively matched into the neighbors of
// v, where a neighbor pair (u', v') is compatible iff v' is still a
// candidate of u'. The feasibility test is a maximum bipartite
// matching (Hopcroft-Karp) that must saturate N(u).
//
// Returns nil if any query node ends up without candidates.
func GQLFilter(dataGraph, queryGraph *graph.Graph) *Candidates {
	// Local refinement
	candidates := LDFFilter(dataGraph, queryGraph)
	if candidates == nil {
		return nil
	}

	queryNodeCount := queryGraph.NodeCount()
	dataNodeCount := dataGraph.NodeCount()

	// One dense bitmap of valid candidate data nodes per query node.
	valid := make([]*bitset.BitSet, queryNodeCount)
	for queryNode := 0; queryNode < queryNodeCount; queryNode++ {
		nodeCandidates := bitset.New(uint(dataNodeCount))
		for _, dataNode := range candidates.Get(queryNode) {
			nodeCandidates.Set(uint(dataNode))
		}
		valid[queryNode] = nodeCandidates
	}

	queryMaxDegree := queryGraph.MaxDegree()
	dataMaxDegree := dataGraph.MaxDegree()

	// CSR scratch for the bipartite graph between N(u) and N(v), plus
	// the Hopcroft-Karp buffers. Allocated once, reused per pair.
	offsets := make([]int, queryMaxDegree+1)
	targets := make([]int, queryMaxDegree*dataMaxDegree)
	leftMapping := make([]int, queryMaxDegree)
	rightMapping := make([]int, dataMaxDegree)
	queue := make([]int, dataMaxDegree+1)
	visited := make([]int, dataMaxDegree+1)
	predecessors := make([]int, dataMaxDegree+1)

	// Global refinement
	for pass := 0; pass < gqlRefinementPasses; pass++ {
		for queryNode := 0; queryNode < queryNodeCount; queryNode++ {
			row := candidates.rows[queryNode]
			for i, dataNode := range row {
				if dataNode == invalidNode {
					continue
				}

				queryNodeNeighbors := queryGraph.Neighbors(queryNode)
				dataNodeNeighbors := dataGraph.Neighbors(dataNode)

				leftPartitionSize := len(queryNodeNeighbors)

				computeBipartiteGraph(queryNodeNeighbors, dataNodeNeighbors, valid, offsets, targets)

				for j := range leftMapping {
					leftMapping[j] = notFound
				}
				for j := range rightMapping {
					rightMapping[j] = notFound
				}

				// A cheap match to reduce overhead for Hopcroft-Karp.
				matchCheap(offsets, targets, leftMapping, rightMapping, leftPartitionSize)

				// Run Hopcroft-Karp to find the maximum matching.
				matchBFS(offsets, targets, leftMapping, rightMapping, visited, queue, predecessors, leftPartitionSize)

				// Check that each neighbor of the query node has a match.
				if !isSemiPerfectMatching(leftMapping, leftPartitionSize) {
					valid[queryNode].Clear(uint(dataNode))
					row[i] = invalidNode
				}
			}
		}
	}

	candidates.Compact()

	if !candidates.IsValid() {
		return nil
	}
	return candidates
}

// computeBipartiteGraph rebuilds the CSR of the bipartite graph
// between the neighbors of a query node (left) and the neighbors of a
// data node (right). Right nodes are referenced by their position in
// the data neighbor slice.
func computeBipartiteGraph(queryNodeNeighbors, dataNodeNeighbors []int, valid []*bitset.BitSet, offsets, targets []int) {
	relCount := 0

	for i, queryNodeNeighbor := range queryNodeNeighbors {
		offsets[i] = relCount

		for j, dataNodeNeighbor := range dataNodeNeighbors {
			if valid[queryNodeNeighbor].Test(uint(dataNodeNeighbor)) {
				targets[relCount] = j
				relCount++
			}
		}
	}

	offsets[len(queryNodeNeighbors)] = relCount
}

// matchCheap greedily matches each left node to its first unmatched
// right neighbor.
func matchCheap(offsets, targets, leftMapping, rightMapping []int, leftSize int) {
	for left := 0; left < leftSize; left++ {
		for offset := offsets[left]; offset < offsets[left+1]; offset++ {
			right := targets[offset]
			if rightMapping[right] == notFound {
				leftMapping[left] = right
				rightMapping[right] = left
				break
			}
		}
	}
}

// matchBFS grows the matching to a maximum one by repeatedly finding
// augmenting paths (Hopcroft-Karp). Right nodes visited during a BFS
// are marked with the current augmentation id instead of clearing the
// visited buffer between augmentations. The right nodes reached by a
// BFS that finds no augmenting path are marked notFound, and later
// BFSs of the same call skip them.
func matchBFS(offsets, targets, leftMapping, rightMapping, visited, queue, predecessors []int, leftSize int) {
	for i := range visited {
		visited[i] = 0
	}

	augmentPathID := 1

	for start := 0; start < leftSize; start++ {
		if leftMapping[start] != notFound || offsets[start] == offsets[start+1] {
			continue
		}
		queue[0] = start
		queuePtr, queueSize := 0, 1

		for queuePtr < queueSize {
			next := queue[queuePtr]
			queuePtr++

			for offset := offsets[next]; offset < offsets[next+1]; offset++ {
				right := targets[offset]
				temp := visited[right]

				if temp != augmentPathID && temp != notFound {
					predecessors[right] = next
					visited[right] = augmentPathID

					left := rightMapping[right]

					if left == notFound {
						// Found an augmenting path. Traverse back and
						// flip matched and non-matched edges.
						for right != notFound {
							left = predecessors[right]
							temp = leftMapping[left]
							leftMapping[left] = right
							rightMapping[right] = left
							right = temp
						}
						augmentPathID++
						queueSize = 0
						break
					}
					queue[queueSize] = left
					queueSize++
				}
			}
		}

		if leftMapping[start] == notFound {
			for j := 1; j < queueSize; j++ {
				visited[leftMapping[queue[j]]] = notFound
			}
		}
	}
}

// isSemiPerfectMatching reports whether every left node is matched.
func isSemiPerfectMatching(mapping []int, size int) bool {
	for i := 0; i < size; i++ {
		if mapping[i] == notFound {
			return false
		}
	}
	return true
}
