package graph

// Coreness returns the coreness of every node. The k-core of a graph
// is a maximal subgraph in which each node has at least degree k; a
// node has coreness c if it belongs to a c-core but not to a
// (c+1)-core.
//
// The implementation follows the O(m) bin-sort peeling of
// Batagelj and Zaversnik, "An O(m) Algorithm for Cores Decomposition
// of Networks".
func Coreness(g *Graph) []int {
	nodeCount := g.NodeCount()
	maxDegree := g.MaxDegree()

	coreTable := make([]int, nodeCount)

	// nodes sorted by degree and the position of each node in it
	nodes := make([]int, nodeCount)
	position := make([]int, nodeCount)

	degreeHist := make([]int, maxDegree+1)
	for v := range coreTable {
		coreTable[v] = g.Degree(v)
		degreeHist[coreTable[v]]++
	}

	// histogram to offsets
	offset := 0
	for d, count := range degreeHist {
		degreeHist[d] = offset
		offset += count
	}

	// bin sort nodes by degree (corrupts the histogram)
	for v := 0; v < nodeCount; v++ {
		degree := g.Degree(v)
		position[v] = degreeHist[degree]
		nodes[position[v]] = v
		degreeHist[degree]++
	}

	// shift the histogram back into offsets
	for degree := maxDegree; degree >= 1; degree-- {
		degreeHist[degree] = degreeHist[degree-1]
	}
	degreeHist[0] = 0

	for i := 0; i < nodeCount; i++ {
		u := nodes[i]
		for _, v := range g.Neighbors(u) {
			if coreTable[v] > coreTable[u] {
				// swap v with the first node of its degree bin so the
				// bin boundary can move right by one
				degreeV := coreTable[v]
				positionV := position[v]
				positionW := degreeHist[degreeV]
				w := nodes[positionW]

				if v != w {
					position[v] = positionW
					position[w] = positionV
					nodes[positionV] = w
					nodes[positionW] = v
				}

				degreeHist[degreeV]++
				coreTable[v]--
			}
		}
	}

	return coreTable
}
