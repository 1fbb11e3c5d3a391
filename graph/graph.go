// Package graph provides the immutable CSR graph store used by the
// subgraph matcher: node labels, sorted adjacency lists, a label to
// nodes index and a few summary statistics that size the matcher's
// scratch buffers.
package graph

import (
	"fmt"
	"slices"

	"fortio.org/log"
)

// LoadConfig controls which optional indexes are built alongside the
// CSR structure. Neighbor label frequencies are only needed by the NLF
// filter and cost O(|V| + |E|) extra memory, so they are opt-in.
type LoadConfig struct {
	NeighborLabelFrequency bool
}

// Graph is an undirected, node-labeled graph in CSR form. It is
// immutable after construction and safe to share across concurrent
// searches.
type Graph struct {
	nodeCount int
	edgeCount int // unordered pairs

	labels    []int
	offsets   []int // len nodeCount+1
	neighbors []int // each row sorted ascending, no duplicates

	labelOffsets []int // len maxLabel+2
	labelNodes   []int // nodes grouped by label, ascending ids

	maxDegree         int
	maxLabel          int
	labelCount        int
	maxLabelFrequency int

	nlf []map[int]int // nil unless requested at load time
}

// New builds a graph from a label array and an edge list containing
// each undirected edge exactly once. Nodes absent from the edge list
// keep degree 0. Duplicate or out-of-range edges are construction
// errors.
func New(labels []int, edges [][2]int, cfg LoadConfig) (*Graph, error) {
	n := len(labels)

	degrees := make([]int, n)
	for _, e := range edges {
		s, t := e[0], e[1]
		if s < 0 || s >= n || t < 0 || t >= n {
			return nil, fmt.Errorf("edge (%d,%d) out of range for %d nodes", s, t, n)
		}
		degrees[s]++
		degrees[t]++
	}

	offsets := make([]int, n+1)
	for v, d := range degrees {
		offsets[v+1] = offsets[v] + d
	}

	neighbors := make([]int, offsets[n])
	fill := make([]int, n)
	copy(fill, offsets[:n])
	for _, e := range edges {
		s, t := e[0], e[1]
		neighbors[fill[s]] = t
		fill[s]++
		neighbors[fill[t]] = s
		fill[t]++
	}

	maxDegree := 0
	for v := 0; v < n; v++ {
		row := neighbors[offsets[v]:offsets[v+1]]
		slices.Sort(row)
		for i, w := range row {
			if w == v {
				return nil, fmt.Errorf("self loop on node %d", v)
			}
			if i > 0 && w == row[i-1] {
				return nil, fmt.Errorf("duplicate edge (%d,%d)", v, w)
			}
		}
		if degrees[v] > maxDegree {
			maxDegree = degrees[v]
		}
	}

	g := &Graph{
		nodeCount: n,
		edgeCount: len(edges),
		labels:    labels,
		offsets:   offsets,
		neighbors: neighbors,
		maxDegree: maxDegree,
	}
	g.buildLabelIndex()
	if cfg.NeighborLabelFrequency {
		g.buildNeighborLabelFrequencies()
	}
	log.LogVf("Built graph: %v", g)
	return g, nil
}

func (g *Graph) buildLabelIndex() {
	maxLabel := 0
	for _, l := range g.labels {
		if l > maxLabel {
			maxLabel = l
		}
	}

	frequency := make([]int, maxLabel+1)
	for _, l := range g.labels {
		frequency[l]++
	}

	distinct, maxFrequency := 0, 0
	for _, f := range frequency {
		if f > 0 {
			distinct++
		}
		if f > maxFrequency {
			maxFrequency = f
		}
	}

	labelOffsets := make([]int, maxLabel+2)
	for l, f := range frequency {
		labelOffsets[l+1] = labelOffsets[l] + f
	}

	labelNodes := make([]int, g.nodeCount)
	fill := make([]int, maxLabel+1)
	copy(fill, labelOffsets[:maxLabel+1])
	// ascending node id order within each label bucket
	for v, l := range g.labels {
		labelNodes[fill[l]] = v
		fill[l]++
	}

	g.maxLabel = maxLabel
	g.labelCount = max(maxLabel+1, distinct)
	g.maxLabelFrequency = maxFrequency
	g.labelOffsets = labelOffsets
	g.labelNodes = labelNodes
}

func (g *Graph) buildNeighborLabelFrequencies() {
	nlf := make([]map[int]int, g.nodeCount)
	for v := range nlf {
		frequency := make(map[int]int)
		for _, w := range g.Neighbors(v) {
			frequency[g.labels[w]]++
		}
		nlf[v] = frequency
	}
	g.nlf = nlf
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int { return g.nodeCount }

// EdgeCount returns |E| counted as unordered pairs.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// LabelCount returns the number of label slots, at least maxLabel+1.
func (g *Graph) LabelCount() int { return g.labelCount }

// MaxDegree returns the largest node degree.
func (g *Graph) MaxDegree() int { return g.maxDegree }

// MaxLabel returns the largest label value present.
func (g *Graph) MaxLabel() int { return g.maxLabel }

// MaxLabelFrequency returns the size of the largest label bucket.
func (g *Graph) MaxLabelFrequency() int { return g.maxLabelFrequency }

// Degree returns the degree of node v.
func (g *Graph) Degree(v int) int { return g.offsets[v+1] - g.offsets[v] }

// Label returns the label of node v.
func (g *Graph) Label(v int) int { return g.labels[v] }

// Neighbors returns the adjacency row of v, sorted ascending. The
// returned slice aliases the graph and must not be modified.
func (g *Graph) Neighbors(v int) []int {
	return g.neighbors[g.offsets[v]:g.offsets[v+1]]
}

// Exists reports whether the edge (u,v) is present, via binary search
// over the sorted adjacency row of u.
func (g *Graph) Exists(u, v int) bool {
	_, found := slices.BinarySearch(g.Neighbors(u), v)
	return found
}

// NodesByLabel returns all nodes carrying the given label in ascending
// id order, or an empty slice if no node does.
func (g *Graph) NodesByLabel(label int) []int {
	if label < 0 || label > g.maxLabel {
		return nil
	}
	return g.labelNodes[g.labelOffsets[label]:g.labelOffsets[label+1]]
}

// HasNeighborLabelFrequencies reports whether the NLF index was built.
func (g *Graph) HasNeighborLabelFrequencies() bool { return g.nlf != nil }

// NeighborLabelFrequency returns the label to count mapping over the
// neighbors of v. The NLF index must have been requested at load time.
func (g *Graph) NeighborLabelFrequency(v int) map[int]int {
	if g.nlf == nil {
		panic("graph: neighbor label frequencies have not been loaded")
	}
	return g.nlf[v]
}

func (g *Graph) String() string {
	return fmt.Sprintf("|V|: %d, |E|: %d, |Σ|: %d, Max Degree: %d, Max Label Frequency: %d",
		g.nodeCount, g.edgeCount, g.labelCount, g.maxDegree, g.maxLabelFrequency)
}
