package graph

import (
	gograph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Gonum returns a read-only view of g implementing gonum's
// graph.Undirected, so gonum algorithms (components, traversals, ...)
// can run directly against the CSR store. Node ids map 1:1.
func (g *Graph) Gonum() gograph.Undirected {
	return gonumGraph{g}
}

type gonumGraph struct {
	g *Graph
}

func (gg gonumGraph) Node(id int64) gograph.Node {
	if id < 0 || id >= int64(gg.g.NodeCount()) {
		return nil
	}
	return simple.Node(id)
}

func (gg gonumGraph) Nodes() gograph.Nodes {
	n := gg.g.NodeCount()
	if n == 0 {
		return gograph.Empty
	}
	ids := make([]int, n)
	for v := range ids {
		ids[v] = v
	}
	return &nodeIterator{ids: ids}
}

func (gg gonumGraph) From(id int64) gograph.Nodes {
	neighbors := gg.g.Neighbors(int(id))
	if len(neighbors) == 0 {
		return gograph.Empty
	}
	return &nodeIterator{ids: neighbors}
}

func (gg gonumGraph) HasEdgeBetween(xid, yid int64) bool {
	return gg.g.Exists(int(xid), int(yid))
}

func (gg gonumGraph) Edge(uid, vid int64) gograph.Edge {
	return gg.EdgeBetween(uid, vid)
}

func (gg gonumGraph) EdgeBetween(xid, yid int64) gograph.Edge {
	if !gg.HasEdgeBetween(xid, yid) {
		return nil
	}
	return simple.Edge{F: simple.Node(xid), T: simple.Node(yid)}
}

// nodeIterator implements graph.Nodes over a slice of node ids.
type nodeIterator struct {
	ids []int
	pos int
}

func (it *nodeIterator) Next() bool {
	if it.pos >= len(it.ids) {
		return false
	}
	it.pos++
	return true
}

func (it *nodeIterator) Node() gograph.Node { return simple.Node(it.ids[it.pos-1]) }

func (it *nodeIterator) Len() int { return len(it.ids) - it.pos }

func (it *nodeIterator) Reset() { it.pos = 0 }
