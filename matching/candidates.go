// Package matching implements the three stage subgraph matching
// pipeline: candidate filtering (LDF, NLF, GQL), matching order
// generation and backtracking enumeration.
package matching

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/ldemailly/submatch/graph"
)

// invalidNode marks a candidate as pruned in place; Compact drops the
// markers. MaxInt can never collide with a real node id.
const invalidNode = math.MaxInt

// Candidates holds, for each query node, the data nodes it may still
// be mapped to.
type Candidates struct {
	rows [][]int
}

// NewCandidates wraps explicit candidate rows, one per query node.
func NewCandidates(rows [][]int) *Candidates {
	return &Candidates{rows: rows}
}

func newCandidates(dataGraph, queryGraph *graph.Graph) *Candidates {
	rows := make([][]int, queryGraph.NodeCount())
	for u := range rows {
		rows[u] = make([]int, 0, dataGraph.MaxLabelFrequency())
	}
	return &Candidates{rows: rows}
}

// Add appends dataNode to the candidates of queryNode.
func (c *Candidates) Add(queryNode, dataNode int) {
	c.rows[queryNode] = append(c.rows[queryNode], dataNode)
}

// Get returns the candidate row of queryNode. The slice aliases the
// internal state and must not be modified by callers.
func (c *Candidates) Get(queryNode int) []int {
	return c.rows[queryNode]
}

// Count returns the number of candidates of queryNode.
func (c *Candidates) Count(queryNode int) int {
	return len(c.rows[queryNode])
}

// Sort sorts every row ascending, enabling binary search and ordered
// intersection downstream.
func (c *Candidates) Sort() {
	for _, row := range c.rows {
		slices.Sort(row)
	}
}

// Compact removes invalidated entries from every row, preserving the
// order of the remaining ones.
func (c *Candidates) Compact() {
	for u, row := range c.rows {
		write := 0
		for _, v := range row {
			if v != invalidNode {
				row[write] = v
				write++
			}
		}
		c.rows[u] = row[:write]
	}
}

// IsValid reports whether every query node still has at least one
// candidate. An invalid candidate set means zero embeddings.
func (c *Candidates) IsValid() bool {
	for _, row := range c.rows {
		if len(row) == 0 {
			return false
		}
	}
	return true
}

func (c *Candidates) String() string {
	counts := make([]string, len(c.rows))
	for u, row := range c.rows {
		counts[u] = fmt.Sprintf("%d: %d", u, len(row))
	}
	return "{" + strings.Join(counts, ", ") + "}"
}
