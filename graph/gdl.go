package graph

import (
	"fmt"
	"regexp"
	"strconv"
)

// FromGDL builds a graph from a small GDL-like notation, which is a
// lot more convenient than the t/v/e format when writing graphs by
// hand in tests:
//
//	(a:L0), (b:L1), (c { label: 2 })
//	(a)-->(b)
//	(b)-->(c)
//
// Node ids are assigned in order of first appearance. A node without a
// label gets label 0. Edges are undirected despite the arrow.
func FromGDL(gdl string) (*Graph, error) {
	var (
		labels []int
		edges  [][2]int
		ids    = map[string]int{}
	)

	declare := func(name, label string) (int, error) {
		id, seen := ids[name]
		if !seen {
			id = len(labels)
			ids[name] = id
			labels = append(labels, 0)
		}
		if label != "" {
			l, err := strconv.Atoi(label)
			if err != nil {
				return 0, fmt.Errorf("node %s: bad label %q: %w", name, label, err)
			}
			labels[id] = l
		}
		return id, nil
	}

	pos := 0
	for pos < len(gdl) {
		loc := gdlToken.FindStringSubmatchIndex(gdl[pos:])
		if loc == nil {
			break
		}
		m := match{gdl[pos:], loc}
		source, err := declare(m.group(1), firstOf(m.group(2), m.group(3)))
		if err != nil {
			return nil, err
		}
		if m.group(4) != "" {
			target, err := declare(m.group(4), firstOf(m.group(5), m.group(6)))
			if err != nil {
				return nil, err
			}
			edges = append(edges, [2]int{source, target})
		}
		pos += loc[1]
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("no nodes found in GDL input")
	}

	return New(labels, edges, LoadConfig{NeighborLabelFrequency: true})
}

// MustFromGDL is FromGDL for fixtures that are known to be well formed.
func MustFromGDL(gdl string) *Graph {
	g, err := FromGDL(gdl)
	if err != nil {
		panic(err)
	}
	return g
}

// One node, optionally followed by an arrow and a second node. A node
// is (name), (name:L<k>) or (name { label: <k> }).
var gdlToken = regexp.MustCompile(
	`\(\s*(\w+)\s*(?::\s*L(\d+)\s*|\{\s*label\s*:\s*(\d+)\s*\}\s*)?\)` +
		`(?:\s*-->\s*\(\s*(\w+)\s*(?::\s*L(\d+)\s*|\{\s*label\s*:\s*(\d+)\s*\}\s*)?\))?`)

type match struct {
	s   string
	loc []int
}

func (m match) group(i int) string {
	if m.loc[2*i] < 0 {
		return ""
	}
	return m.s[m.loc[2*i]:m.loc[2*i+1]]
}

func firstOf(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
