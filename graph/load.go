package graph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"fortio.org/log"
)

// Load reads a graph from the whitespace-separated text format:
//
//	t <node_count> <edge_count>
//	v <id> <label> <degree>   (ids ascending, one line per node)
//	e <source> <target>       (one line per undirected edge)
//
// Node lines must arrive in ascending id order; the loader validates
// this instead of re-sorting.
func Load(path string, cfg LoadConfig) (*Graph, error) {
	log.LogVf("Reading graph from %s", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening graph file: %w", err)
	}
	defer f.Close()
	g, err := Parse(f, cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return g, nil
}

// Parse reads the text graph format from r. See Load.
func Parse(r io.Reader, cfg LoadConfig) (*Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	nodeCount, edgeCount := -1, -1
	var labels []int
	var edges [][2]int

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "t":
			if nodeCount >= 0 {
				return nil, fmt.Errorf("line %d: duplicate header", lineNum)
			}
			n, m, err := parseHeader(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			nodeCount, edgeCount = n, m
			labels = make([]int, 0, n)
			edges = make([][2]int, 0, m)
		case "v":
			if nodeCount < 0 {
				return nil, fmt.Errorf("line %d: node record before header", lineNum)
			}
			id, label, err := parseNode(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			if id != len(labels) {
				return nil, fmt.Errorf("line %d: node id %d out of order, expected %d", lineNum, id, len(labels))
			}
			labels = append(labels, label)
		case "e":
			if nodeCount < 0 {
				return nil, fmt.Errorf("line %d: edge record before header", lineNum)
			}
			s, t, err := parseEdge(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			edges = append(edges, [2]int{s, t})
		default:
			return nil, fmt.Errorf("line %d: unknown record type %q", lineNum, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	if nodeCount < 0 {
		return nil, fmt.Errorf("missing header record")
	}
	if len(labels) != nodeCount {
		return nil, fmt.Errorf("header declares %d nodes, found %d", nodeCount, len(labels))
	}
	if len(edges) != edgeCount {
		return nil, fmt.Errorf("header declares %d edges, found %d", edgeCount, len(edges))
	}

	return New(labels, edges, cfg)
}

func parseHeader(fields []string) (nodeCount, edgeCount int, err error) {
	if len(fields) != 3 {
		return 0, 0, fmt.Errorf("header needs 2 fields, got %d", len(fields)-1)
	}
	if nodeCount, err = parseCount("node count", fields[1]); err != nil {
		return 0, 0, err
	}
	if edgeCount, err = parseCount("edge count", fields[2]); err != nil {
		return 0, 0, err
	}
	return nodeCount, edgeCount, nil
}

func parseNode(fields []string) (id, label int, err error) {
	if len(fields) != 4 {
		return 0, 0, fmt.Errorf("node record needs 3 fields, got %d", len(fields)-1)
	}
	if id, err = parseCount("node id", fields[1]); err != nil {
		return 0, 0, err
	}
	if label, err = parseCount("label", fields[2]); err != nil {
		return 0, 0, err
	}
	// the degree field is declarative only, but must still be numeric
	if _, err = parseCount("degree", fields[3]); err != nil {
		return 0, 0, err
	}
	return id, label, nil
}

func parseEdge(fields []string) (source, target int, err error) {
	if len(fields) != 3 {
		return 0, 0, fmt.Errorf("edge record needs 2 fields, got %d", len(fields)-1)
	}
	if source, err = parseCount("source", fields[1]); err != nil {
		return 0, 0, err
	}
	if target, err = parseCount("target", fields[2]); err != nil {
		return 0, 0, err
	}
	return source, target, nil
}

func parseCount(what, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad %s %q: %w", what, s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("bad %s %d: must not be negative", what, n)
	}
	return n, nil
}
