package graph

import (
	"bufio"
	"fmt"
	"io"
)

// Fill colors keyed by label, reused round-robin when a graph has more
// labels than the palette.
var labelColors = []string{"lightblue", "lightgreen", "lightsalmon", "lightgoldenrodyellow", "lightpink"}

// WriteDot writes g in Graphviz DOT format. Nodes are emitted in
// ascending id order and each undirected edge exactly once, so the
// output is deterministic and diffable.
func WriteDot(w io.Writer, g *Graph) error {
	out := bufio.NewWriter(w)

	fmt.Fprintln(out, "graph g {")
	fmt.Fprintln(out, "  node [shape=box, style=\"rounded,filled\", fontname=\"Helvetica\"];")
	fmt.Fprintln(out, "  edge [fontname=\"Helvetica\", fontsize=10];")

	fmt.Fprintln(out, "\n  // Node Definitions")
	for v := 0; v < g.NodeCount(); v++ {
		label := g.Label(v)
		color := labelColors[label%len(labelColors)]
		fmt.Fprintf(out, "  \"%d\" [label=\"%d (L%d)\", fillcolor=\"%s\"];\n", v, v, label, color)
	}

	fmt.Fprintln(out, "\n  // Edges")
	for v := 0; v < g.NodeCount(); v++ {
		for _, w := range g.Neighbors(v) {
			if v < w {
				fmt.Fprintf(out, "  \"%d\" -- \"%d\";\n", v, w)
			}
		}
	}
	fmt.Fprintln(out, "}")

	return out.Flush()
}
