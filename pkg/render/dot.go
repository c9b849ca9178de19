package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/phipebble/pkg/graph"
	"github.com/matzehuels/phipebble/pkg/pebble"
)

const (
	// NoTarget disables target highlighting.
	NoTarget = -1

	// DefaultLayout is the Graphviz engine used when none is given.
	DefaultLayout = "neato"
)

// Options configures DOT generation.
type Options struct {
	// Name labels the drawing. Empty means no label.
	Name string
	// Distribution, if it has one entry per vertex, is drawn on the vertices.
	Distribution pebble.Distribution
	// Target is highlighted when it names a vertex. Use NoTarget to disable.
	Target int
	// Layout selects the Graphviz engine: "neato" (default) or "circo".
	Layout string
}

// ToDOT converts g to Graphviz DOT source. Each edge is written once, from
// the lower-numbered vertex.
func ToDOT(g *graph.Graph, opts Options) string {
	layout := opts.Layout
	if layout == "" {
		layout = DefaultLayout
	}
	showPebbles := len(opts.Distribution) == g.N()

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	fmt.Fprintf(&buf, "  layout=%s;\n", layout)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14, width=0.5];\n")
	if opts.Name != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", opts.Name)
		buf.WriteString("  labelloc=t;\n")
	}
	buf.WriteString("\n")

	for v := 0; v < g.N(); v++ {
		attrs := fmt.Sprintf("label=%q", vertexLabel(v, opts.Distribution, showPebbles))
		if showPebbles && opts.Distribution[v] > 0 {
			attrs += ", fillcolor=lightgoldenrod"
		}
		if v == opts.Target {
			attrs += ", shape=doublecircle, color=firebrick, penwidth=2"
		}
		fmt.Fprintf(&buf, "  %d [%s];\n", v, attrs)
	}

	buf.WriteString("\n")
	for u := 0; u < g.N(); u++ {
		for _, v := range g.Neighbors(u) {
			switch {
			case u < v:
				fmt.Fprintf(&buf, "  %d -- %d;\n", u, v)
			case u == v:
				fmt.Fprintf(&buf, "  %d -- %d [style=dashed];\n", u, v)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func vertexLabel(v int, d pebble.Distribution, showPebbles bool) string {
	if !showPebbles {
		return fmt.Sprint(v)
	}
	return fmt.Sprintf("%d\n(%d)", v, d[v])
}
