// Package render draws graphs and pebble distributions with Graphviz.
//
// # Overview
//
// [ToDOT] produces undirected Graphviz DOT source. When a distribution is
// given, each vertex shows its pebble count and occupied vertices are
// shaded; when a target is given, it is drawn with a double outline.
// [RenderSVG] lays the DOT source out with the embedded Graphviz engine from
// github.com/goccy/go-graphviz, so no system Graphviz install is needed.
//
//	dot := render.ToDOT(g, render.Options{Distribution: d, Target: 7})
//	svg, err := render.RenderSVG(ctx, dot)
//
// A failing (target, distribution) pair from a sufficiency check can be
// drawn this way to inspect why it fails.
package render
