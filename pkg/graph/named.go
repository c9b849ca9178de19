package graph

import "sort"

var petersenLists = [][]int{
	{1, 4, 5},
	{0, 2, 6},
	{1, 3, 7},
	{2, 4, 8},
	{0, 3, 9},
	{0, 7, 8},
	{1, 8, 9},
	{2, 5, 9},
	{3, 5, 6},
	{4, 6, 7},
}

// Listed as published; vertex 14's edges appear only in its own row.
var diameter2Lists = [][]int{
	{10, 4, 7, 9},
	{11, 4, 5, 8},
	{12, 5, 6, 7},
	{13, 6, 8, 9},
	{0, 1, 10, 11},
	{1, 2, 11, 12},
	{2, 3, 12, 13},
	{0, 2, 10, 12},
	{1, 3, 11, 13},
	{0, 3, 10, 13},
	{11, 12, 13, 0, 4, 7, 9},
	{10, 12, 13, 1, 4, 5, 8},
	{10, 11, 13, 2, 5, 6, 7},
	{10, 11, 12, 3, 6, 8, 9},
	{10, 11, 12, 13},
}

// Petersen returns the Petersen graph (10 vertices, 15 edges, 3-regular).
func Petersen() *Graph {
	g, _ := FromAdjacencyList(petersenLists)
	return g
}

// Diameter2Counterexample returns the 15-vertex diameter-two graph used as a
// phi-pebbling counterexample.
func Diameter2Counterexample() *Graph {
	g, _ := FromAdjacencyList(diameter2Lists)
	return g
}

// Complete returns the complete graph K_n.
func Complete(n int) *Graph {
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	return New(n, edges...)
}

// Path returns the path 0 - 1 - ... - n-1.
func Path(n int) *Graph {
	var edges [][2]int
	for i := 0; i+1 < n; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	return New(n, edges...)
}

// Cycle returns the cycle C_n. For n < 3 it returns Path(n).
func Cycle(n int) *Graph {
	if n < 3 {
		return Path(n)
	}
	g := Path(n)
	g.connect(0, n-1)
	g.index()
	return g
}

var named = map[string]func() *Graph{
	"petersen":  Petersen,
	"diameter2": Diameter2Counterexample,
	"k4":        func() *Graph { return Complete(4) },
	"k5":        func() *Graph { return Complete(5) },
	"path3":     func() *Graph { return Path(3) },
	"path5":     func() *Graph { return Path(5) },
	"cycle5":    func() *Graph { return Cycle(5) },
	"cycle6":    func() *Graph { return Cycle(6) },
}

// Named returns a built-in graph by name and whether the name is known.
func Named(name string) (*Graph, bool) {
	build, ok := named[name]
	if !ok {
		return nil, false
	}
	return build(), true
}

// NamedGraphs returns the names accepted by Named, sorted.
func NamedGraphs() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
