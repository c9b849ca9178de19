package graph

import (
	"slices"

	"github.com/matzehuels/phipebble/pkg/errors"
)

// Graph is an undirected graph on vertices 0..N()-1.
//
// The adjacency relation is always symmetric. Self-loops are not rejected: a
// vertex listed as its own neighbor is adjacent to itself, and Neighbors
// reports it.
type Graph struct {
	adj  [][]bool
	nbrs [][]int // ascending, derived from adj
}

// Discarded records a neighbor reference that could not be placed in the
// graph because it names a vertex outside [0, n).
type Discarded struct {
	Vertex   int // Vertex whose neighbor list held the reference
	Neighbor int // The out-of-range neighbor index
}

// New creates a graph with n vertices and the given undirected edges.
// Edges with an endpoint outside [0, n) are ignored.
func New(n int, edges ...[2]int) *Graph {
	g := empty(n)
	for _, e := range edges {
		if inRange(e[0], n) && inRange(e[1], n) {
			g.connect(e[0], e[1])
		}
	}
	g.index()
	return g
}

// FromAdjacencyList builds a graph from per-vertex neighbor lists.
//
// The vertex count is len(lists). Listing j under i connects i and j in both
// directions. References outside [0, n) are skipped and returned, in input
// order, as Discarded entries; they never produce an error.
func FromAdjacencyList(lists [][]int) (*Graph, []Discarded) {
	n := len(lists)
	g := empty(n)

	var dropped []Discarded
	for i, neighbors := range lists {
		for _, j := range neighbors {
			if !inRange(j, n) {
				dropped = append(dropped, Discarded{Vertex: i, Neighbor: j})
				continue
			}
			g.connect(i, j)
		}
	}
	g.index()
	return g, dropped
}

// FromMatrix builds a graph from a square 0/1 adjacency matrix.
//
// The vertex count is len(m). Every row must have exactly len(m) entries;
// otherwise FromMatrix returns a CONFIGURATION_ERROR. Entries must be 0 or 1.
// The relation is symmetrized, so m[i][j] = 1 connects i and j even when
// m[j][i] = 0.
func FromMatrix(m [][]int) (*Graph, error) {
	if err := ValidateMatrix(m); err != nil {
		return nil, err
	}

	n := len(m)
	g := empty(n)
	for i, row := range m {
		for j, v := range row {
			if v == 1 {
				g.connect(i, j)
			}
		}
	}
	g.index()
	return g, nil
}

// ValidateMatrix checks that m is a non-empty square matrix of 0/1 entries.
// Dimension mismatches are configuration errors; other bad entries are
// reported as INVALID_GRAPH.
func ValidateMatrix(m [][]int) error {
	n := len(m)
	if n == 0 {
		return errors.New(errors.ErrCodeInvalidGraph, "adjacency matrix is empty")
	}
	for i, row := range m {
		if len(row) != n {
			return errors.New(errors.ErrCodeConfiguration,
				"adjacency matrix row %d has %d entries, want %d", i, len(row), n)
		}
	}
	for i, row := range m {
		for j, v := range row {
			if v != 0 && v != 1 {
				return errors.New(errors.ErrCodeInvalidGraph,
					"adjacency matrix entry (%d,%d) is %d, want 0 or 1", i, j, v)
			}
		}
	}
	return nil
}

// N returns the number of vertices.
func (g *Graph) N() int { return len(g.adj) }

// Adjacent reports whether i and j are joined by an edge.
// Out-of-range vertices are never adjacent to anything.
func (g *Graph) Adjacent(i, j int) bool {
	n := g.N()
	if !inRange(i, n) || !inRange(j, n) {
		return false
	}
	return g.adj[i][j]
}

// Neighbors returns the neighbors of v in ascending order.
// The returned slice is shared with the graph and must not be modified.
func (g *Graph) Neighbors(v int) []int {
	if !inRange(v, g.N()) {
		return nil
	}
	return g.nbrs[v]
}

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v int) int { return len(g.Neighbors(v)) }

// EdgeCount returns the number of undirected edges. A self-loop counts once.
func (g *Graph) EdgeCount() int {
	count := 0
	for i, row := range g.nbrs {
		for _, j := range row {
			if j >= i {
				count++
			}
		}
	}
	return count
}

// Matrix returns a fresh 0/1 adjacency matrix.
func (g *Graph) Matrix() [][]int {
	n := g.N()
	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
		for _, j := range g.nbrs[i] {
			m[i][j] = 1
		}
	}
	return m
}

// AdjacencyList returns a fresh copy of the neighbor lists.
func (g *Graph) AdjacencyList() [][]int {
	lists := make([][]int, g.N())
	for i, row := range g.nbrs {
		lists[i] = slices.Clone(row)
	}
	return lists
}

// Equal reports whether g and other have the same vertex count and edges.
func (g *Graph) Equal(other *Graph) bool {
	if g.N() != other.N() {
		return false
	}
	for i := range g.nbrs {
		if !slices.Equal(g.nbrs[i], other.nbrs[i]) {
			return false
		}
	}
	return true
}

func empty(n int) *Graph {
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	return &Graph{adj: adj}
}

func (g *Graph) connect(i, j int) {
	g.adj[i][j] = true
	g.adj[j][i] = true
}

func (g *Graph) index() {
	g.nbrs = make([][]int, len(g.adj))
	for i, row := range g.adj {
		for j, ok := range row {
			if ok {
				g.nbrs[i] = append(g.nbrs[i], j)
			}
		}
	}
}

func inRange(v, n int) bool { return v >= 0 && v < n }
