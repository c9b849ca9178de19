package graph

import (
	"strconv"

	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"
)

// DiameterAtMostTwo reports whether every pair of distinct vertices is either
// adjacent or has a common neighbor.
//
// When the check fails, witness holds the first pair (i, j), i < j, in
// lexicographic order that is at distance three or more (or disconnected).
// Each vertex runs one breadth-first search cut off at depth two.
func DiameterAtMostTwo(g *Graph) (ok bool, witness [2]int) {
	lg := toCore(g)
	for i := 0; i < g.N(); i++ {
		res := traverse(lg, i, bfs.WithMaxDepth(2))
		for j := i + 1; j < g.N(); j++ {
			if _, near := res.Depth[vertexID(j)]; !near {
				return false, [2]int{i, j}
			}
		}
	}
	return true, [2]int{}
}

// Connected reports whether g has a path between every pair of vertices. The
// empty graph is connected.
func Connected(g *Graph) bool {
	if g.N() == 0 {
		return true
	}
	return len(traverse(toCore(g), 0).Order) == g.N()
}

// toCore copies g into an unweighted undirected lvlath graph with vertex IDs
// "0".."n-1". Self-loops are kept.
func toCore(g *Graph) *core.Graph {
	lg := core.NewGraph(core.WithLoops())
	for v := 0; v < g.N(); v++ {
		if err := lg.AddVertex(vertexID(v)); err != nil {
			panic(err)
		}
	}
	for v, nbrs := range g.nbrs {
		for _, u := range nbrs {
			if u < v {
				continue
			}
			if _, err := lg.AddEdge(vertexID(v), vertexID(u), 0); err != nil {
				panic(err)
			}
		}
	}
	return lg
}

// traverse runs a breadth-first search from start. The search only fails on
// a missing start vertex, a weighted graph or a negative depth, none of which
// toCore or its callers can produce.
func traverse(lg *core.Graph, start int, opts ...bfs.Option) *bfs.BFSResult {
	res, err := bfs.BFS(lg, vertexID(start), opts...)
	if err != nil {
		panic(err)
	}
	return res
}

func vertexID(v int) string { return strconv.Itoa(v) }
