// Package pkg provides the libraries behind phipebble, a bounded heuristic
// for phi-pebbling sufficiency on small undirected graphs.
//
// # Overview
//
// Phi-pebbling adds one free move to standard graph pebbling: before any
// standard move, every pebble may stay where it is or step to a neighbor.
// A pebble count suffices for a graph when every vertex can be reached from
// every starting distribution of that many pebbles. Checking all
// distributions is infeasible, so phipebble checks a small family of key
// distributions and bounds both the phi-step enumeration and the
// reachability search. Verdicts that may be affected by a bound are flagged.
//
// # Architecture
//
// The typical data flow:
//
//	graph file or built-in name
//	         ↓
//	    [io] / [graph] (load and validate the graph)
//	         ↓
//	    [sufficiency] (key distributions × targets)
//	         ↓
//	    [pebble] (phi-step enumeration + breadth-first reachability)
//	         ↓
//	    verdict / sweep estimate / rendered failing pair
//
// # Main Packages
//
// [graph] - Undirected graphs as adjacency matrices, built-in named graphs,
// and a diameter-at-most-two check.
//
// [pebble] - Distributions, the phi-step enumerator with its candidate cap
// and reservoir sampling, and the bounded breadth-first search over standard
// moves.
//
// [sufficiency] - The driver: key distributions, per-count verdicts, sweeps
// over a range of counts, and optional parallel evaluation.
//
// [pipeline] - Load → check/sweep/render with result caching. Used by the CLI.
//
// [cache] - Verdict and sweep caches with file, Redis, and MongoDB backends.
//
// [render] - Graphviz DOT generation and SVG rendering of graphs with an
// optional distribution and target.
//
// [io] - Reading graphs from JSON, TOML, and plain-text adjacency lists.
//
// [errors] - Structured error codes and input validation.
//
// [observability] - Hooks for check and cache events.
//
// # Quick Start
//
//	g := graph.Petersen()
//	c := sufficiency.New(sufficiency.Options{Workers: 4})
//	v, err := c.CanPebbleAllVertices(ctx, g, 10)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(v.Sufficient, v.Bounded())
//
// # Testing
//
//	go test ./pkg/...                  # All tests
//	go test -short ./pkg/...           # Skip Graphviz rendering tests
//	PHIPEBBLE_TEST_REDIS_ADDR=localhost:6379 go test ./pkg/cache
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/phipebble/pkg/graph
// [pebble]: https://pkg.go.dev/github.com/matzehuels/phipebble/pkg/pebble
// [sufficiency]: https://pkg.go.dev/github.com/matzehuels/phipebble/pkg/sufficiency
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/phipebble/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/phipebble/pkg/cache
// [render]: https://pkg.go.dev/github.com/matzehuels/phipebble/pkg/render
// [io]: https://pkg.go.dev/github.com/matzehuels/phipebble/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/phipebble/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/phipebble/pkg/observability
package pkg
