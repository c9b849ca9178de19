// Package graph models the undirected simple graphs that pebbles move on.
//
// A [Graph] is a fixed set of n vertices labeled 0..n-1 with a symmetric
// adjacency relation. It is built from one of the two input shapes that
// pebbling problems are usually written in:
//
//   - an adjacency list, one neighbor list per vertex ([FromAdjacencyList])
//   - a square 0/1 adjacency matrix ([FromMatrix])
//
// # Tolerant Input
//
// Adjacency lists copied from papers are often noisy. Neighbor references
// outside [0, n) are dropped rather than rejected, and every dropped reference
// is returned to the caller as a [Discarded] entry so that nothing is lost
// silently. One-directional entries are symmetrized: listing j under i is
// enough to connect i and j.
//
// Matrices are held to a stricter standard. A matrix whose rows do not all
// have n entries contradicts its own vertex count and is rejected with a
// CONFIGURATION_ERROR (see pkg/errors).
//
// # Named Graphs
//
// [Petersen], [Diameter2Counterexample], [Complete], [Path] and [Cycle] build
// the graphs used throughout the tests and the CLI's --named flag.
//
// # Diameter
//
// [DiameterAtMostTwo] is a small O(n³) utility that checks whether every pair
// of vertices is adjacent or shares a neighbor. It has no connection to the
// pebbling search beyond sharing the graph type.
//
// # Concurrency
//
// A Graph is immutable after construction and safe for concurrent reads.
package graph
