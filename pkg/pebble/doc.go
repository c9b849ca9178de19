// Package pebble implements the search engine behind phi-pebbling checks.
//
// A pebble [Distribution] assigns a non-negative number of pebbles to every
// vertex of a graph. Two kinds of moves change a distribution:
//
//   - A standard pebbling move removes two pebbles from a vertex u and places
//     one on a neighbor v. The total drops by exactly one.
//   - A phi-step is a single parallel redistribution in which every pebble
//     independently stays put or moves to a neighbor of its vertex. The total
//     is preserved.
//
// Phi-pebbling allows one phi-step before any standard moves.
//
// # Phi-Step Enumeration
//
// [EnumeratePhiStep] walks every outcome of one phi-step. Vertices are taken
// in index order; the k pebbles on a vertex are assigned one at a time to the
// vertex itself or one of its neighbors, so a vertex with d destinations
// contributes d^k branches. Outcomes are not deduplicated: the same
// distribution appears once per assignment that produces it.
//
// The number of outcomes grows exponentially with the pebble count. Once more
// than [MaxPhiCandidates] outcomes have been produced, the result is a
// uniform random subsample of exactly MaxPhiCandidates outcomes, drawn by
// reservoir sampling from a pseudorandom source seeded with [DefaultSeed].
// Each call starts a fresh source, so the sample is reproducible and does not
// depend on what ran before. [PhiResult.Sampled] reports truncation.
//
// # Reachability
//
// [Reach] runs a breadth-first search over distributions reachable by
// standard moves and stops as soon as the target vertex holds a pebble. The
// state space is finite because every move lowers the total, but it can be
// very large; the search stops after [MaxBFSDequeues] states have been taken
// off the frontier. [ReachResult.CapReached] distinguishes that outcome from
// a genuinely unreachable target.
//
// # Fixed Tunables
//
// DefaultSeed, MaxPhiCandidates and MaxBFSDequeues are part of the observable
// behavior: changing any of them changes which pebble counts are reported as
// sufficient. Options structs accept overrides for tests only.
package pebble
