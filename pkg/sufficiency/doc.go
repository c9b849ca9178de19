// Package sufficiency decides whether a pebble count is enough for
// phi-pebbling a graph.
//
// A count p is reported sufficient when, for every target vertex and every
// distribution produced by [KeyDistributions] for p pebbles, some outcome of
// one phi-step lets standard pebbling moves reach the target. The check is a
// heuristic:
//
//   - only the curated key distributions are tried, not every distribution
//     of p pebbles;
//   - phi-step outcomes are subsampled past pebble.MaxPhiCandidates;
//   - each reachability search stops after pebble.MaxBFSDequeues states.
//
// A positive verdict is therefore evidence, not proof, and a negative verdict
// can be an artifact of the bounds. [Verdict] and [MoveResult] report when a
// bound was hit so the two cases can be told apart.
//
// # Entry Points
//
//	c := sufficiency.New(sufficiency.Options{Workers: 4})
//	v, err := c.CanPebbleAllVertices(ctx, graph.Petersen(), 7)
//	if err != nil {
//	    return err
//	}
//	if !v.Sufficient {
//	    fmt.Println("fails at target", v.Failure.Target, "from", v.Failure.Distribution)
//	}
//
// [CanMovePebbles], [CanPebbleAllVertices] and [CheckSufficient] are
// plain-boolean shorthands using the default options.
//
// # Parallelism
//
// With Options.Workers > 1 the (target, distribution) pairs are evaluated
// concurrently and the first failing pair cancels the rest. Verdicts do not
// depend on the worker count because every phi-step enumeration draws from its
// own freshly seeded source.
//
// # Sweeps
//
// [Checker.Sweep] evaluates a range of pebble counts and reports the first
// sufficient one as the estimated phi-pebbling number. Because the check is
// bounded, verdicts need not be monotone in the pebble count; every drop from
// sufficient back to insufficient is recorded in SweepResult.NonMonotonic.
package sufficiency
