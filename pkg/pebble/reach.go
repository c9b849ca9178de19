package pebble

import (
	"context"

	"github.com/matzehuels/phipebble/pkg/errors"
)

// MaxBFSDequeues caps the number of states the reachability search takes off
// its frontier before giving up.
const MaxBFSDequeues = 10000

// ReachOptions tunes Reach. The zero value selects MaxBFSDequeues.
type ReachOptions struct {
	// Cap overrides MaxBFSDequeues when positive.
	Cap int
	// OnMove, if set, is called for every standard move the search generates,
	// including moves to states already visited.
	OnMove func(from, to Distribution)
}

// ReachResult describes one reachability search.
type ReachResult struct {
	// Reachable reports that some sequence of standard moves puts a pebble on
	// the target.
	Reachable bool
	// Dequeued is the number of states taken off the frontier.
	Dequeued int
	// Visited is the number of distinct states discovered.
	Visited int
	// CapReached reports that the search stopped at the dequeue cap with
	// states still waiting. An unreachable verdict is then unproven.
	CapReached bool
}

// Reach reports whether standard pebbling moves on g can bring a pebble to
// target starting from d.
//
// If d already has a pebble on target the search is skipped. Otherwise states
// are explored breadth-first: each dequeued state is tested for a pebble on
// target before its successors are generated, and a successor is enqueued
// only the first time it is seen.
func Reach(ctx context.Context, g Graph, d Distribution, target int, opts ReachOptions) (ReachResult, error) {
	n := g.N()
	if err := errors.ValidateTarget(target, n); err != nil {
		return ReachResult{}, err
	}
	if err := errors.ValidateDistribution(d, n); err != nil {
		return ReachResult{}, err
	}

	if d[target] > 0 {
		return ReachResult{Reachable: true, Visited: 1}, nil
	}

	limit := opts.Cap
	if limit <= 0 {
		limit = MaxBFSDequeues
	}

	start := d.Clone()
	queue := []Distribution{start}
	visited := map[Key]struct{}{start.Key(): {}}

	res := ReachResult{}
	head := 0
	for head < len(queue) && res.Dequeued < limit {
		if res.Dequeued%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return ReachResult{}, err
			}
		}

		state := queue[head]
		queue[head] = nil
		head++
		res.Dequeued++

		if state[target] > 0 {
			res.Reachable = true
			res.Visited = len(visited)
			return res, nil
		}

		for u := 0; u < n; u++ {
			if state[u] < 2 {
				continue
			}
			for _, v := range g.Neighbors(u) {
				next := state.Move(u, v)
				if opts.OnMove != nil {
					opts.OnMove(state, next)
				}
				k := next.Key()
				if _, seen := visited[k]; seen {
					continue
				}
				visited[k] = struct{}{}
				queue = append(queue, next)
			}
		}
	}

	res.Visited = len(visited)
	res.CapReached = head < len(queue)
	return res, nil
}

// CanStandardPebble reports whether standard moves alone can bring a pebble to
// target from d, using the fixed dequeue cap. Invalid input yields false.
func CanStandardPebble(g Graph, d Distribution, target int) bool {
	res, err := Reach(context.Background(), g, d, target, ReachOptions{})
	return err == nil && res.Reachable
}
