package pebble

import (
	"context"

	"github.com/matzehuels/phipebble/pkg/errors"
)

// MaxPhiCandidates caps the number of phi-step outcomes handed to the
// reachability search. Larger outcome sets are subsampled down to this size.
const MaxPhiCandidates = 1000

// ctxCheckEvery is how many leaves or dequeues pass between context checks.
const ctxCheckEvery = 4096

// Graph is the view of a graph the search needs. *graph.Graph satisfies it.
type Graph interface {
	N() int
	Neighbors(v int) []int
}

// PhiOptions tunes EnumeratePhiStep. The zero value selects the fixed
// defaults (MaxPhiCandidates, DefaultSeed).
type PhiOptions struct {
	// Cap overrides MaxPhiCandidates when positive.
	Cap int
	// NewSource overrides the seeded default source. It is called once per
	// enumeration, and only the draws for outcomes past Cap consume it.
	NewSource func() Source
}

// PhiResult holds the outcomes of one phi-step.
type PhiResult struct {
	// Candidates are the outcomes, or a uniform sample of them when Sampled.
	Candidates []Distribution
	// Generated is the number of outcomes enumerated before sampling.
	Generated int
	// Sampled reports that Generated exceeded the cap and Candidates is a
	// subsample. A negative verdict built on a sampled result may be false.
	Sampled bool
}

// EnumeratePhiStep returns every distribution reachable from d by one phi-step
// on g, subsampled to the cap when there are too many.
//
// Outcomes appear in enumeration order when not sampled: vertices in index
// order, and for each pebble the destinations in the order v, then the
// neighbors of v ascending. Every outcome has the same total as d.
func EnumeratePhiStep(ctx context.Context, g Graph, d Distribution, opts PhiOptions) (PhiResult, error) {
	n := g.N()
	if err := errors.ValidateDistribution(d, n); err != nil {
		return PhiResult{}, err
	}

	limit := opts.Cap
	if limit <= 0 {
		limit = MaxPhiCandidates
	}
	newSource := opts.NewSource
	if newSource == nil {
		newSource = defaultSource
	}

	dests := make([][]int, n)
	for v := range dests {
		if d[v] == 0 {
			continue
		}
		dests[v] = append([]int{v}, g.Neighbors(v)...)
	}

	w := &phiWalker{
		ctx:   ctx,
		start: d,
		dests: dests,
		work:  make(Distribution, n),
		out:   newReservoir(limit, newSource()),
	}
	if err := w.vertex(0); err != nil {
		return PhiResult{}, err
	}

	return PhiResult{
		Candidates: w.out.items,
		Generated:  w.out.seen,
		Sampled:    w.out.sampled(),
	}, nil
}

// phiWalker enumerates phi-step outcomes depth-first over a single working
// vector. Each placement is undone on the way back up, so branches never see
// each other's pebbles.
type phiWalker struct {
	ctx   context.Context
	start Distribution
	dests [][]int
	work  Distribution
	out   *reservoir
}

func (w *phiWalker) vertex(v int) error {
	for v < len(w.start) && w.start[v] == 0 {
		v++
	}
	if v == len(w.start) {
		return w.leaf()
	}
	return w.place(v, w.start[v])
}

func (w *phiWalker) place(v, left int) error {
	if left == 0 {
		return w.vertex(v + 1)
	}
	for _, dst := range w.dests[v] {
		w.work[dst]++
		err := w.place(v, left-1)
		w.work[dst]--
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *phiWalker) leaf() error {
	if w.out.seen%ctxCheckEvery == 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}
	}
	w.out.offer(w.work)
	return nil
}
