package sufficiency

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/phipebble/pkg/errors"
	"github.com/matzehuels/phipebble/pkg/graph"
	"github.com/matzehuels/phipebble/pkg/observability"
	"github.com/matzehuels/phipebble/pkg/pebble"
)

// Options configures a Checker. The zero value runs sequentially with the
// fixed search bounds and no logging.
type Options struct {
	// Workers is the number of (target, distribution) pairs evaluated at once.
	// Values below 2 evaluate pairs sequentially.
	Workers int

	// Phi and Reach override the search bounds. Leave them zero outside tests.
	Phi   pebble.PhiOptions
	Reach pebble.ReachOptions

	// Logger receives debug events about truncated searches and failing pairs.
	Logger *log.Logger
}

// Checker runs sufficiency checks. It holds no per-check state and is safe for
// concurrent use.
type Checker struct {
	opts   Options
	logger *log.Logger
}

// New creates a Checker.
func New(opts Options) *Checker {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Checker{opts: opts, logger: logger}
}

// MoveResult describes one (distribution, target) evaluation.
type MoveResult struct {
	// Movable reports that some phi-step outcome reaches the target.
	Movable bool
	// Generated is the number of phi-step outcomes enumerated (0 on the fast
	// path).
	Generated int
	// Searched is the number of reachability searches run.
	Searched int
	// Sampled reports that the phi-step outcomes were subsampled.
	Sampled bool
	// CapReached reports that at least one search stopped at its dequeue cap.
	CapReached bool
}

// Bounded reports whether a negative result may be an artifact of the
// search bounds.
func (r MoveResult) Bounded() bool { return r.Sampled || r.CapReached }

// CanMovePebbles reports whether a pebble can be brought to target from d
// with one phi-step followed by standard moves.
//
// A distribution that already has a pebble on target succeeds without any
// enumeration. Otherwise the phi-step outcomes are tried in order and the
// first reachable one ends the evaluation.
func (c *Checker) CanMovePebbles(ctx context.Context, g pebble.Graph, d pebble.Distribution, target int) (MoveResult, error) {
	if err := errors.ValidateTarget(target, g.N()); err != nil {
		return MoveResult{}, err
	}
	if err := errors.ValidateDistribution(d, g.N()); err != nil {
		return MoveResult{}, err
	}
	if d[target] > 0 {
		return MoveResult{Movable: true}, nil
	}

	phi, err := pebble.EnumeratePhiStep(ctx, g, d, c.opts.Phi)
	if err != nil {
		return MoveResult{}, err
	}

	res := MoveResult{Generated: phi.Generated, Sampled: phi.Sampled}
	if phi.Sampled {
		c.logger.Debug("phi-step sampled",
			"distribution", d,
			"generated", phi.Generated,
			"kept", len(phi.Candidates))
		observability.Check().OnPhiSampled(ctx, phi.Generated, len(phi.Candidates))
	}

	for _, cand := range phi.Candidates {
		reach, err := pebble.Reach(ctx, g, cand, target, c.opts.Reach)
		if err != nil {
			return MoveResult{}, err
		}
		res.Searched++
		if reach.CapReached {
			res.CapReached = true
			observability.Check().OnBFSCapReached(ctx, target, reach.Dequeued)
		}
		if reach.Reachable {
			res.Movable = true
			return res, nil
		}
	}

	if res.CapReached {
		c.logger.Debug("reachability search hit its cap",
			"distribution", d,
			"target", target)
	}
	return res, nil
}

// Failure identifies the pair that made a pebble count insufficient.
type Failure struct {
	Target       int                 `json:"target"`
	Distribution pebble.Distribution `json:"distribution"`
	// Sampled and CapReached copy the bounds hit while evaluating this pair.
	Sampled    bool `json:"sampled,omitempty"`
	CapReached bool `json:"cap_reached,omitempty"`
}

// Verdict is the outcome of checking one pebble count.
type Verdict struct {
	Pebbles    int  `json:"pebbles"`
	Sufficient bool `json:"sufficient"`
	// Pairs is the number of (target, distribution) pairs evaluated.
	Pairs int `json:"pairs"`
	// Failure is set when Sufficient is false.
	Failure *Failure `json:"failure,omitempty"`
	// Sampled and CapReached report whether any evaluated pair hit a bound.
	Sampled    bool `json:"sampled,omitempty"`
	CapReached bool `json:"cap_reached,omitempty"`
}

// Bounded reports whether a negative verdict may be an artifact of the
// search bounds rather than a genuinely unreachable target.
func (v Verdict) Bounded() bool {
	return v.Failure != nil && (v.Failure.Sampled || v.Failure.CapReached)
}

type pair struct {
	target int
	dist   pebble.Distribution
}

// CanPebbleAllVertices checks whether pebbles is sufficient for g: every
// target, tried in ascending order, must be reachable from every key
// distribution, tried in KeyDistributions order. Evaluation stops at the
// first failing pair.
func (c *Checker) CanPebbleAllVertices(ctx context.Context, g pebble.Graph, pebbles int) (Verdict, error) {
	n := g.N()
	if err := errors.ValidateVertexCount(n); err != nil {
		return Verdict{}, err
	}
	if pebbles < 0 {
		return Verdict{}, errors.New(errors.ErrCodeInvalidInput, "pebble count %d is negative", pebbles)
	}

	start := time.Now()
	observability.Check().OnCheckStart(ctx, n, pebbles)

	dists := KeyDistributions(n, pebbles)
	pairs := make([]pair, 0, n*len(dists))
	for t := 0; t < n; t++ {
		for _, d := range dists {
			pairs = append(pairs, pair{target: t, dist: d})
		}
	}

	var (
		v   Verdict
		err error
	)
	if c.opts.Workers > 1 {
		v, err = c.evaluateParallel(ctx, g, pairs)
	} else {
		v, err = c.evaluate(ctx, g, pairs)
	}
	v.Pebbles = pebbles

	observability.Check().OnCheckComplete(ctx, pebbles, v.Sufficient, v.Pairs, time.Since(start), err)
	if err != nil {
		return Verdict{}, err
	}

	if v.Failure != nil {
		c.logger.Debug("pebble count insufficient",
			"pebbles", pebbles,
			"target", v.Failure.Target,
			"distribution", v.Failure.Distribution,
			"bounded", v.Bounded())
	}
	return v, nil
}

func (c *Checker) evaluate(ctx context.Context, g pebble.Graph, pairs []pair) (Verdict, error) {
	v := Verdict{Sufficient: true}
	for _, p := range pairs {
		res, err := c.CanMovePebbles(ctx, g, p.dist, p.target)
		if err != nil {
			return Verdict{}, err
		}
		v.record(res)
		if !res.Movable {
			v.fail(p, res)
			return v, nil
		}
	}
	return v, nil
}

func (v *Verdict) record(res MoveResult) {
	v.Pairs++
	v.Sampled = v.Sampled || res.Sampled
	v.CapReached = v.CapReached || res.CapReached
}

func (v *Verdict) fail(p pair, res MoveResult) {
	v.Sufficient = false
	v.Failure = &Failure{
		Target:       p.target,
		Distribution: p.dist.Clone(),
		Sampled:      res.Sampled,
		CapReached:   res.CapReached,
	}
}

// CheckSufficient builds a graph from an adjacency list and checks pebbles
// against it. Out-of-range neighbor references are dropped and logged.
func (c *Checker) CheckSufficient(ctx context.Context, adjacency [][]int, pebbles int) (Verdict, error) {
	g, dropped := graph.FromAdjacencyList(adjacency)
	for _, d := range dropped {
		c.logger.Warn("dropped out-of-range neighbor", "vertex", d.Vertex, "neighbor", d.Neighbor)
	}
	return c.CanPebbleAllVertices(ctx, g, pebbles)
}

// =============================================================================
// Boolean Shorthands
// =============================================================================

var defaultChecker = New(Options{})

// CanMovePebbles reports whether a pebble can reach target from d under
// phi-pebbling rules, using the default bounds. Invalid input yields false.
func CanMovePebbles(g pebble.Graph, d pebble.Distribution, target int) bool {
	res, err := defaultChecker.CanMovePebbles(context.Background(), g, d, target)
	return err == nil && res.Movable
}

// CanPebbleAllVertices reports whether pebbles is sufficient for g using the
// default bounds. Invalid input yields false.
func CanPebbleAllVertices(g pebble.Graph, pebbles int) bool {
	v, err := defaultChecker.CanPebbleAllVertices(context.Background(), g, pebbles)
	return err == nil && v.Sufficient
}

// CheckSufficient reports whether pebbles is sufficient for the graph given
// as an adjacency list, using the default bounds.
func CheckSufficient(adjacency [][]int, pebbles int) bool {
	v, err := defaultChecker.CheckSufficient(context.Background(), adjacency, pebbles)
	return err == nil && v.Sufficient
}
