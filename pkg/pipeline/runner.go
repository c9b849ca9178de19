package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/phipebble/pkg/cache"
	"github.com/matzehuels/phipebble/pkg/errors"
	"github.com/matzehuels/phipebble/pkg/graph"
	"github.com/matzehuels/phipebble/pkg/io"
	"github.com/matzehuels/phipebble/pkg/observability"
	"github.com/matzehuels/phipebble/pkg/pebble"
	"github.com/matzehuels/phipebble/pkg/render"
	"github.com/matzehuels/phipebble/pkg/sufficiency"
)

// Runner executes pipeline stages with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// LoadGraph loads the graph selected by opts. Dropped out-of-range neighbor
// references are logged as warnings.
func (r *Runner) LoadGraph(opts Options) (*io.Loaded, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	if opts.Named != "" {
		g, ok := graph.Named(opts.Named)
		if !ok {
			return nil, errors.New(errors.ErrCodeGraphNotFound, "unknown graph %q (known: %v)", opts.Named, graph.NamedGraphs())
		}
		return &io.Loaded{Name: opts.Named, Graph: g}, nil
	}

	l, err := io.ReadGraph(opts.GraphPath)
	if err != nil {
		return nil, err
	}
	for _, d := range l.Discarded {
		opts.Logger.Warn("dropped out-of-range neighbor", "vertex", d.Vertex, "neighbor", d.Neighbor)
	}
	return l, nil
}

// Check decides whether opts.Pebbles pebbles suffice for the selected graph.
func (r *Runner) Check(ctx context.Context, opts Options) (*CheckResult, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForCheck(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	l, err := r.LoadGraph(opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	start := time.Now()
	res := &CheckResult{
		RunID: uuid.NewString(),
		Graph: describe(l.Name, l.Graph),
	}
	opts.Logger.Info("loaded graph",
		"name", res.Graph.Name,
		"vertices", res.Graph.Vertices,
		"edges", res.Graph.Edges)

	v, hit, err := r.VerdictWithCacheInfo(ctx, l.Graph, res.Graph.Hash, opts.Pebbles, opts)
	if err != nil {
		return nil, fmt.Errorf("check: %w", err)
	}
	res.Verdict = v
	res.CacheHit = hit
	res.Duration = time.Since(start)

	opts.Logger.Info("checked pebble count",
		"pebbles", v.Pebbles,
		"sufficient", v.Sufficient,
		"pairs", v.Pairs,
		"cached", hit,
		"duration", res.Duration)
	return res, nil
}

// VerdictWithCacheInfo checks one pebble count with caching and returns cache
// hit info.
func (r *Runner) VerdictWithCacheInfo(ctx context.Context, g *graph.Graph, graphHash string, pebbles int, opts Options) (sufficiency.Verdict, bool, error) {
	r.applyLogger(&opts)
	key := r.Keyer.VerdictKey(graphHash, opts.VerdictKeyOpts(pebbles))

	var v sufficiency.Verdict
	if !opts.Refresh && r.lookup(ctx, key, cache.KeyTypeVerdict, &v) {
		return v, true, nil
	}

	v, err := r.checker(opts).CanPebbleAllVertices(ctx, g, pebbles)
	if err != nil {
		return sufficiency.Verdict{}, false, err
	}
	r.store(ctx, key, cache.KeyTypeVerdict, v, cache.TTLVerdict, opts.Logger)
	return v, false, nil
}

// Sweep checks the pebble counts opts.From..opts.To on the selected graph.
func (r *Runner) Sweep(ctx context.Context, opts Options) (*SweepResult, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForSweep(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	l, err := r.LoadGraph(opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	start := time.Now()
	res := &SweepResult{
		RunID: uuid.NewString(),
		Graph: describe(l.Name, l.Graph),
	}
	opts.Logger.Info("loaded graph",
		"name", res.Graph.Name,
		"vertices", res.Graph.Vertices,
		"edges", res.Graph.Edges)

	key := r.Keyer.SweepKey(res.Graph.Hash, opts.SweepKeyOpts())
	if !opts.Refresh && r.lookup(ctx, key, cache.KeyTypeSweep, &res.Sweep) {
		res.CacheHit = true
		res.Duration = time.Since(start)
		return res, nil
	}

	sweep, err := r.sweep(ctx, l.Graph, res.Graph.Hash, opts)
	if err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}
	res.Sweep = sweep
	res.Duration = time.Since(start)
	r.store(ctx, key, cache.KeyTypeSweep, sweep, cache.TTLSweep, opts.Logger)

	opts.Logger.Info("finished sweep",
		"counts", len(sweep.Verdicts),
		"estimate", sweep.Estimate,
		"duration", res.Duration)
	return res, nil
}

// sweep evaluates counts in ascending order through the verdict cache, so
// overlapping sweeps reuse each other's work.
func (r *Runner) sweep(ctx context.Context, g *graph.Graph, graphHash string, opts Options) (sufficiency.SweepResult, error) {
	var res sufficiency.SweepResult
	for p := opts.From; p <= opts.To; p++ {
		v, hit, err := r.VerdictWithCacheInfo(ctx, g, graphHash, p, opts)
		if err != nil {
			return sufficiency.SweepResult{}, err
		}
		res.Add(v)
		opts.Logger.Debug("sweep step", "pebbles", p, "sufficient", v.Sufficient, "cached", hit)
		if opts.OnVerdict != nil {
			opts.OnVerdict(v, hit)
		}
		if v.Sufficient && opts.StopAtFirst {
			break
		}
	}
	if len(res.NonMonotonic) > 0 {
		opts.Logger.Warn("verdicts are not monotone in the pebble count", "counts", res.NonMonotonic)
	}
	return res, nil
}

// Diameter reports whether the selected graph has diameter at most two.
func (r *Runner) Diameter(opts Options) (*DiameterResult, error) {
	l, err := r.LoadGraph(opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	ok, witness := graph.DiameterAtMostTwo(l.Graph)
	res := &DiameterResult{Graph: describe(l.Name, l.Graph), AtMostTwo: ok}
	if !ok {
		res.Witness = &witness
		res.Disconnected = !graph.Connected(l.Graph)
	}
	return res, nil
}

// Render draws the selected graph, optionally with a pebble distribution and
// a highlighted target.
func (r *Runner) Render(ctx context.Context, opts Options) (*RenderResult, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	l, err := r.LoadGraph(opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	var d pebble.Distribution
	if opts.Distribution != "" {
		d, err = pebble.ParseDistribution(opts.Distribution)
		if err != nil {
			return nil, err
		}
		if err := errors.ValidateDistribution(d, l.Graph.N()); err != nil {
			return nil, err
		}
	}
	if opts.Target >= l.Graph.N() {
		return nil, errors.ValidateTarget(opts.Target, l.Graph.N())
	}

	dot := render.ToDOT(l.Graph, render.Options{
		Name:         l.Name,
		Distribution: d,
		Target:       opts.Target,
		Layout:       opts.Layout,
	})
	res := &RenderResult{Graph: describe(l.Name, l.Graph), Format: opts.Format}
	if opts.Format == FormatDOT {
		res.Data = []byte(dot)
		return res, nil
	}

	svg, err := render.RenderSVG(ctx, dot)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	res.Data = svg
	opts.Logger.Debug("rendered graph", "bytes", len(svg))
	return res, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) checker(opts Options) *sufficiency.Checker {
	return sufficiency.New(sufficiency.Options{
		Workers: opts.Workers,
		Logger:  opts.Logger,
	})
}

// lookup decodes a cached value into dst. Backend errors and corrupt
// entries are logged and count as misses.
func (r *Runner) lookup(ctx context.Context, key, keyType string, dst any) bool {
	data, hit, err := r.Cache.Get(ctx, key)
	if err == nil && hit {
		if uerr := json.Unmarshal(data, dst); uerr != nil {
			err = fmt.Errorf("%w: %v", cache.ErrCorrupt, uerr)
		}
	}
	switch {
	case cache.IsCorrupt(err):
		r.Logger.Warn("discarded corrupt cache entry", "key_type", keyType, "error", err)
	case err != nil:
		r.Logger.Warn("cache read failed", "key_type", keyType, "error", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return true
}

// store caches v. A failed write is logged and otherwise ignored.
func (r *Runner) store(ctx context.Context, key, keyType string, v any, ttl time.Duration, logger *log.Logger) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		logger.Warn("cache write failed", "key_type", keyType, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
