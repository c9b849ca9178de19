// Package pipeline runs phipebble's checks end to end: load a graph, run the
// sufficiency search, and cache the verdicts.
//
// This package sits between the CLI and the library packages so that every
// entry point loads graphs, keys the cache, and logs the same way.
//
// # Stages
//
//  1. Load: read a graph file or pick a built-in graph by name
//  2. Check or Sweep: run the sufficiency search, consulting the cache first
//  3. Report: return a result value that the caller prints or encodes
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Sweep(ctx, pipeline.Options{
//	    Named:       "petersen",
//	    From:        1,
//	    To:          20,
//	    StopAtFirst: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Sweep.Estimate)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/phipebble/pkg/cache"
	"github.com/matzehuels/phipebble/pkg/errors"
	"github.com/matzehuels/phipebble/pkg/graph"
	"github.com/matzehuels/phipebble/pkg/pebble"
	"github.com/matzehuels/phipebble/pkg/render"
	"github.com/matzehuels/phipebble/pkg/sufficiency"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultFrom is the first pebble count of a sweep.
	DefaultFrom = 1

	// DefaultSweepSpan is how many counts a sweep covers when To is unset.
	DefaultSweepSpan = 20

	// DefaultWorkers evaluates pairs sequentially.
	DefaultWorkers = 1
)

// Format constants for rendered graphs.
const (
	FormatSVG = "svg"
	FormatDOT = "dot"
)

// ValidFormats is the set of supported render formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatDOT: true,
}

// ValidLayouts is the set of supported Graphviz layout engines.
var ValidLayouts = map[string]bool{
	"neato": true,
	"circo": true,
	"dot":   true,
	"fdp":   true,
}

// =============================================================================
// Options
// =============================================================================

// Options configures a pipeline run. Exactly one of GraphPath and Named
// selects the graph.
type Options struct {
	// Graph selection
	GraphPath string `json:"graph_path,omitempty"`
	Named     string `json:"named,omitempty"`

	// Check options
	Pebbles int `json:"pebbles,omitempty"`

	// Sweep options
	From        int  `json:"from,omitempty"`
	To          int  `json:"to,omitempty"`
	StopAtFirst bool `json:"stop_at_first,omitempty"`

	// Execution options
	Workers int  `json:"workers,omitempty"`
	Refresh bool `json:"refresh,omitempty"` // Recompute and overwrite cached results

	// Render options
	Format       string `json:"format,omitempty"`
	Layout       string `json:"layout,omitempty"`
	Distribution string `json:"distribution,omitempty"` // e.g. "0,3,0,0"
	Target       int    `json:"target,omitempty"`       // Negative disables highlighting

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
	// OnVerdict, if set, is called after each pebble count a sweep evaluates.
	OnVerdict func(v sufficiency.Verdict, cached bool) `json:"-"`
}

// =============================================================================
// Results
// =============================================================================

// GraphInfo describes the graph a run used.
type GraphInfo struct {
	Name     string `json:"name"`
	Hash     string `json:"hash"`
	Vertices int    `json:"vertices"`
	Edges    int    `json:"edges"`
}

// CheckResult is the outcome of a single pebble-count check.
type CheckResult struct {
	RunID    string              `json:"run_id"`
	Graph    GraphInfo           `json:"graph"`
	Verdict  sufficiency.Verdict `json:"verdict"`
	CacheHit bool                `json:"cache_hit"`
	Duration time.Duration       `json:"duration_ns"`
}

// SweepResult is the outcome of a pebble-count sweep.
type SweepResult struct {
	RunID    string                  `json:"run_id"`
	Graph    GraphInfo               `json:"graph"`
	Sweep    sufficiency.SweepResult `json:"sweep"`
	CacheHit bool                    `json:"cache_hit"`
	Duration time.Duration           `json:"duration_ns"`
}

// DiameterResult reports whether a graph has diameter at most two.
type DiameterResult struct {
	Graph        GraphInfo `json:"graph"`
	AtMostTwo    bool      `json:"at_most_two"`
	Witness      *[2]int   `json:"witness,omitempty"`
	Disconnected bool      `json:"disconnected,omitempty"`
}

// RenderResult holds a rendered graph.
type RenderResult struct {
	Graph  GraphInfo
	Format string
	Data   []byte
}

// =============================================================================
// Validation
// =============================================================================

// ValidateFormat checks that a render format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid format: %q (must be one of: svg, dot)", format)
	}
	return nil
}

// ValidateLayout checks that a layout engine is supported.
func ValidateLayout(layout string) error {
	if !ValidLayouts[layout] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid layout: %q (must be one of: neato, circo, dot, fdp)", layout)
	}
	return nil
}

// ValidateForLoad checks that exactly one graph source is set.
func (o *Options) ValidateForLoad() error {
	switch {
	case o.GraphPath == "" && o.Named == "":
		return errors.New(errors.ErrCodeInvalidInput, "a graph file or --named graph is required")
	case o.GraphPath != "" && o.Named != "":
		return errors.New(errors.ErrCodeInvalidInput, "give either a graph file or --named, not both")
	case o.GraphPath != "":
		return errors.ValidatePath(o.GraphPath)
	}
	return nil
}

// ValidateForCheck validates and sets defaults for a single check.
func (o *Options) ValidateForCheck() error {
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := errors.ValidatePebbleCount(o.Pebbles); err != nil {
		return err
	}
	o.SetDefaults()
	return nil
}

// ValidateForSweep validates and sets defaults for a sweep.
func (o *Options) ValidateForSweep() error {
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	o.SetDefaults()
	if o.To == 0 {
		o.To = o.From + DefaultSweepSpan - 1
	}
	return errors.ValidatePebbleRange(o.From, o.To)
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	o.SetDefaults()
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	return ValidateLayout(o.Layout)
}

// SetDefaults fills in unset values.
func (o *Options) SetDefaults() {
	if o.From == 0 {
		o.From = DefaultFrom
	}
	if o.Workers == 0 {
		o.Workers = DefaultWorkers
	}
	if o.Format == "" {
		o.Format = FormatSVG
	}
	if o.Layout == "" {
		o.Layout = render.DefaultLayout
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// VerdictKeyOpts returns cache key options for checking pebbles.
func (o *Options) VerdictKeyOpts(pebbles int) cache.VerdictKeyOpts {
	return cache.VerdictKeyOpts{
		Pebbles: pebbles,
		Seed:    pebble.DefaultSeed,
		PhiCap:  pebble.MaxPhiCandidates,
		BFSCap:  pebble.MaxBFSDequeues,
	}
}

// SweepKeyOpts returns cache key options for the configured sweep.
func (o *Options) SweepKeyOpts() cache.SweepKeyOpts {
	return cache.SweepKeyOpts{
		From:        o.From,
		To:          o.To,
		StopAtFirst: o.StopAtFirst,
		Seed:        pebble.DefaultSeed,
		PhiCap:      pebble.MaxPhiCandidates,
		BFSCap:      pebble.MaxBFSDequeues,
	}
}

func describe(name string, g *graph.Graph) GraphInfo {
	return GraphInfo{
		Name:     name,
		Hash:     cache.GraphHash(g.Matrix()),
		Vertices: g.N(),
		Edges:    g.EdgeCount(),
	}
}
