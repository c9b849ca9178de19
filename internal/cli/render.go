package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/phipebble/pkg/pipeline"
	"github.com/matzehuels/phipebble/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	named        string // built-in graph name instead of a file
	format       string // "svg" or "dot"
	layout       string // graphviz layout engine
	distribution string // comma-separated pebble counts to annotate
	target       int    // vertex to highlight (negative = none)
	output       string // output file path (stdout if empty)
}

// renderCommand creates the render command for drawing a graph, optionally
// annotated with a pebble distribution and a target vertex.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		format: pipeline.FormatSVG,
		layout: render.DefaultLayout,
		target: render.NoTarget,
	}

	cmd := &cobra.Command{
		Use:   "render [graph-file]",
		Short: "Render a graph to SVG or DOT",
		Long: `Render a graph with Graphviz.

A failing (target, distribution) pair reported by check can be drawn by
passing its distribution and target.

Examples:
  phipebble render --named petersen -o petersen.svg
  phipebble render --named cycle5 --distribution 0,0,1,1,0 --target 0
  phipebble render graph.json --format dot --layout circo`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args, opts)
		},
	}

	namedFlag(cmd, &opts.named)
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, dot")
	cmd.Flags().StringVar(&opts.layout, "layout", opts.layout, "layout engine: neato, circo, dot, fdp")
	cmd.Flags().StringVarP(&opts.distribution, "distribution", "d", "", "pebble counts per vertex, e.g. 0,3,0,0")
	cmd.Flags().IntVarP(&opts.target, "target", "t", opts.target, "vertex to highlight")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, args []string, opts renderOpts) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	runner := pipeline.NewRunner(nil, nil, c.Logger)
	popts := pipeline.Options{
		Format:       strings.ToLower(opts.format),
		Layout:       opts.layout,
		Distribution: opts.distribution,
		Target:       opts.target,
		Logger:       c.Logger,
	}
	graphOpts(&popts, args, opts.named)

	res, err := runner.Render(ctx, popts)
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), opts.output, res.Data)
}
