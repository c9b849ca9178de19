package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/phipebble/pkg/io"
	"github.com/matzehuels/phipebble/pkg/pipeline"
	"github.com/matzehuels/phipebble/pkg/sufficiency"
)

// sweepOpts holds the command-line flags for the sweep command.
type sweepOpts struct {
	named       string // built-in graph name instead of a file
	from        int    // smallest pebble count
	to          int    // largest pebble count (0 = from + default span)
	stopAtFirst bool   // stop at the first sufficient count
	workers     int    // concurrent (target, distribution) checks
	json        bool   // print the result as JSON
	noCache     bool   // bypass the cache entirely
	refresh     bool   // recompute and overwrite cached verdicts
}

// sweepCommand creates the sweep command, which checks a range of pebble
// counts and estimates the phi-pebbling number.
func (c *CLI) sweepCommand() *cobra.Command {
	opts := sweepOpts{from: pipeline.DefaultFrom, workers: pipeline.DefaultWorkers}

	cmd := &cobra.Command{
		Use:   "sweep [graph-file]",
		Short: "Estimate the phi-pebbling number over a range of pebble counts",
		Long: `Check every pebble count in a range in ascending order.

The estimate is the smallest sufficient count. Counts that are insufficient
above a sufficient one are reported, since a bounded search can produce false
negatives.

Examples:
  phipebble sweep --named cycle5 --stop-at-first
  phipebble sweep graph.json --from 4 --to 12`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSweep(cmd, args, opts)
		},
	}

	namedFlag(cmd, &opts.named)
	cmd.Flags().IntVar(&opts.from, "from", opts.from, "smallest pebble count")
	cmd.Flags().IntVar(&opts.to, "to", 0, fmt.Sprintf("largest pebble count (default from+%d)", pipeline.DefaultSweepSpan-1))
	cmd.Flags().BoolVar(&opts.stopAtFirst, "stop-at-first", false, "stop at the first sufficient count")
	cmd.Flags().IntVar(&opts.workers, "workers", opts.workers, "concurrent checks")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute cached verdicts")

	return cmd
}

func (c *CLI) runSweep(cmd *cobra.Command, args []string, opts sweepOpts) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := pipeline.Options{
		From:        opts.from,
		To:          opts.to,
		StopAtFirst: opts.stopAtFirst,
		Workers:     opts.workers,
		Refresh:     opts.refresh,
		Logger:      c.Logger,
	}
	graphOpts(&popts, args, opts.named)

	var spinner *Spinner
	if !opts.json {
		spinner = newSpinner(ctx, fmt.Sprintf("Checking %d pebbles...", opts.from))
		spinner.Start()
		popts.OnVerdict = func(v sufficiency.Verdict, cached bool) {
			spinner.Update("Checking %d pebbles...", v.Pebbles+1)
		}
	}
	prog := newProgress(c.Logger)

	res, err := runner.Sweep(ctx, popts)
	if spinner != nil {
		spinner.Stop()
		if err != nil && spinner.Cancelled() {
			printWarning("Cancelled")
		}
	}
	if err != nil {
		return err
	}
	prog.done("Swept pebble counts", "estimate", res.Sweep.Estimate)

	if opts.json {
		return pkgio.WriteReport(cmd.OutOrStdout(), res)
	}

	printGraph(res.Graph, res.CacheHit)
	printSweep(res.Sweep)
	return nil
}
