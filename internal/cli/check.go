package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/phipebble/pkg/io"
	"github.com/matzehuels/phipebble/pkg/pipeline"
)

// checkOpts holds the command-line flags for the check command.
type checkOpts struct {
	named   string // built-in graph name instead of a file
	pebbles int    // pebble count to decide
	workers int    // concurrent (target, distribution) checks
	json    bool   // print the result as JSON
	noCache bool   // bypass the cache entirely
	refresh bool   // recompute and overwrite cached verdicts
}

// checkCommand creates the check command, which decides a single pebble count.
func (c *CLI) checkCommand() *cobra.Command {
	opts := checkOpts{workers: pipeline.DefaultWorkers}

	cmd := &cobra.Command{
		Use:   "check [graph-file]",
		Short: "Decide whether a pebble count suffices for a graph",
		Long: `Decide whether a number of pebbles suffices to reach every vertex of a graph.

Every vertex is tried as the target against every key distribution of the
pebbles. The first failing pair is reported together with a flag when the
failing search hit a resource bound.

Examples:
  phipebble check --named petersen -p 10
  phipebble check graph.json --pebbles 6 --workers 4
  phipebble check graph.txt -p 5 --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd, args, opts)
		},
	}

	namedFlag(cmd, &opts.named)
	cmd.Flags().IntVarP(&opts.pebbles, "pebbles", "p", 0, "number of pebbles to check (required)")
	cmd.Flags().IntVar(&opts.workers, "workers", opts.workers, "concurrent checks")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute cached verdicts")
	_ = cmd.MarkFlagRequired("pebbles")

	return cmd
}

func (c *CLI) runCheck(cmd *cobra.Command, args []string, opts checkOpts) error {
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
		Pebbles: opts.pebbles,
		Workers: opts.workers,
		Refresh: opts.refresh,
		Logger:  c.Logger,
	}
	graphOpts(&popts, args, opts.named)

	var spinner *Spinner
	if !opts.json {
		spinner = newSpinner(ctx, fmt.Sprintf("Checking %d pebbles...", opts.pebbles))
		spinner.Start()
	}
	prog := newProgress(c.Logger)

	res, err := runner.Check(ctx, popts)
	if spinner != nil {
		spinner.Stop()
		if err != nil && spinner.Cancelled() {
			printWarning("Cancelled")
		}
	}
	if err != nil {
		return err
	}
	prog.done("Checked pebble count", "sufficient", res.Verdict.Sufficient)

	if opts.json {
		return pkgio.WriteReport(cmd.OutOrStdout(), res)
	}

	printGraph(res.Graph, res.CacheHit)
	printVerdict(res.Verdict)
	if !res.Verdict.Sufficient {
		printNextStep("Find the smallest sufficient count", fmt.Sprintf("phipebble sweep %s", graphArg(args, opts.named)))
	}
	return nil
}

// graphArg renders the graph selection back as command-line arguments.
func graphArg(args []string, named string) string {
	if named != "" {
		return "--named " + named
	}
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
