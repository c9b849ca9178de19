package cli

import (
	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/phipebble/pkg/io"
	"github.com/matzehuels/phipebble/pkg/pipeline"
)

// diameterCommand creates the diameter command. Graphs of diameter at most
// two are the class the sufficiency heuristic is usually run on.
func (c *CLI) diameterCommand() *cobra.Command {
	var named string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "diameter [graph-file]",
		Short: "Report whether a graph has diameter at most two",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := pipeline.NewRunner(nil, nil, c.Logger)

			var opts pipeline.Options
			graphOpts(&opts, args, named)
			res, err := runner.Diameter(opts)
			if err != nil {
				return err
			}

			if asJSON {
				return pkgio.WriteReport(cmd.OutOrStdout(), res)
			}

			printGraph(res.Graph, false)
			switch {
			case res.AtMostTwo:
				printSuccess("diameter is at most 2")
			case res.Disconnected:
				printError("graph is disconnected")
				printDetail("no path between %d and %d", res.Witness[0], res.Witness[1])
			default:
				printError("diameter exceeds 2")
				printDetail("%d and %d are more than two edges apart", res.Witness[0], res.Witness[1])
			}
			return nil
		},
	}

	namedFlag(cmd, &named)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	return cmd
}
