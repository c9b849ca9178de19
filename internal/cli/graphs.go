package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/phipebble/pkg/graph"
)

// graphsCommand lists the built-in graphs accepted by --named.
func (c *CLI) graphsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "graphs",
		Short: "List built-in graphs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range graph.NamedGraphs() {
				g, _ := graph.Named(name)
				fmt.Fprintf(out, "%-10s %s\n", name,
					StyleDim.Render(strconv.Itoa(g.N())+" vertices, "+strconv.Itoa(g.EdgeCount())+" edges"))
			}
			return nil
		},
	}
}

// namedFlag registers --named on cmd with completion over the built-in graphs.
func namedFlag(cmd *cobra.Command, p *string) {
	cmd.Flags().StringVar(p, "named", "", "use a built-in graph (see 'phipebble graphs')")
	_ = cmd.RegisterFlagCompletionFunc("named", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return graph.NamedGraphs(), cobra.ShellCompDirectiveNoFileComp
	})
}
