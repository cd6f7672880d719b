package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-complex/internal/calc"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			fmt.Fprintln(w, "NAME\tKIND\tDESCRIPTION")

			for _, name := range calc.Names() {
				f, err := calc.Lookup(name)
				if err != nil {
					return err
				}

				fmt.Fprintf(w, "%s\t%s\t%s\n", f.Name, f.Kind, f.Doc)
			}

			return w.Flush()
		},
	}
}
