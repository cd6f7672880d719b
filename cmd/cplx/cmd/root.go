package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose bool
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "cplx",
		Short: "Complex-number calculator",
		Long: `cplx evaluates complex functions from the command line.

Operands are given as separate real and imaginary parts; there is no
complex literal syntax.

Commands:
  eval   apply a function to one or two operands
  list   show the available functions
  bench  time the functions over random inputs
  info   show architecture and CPU features`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}

			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newEvalCmd(opts),
		newListCmd(),
		newBenchCmd(opts),
		newInfoCmd(),
	)

	return root
}

// Execute runs the cplx command tree with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}
