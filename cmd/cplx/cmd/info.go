package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-complex/internal/cpu"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show architecture and CPU features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cpu.DetectFeatures()
			out := cmd.OutOrStdout()

			flags := strings.Join(f.Flags(), " ")
			if flags == "" {
				flags = "none"
			}

			fma := "no"
			if f.FusesMultiplyAdd() {
				fma = "yes"
			}

			_, err := fmt.Fprintf(out, "go:        %s\narch:      %s\nfeatures:  %s\nfused mul-add: %s\n",
				runtime.Version(), f.Architecture, flags, fma)

			return err
		},
	}
}
