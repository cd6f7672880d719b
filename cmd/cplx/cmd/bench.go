package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-complex/internal/bench"
	"github.com/cwbudde/algo-complex/internal/cpu"
)

type benchOptions struct {
	config string
	iters  int
	warmup int
	seed   int64
	param  float64
	funcs  []string
}

func newBenchCmd(root *rootOptions) *cobra.Command {
	opts := &benchOptions{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the functions over random inputs",
		Long: `Time each function over 1024 seeded random operands and print ns/op,
fastest first.

A TOML profile can set iterations, warmup, seed, scale, param and functions.
Flags given on the command line override the profile.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd, root, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.config, "config", "c", "", "TOML profile")
	flags.IntVar(&opts.iters, "iters", 50, "benchmark iterations")
	flags.IntVar(&opts.warmup, "warmup", 5, "warmup iterations")
	flags.Int64Var(&opts.seed, "seed", 1, "rng seed")
	flags.Float64Var(&opts.param, "param", 3, "parameter for log, powi, powf and the scalar operators")
	flags.StringSliceVar(&opts.funcs, "funcs", nil, "comma-separated functions (default: all)")

	return cmd
}

func runBench(cmd *cobra.Command, root *rootOptions, opts *benchOptions) error {
	profile := bench.DefaultProfile()

	if opts.config != "" {
		p, err := bench.LoadProfile(opts.config)
		if err != nil {
			return err
		}

		profile = p

		root.logger.Debug("loaded profile", "path", opts.config)
	}

	flags := cmd.Flags()
	if opts.config == "" || flags.Changed("iters") {
		profile.Iterations = opts.iters
	}

	if opts.config == "" || flags.Changed("warmup") {
		profile.Warmup = opts.warmup
	}

	if opts.config == "" || flags.Changed("seed") {
		profile.Seed = opts.seed
	}

	if opts.config == "" || flags.Changed("param") {
		profile.Param = opts.param
	}

	if flags.Changed("funcs") {
		profile.Functions = opts.funcs
	}

	results, err := bench.Run(cmd.Context(), profile, root.logger)
	if err != nil {
		return fmt.Errorf("bench: %w", err)
	}

	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "cpu=%s iters=%d warmup=%d seed=%d\n", cpu.DetectFeatures(), profile.Iterations, profile.Warmup, profile.Seed)
	fmt.Fprintf(out, "%8s  %8s  %10s  %10s\n", "func", "kind", "ns/op", "non-finite")

	for _, res := range results {
		fmt.Fprintf(out, "%8s  %8s  %10.1f  %10d\n", res.Name, res.Kind, res.NsPerOp, res.NonFinite)
	}

	return nil
}
