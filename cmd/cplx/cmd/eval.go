package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	algocomplex "github.com/cwbudde/algo-complex"
	"github.com/cwbudde/algo-complex/internal/calc"
)

type evalOptions struct {
	re, im   float64
	re2, im2 float64
	param    float64
	prec     int
	goSyntax bool
}

func newEvalCmd(root *rootOptions) *cobra.Command {
	opts := &evalOptions{}

	cmd := &cobra.Command{
		Use:   "eval <function>",
		Short: "Apply a function to complex operands",
		Long: `Apply a registered function to z = re + im·i.

Binary functions (add, sub, mul, div, powc) take w = re2 + im2·i.
Parameterized functions (log, powi, powf, addr, subr, mulr, divr) take --param.

Examples:
  cplx eval sqrt --re -4 --prec 3   # 0.000+2.000i
  cplx eval mul --re 3 --im 4 --re2 1 --im2 -2
  cplx eval log --re 8 --param 2
  cplx eval exp --im 3.14159 --prec 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, root, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&opts.re, "re", 0, "real part of z")
	flags.Float64Var(&opts.im, "im", 0, "imaginary part of z")
	flags.Float64Var(&opts.re2, "re2", 0, "real part of w")
	flags.Float64Var(&opts.im2, "im2", 0, "imaginary part of w")
	flags.Float64VarP(&opts.param, "param", "p", 0, "real parameter")
	flags.IntVar(&opts.prec, "prec", -1, "fractional digits (-1: shortest)")
	flags.BoolVar(&opts.goSyntax, "go", false, "print the result as a Go literal")

	return cmd
}

func runEval(cmd *cobra.Command, root *rootOptions, opts *evalOptions, name string) error {
	flags := cmd.Flags()

	args := calc.Args{
		Z:        algocomplex.New(opts.re, opts.im),
		W:        algocomplex.New(opts.re2, opts.im2),
		Param:    opts.param,
		HasW:     flags.Changed("re2") || flags.Changed("im2"),
		HasParam: flags.Changed("param"),
	}

	root.logger.Debug("eval", "func", name, "z", args.Z, "w", args.W, "param", args.Param)

	res, err := calc.Eval(name, args)
	if err != nil {
		return fmt.Errorf("eval: %w", err)
	}

	out := cmd.OutOrStdout()

	if opts.goSyntax && !res.IsScalar {
		_, err = fmt.Fprintf(out, "%#v\n", res.Value)
	} else {
		_, err = fmt.Fprintln(out, res.Text(opts.prec))
	}

	return err
}
