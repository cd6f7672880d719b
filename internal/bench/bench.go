// Package bench times the registered algocomplex operations over seeded
// random inputs.
package bench

import (
	"context"
	"log/slog"
	"math/rand"
	"runtime"
	"sort"
	"time"

	algocomplex "github.com/cwbudde/algo-complex"
	"github.com/cwbudde/algo-complex/internal/calc"
)

// inputCount is the number of distinct operands cycled through per iteration.
const inputCount = 1024

// Result is the timing of one function.
type Result struct {
	Name    string
	Kind    calc.Kind
	NsPerOp float64
	// NonFinite counts inputs whose result had a NaN or infinite part.
	NonFinite int
}

// Run benchmarks every function in p and returns the results sorted from
// fastest to slowest. It stops between functions when ctx is done.
// A nil logger discards progress messages.
func Run(ctx context.Context, p Profile, logger *slog.Logger) ([]Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	rnd := rand.New(rand.NewSource(p.Seed))

	inputs := make([]algocomplex.Complex, inputCount)
	for i := range inputs {
		inputs[i] = algocomplex.New((2*rnd.Float64()-1)*p.Scale, (2*rnd.Float64()-1)*p.Scale)
	}

	args := calc.Args{
		W:        algocomplex.New((2*rnd.Float64()-1)*p.Scale, (2*rnd.Float64()-1)*p.Scale),
		Param:    p.Param,
		HasW:     true,
		HasParam: true,
	}

	results := make([]Result, 0, len(p.Functions))

	for _, name := range p.Functions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		f, err := calc.Lookup(name)
		if err != nil {
			return nil, err
		}

		fn, err := f.Unary(args)
		if err != nil {
			return nil, err
		}

		res := measure(fn, inputs, p.Iterations, p.Warmup)
		res.Name = name
		res.Kind = f.Kind

		logger.Debug("benchmarked", "func", name, "ns_per_op", res.NsPerOp, "non_finite", res.NonFinite)

		results = append(results, res)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].NsPerOp < results[j].NsPerOp
	})

	return results, nil
}

func measure(fn func(algocomplex.Complex) algocomplex.Complex, inputs []algocomplex.Complex, iters, warmup int) Result {
	var res Result

	for _, z := range inputs {
		out := fn(z)
		if out.IsNaN() || out.IsInf() {
			res.NonFinite++
		}
	}

	var acc algocomplex.Complex

	for range warmup {
		for _, z := range inputs {
			acc = fn(z)
		}
	}

	runtime.GC()

	start := time.Now()

	for range iters {
		for _, z := range inputs {
			acc = fn(z)
		}
	}

	elapsed := time.Since(start)
	runtime.KeepAlive(acc)

	res.NsPerOp = float64(elapsed.Nanoseconds()) / float64(iters*len(inputs))

	return res
}
