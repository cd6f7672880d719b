// Command cplx is a small complex-number calculator and benchmark tool
// built on algocomplex.
package main

import (
	"os"

	"github.com/cwbudde/algo-complex/cmd/cplx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
