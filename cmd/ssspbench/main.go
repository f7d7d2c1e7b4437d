// Command ssspbench generates or loads directed graphs and benchmarks the
// bounded multi-source shortest path solver, reporting its elapsed time and
// relaxation count and, with --verify, a correctness check of its distances
// against a reference Dijkstra implementation.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
