package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/cx-elchanan-arbiv/BreakingtheSorting/bmssp"
	"github.com/cx-elchanan-arbiv/BreakingtheSorting/graph"
	"github.com/cx-elchanan-arbiv/BreakingtheSorting/graphgen"
	"github.com/cx-elchanan-arbiv/BreakingtheSorting/mtx"
	"github.com/cx-elchanan-arbiv/BreakingtheSorting/refdijkstra"
)

type runFlags struct {
	topology string
	mtxPath  string
	n        int
	m        int
	avgDeg   float64
	rows     int
	cols     int
	source   int
	seed     int64
	verify   bool
}

func newRunCmd() *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate or load a graph and solve shortest paths from a source",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.topology, "topology", "random", "random|complete|grid|scalefree (ignored when --mtx is set)")
	cmd.Flags().StringVar(&f.mtxPath, "mtx", "", "load a Matrix Market (.mtx) file instead of generating one")
	cmd.Flags().IntVar(&f.n, "n", 1000, "vertex count")
	cmd.Flags().IntVar(&f.m, "m", 4000, "edge count (random topology)")
	cmd.Flags().Float64Var(&f.avgDeg, "avg-degree", 0, "if > 0, overrides --m as n*avg-degree (random topology)")
	cmd.Flags().IntVar(&f.rows, "rows", 32, "grid rows (grid topology)")
	cmd.Flags().IntVar(&f.cols, "cols", 32, "grid cols (grid topology)")
	cmd.Flags().IntVar(&f.source, "source", 0, "source vertex")
	cmd.Flags().Int64Var(&f.seed, "seed", 42, "RNG seed for generated topologies")
	cmd.Flags().BoolVar(&f.verify, "verify", true, "cross-check distances against refdijkstra")

	return cmd
}

func buildGraph(f *runFlags) (*graph.View, error) {
	if f.mtxPath != "" {
		g, info, err := mtx.Load(f.mtxPath)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(os.Stderr, "loaded %s: n=%d m=%d symmetric=%v pattern=%v\n",
			f.mtxPath, info.NumVertices, info.NumEdges, info.Symmetric, info.Pattern)

		return g, nil
	}

	switch f.topology {
	case "random":
		if f.avgDeg > 0 {
			return graphgen.RandomWithDegree(f.n, f.avgDeg, graphgen.WithSeed(f.seed))
		}
		return graphgen.RandomSparse(f.n, f.m, graphgen.WithSeed(f.seed))
	case "complete":
		return graphgen.Complete(f.n, graphgen.WithSeed(f.seed))
	case "grid":
		return graphgen.Grid(f.rows, f.cols, graphgen.WithSeed(f.seed))
	case "scalefree":
		return graphgen.ScaleFree(f.n, 5, 3, graphgen.WithSeed(f.seed))
	default:
		return nil, fmt.Errorf("ssspbench: unknown topology %q", f.topology)
	}
}

func runBench(cmd *cobra.Command, f *runFlags) error {
	g, err := buildGraph(f)
	if err != nil {
		return err
	}

	solver, err := bmssp.NewSolver(g)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := solver.Solve(f.source)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	reachable := 0
	for _, d := range res.Distances {
		if !math.IsInf(d, 1) {
			reachable++
		}
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"metric", "value"})
	table.Append([]string{"vertices", fmt.Sprintf("%d", g.N())})
	table.Append([]string{"edges", fmt.Sprintf("%d", g.M())})
	table.Append([]string{"source", fmt.Sprintf("%d", f.source)})
	table.Append([]string{"reachable", fmt.Sprintf("%d", reachable)})
	table.Append([]string{"relaxations", fmt.Sprintf("%d", solver.RelaxationCount())})
	table.Append([]string{"elapsed", elapsed.String()})

	if f.verify {
		want, _, err := refdijkstra.Solve(g, f.source)
		if err != nil {
			return err
		}
		mismatches := 0
		for v := range want {
			if want[v] != res.Distances[v] {
				mismatches++
			}
		}
		status := "OK"
		if mismatches > 0 {
			status = fmt.Sprintf("MISMATCH (%d vertices)", mismatches)
		}
		table.Append([]string{"correctness", status})
	}

	table.Render()

	return nil
}
