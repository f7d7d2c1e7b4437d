package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ssspbench",
		Short:         "Benchmark the bounded multi-source shortest path solver",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newMtxInfoCmd())

	return root
}
