package main

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/cx-elchanan-arbiv/BreakingtheSorting/mtx"
)

func newMtxInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mtx-info <path>",
		Short: "Print header and shape information for a Matrix Market file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, info, err := mtx.Load(args[0])
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"field", "value"})
			table.Append([]string{"rows", fmt.Sprintf("%d", info.Rows)})
			table.Append([]string{"cols", fmt.Sprintf("%d", info.Cols)})
			table.Append([]string{"vertices", fmt.Sprintf("%d", info.NumVertices)})
			table.Append([]string{"edges", fmt.Sprintf("%d", info.NumEdges)})
			table.Append([]string{"symmetric", fmt.Sprintf("%v", info.Symmetric)})
			table.Append([]string{"pattern", fmt.Sprintf("%v", info.Pattern)})
			table.Render()

			return nil
		},
	}

	return cmd
}
