package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazegrid/maze"
)

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List maze generation algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, alg := range maze.Algorithms() {
				fmt.Fprintln(cmd.OutOrStdout(), alg)
			}
			return nil
		},
	}
}
