package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilestar/puzzle"
)

func newSamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "samples",
		Short: "Print the built-in 5x5 start boards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for i, b := range puzzle.Samples() {
				fmt.Fprintf(w, "sample %d:\n%s\n\n", i, puzzle.Format(puzzle.SampleWidth, b))
			}

			return nil
		},
	}
}
