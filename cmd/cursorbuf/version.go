package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/performancecopilot/cursorbuf"
)

func getCmdVersion(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show application version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(gs.stdOut, "cursorbuf v%s\n", cursorbuf.Version)
		},
	}
}
