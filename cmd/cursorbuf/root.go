package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/performancecopilot/cursorbuf"
)

// globalState holds what every subcommand shares
type globalState struct {
	stdOut, stdErr io.Writer
	verbose        bool
}

func newRootCommand(gs *globalState) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cursorbuf",
		Short:         "inspect and edit binary files through a cursor buffer",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if gs.verbose {
				cursorbuf.SetLogWriters(gs.stdErr)
			}
			cursorbuf.EnableLogging(gs.verbose)
		},
	}

	rootCmd.SetOut(gs.stdOut)
	rootCmd.SetErr(gs.stdErr)
	rootCmd.PersistentFlags().BoolVarP(&gs.verbose, "verbose", "v", false, "log region lifecycle to stderr")

	rootCmd.AddCommand(
		getCmdDump(gs),
		getCmdReplace(gs),
		getCmdBench(gs),
		getCmdVersion(gs),
	)

	return rootCmd
}
