package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/performancecopilot/cursorbuf/internal/bench"
)

func getCmdBench(gs *globalState) *cobra.Command {
	opts := bench.Options{}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure full passes of an accessor over a region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := bench.Run(opts)
			if err != nil {
				return err
			}

			return r.Fprint(gs.stdOut)
		},
	}

	benchCmd.Flags().StringVar(&opts.Op, "op", bench.PutByte, "operation, one of "+strings.Join(bench.Ops(), "|"))
	benchCmd.Flags().IntVar(&opts.Size, "size", 4096, "region size in bytes")
	benchCmd.Flags().IntVar(&opts.Passes, "passes", 1000, "number of measured passes")

	return benchCmd
}
