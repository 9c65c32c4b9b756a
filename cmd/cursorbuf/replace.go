package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/performancecopilot/cursorbuf"
)

func getCmdReplace(gs *globalState) *cobra.Command {
	var (
		key, rep uint8
		start    int
		first    bool
	)

	replaceCmd := &cobra.Command{
		Use:   "replace <file>",
		Short: "Replace a byte value in a file, in place",
		Long: `Replace a byte value in a file, in place.

  Scanning starts at --start and stops at the first zero byte, unless the key
  itself is zero.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if start < 0 {
				return errors.Errorf("invalid start %d", start)
			}

			mapped, err := cursorbuf.OpenFile(args[0], true)
			if err != nil {
				return err
			}

			b := mapped.Buffer()
			if start >= b.Size() {
				_ = mapped.Unmap(false)
				return errors.Errorf("start %d is past the end of %s (%d bytes)", start, args[0], b.Size())
			}

			b.Replace(key, rep, start, first)

			if err = mapped.Flush(); err != nil {
				_ = mapped.Unmap(false)
				return err
			}

			return mapped.Unmap(false)
		},
	}

	replaceCmd.Flags().Uint8Var(&key, "key", 0, "byte value to look for")
	replaceCmd.Flags().Uint8Var(&rep, "rep", 0, "byte value to write instead")
	replaceCmd.Flags().IntVar(&start, "start", 0, "offset to start scanning at")
	replaceCmd.Flags().BoolVar(&first, "first", false, "only replace the first occurrence")
	_ = replaceCmd.MarkFlagRequired("key")
	_ = replaceCmd.MarkFlagRequired("rep")

	return replaceCmd
}
