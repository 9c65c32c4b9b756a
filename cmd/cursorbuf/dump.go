package main

import (
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/performancecopilot/cursorbuf"
	"github.com/performancecopilot/cursorbuf/bytebuffer"
)

var dumpModes = map[string]func(*bytebuffer.CursorBuffer, io.Writer){
	"hex":      (*bytebuffer.CursorBuffer).FprintHex,
	"ascii":    (*bytebuffer.CursorBuffer).FprintASCII,
	"both":     (*bytebuffer.CursorBuffer).FprintAH,
	"position": (*bytebuffer.CursorBuffer).FprintPosition,
	"info":     (*bytebuffer.CursorBuffer).FprintInfo,
}

func dumpModeNames() string {
	names := make([]string, 0, len(dumpModes))
	for name := range dumpModes {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

func getCmdDump(gs *globalState) *cobra.Command {
	var mode string

	dumpCmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the content of a file",
		Long: `Print the content of a file.

  The file is mapped read only and printed through a cursor buffer labelled
  with the file name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer, ok := dumpModes[mode]
			if !ok {
				return errors.Errorf("unknown mode %q, expected one of %s", mode, dumpModeNames())
			}

			mapped, err := cursorbuf.OpenFile(args[0], false)
			if err != nil {
				return err
			}
			defer mapped.Unmap(false)

			b := mapped.Buffer()
			b.SetName(filepath.Base(args[0]))
			printer(b, gs.stdOut)

			return nil
		},
	}

	dumpCmd.Flags().StringVarP(&mode, "mode", "m", "both", "output mode, one of "+dumpModeNames())

	return dumpCmd
}
