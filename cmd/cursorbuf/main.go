// Command cursorbuf inspects and edits files through a CursorBuffer mapped over them,
// and measures accessor latency.
//
//	cursorbuf dump data.bin --mode hex
//	cursorbuf replace data.bin --key 0x2e --rep 0x2f
//	cursorbuf bench --op put-long --size 4096 --passes 1000
package main

import (
	"os"
)

func main() {
	gs := &globalState{
		stdOut: os.Stdout,
		stdErr: os.Stderr,
	}

	if err := newRootCommand(gs).Execute(); err != nil {
		os.Exit(1)
	}
}
