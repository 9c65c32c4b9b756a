package bytebuffer

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// SetName sets the label printed by the diagnostic printers
func (b *CursorBuffer) SetName(name string) { b.name = name }

// Name returns the diagnostic label
func (b *CursorBuffer) Name() string { return b.name }

func (b *CursorBuffer) header(w io.Writer, kind string) {
	fmt.Fprintf(w, "CursorBuffer %s Length: %d. %s\n", b.name, b.capacity, kind)
}

func (b *CursorBuffer) hexLine(w io.Writer) {
	for i := 0; i < b.capacity; i++ {
		fmt.Fprintf(w, "0x%02x ", b.GetAt(i))
	}
	fmt.Fprintln(w)
}

func (b *CursorBuffer) asciiLine(w io.Writer) {
	for i := 0; i < b.capacity; i++ {
		c := b.GetAt(i)
		if c < 0x20 || c > 0x7e {
			c = '.'
		}
		fmt.Fprintf(w, "%c ", c)
	}
	fmt.Fprintln(w)
}

// FprintInfo writes the label and length of the buffer to w
func (b *CursorBuffer) FprintInfo(w io.Writer) {
	b.header(w, "Info Print")
}

// FprintHex writes every byte of the region to w as hex
func (b *CursorBuffer) FprintHex(w io.Writer) {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	b.header(bw, "Hex Print")
	b.hexLine(bw)
}

// FprintASCII writes every byte of the region to w as a character,
// bytes outside the printable ASCII range show up as '.'
func (b *CursorBuffer) FprintASCII(w io.Writer) {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	b.header(bw, "ASCII Print")
	b.asciiLine(bw)
}

// FprintAH writes the region to w as hex, then as ASCII
func (b *CursorBuffer) FprintAH(w io.Writer) {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	b.header(bw, "ASCII & Hex Print")
	b.hexLine(bw)
	b.asciiLine(bw)
}

// FprintPosition writes both cursors to w
func (b *CursorBuffer) FprintPosition(w io.Writer) {
	fmt.Fprintf(w, "CursorBuffer %s Length: %d Read Pos: %d. Write Pos: %d\n", b.name, b.capacity, b.rpos, b.wpos)
}

// PrintInfo is FprintInfo to stdout
func (b *CursorBuffer) PrintInfo() { b.FprintInfo(os.Stdout) }

// PrintHex is FprintHex to stdout
func (b *CursorBuffer) PrintHex() { b.FprintHex(os.Stdout) }

// PrintASCII is FprintASCII to stdout
func (b *CursorBuffer) PrintASCII() { b.FprintASCII(os.Stdout) }

// PrintAH is FprintAH to stdout
func (b *CursorBuffer) PrintAH() { b.FprintAH(os.Stdout) }

// PrintPosition is FprintPosition to stdout
func (b *CursorBuffer) PrintPosition() { b.FprintPosition(os.Stdout) }
