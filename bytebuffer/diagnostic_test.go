package bytebuffer

import (
	"bytes"
	"testing"
)

func TestName(t *testing.T) {
	b := NewCursorBuffer(make([]byte, 2))
	if b.Name() != "" {
		t.Errorf("expected an empty name, got %q", b.Name())
	}

	b.SetName("header")
	if b.Name() != "header" {
		t.Errorf("expected %q, got %q", "header", b.Name())
	}
}

func TestPrinters(t *testing.T) {
	b := NewCursorBuffer([]byte{'M', 'V', 0, 0xFF})
	b.SetName("test")
	b.Get()
	b.Put(0x01)
	b.Put(0x00)

	cases := []struct {
		name     string
		print    func(*bytes.Buffer)
		expected string
	}{
		{"info", func(w *bytes.Buffer) { b.FprintInfo(w) }, "CursorBuffer test Length: 4. Info Print\n"},
		{"hex", func(w *bytes.Buffer) { b.FprintHex(w) }, "CursorBuffer test Length: 4. Hex Print\n0x01 0x00 0x00 0xff \n"},
		{"ascii", func(w *bytes.Buffer) { b.FprintASCII(w) }, "CursorBuffer test Length: 4. ASCII Print\n. . . . \n"},
		{"both", func(w *bytes.Buffer) { b.FprintAH(w) }, "CursorBuffer test Length: 4. ASCII & Hex Print\n0x01 0x00 0x00 0xff \n. . . . \n"},
		{"position", func(w *bytes.Buffer) { b.FprintPosition(w) }, "CursorBuffer test Length: 4 Read Pos: 1. Write Pos: 2\n"},
	}

	for _, c := range cases {
		w := new(bytes.Buffer)
		c.print(w)

		if w.String() != c.expected {
			t.Errorf("%s: expected %q, got %q", c.name, c.expected, w.String())
		}

		if b.ReadPos() != 1 || b.WritePos() != 2 {
			t.Errorf("%s: printing moved the cursors to read %v write %v", c.name, b.ReadPos(), b.WritePos())
		}
	}
}

func TestPrintASCII(t *testing.T) {
	b := NewCursorBuffer([]byte("MMV\x00"))

	w := new(bytes.Buffer)
	b.FprintASCII(w)

	expected := "CursorBuffer  Length: 4. ASCII Print\nM M V . \n"
	if w.String() != expected {
		t.Errorf("expected %q, got %q", expected, w.String())
	}
}
