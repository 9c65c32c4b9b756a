package bytebuffer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryMappedRegion(t *testing.T) {
	loc := filepath.Join(t.TempDir(), "bytebuffer_memorymappedregion_test.tmp")

	r, err := NewMemoryMappedRegion(loc, 10)
	if err != nil {
		t.Fatal("Cannot proceed with test as create region failed:", err)
	}

	if _, err = os.Stat(loc); err != nil {
		t.Fatalf("No File created at %v despite the region being initialized", loc)
	}

	if r.Size() != 10 || len(r.Bytes()) != 10 {
		t.Errorf("expected a 10 byte mapping, got %v", r.Size())
	}

	b := r.Buffer()
	b.SetWritePos(5)
	b.Put('x')

	if err = r.Flush(); err != nil {
		t.Error(err)
	}

	data, err := os.ReadFile(loc)
	if err != nil {
		t.Fatal("Cannot read data from memory mapped file")
	}

	if data[5] != 'x' {
		t.Error("Data Written in buffer not getting reflected in file")
	}

	if err = r.Unmap(true); err != nil {
		t.Error(err)
	}

	if _, err := os.Stat(loc); err == nil {
		t.Error("Memory Mapped File not getting deleted on Unmap")
	}
}

func TestMemoryMappedRegionReplacesFile(t *testing.T) {
	loc := filepath.Join(t.TempDir(), "region")

	if err := os.WriteFile(loc, []byte("stale content"), 0644); err != nil {
		t.Fatal(err)
	}

	r, err := NewMemoryMappedRegion(loc, 4)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Unmap(false)

	for i, v := range r.Bytes() {
		if v != 0 {
			t.Errorf("pos: %v, expected: 0, got %v", i, v)
		}
	}
}

func TestNewMemoryMappedRegionSize(t *testing.T) {
	if _, err := NewMemoryMappedRegion(filepath.Join(t.TempDir(), "empty"), 0); err == nil {
		t.Error("expected an error mapping an empty region")
	}
}

func TestOpenMemoryMappedRegion(t *testing.T) {
	loc := filepath.Join(t.TempDir(), "existing")

	if err := os.WriteFile(loc, []byte{1, 2, 0, 2}, 0644); err != nil {
		t.Fatal(err)
	}

	r, err := OpenMemoryMappedRegion(loc, true)
	if err != nil {
		t.Fatal(err)
	}

	if r.Location() != loc {
		t.Errorf("expected location %v, got %v", loc, r.Location())
	}

	b := r.Buffer()
	if b.Size() != 4 {
		t.Errorf("expected size 4, got %v", b.Size())
	}

	b.Replace(2, 7, 0, false)

	if err = r.Flush(); err != nil {
		t.Error(err)
	}

	if err = r.Unmap(false); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(loc)
	if err != nil {
		t.Fatal(err)
	}

	if data[1] != 7 || data[3] != 2 {
		t.Errorf("expected [1 7 0 2], got %v", data)
	}
}

func TestOpenMemoryMappedRegionReadOnly(t *testing.T) {
	loc := filepath.Join(t.TempDir(), "readonly")

	if err := os.WriteFile(loc, []byte("MMV"), 0444); err != nil {
		t.Fatal(err)
	}

	r, err := OpenMemoryMappedRegion(loc, false)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Unmap(false)

	b := r.Buffer()
	if v := b.Get(); v != 'M' {
		t.Errorf("expected %v, got %v", 'M', v)
	}
	if v := b.GetAt(2); v != 'V' {
		t.Errorf("expected %v, got %v", 'V', v)
	}
}

func TestOpenMemoryMappedRegionErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := OpenMemoryMappedRegion(filepath.Join(dir, "missing"), false); err == nil {
		t.Error("expected an error opening a missing file")
	}

	empty := filepath.Join(dir, "empty")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := OpenMemoryMappedRegion(empty, false); err == nil {
		t.Error("expected an error mapping an empty file")
	}
}
