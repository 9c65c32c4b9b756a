package cursorbuf

import (
	"fmt"
	"os"
	"path"
	"testing"
)

func TestRegionFileLocation(t *testing.T) {
	restoreConfig(t)

	config = map[string]string{"CURSORBUF_TMP_DIR": "tmp"}
	rootPath = "/root"
	loc, _ := regionFileLocation("test")
	if expected := path.Join("/root", "tmp", "cursorbuf", "test"); loc != expected {
		t.Errorf("location not expected value, expected %v, got %v", expected, loc)
	}

	delete(config, "CURSORBUF_TMP_DIR")
	loc, _ = regionFileLocation("test")
	expected := fmt.Sprintf("%v%ccursorbuf%c%v", os.TempDir(), os.PathSeparator, os.PathSeparator, "test")
	if loc != expected {
		t.Errorf("location not expected value, expected %v, got %v", expected, loc)
	}

	loc, err := regionFileLocation(fmt.Sprintf("%v%c", "test", os.PathSeparator))
	if err == nil {
		t.Errorf("expected error, instead got path %v", loc)
	}

	if _, err = regionFileLocation(""); err == nil {
		t.Error("expected error for an empty name")
	}
}

func useTempDir(t *testing.T) {
	restoreConfig(t)

	rootPath = t.TempDir()
	config = map[string]string{"CURSORBUF_TMP_DIR": "tmp"}
}

func TestNewRegion(t *testing.T) {
	useTempDir(t)

	if _, err := NewRegion("test", 0); err == nil {
		t.Error("expected error for a zero sized region")
	}

	r, err := NewRegion("test", 16)
	if err != nil {
		t.Fatal(err)
	}

	if r.Size() != 16 {
		t.Errorf("expected size 16, got %v", r.Size())
	}

	if r.Location() != path.Join(rootPath, "tmp", "cursorbuf", "test") {
		t.Errorf("unexpected location %v", r.Location())
	}

	if r.Buffer() != nil {
		t.Error("expected no buffer before Start")
	}
}

func TestMapping(t *testing.T) {
	useTempDir(t)

	r, err := NewRegion("test", 8)
	if err != nil {
		t.Fatal(err)
	}

	r.MustStart()
	if _, err = os.Stat(r.Location()); err != nil {
		t.Error("expected a region file to be created on startup")
	}

	if err = r.Start(); err == nil {
		t.Error("expected starting twice to fail")
	}

	b := r.Buffer()
	if b == nil {
		t.Fatal("expected a buffer over a started region")
	}

	if b.Size() != 8 {
		t.Errorf("expected buffer size 8, got %v", b.Size())
	}

	b.PutBytes([]byte("MMV"), 3)
	if err = r.Flush(); err != nil {
		t.Error(err)
	}

	data, err := os.ReadFile(r.Location())
	if err != nil {
		t.Fatal(err)
	}

	if string(data[:3]) != "MMV" {
		t.Errorf("expected file to start with MMV, got %q", data[:3])
	}

	EraseFileOnStop = true
	defer func() { EraseFileOnStop = false }()

	if err = r.Stop(); err != nil {
		t.Error("Cannot stop a mapping")
	}

	if _, err = os.Stat(r.Location()); err == nil {
		t.Error("expected the region file be deleted after stopping")
	}

	if err = r.Stop(); err == nil {
		t.Error("expected stopping a stopped region to fail")
	}

	if err = r.Flush(); err == nil {
		t.Error("expected flushing a stopped region to fail")
	}

	if r.Buffer() != nil {
		t.Error("expected no buffer after Stop")
	}
}

func TestRegionKeepsFile(t *testing.T) {
	useTempDir(t)

	r, err := NewRegion("keep", 4)
	if err != nil {
		t.Fatal(err)
	}

	r.MustStart()
	r.Buffer().PutInt(0xFFFFFFFF)
	r.MustStop()

	data, err := os.ReadFile(r.Location())
	if err != nil {
		t.Fatal("expected the region file to survive Stop:", err)
	}

	for i, v := range data {
		if v != 0xFF {
			t.Errorf("pos: %v, expected: %v, got %v", i, 0xFF, v)
		}
	}
}

func TestOpenFile(t *testing.T) {
	loc := path.Join(t.TempDir(), "existing")
	if err := os.WriteFile(loc, []byte("a.b"), 0644); err != nil {
		t.Fatal(err)
	}

	mapped, err := OpenFile(loc, true)
	if err != nil {
		t.Fatal(err)
	}

	mapped.Buffer().ReplaceAll('.', '-')
	if err = mapped.Unmap(false); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(loc)
	if err != nil {
		t.Fatal(err)
	}

	if string(data) != "a-b" {
		t.Errorf("expected %q, got %q", "a-b", data)
	}

	if _, err = OpenFile(path.Join(t.TempDir(), "missing"), false); err == nil {
		t.Error("expected error opening a missing file")
	}
}
