package bytebuffer

import (
	"os"
	"path"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// MemoryMappedRegion owns a memory mapped file that CursorBuffers can be built over.
// Buffers obtained from it must not be used after Unmap.
type MemoryMappedRegion struct {
	m    mmap.MMap
	loc  string // location of the memory mapped file
	size int    // size in bytes
}

// NewMemoryMappedRegion creates a zero filled file of the passed size at loc,
// replacing any existing file, and maps it read-write
func NewMemoryMappedRegion(loc string, size int) (*MemoryMappedRegion, error) {
	if size <= 0 {
		return nil, errors.Errorf("cannot map a region of %d bytes", size)
	}

	if _, err := os.Stat(loc); err == nil {
		if err = os.Remove(loc); err != nil {
			return nil, errors.Wrapf(err, "cannot remove existing file at %v", loc)
		}
	}

	// ensure destination directory exists
	if err := os.MkdirAll(path.Dir(loc), 0700); err != nil {
		return nil, errors.Wrap(err, "cannot create region directory")
	}

	f, err := os.OpenFile(loc, os.O_CREATE|os.O_RDWR|os.O_EXCL, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create region file")
	}
	defer f.Close()

	l, err := f.Write(make([]byte, size))
	if err != nil {
		return nil, errors.Wrap(err, "cannot initialize region file")
	}
	if l < size {
		return nil, errors.Errorf("could not initialize %d bytes", size)
	}

	m, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return nil, errors.Wrap(err, "cannot map region file")
	}

	return &MemoryMappedRegion{m, loc, size}, nil
}

// OpenMemoryMappedRegion maps an existing, non empty file. Unless writable is set
// the mapping is read only and writing through a buffer over it faults.
func OpenMemoryMappedRegion(loc string, writable bool) (*MemoryMappedRegion, error) {
	flag, prot := os.O_RDONLY, mmap.RDONLY
	if writable {
		flag, prot = os.O_RDWR, mmap.RDWR
	}

	f, err := os.OpenFile(loc, flag, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open %v", loc)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "cannot stat %v", loc)
	}
	if fi.Size() == 0 {
		return nil, errors.Errorf("%v is empty, nothing to map", loc)
	}

	m, err := mmap.Map(f, prot, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot map %v", loc)
	}

	return &MemoryMappedRegion{m, loc, len(m)}, nil
}

// Bytes returns the mapped memory
func (r *MemoryMappedRegion) Bytes() []byte { return r.m }

// Size returns the length of the mapping in bytes
func (r *MemoryMappedRegion) Size() int { return r.size }

// Location returns the path of the mapped file
func (r *MemoryMappedRegion) Location() string { return r.loc }

// Buffer returns a new CursorBuffer over the whole mapping, with both cursors at 0
func (r *MemoryMappedRegion) Buffer() *CursorBuffer { return NewCursorBuffer(r.m) }

// Flush writes modified pages back to the file
func (r *MemoryMappedRegion) Flush() error {
	return errors.Wrap(r.m.Flush(), "cannot flush region")
}

// Unmap will manually delete the memory mapping of a region
func (r *MemoryMappedRegion) Unmap(removefile bool) error {
	if err := r.m.Unmap(); err != nil {
		return errors.Wrap(err, "cannot unmap region")
	}

	if removefile {
		if err := os.Remove(r.loc); err != nil {
			return errors.Wrap(err, "cannot remove region file")
		}
	}

	return nil
}
