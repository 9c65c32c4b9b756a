package cursorbuf

import (
	"os"
	"path"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/performancecopilot/cursorbuf/bytebuffer"
)

// EraseFileOnStop if set to true, will also delete the memory mapped file
var EraseFileOnStop = false

func regionFileLocation(name string) (string, error) {
	if name == "" {
		return "", errors.New("name cannot be empty")
	}

	if strings.ContainsRune(name, os.PathSeparator) {
		return "", errors.New("name cannot have path separator")
	}

	tdir, present := config["CURSORBUF_TMP_DIR"]
	var loc string
	if present {
		loc = path.Join(rootPath, tdir)
	} else {
		loc = os.TempDir()
	}

	return path.Join(loc, "cursorbuf", name), nil
}

// Region is a named, memory mapped file that owns the storage for CursorBuffers.
//
// Start creates and maps the file, Stop unmaps it. Buffers handed out by Buffer
// are only valid between the two and are not synchronized, the lock only guards
// the lifecycle of the region.
type Region struct {
	sync.Mutex
	loc    string                         // absolute location of the mapped file
	size   int                            // size of the mapping in bytes
	mapped *bytebuffer.MemoryMappedRegion // current mapping, nil when stopped
}

// NewRegion initializes a new Region of size bytes, nothing is mapped until Start
func NewRegion(name string, size int) (*Region, error) {
	if size <= 0 {
		return nil, errors.Errorf("invalid region size %d", size)
	}

	fileLocation, err := regionFileLocation(name)
	if err != nil {
		return nil, err
	}

	if logging {
		logger.Info("deduced location to write the region file",
			zap.String("module", "region"),
			zap.String("location", fileLocation),
		)
	}

	return &Region{
		loc:  fileLocation,
		size: size,
	}, nil
}

// Location returns the path of the file backing the region
func (r *Region) Location() string { return r.loc }

// Size returns the byte length of the region
func (r *Region) Size() int { return r.size }

// Start creates the file and maps it
func (r *Region) Start() error {
	r.Lock()
	defer r.Unlock()

	if r.mapped != nil {
		return errors.New("trying to start an already started region")
	}

	mapped, err := bytebuffer.NewMemoryMappedRegion(r.loc, r.size)
	if err != nil {
		if logging {
			logger.Error("cannot create MemoryMappedRegion",
				zap.String("module", "region"),
				zap.Error(err),
			)
		}
		return err
	}
	r.mapped = mapped

	if logging {
		logger.Info("created MemoryMappedRegion",
			zap.String("module", "region"),
			zap.String("location", r.loc),
			zap.Int("length", r.size),
		)
	}

	return nil
}

// MustStart is a start that panics
func (r *Region) MustStart() {
	if err := r.Start(); err != nil {
		panic(err)
	}
}

// Buffer returns a new CursorBuffer over the whole region, or nil if the
// region is not started
func (r *Region) Buffer() *bytebuffer.CursorBuffer {
	r.Lock()
	defer r.Unlock()

	if r.mapped == nil {
		return nil
	}

	return r.mapped.Buffer()
}

// Flush writes the content of the region back to its file
func (r *Region) Flush() error {
	r.Lock()
	defer r.Unlock()

	if r.mapped == nil {
		return errors.New("trying to flush a stopped region")
	}

	return r.mapped.Flush()
}

// Stop removes the existing mapping, every buffer obtained from the region becomes invalid
func (r *Region) Stop() error {
	r.Lock()
	defer r.Unlock()

	if r.mapped == nil {
		return errors.New("trying to stop an already stopped region")
	}

	if logging {
		logger.Info("stopping the region", zap.String("module", "region"))
	}

	err := r.mapped.Unmap(EraseFileOnStop)
	r.mapped = nil
	if err != nil {
		if logging {
			logger.Error("error unmapping MemoryMappedRegion",
				zap.String("module", "region"),
				zap.Error(err),
			)
		}
		return err
	}

	if logging {
		logger.Info("unmapped the memory mapped file", zap.String("module", "region"))
	}

	return nil
}

// MustStop is a stop that panics
func (r *Region) MustStop() {
	if err := r.Stop(); err != nil {
		panic(err)
	}
}

// OpenFile maps an existing file. The caller owns the returned region and
// must Unmap it once every buffer over it is done.
func OpenFile(loc string, writable bool) (*bytebuffer.MemoryMappedRegion, error) {
	mapped, err := bytebuffer.OpenMemoryMappedRegion(loc, writable)
	if err != nil {
		if logging {
			logger.Error("cannot map file",
				zap.String("module", "region"),
				zap.String("location", loc),
				zap.Error(err),
			)
		}
		return nil, err
	}

	if logging {
		logger.Info("mapped existing file",
			zap.String("module", "region"),
			zap.String("location", loc),
			zap.Int("length", mapped.Size()),
			zap.Bool("writable", writable),
		)
	}

	return mapped, nil
}
