// Package bench measures how long full passes of CursorBuffer accessors take
// over a region of a given size.
package bench

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/codahale/hdrhistogram"
	"github.com/pkg/errors"

	"github.com/performancecopilot/cursorbuf/bytebuffer"
)

// names of the measurable operations
const (
	PutByte   = "put-byte"
	GetByte   = "get-byte"
	PutInt    = "put-int"
	GetInt    = "get-int"
	PutLong   = "put-long"
	GetLong   = "get-long"
	PutDouble = "put-double"
	GetDouble = "get-double"
	PutBytes  = "put-bytes"
	Replace   = "replace"
)

// MinSize is the smallest region a pass can run over, it has to hold one 8 byte value
const MinSize = 8

// maxLatency is the highest pass duration the histogram tracks, longer passes are clamped
const maxLatency = time.Minute

// pass runs one operation over the whole of b, src is scratch data of the same size
type pass func(b *bytebuffer.CursorBuffer, src []byte)

var ops = map[string]pass{
	PutByte: func(b *bytebuffer.CursorBuffer, _ []byte) {
		for i := 0; i < b.Size(); i++ {
			b.Put(byte(i))
		}
	},
	GetByte: func(b *bytebuffer.CursorBuffer, _ []byte) {
		for b.BytesRemaining() > 0 {
			b.Get()
		}
	},
	PutInt: func(b *bytebuffer.CursorBuffer, _ []byte) {
		for i, n := 0, b.Size()/4; i < n; i++ {
			b.PutInt(uint32(i))
		}
	},
	GetInt: func(b *bytebuffer.CursorBuffer, _ []byte) {
		for b.BytesRemaining() >= 4 {
			b.GetInt()
		}
	},
	PutLong: func(b *bytebuffer.CursorBuffer, _ []byte) {
		for i, n := 0, b.Size()/8; i < n; i++ {
			b.PutLong(uint64(i))
		}
	},
	GetLong: func(b *bytebuffer.CursorBuffer, _ []byte) {
		for b.BytesRemaining() >= 8 {
			b.GetLong()
		}
	},
	PutDouble: func(b *bytebuffer.CursorBuffer, _ []byte) {
		for i, n := 0, b.Size()/8; i < n; i++ {
			b.PutDouble(float64(i))
		}
	},
	GetDouble: func(b *bytebuffer.CursorBuffer, _ []byte) {
		for b.BytesRemaining() >= 8 {
			b.GetDouble()
		}
	},
	PutBytes: func(b *bytebuffer.CursorBuffer, src []byte) {
		b.PutBytes(src, len(src))
	},
	Replace: func(b *bytebuffer.CursorBuffer, _ []byte) {
		// a zero key never stops early, so both scans cover the whole region
		b.ReplaceAll(0, 1)
		b.ReplaceAll(1, 0)
	},
}

// Ops returns the names of all operations Run understands, sorted
func Ops() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options configures a Run
type Options struct {
	Op     string // one of Ops()
	Size   int    // region size in bytes
	Passes int    // number of measured passes
}

// Result holds the latency distribution of the passes of a Run
type Result struct {
	Op     string
	Size   int
	Passes int64

	Min, Max, Mean time.Duration
	P50, P90, P99  time.Duration

	BytesPerSecond float64
}

// Run measures opts.Passes passes of opts.Op over a fresh region of opts.Size bytes.
// The region is allocated here and outlives the buffer built over it.
func Run(opts Options) (*Result, error) {
	fn, ok := ops[opts.Op]
	if !ok {
		return nil, errors.Errorf("unknown op %q", opts.Op)
	}

	if opts.Size < MinSize {
		return nil, errors.Errorf("size %d is smaller than %d", opts.Size, MinSize)
	}

	if opts.Passes <= 0 {
		return nil, errors.Errorf("invalid number of passes %d", opts.Passes)
	}

	storage := make([]byte, opts.Size)
	src := make([]byte, opts.Size)
	for i := range src {
		src[i] = byte(i)
	}

	b := bytebuffer.NewCursorBuffer(storage)
	h := hdrhistogram.New(1, int64(maxLatency), 3)

	var total time.Duration
	for i := 0; i < opts.Passes; i++ {
		b.Rewind()

		start := time.Now()
		fn(b, src)
		d := time.Since(start)

		total += d
		if err := h.RecordValue(clamp(d)); err != nil {
			return nil, errors.Wrap(err, "cannot record pass latency")
		}
	}

	r := &Result{
		Op:     opts.Op,
		Size:   opts.Size,
		Passes: h.TotalCount(),
		Min:    time.Duration(h.Min()),
		Max:    time.Duration(h.Max()),
		Mean:   time.Duration(h.Mean()),
		P50:    time.Duration(h.ValueAtQuantile(50)),
		P90:    time.Duration(h.ValueAtQuantile(90)),
		P99:    time.Duration(h.ValueAtQuantile(99)),
	}

	if total > 0 {
		r.BytesPerSecond = float64(opts.Size) * float64(opts.Passes) / total.Seconds()
	}

	return r, nil
}

func clamp(d time.Duration) int64 {
	switch {
	case d < 1:
		return 1
	case d > maxLatency:
		return int64(maxLatency)
	}
	return int64(d)
}

// Fprint writes the result to w as an aligned table
func (r *Result) Fprint(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintf(tw, "op\t%s\n", r.Op)
	fmt.Fprintf(tw, "size\t%d\n", r.Size)
	fmt.Fprintf(tw, "passes\t%d\n", r.Passes)
	fmt.Fprintf(tw, "min\t%v\n", r.Min)
	fmt.Fprintf(tw, "mean\t%v\n", r.Mean)
	fmt.Fprintf(tw, "p50\t%v\n", r.P50)
	fmt.Fprintf(tw, "p90\t%v\n", r.P90)
	fmt.Fprintf(tw, "p99\t%v\n", r.P99)
	fmt.Fprintf(tw, "max\t%v\n", r.Max)
	fmt.Fprintf(tw, "throughput\t%.0f B/s\n", r.BytesPerSecond)

	return tw.Flush()
}
