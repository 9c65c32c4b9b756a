package bytebuffer

import "unsafe"

// scalar lists the fixed width types a CursorBuffer can load and store
type scalar interface {
	~uint8 | ~int8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// CursorBuffer is a cursor addressed view over a byte region it does not own.
//
// It never allocates, grows, copies or frees the region, and it must not outlive it.
type CursorBuffer struct {
	buf      []byte         // borrowed storage, len == capacity
	base     unsafe.Pointer // address of buf[0]
	capacity int            // addressable bytes, fixed at construction
	rpos     int            // read cursor
	wpos     int            // write cursor
	name     string         // diagnostic label, see diagnostic.go
}

// NewCursorBuffer creates a CursorBuffer over the passed slice, the capacity
// is len(storage)
func NewCursorBuffer(storage []byte) *CursorBuffer {
	return &CursorBuffer{
		buf:      storage,
		base:     unsafe.Pointer(unsafe.SliceData(storage)),
		capacity: len(storage),
	}
}

// NewCursorBufferPointer creates a CursorBuffer over capacity bytes starting at p.
//
// Nothing verifies that p actually addresses capacity bytes.
func NewCursorBufferPointer(p unsafe.Pointer, capacity int) *CursorBuffer {
	return &CursorBuffer{
		buf:      unsafe.Slice((*byte)(p), capacity),
		base:     p,
		capacity: capacity,
	}
}

// Size returns the capacity of the region, not the number of bytes written to it
func (b *CursorBuffer) Size() int { return b.capacity }

// BytesRemaining returns the number of bytes between the read cursor and the end of the region
func (b *CursorBuffer) BytesRemaining() int { return b.capacity - b.rpos }

// Bytes returns the borrowed region
func (b *CursorBuffer) Bytes() []byte { return b.buf }

// ReadPos returns the read cursor
func (b *CursorBuffer) ReadPos() int { return b.rpos }

// SetReadPos moves the read cursor, the position is not validated
func (b *CursorBuffer) SetReadPos(pos int) { b.rpos = pos }

// WritePos returns the write cursor
func (b *CursorBuffer) WritePos() int { return b.wpos }

// SetWritePos moves the write cursor, the position is not validated
func (b *CursorBuffer) SetWritePos(pos int) { b.wpos = pos }

// Rewind puts both cursors back at the start of the region, the content is left as is
func (b *CursorBuffer) Rewind() {
	b.rpos = 0
	b.wpos = 0
}

// Peek returns the byte under the read cursor without advancing it
func (b *CursorBuffer) Peek() byte { return load[byte](b, b.rpos) }

// raw returns n bytes of the region starting at index, unchecked
func (b *CursorBuffer) raw(index int, n uintptr) []byte {
	return unsafe.Slice((*byte)(unsafe.Add(b.base, index)), n)
}

// load copies sizeof(T) bytes at index into a T.
// The copy goes through a byte slice so misaligned offsets are fine.
func load[T scalar](b *CursorBuffer, index int) T {
	var v T
	n := unsafe.Sizeof(v)
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&v)), n), b.raw(index, n))
	return v
}

// read loads a T at the read cursor and advances it
func read[T scalar](b *CursorBuffer) T {
	v := load[T](b, b.rpos)
	b.rpos += int(unsafe.Sizeof(v))
	return v
}

// store overwrites sizeof(T) bytes at index with v
func store[T scalar](b *CursorBuffer, v T, index int) {
	n := unsafe.Sizeof(v)
	copy(b.raw(index, n), unsafe.Slice((*byte)(unsafe.Pointer(&v)), n))
}

// appendValue stores v at the write cursor and advances it
func appendValue[T scalar](b *CursorBuffer, v T) {
	store(b, v, b.wpos)
	b.wpos += int(unsafe.Sizeof(v))
}
