// Package bytebuffer implements a cursor addressed buffer over a fixed byte region
// that the caller owns.
//
// bytes.Buffer doesn't fit here, it grows its own storage and only ever appends at
// the end. What is needed instead is a view over memory somebody else allocated
// (a plain slice, a memory mapped file) with two independent cursors: one that
// position-implicit reads consume and one that position-implicit writes consume,
// plus the freedom to read or overwrite any offset without touching either cursor.
//
// CursorBuffer does no bounds checking. Every accessor trusts that the caller sized
// the region correctly, reading or writing outside [0, Size()) is undefined behavior,
// exactly like raw memory access. Values are stored in the machine's native byte order.
package bytebuffer

// Source is anything whose whole content can be copied into a CursorBuffer
// with PutBuffer.
type Source interface {
	Size() int
	GetAt(index int) byte
}

// Buffer defines the accessor surface of a CursorBuffer
type Buffer interface {
	Source

	Bytes() []byte
	BytesRemaining() int

	ReadPos() int
	SetReadPos(int)
	WritePos() int
	SetWritePos(int)
	Rewind()

	Peek() byte

	Get() byte
	GetChar() int8
	GetCharAt(int) int8
	GetShort() uint16
	GetShortAt(int) uint16
	GetInt() uint32
	GetIntAt(int) uint32
	GetLong() uint64
	GetLongAt(int) uint64
	GetFloat() float32
	GetFloatAt(int) float32
	GetDouble() float64
	GetDoubleAt(int) float64
	GetBytes(dst []byte, length int)

	Put(byte)
	PutAt(byte, int)
	PutChar(int8)
	PutCharAt(int8, int)
	PutShort(uint16)
	PutShortAt(uint16, int)
	PutInt(uint32)
	PutIntAt(uint32, int)
	PutLong(uint64)
	PutLongAt(uint64, int)
	PutFloat(float32)
	PutFloatAt(float32, int)
	PutDouble(float64)
	PutDoubleAt(float64, int)
	PutBytes(src []byte, length int)
	PutBytesAt(src []byte, length, index int)
	PutBuffer(Source)

	Replace(key, rep byte, start int, firstOccurrenceOnly bool)
	ReplaceAll(key, rep byte)
}

var _ Buffer = (*CursorBuffer)(nil)
