package bytebuffer

// Get reads a byte at the read cursor
func (b *CursorBuffer) Get() byte { return read[byte](b) }

// GetAt reads the byte at index
func (b *CursorBuffer) GetAt(index int) byte { return load[byte](b, index) }

// GetChar reads a signed 8 bit character at the read cursor
func (b *CursorBuffer) GetChar() int8 { return read[int8](b) }

// GetCharAt reads a signed 8 bit character at index
func (b *CursorBuffer) GetCharAt(index int) int8 { return load[int8](b, index) }

// GetShort reads an uint16 at the read cursor
func (b *CursorBuffer) GetShort() uint16 { return read[uint16](b) }

// GetShortAt reads an uint16 at index
func (b *CursorBuffer) GetShortAt(index int) uint16 { return load[uint16](b, index) }

// GetInt reads an uint32 at the read cursor
func (b *CursorBuffer) GetInt() uint32 { return read[uint32](b) }

// GetIntAt reads an uint32 at index
func (b *CursorBuffer) GetIntAt(index int) uint32 { return load[uint32](b, index) }

// GetLong reads an uint64 at the read cursor
func (b *CursorBuffer) GetLong() uint64 { return read[uint64](b) }

// GetLongAt reads an uint64 at index
func (b *CursorBuffer) GetLongAt(index int) uint64 { return load[uint64](b, index) }

// GetFloat reads a float32 at the read cursor
func (b *CursorBuffer) GetFloat() float32 { return read[float32](b) }

// GetFloatAt reads a float32 at index
func (b *CursorBuffer) GetFloatAt(index int) float32 { return load[float32](b, index) }

// GetDouble reads a float64 at the read cursor
func (b *CursorBuffer) GetDouble() float64 { return read[float64](b) }

// GetDoubleAt reads a float64 at index
func (b *CursorBuffer) GetDoubleAt(index int) float64 { return load[float64](b, index) }

// Put writes a byte at the write cursor
func (b *CursorBuffer) Put(val byte) { appendValue(b, val) }

// PutAt overwrites the byte at index
func (b *CursorBuffer) PutAt(val byte, index int) { store(b, val, index) }

// PutChar writes a signed 8 bit character at the write cursor
func (b *CursorBuffer) PutChar(val int8) { appendValue(b, val) }

// PutCharAt overwrites the character at index
func (b *CursorBuffer) PutCharAt(val int8, index int) { store(b, val, index) }

// PutShort writes an uint16 at the write cursor
func (b *CursorBuffer) PutShort(val uint16) { appendValue(b, val) }

// PutShortAt overwrites 2 bytes at index
func (b *CursorBuffer) PutShortAt(val uint16, index int) { store(b, val, index) }

// PutInt writes an uint32 at the write cursor
func (b *CursorBuffer) PutInt(val uint32) { appendValue(b, val) }

// PutIntAt overwrites 4 bytes at index
func (b *CursorBuffer) PutIntAt(val uint32, index int) { store(b, val, index) }

// PutLong writes an uint64 at the write cursor
func (b *CursorBuffer) PutLong(val uint64) { appendValue(b, val) }

// PutLongAt overwrites 8 bytes at index
func (b *CursorBuffer) PutLongAt(val uint64, index int) { store(b, val, index) }

// PutFloat writes a float32 at the write cursor
func (b *CursorBuffer) PutFloat(val float32) { appendValue(b, val) }

// PutFloatAt overwrites 4 bytes at index
func (b *CursorBuffer) PutFloatAt(val float32, index int) { store(b, val, index) }

// PutDouble writes a float64 at the write cursor
func (b *CursorBuffer) PutDouble(val float64) { appendValue(b, val) }

// PutDoubleAt overwrites 8 bytes at index
func (b *CursorBuffer) PutDoubleAt(val float64, index int) { store(b, val, index) }
