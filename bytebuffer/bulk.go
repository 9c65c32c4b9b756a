package bytebuffer

// GetBytes reads length bytes one at a time from the read cursor into dst.
// The read cursor ends up length bytes further.
func (b *CursorBuffer) GetBytes(dst []byte, length int) {
	for i := 0; i < length; i++ {
		dst[i] = b.Get()
	}
}

// PutBytes appends the first length bytes of src at the write cursor
func (b *CursorBuffer) PutBytes(src []byte, length int) {
	for i := 0; i < length; i++ {
		b.Put(src[i])
	}
}

// PutBytesAt moves the write cursor to index and then appends the first length
// bytes of src, so the write cursor ends at index+length
func (b *CursorBuffer) PutBytesAt(src []byte, length, index int) {
	b.wpos = index
	b.PutBytes(src, length)
}

// PutBuffer appends the entire content of src, all src.Size() bytes, whatever
// cursors src may have
func (b *CursorBuffer) PutBuffer(src Source) {
	l := src.Size()
	for i := 0; i < l; i++ {
		b.Put(src.GetAt(i))
	}
}

// Replace overwrites occurrences of key with rep, scanning from start to the end
// of the region. Unless key itself is 0, the scan stops at the first 0 byte.
// If firstOccurrenceOnly is set only the first match is replaced.
func (b *CursorBuffer) Replace(key, rep byte, start int, firstOccurrenceOnly bool) {
	for i := start; i < b.capacity; i++ {
		data := b.GetAt(i)

		// hit a terminator before finding the key
		if key != 0 && data == 0 {
			break
		}

		if data == key {
			b.PutAt(rep, i)
			if firstOccurrenceOnly {
				return
			}
		}
	}
}

// ReplaceAll is Replace(key, rep, 0, false)
func (b *CursorBuffer) ReplaceAll(key, rep byte) { b.Replace(key, rep, 0, false) }
