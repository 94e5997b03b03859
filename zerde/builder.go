// Package zerde implements the self-framing, slot-based binary wire format
// used to pass batches of calls and typed parameters across the boundary
// between a platform host and the core runtime.
//
// A Zerde buffer starts with an 8-byte little-endian length prefix (the
// total buffer size in bytes, always a multiple of 4), followed by a
// sequence of 4-byte slots: u32 and f32 take one slot; u64 and f64 take two
// slots and may be preceded by one empty padding slot to land on an 8-byte
// boundary; strings are length-prefixed UTF-32; byte slices are
// length-prefixed and packed 4 bytes per slot, little-endian, with the
// final slot zero-padded if the length isn't a multiple of 4.
package zerde

import (
	"encoding/binary"
	"math"
)

const headerBytes = 8
const slotBytes = 4

// Builder serializes values into a growable Zerde buffer.
type Builder struct {
	buf []byte
}

// NewBuilder returns a Builder with its length-prefix slot reserved.
func NewBuilder() *Builder {
	return &Builder{buf: make([]byte, headerBytes, 4096)}
}

func (b *Builder) grow(n int) {
	need := len(b.buf) + n
	if cap(b.buf) >= need {
		return
	}
	newCap := cap(b.buf) * 2
	if newCap < need {
		newCap = need
	}
	newBuf := make([]byte, len(b.buf), newCap)
	copy(newBuf, b.buf)
	b.buf = newBuf
}

// alignSlots pads with one empty slot if the current position isn't on an
// 8-byte boundary, so a following u64/f64 write lands 8-byte aligned.
func (b *Builder) alignSlots() {
	if (len(b.buf)-headerBytes)%8 != 0 {
		b.grow(slotBytes)
		b.buf = append(b.buf, 0, 0, 0, 0)
	}
}

// PutU32 appends one u32 slot.
func (b *Builder) PutU32(v uint32) {
	b.grow(slotBytes)
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
}

// PutF32 appends one f32 slot.
func (b *Builder) PutF32(v float32) {
	b.PutU32(math.Float32bits(v))
}

// PutU64 appends a (possibly padding-preceded) two-slot u64 value.
func (b *Builder) PutU64(v uint64) {
	b.alignSlots()
	b.grow(8)
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
}

// PutF64 appends a (possibly padding-preceded) two-slot f64 value.
func (b *Builder) PutF64(v float64) {
	b.PutU64(math.Float64bits(v))
}

// PutString appends a length-prefixed UTF-32 string: one u32 slot for the
// rune count, then one u32 slot per rune.
func (b *Builder) PutString(s string) {
	runes := []rune(s)
	b.PutU32(uint32(len(runes)))
	for _, r := range runes {
		b.PutU32(uint32(r))
	}
}

// PutBytes appends a length-prefixed byte slice, packed 4 bytes per slot
// little-endian, with the final slot zero-padded if len(data) isn't a
// multiple of 4.
func (b *Builder) PutBytes(data []byte) {
	b.PutU32(uint32(len(data)))
	full := len(data) / 4
	for i := 0; i < full; i++ {
		v := uint32(data[i*4]) | uint32(data[i*4+1])<<8 | uint32(data[i*4+2])<<16 | uint32(data[i*4+3])<<24
		b.PutU32(v)
	}
	if spare := len(data) % 4; spare > 0 {
		base := full * 4
		var v uint32
		for i := 0; i < spare; i++ {
			v |= uint32(data[base+i]) << uint(8*i)
		}
		b.PutU32(v)
	}
}

// Bytes finalizes the buffer, writing the length prefix, and returns it.
func (b *Builder) Bytes() []byte {
	binary.LittleEndian.PutUint64(b.buf[0:headerBytes], uint64(len(b.buf)))
	return b.buf
}
