package packable

import (
	"fmt"

	"github.com/quickwritereader/packbits/access"
	"github.com/quickwritereader/packbits/types"
	"github.com/quickwritereader/packbits/utils"
)

// Array owns a byte buffer holding a sequence of 17-bit words with no
// padding: word i starts at bit i*17.
//
// Index is the unchecked fast path and At the checked one. Word accessors
// returned by either borrow the array's buffer and are invalidated by Move
// and Release.
type Array struct {
	data   []byte
	length int
	pooled bool // data came from utils.Default
}

// New allocates a zeroed array of n words.
func New(n int) *Array {
	if n < 0 || n > types.MaxWords {
		panic("packable.New: length out of range")
	}
	return &Array{
		data:   make([]byte, types.ByteLen(n)),
		length: n,
	}
}

// NewPooled allocates an array of n words from the shared buffer pool.
// Words are not initialized: write every slot before reading it.
// The buffer goes back to the pool on Release.
func NewPooled(n int) *Array {
	if n < 0 || n > types.MaxWords {
		panic("packable.NewPooled: length out of range")
	}
	return &Array{
		data:   utils.Default.Acquire(types.ByteLen(n)),
		length: n,
		pooled: true,
	}
}

// FromValues allocates an array holding vs, encoded in order.
func FromValues(vs ...uint32) *Array {
	a := New(len(vs))
	for i, v := range vs {
		a.Index(i).Set(v)
	}
	return a
}

// Len returns the number of words.
func (a *Array) Len() int { return a.length }

// ByteLen returns the size of the backing buffer.
func (a *Array) ByteLen() int { return len(a.data) }

// Bytes returns the backing buffer. It is borrowed, not copied.
func (a *Array) Bytes() []byte { return a.data }

// Index returns the accessor of word i without bounds checking.
func (a *Array) Index(i int) access.Word {
	pos, bit := types.Locate(i)
	return access.NewWord(a.data[pos:], bit)
}

// At returns the accessor of word i, or ErrOutOfRange.
func (a *Array) At(i int) (access.Word, error) {
	if i < 0 || i >= a.length {
		return access.Word{}, fmt.Errorf("Array.At(%d) with length %d: %w", i, a.length, access.ErrOutOfRange)
	}
	return a.Index(i), nil
}

// Clone returns an independent copy with the identical bit pattern,
// trailing bits of the last byte included.
func (a *Array) Clone() *Array {
	c := &Array{
		data:   make([]byte, len(a.data)),
		length: a.length,
	}
	copy(c.data, a.data)
	return c
}

// Move transfers the buffer to a new Array and leaves a empty.
func (a *Array) Move() *Array {
	m := &Array{data: a.data, length: a.length, pooled: a.pooled}
	a.data, a.length, a.pooled = nil, 0, false
	return m
}

// Release drops the buffer, handing it back to the pool when it came from
// one. The array is empty afterwards; releasing twice is a no-op.
func (a *Array) Release() {
	if a.pooled {
		utils.Default.Release(a.data)
	}
	a.data, a.length, a.pooled = nil, 0, false
}

// Values decodes every word.
func (a *Array) Values() []uint32 {
	out := make([]uint32, a.length)
	for i := range out {
		out[i] = a.Index(i).Uint32()
	}
	return out
}

// Fill sets every word to v.
func (a *Array) Fill(v uint32) {
	for i := 0; i < a.length; i++ {
		a.Index(i).Set(v)
	}
}
