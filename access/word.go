package access

import (
	"strconv"

	"github.com/quickwritereader/packbits/types"
)

// Word reads and writes one 17-bit value inside a borrowed byte buffer.
//
// The value starts at bit start of data[0] (bit 0 is the most significant
// bit) and always spans data[0], data[1] and data[2]. Bits of data[0] before
// start and bits of data[2] after end belong to neighbouring words and are
// never modified.
//
// A Word does not own data and must not outlive it.
type Word struct {
	data  []byte // anchor byte onwards, at least types.WordSpan long
	start uint8  // first bit in data[0]
	end   uint8  // last bit in data[2]
}

// NewWord binds a word accessor to data at the given start bit.
// No validation is done: data must hold at least types.WordSpan bytes.
func NewWord(data []byte, start uint8) Word {
	start &= 7
	return Word{
		data:  data,
		start: start,
		end:   (start + types.BitLength - 1) & 7,
	}
}

func (w Word) Start() uint8 { return w.start }
func (w Word) End() uint8   { return w.end }

// mask of the word's bits in the anchor byte
func (w Word) firstMask() byte { return 0xFF >> w.start }

// mask of the word's bits in the third byte
func (w Word) lastMask() byte { return 0xFF << (7 - w.end) }

// Uint32 decodes the packed value.
func (w Word) Uint32() uint32 {
	first := uint32(w.data[0]&w.firstMask()) << (8 + w.end + 1)
	second := uint32(w.data[1]) << (w.end + 1)
	third := uint32(w.data[2]&w.lastMask()) >> (7 - w.end)
	return first | second | third
}

// Clear zeroes the word's 17 bits and nothing else.
func (w Word) Clear() {
	w.data[0] &^= w.firstMask()
	w.data[1] = 0
	w.data[2] &^= w.lastMask()
}

// Set encodes the low 17 bits of v.
//
// Values above types.MaxValue are truncated without error; callers that need
// range enforcement must check before calling Set.
func (w Word) Set(v uint32) {
	v &= types.MaxValue
	w.Clear()
	w.data[0] |= byte(v >> (8 + w.end + 1))
	w.data[1] = byte(v >> (w.end + 1))
	w.data[2] |= byte(v << (7 - w.end))
}

// Assign copies the value held by o.
func (w Word) Assign(o Word) { w.Set(o.Uint32()) }

// Arithmetic below is done in uint32 space and wraps; the result is
// truncated to 17 bits on store.

func (w Word) Add(o Word)         { w.AddUint32(o.Uint32()) }
func (w Word) AddUint32(v uint32) { w.Set(w.Uint32() + v) }
func (w Word) Sub(o Word)         { w.SubUint32(o.Uint32()) }
func (w Word) SubUint32(v uint32) { w.Set(w.Uint32() - v) }
func (w Word) Mul(o Word)         { w.MulUint32(o.Uint32()) }
func (w Word) MulUint32(v uint32) { w.Set(w.Uint32() * v) }

// String returns the decoded value in decimal.
func (w Word) String() string {
	return strconv.FormatUint(uint64(w.Uint32()), 10)
}
