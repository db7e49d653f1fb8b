package access

import (
	"testing"

	"github.com/quickwritereader/packbits/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWord_ExplicitByteMatch(t *testing.T) {
	cases := []struct {
		start    uint8
		value    uint32
		expected []byte
	}{
		{0, 1, []byte{0x00, 0x00, 0x80}},
		{0, types.MaxValue, []byte{0xFF, 0xFF, 0x80}},
		{3, types.MaxValue, []byte{0x1F, 0xFF, 0xF0}},
		{7, types.MaxValue, []byte{0x01, 0xFF, 0xFF}},
		{7, 0x10000, []byte{0x01, 0x00, 0x00}},
		{1, 0x0ABCD, []byte{0x2A, 0xF3, 0x40}},
	}

	for _, tc := range cases {
		data := make([]byte, types.WordSpan)
		w := NewWord(data, tc.start)
		w.Set(tc.value)
		assert.Equalf(t, tc.expected, data, "start=%d value=%#x", tc.start, tc.value)
		assert.Equal(t, tc.value, w.Uint32())
	}
}

func TestWord_RoundTripAllOffsets(t *testing.T) {
	data := make([]byte, types.WordSpan)
	for start := uint8(0); start < 8; start++ {
		w := NewWord(data, start)
		assert.Equal(t, start, w.Start())
		assert.Equal(t, start, w.End())
		for v := uint32(0); v <= types.MaxValue; v++ {
			w.Set(v)
			if w.Uint32() != v {
				require.FailNowf(t, "round trip", "start=%d value=%d got=%d", start, v, w.Uint32())
			}
		}
	}
}

func TestWord_NeighbourBitsUntouched(t *testing.T) {
	values := []uint32{0, 1, 0x5555, 0xAAAA, 0x10000, types.MaxValue}
	for start := uint8(0); start < 8; start++ {
		for _, fill := range []byte{0x00, 0xFF, 0xA5} {
			for _, v := range values {
				data := []byte{fill, fill, fill}
				w := NewWord(data, start)
				w.Set(v)

				outsideFirst := ^byte(0xFF >> start)
				outsideLast := ^byte(0xFF << (7 - w.End()))
				assert.Equal(t, fill&outsideFirst, data[0]&outsideFirst, "start=%d fill=%#x v=%d", start, fill, v)
				assert.Equal(t, fill&outsideLast, data[2]&outsideLast, "start=%d fill=%#x v=%d", start, fill, v)
				assert.Equal(t, v, w.Uint32())
			}
		}
	}
}

func TestWord_Clear(t *testing.T) {
	data := []byte{0xFF, 0xFF, 0xFF}
	w := NewWord(data, 4)
	w.Clear()

	assert.Equal(t, uint32(0), w.Uint32())
	assert.Equal(t, []byte{0xF0, 0x00, 0x07}, data)
}

func TestWord_SetTruncates(t *testing.T) {
	data := []byte{0xFF, 0x00, 0xFF}
	w := NewWord(data, 2)
	w.Set(types.MaxValue + 1 + 42)

	assert.Equal(t, uint32(42), w.Uint32())
	assert.Equal(t, byte(0xC0), data[0]&0xC0)
	assert.Equal(t, byte(0x1F), data[2]&0x1F)
}

func TestWord_Assign(t *testing.T) {
	a := NewWord(make([]byte, 3), 0)
	b := NewWord(make([]byte, 3), 5)
	a.Set(65000)
	b.Assign(a)

	assert.Equal(t, uint32(65000), b.Uint32())
	assert.Equal(t, "65000", b.String())
}

func TestWord_Accumulate(t *testing.T) {
	newWord := func(start uint8, v uint32) Word {
		w := NewWord(make([]byte, 3), start)
		w.Set(v)
		return w
	}

	t.Run("add", func(t *testing.T) {
		x, y := newWord(0, 20), newWord(3, 15)
		x.Add(y)
		assert.Equal(t, uint32(35), x.Uint32())
		assert.Equal(t, uint32(15), y.Uint32())
		x.AddUint32(10)
		assert.Equal(t, uint32(45), x.Uint32())
	})

	t.Run("sub", func(t *testing.T) {
		x, y := newWord(2, 20), newWord(6, 15)
		x.Sub(y)
		assert.Equal(t, uint32(5), x.Uint32())
		x.SubUint32(10)
		assert.Equal(t, uint32(131067), x.Uint32())
	})

	t.Run("mul", func(t *testing.T) {
		x, y := newWord(7, 20), newWord(1, 15)
		x.Mul(y)
		assert.Equal(t, uint32(300), x.Uint32())
		x.Set(1000)
		x.MulUint32(1000)
		assert.Equal(t, uint32(82496), x.Uint32())
	})

	t.Run("add wraps", func(t *testing.T) {
		x := newWord(4, types.MaxValue)
		x.AddUint32(1)
		assert.Equal(t, uint32(0), x.Uint32())
	})
}

func TestWordHelpers(t *testing.T) {
	buf := make([]byte, types.ByteLen(2))
	WriteWord(buf, 0, 1)
	WriteWord(buf, 1, 2)

	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x00, 0x80}, buf)
	assert.Equal(t, uint32(1), ReadWord(buf, 0))
	assert.Equal(t, uint32(2), ReadWord(buf, 1))
	assert.Equal(t, uint8(1), WordAt(buf, 1).Start())
}
