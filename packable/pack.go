package packable

import (
	"fmt"

	"github.com/quickwritereader/packbits/access"
	"github.com/quickwritereader/packbits/types"
)

// An Array packs as a two field frame: the word count as TypeInteger and
// the raw buffer as TypeWords.

const arrayHeaderSize = 3 * access.HeaderTagSize

func (a *Array) HeaderType() types.Type { return types.TypeTuple }

// ValueSize returns the size of the packed frame
func (a *Array) ValueSize() int {
	return arrayHeaderSize + 4 + len(a.data)
}

// Write packs the frame into buf at pos and returns the position after it.
func (a *Array) Write(buf []byte, pos int) int {
	posH := pos
	pos += arrayHeaderSize
	deltaStart := pos

	posH = access.WriteTypeHeader(buf, posH, arrayHeaderSize, types.TypeInteger)
	pos = access.WriteUint32(buf, pos, uint32(a.length))
	posH = access.WriteTypeHeader(buf, posH, pos-deltaStart, types.TypeWords)
	pos = access.WriteBytes(buf, pos, a.data)
	_ = access.WriteTypeHeader(buf, posH, pos-deltaStart, types.TypeEnd)
	return pos
}

// PackInto appends the array as a nested tuple.
func (a *Array) PackInto(p *access.PutAccess) {
	nested := p.BeginTuple()
	nested.AddUint32(uint32(a.length))
	nested.AddWords(a.data)
	p.EndNested(nested)
}

// Pack returns the array as a standalone frame.
func (a *Array) Pack() []byte {
	buf := make([]byte, a.ValueSize())
	a.Write(buf, 0)
	return buf
}

// Unpack decodes a frame produced by Pack or PackInto. The words are copied,
// so the result does not alias buf.
func Unpack(buf []byte) (*Array, error) {
	get, err := access.NewGetAccess(buf)
	if err != nil {
		return nil, fmt.Errorf("Unpack: %w", err)
	}
	return unpackFrom(get)
}

// UnpackField decodes an array packed into field pos of a frame.
func UnpackField(get *access.GetAccess, pos int) (*Array, error) {
	nested, err := get.GetTuple(pos)
	if err != nil {
		return nil, fmt.Errorf("UnpackField: %w", err)
	}
	return unpackFrom(nested)
}

func unpackFrom(get *access.GetAccess) (*Array, error) {
	n, err := get.GetUint32(0)
	if err != nil {
		return nil, fmt.Errorf("array length: %w", err)
	}
	words, err := get.GetWords(1)
	if err != nil {
		return nil, fmt.Errorf("array words: %w", err)
	}
	return fromPacked(int(n), words)
}

// fromPacked copies a raw packed buffer holding n words.
func fromPacked(n int, words []byte) (*Array, error) {
	if n < 0 || types.ByteLen(n) != len(words) {
		return nil, fmt.Errorf("%d words need %d bytes, got %d: %w",
			n, types.ByteLen(n), len(words), access.ErrDecode)
	}
	a := New(n)
	copy(a.data, words)
	return a, nil
}

var _ access.Packable = (*Array)(nil)
