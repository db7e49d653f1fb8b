package access

import (
	"encoding/binary"
	"fmt"

	"github.com/quickwritereader/packbits/types"
)

type GetAccess struct {
	buf      []byte // full packed buffer: headers + payload
	argCount int    // number of headers (excluding TypeEnd)
	base     int    // absolute offset to payload start
}

func NewGetAccess(buf []byte) (*GetAccess, error) {
	if len(buf) < HeaderTagSize {
		return nil, fmt.Errorf("NewGetAccess: insufficient header: %w", ErrDecode)
	}

	base := types.DecodeOffset(binary.LittleEndian.Uint32(buf))
	if base < HeaderTagSize || base%HeaderTagSize != 0 || len(buf) < base {
		return nil, fmt.Errorf("NewGetAccess: bad payload base %d: %w", base, ErrDecode)
	}

	return &GetAccess{
		buf:      buf,
		argCount: base/HeaderTagSize - 1,
		base:     base,
	}, nil
}

func (g *GetAccess) ArgCount() int { return g.argCount }

// rangeAt returns absolute start and end offsets for field at pos
func (g *GetAccess) rangeAt(pos int) (tp types.Type, start, end int, err error) {
	if pos < 0 || pos >= g.argCount {
		return types.TypeEnd, 0, 0, fmt.Errorf("field %d of %d: %w", pos, g.argCount, ErrOutOfRange)
	}

	h1 := binary.LittleEndian.Uint32(g.buf[pos*HeaderTagSize:])
	h2 := binary.LittleEndian.Uint32(g.buf[(pos+1)*HeaderTagSize:])

	start, tp = types.DecodeHeader(h1)
	end = types.DecodeOffset(h2) + g.base
	if pos > 0 {
		start += g.base
	}

	if start > end || end > len(g.buf) {
		return tp, 0, 0, fmt.Errorf("field %d: invalid range %d -> %d: %w", pos, start, end, ErrDecode)
	}
	return tp, start, end, nil
}

func (g *GetAccess) GetUint32(pos int) (uint32, error) {
	tp, start, end, err := g.rangeAt(pos)
	if err != nil {
		return 0, fmt.Errorf("GetUint32: %w", err)
	}
	if tp != types.TypeInteger || end-start != 4 {
		return 0, fmt.Errorf("GetUint32: field %d is %v of %d bytes: %w", pos, tp, end-start, ErrDecode)
	}
	return binary.LittleEndian.Uint32(g.buf[start:end]), nil
}

func (g *GetAccess) getTagged(pos int, want types.Type) ([]byte, error) {
	tp, start, end, err := g.rangeAt(pos)
	if err != nil {
		return nil, err
	}
	if tp != want {
		return nil, fmt.Errorf("field %d is %v, want %v: %w", pos, tp, want, ErrDecode)
	}
	return g.buf[start:end], nil
}

// GetWords returns a borrowed slice of a packed word payload.
func (g *GetAccess) GetWords(pos int) ([]byte, error) {
	b, err := g.getTagged(pos, types.TypeWords)
	if err != nil {
		return nil, fmt.Errorf("GetWords: %w", err)
	}
	return b, nil
}

func (g *GetAccess) GetTuple(pos int) (*GetAccess, error) {
	b, err := g.getTagged(pos, types.TypeTuple)
	if err != nil {
		return nil, fmt.Errorf("GetTuple: %w", err)
	}
	nested, err := NewGetAccess(b)
	if err != nil {
		return nil, fmt.Errorf("GetTuple: failed to initialize nested accessor %w", err)
	}
	return nested, nil
}
