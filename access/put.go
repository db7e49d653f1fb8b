package access

import (
	"encoding/binary"
	"errors"
	"sync"

	"github.com/quickwritereader/packbits/types"
)

var putAccessPool = sync.Pool{
	New: func() interface{} {
		return &PutAccess{
			buf:     make([]byte, 0, 1024),
			offsets: make([]byte, 0, 64),
		}
	},
}

func GetPutAccess() *PutAccess {
	p := putAccessPool.Get().(*PutAccess)
	p.buf = p.buf[:0]
	p.offsets = p.offsets[:0]
	p.position = 0
	return p
}

func ReleasePutAccess(pa *PutAccess) {
	putAccessPool.Put(pa)
}

// PutAccess builds a frame: a block of uint32 headers (offset<<3 | tag)
// followed by the payload. The first header holds the absolute payload
// base, the others hold offsets relative to it, and a TypeEnd header closes
// the block with the payload length.
type PutAccess struct {
	buf      []byte // payload buffer
	offsets  []byte // header entries: offset + type tag
	position int    // current payload write position
}

// NewPutAccess initializes a new packing buffer
func NewPutAccess() *PutAccess {
	return &PutAccess{
		buf:     make([]byte, 0, 256),
		offsets: make([]byte, 0, 32),
	}
}

func NewPutAccessFromPool() *PutAccess {
	return GetPutAccess()
}

func (p *PutAccess) appendHeader(tag types.Type) {
	p.offsets = binary.LittleEndian.AppendUint32(p.offsets, types.EncodeHeader(p.position, tag))
}

func (p *PutAccess) AppendTagAndValue(tag types.Type, val []byte) {
	p.appendHeader(tag)
	p.buf = append(p.buf, val...)
	p.position = len(p.buf)
}

// AddUint32 packs a uint32 value.
func (p *PutAccess) AddUint32(v uint32) {
	p.appendHeader(types.TypeInteger)
	p.buf = binary.LittleEndian.AppendUint32(p.buf, v)
	p.position = len(p.buf)
}

// AddWords packs a buffer of 17-bit packed words.
func (p *PutAccess) AddWords(packed []byte) {
	p.AppendTagAndValue(types.TypeWords, packed)
}

func (p *PutAccess) AddPackable(v Packable) {
	v.PackInto(p)
}

func (p *PutAccess) BeginTuple() *PutAccess {
	p.appendHeader(types.TypeTuple)
	return NewPutAccessFromPool()
}

func (p *PutAccess) EndNested(nested *PutAccess) {
	p.buf = nested.PackAppend(p.buf)
	ReleasePutAccess(nested)
	p.position = len(p.buf)
}

// finish appends the TypeEnd header and rewrites the first header with the
// absolute payload base. It returns the header block size.
func (p *PutAccess) finish() int {
	p.offsets = binary.LittleEndian.AppendUint32(p.offsets, types.EncodeEnd(p.position))
	headerSize := len(p.offsets)
	first := types.DecodeType(binary.LittleEndian.Uint32(p.offsets))
	binary.LittleEndian.PutUint32(p.offsets, types.EncodeHeader(headerSize, first))
	return headerSize
}

// Pack finalizes the buffer: header + payload + TypeEnd
func (p *PutAccess) Pack() []byte {
	headerSize := p.finish()
	final := make([]byte, headerSize+len(p.buf))
	copy(final, p.offsets)
	copy(final[headerSize:], p.buf)
	return final
}

func (p *PutAccess) PackAppend(buf []byte) []byte {
	p.finish()
	buf = append(buf, p.offsets...)
	return append(buf, p.buf...)
}

// PackSize must be called before Pack, which adds the TypeEnd header.
func (p *PutAccess) PackSize() int {
	return len(p.offsets) + len(p.buf) + HeaderTagSize
}

func (p *PutAccess) PackBuff(buffer []byte) (int, error) {
	if len(buffer) < p.PackSize() {
		return 0, errors.New("insufficient buffer")
	}
	headerSize := p.finish()
	n := copy(buffer, p.offsets)
	n += copy(buffer[headerSize:], p.buf)
	return n, nil
}
