package access

import (
	"encoding/binary"

	"github.com/quickwritereader/packbits/types"
)

const HeaderTagSize = types.HeaderTagSize

// WriteTypeHeader writes a header to the buffer at pos and returns the new position.
func WriteTypeHeader(buffer []byte, pos int, encodedPos int, t types.Type) (newPos int) {
	header := types.EncodeHeader(encodedPos, t)
	binary.LittleEndian.PutUint32(buffer[pos:], header)
	return pos + HeaderTagSize
}

// WriteUint32 writes a uint32 value to the buffer.
func WriteUint32(buffer []byte, pos int, v uint32) int {
	binary.LittleEndian.PutUint32(buffer[pos:], v)
	return pos + 4
}

// WriteBytes copies raw bytes into the buffer.
func WriteBytes(buffer []byte, pos int, v []byte) int {
	return pos + copy(buffer[pos:], v)
}

// WordAt returns the accessor of the i-th packed word of buffer.
// Unchecked: buffer must hold at least types.ByteLen(i+1) bytes.
func WordAt(buffer []byte, i int) Word {
	pos, bit := types.Locate(i)
	return NewWord(buffer[pos:], bit)
}

// WriteWord encodes v as the i-th packed word of buffer.
func WriteWord(buffer []byte, i int, v uint32) {
	WordAt(buffer, i).Set(v)
}

// ReadWord decodes the i-th packed word of buffer.
func ReadWord(buffer []byte, i int) uint32 {
	return WordAt(buffer, i).Uint32()
}
