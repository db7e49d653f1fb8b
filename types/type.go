package types

// Type is a 3-bit tag encoded into a uint32 frame header
type Type uint32

const (
	TypeInvalid Type = 0
	TypeEnd     Type = 0
	TypeInteger Type = 1
	TypeWords   Type = 2 // packed 17-bit payload
	TypeTuple   Type = 4
)

// String returns the human-readable name of the type
func (t Type) String() string {
	switch t {
	case TypeInteger:
		return "Integer"
	case TypeWords:
		return "words"
	case TypeTuple:
		return "tuple"
	default:
		return "invalid"
	}
}

// HeaderTagSize is the width of one frame header entry in bytes.
const HeaderTagSize = 4

func EncodeHeader(offset int, typeID Type) uint32 {
	return uint32(offset<<3) | (uint32(typeID) & 0x07)
}

func EncodeEnd(offset int) uint32 {
	return uint32(offset << 3)
}

// DecodeHeader splits a header entry into offset and type tag
func DecodeHeader(header uint32) (offset int, typeID Type) {
	return int(header >> 3), Type(header & 0x07)
}

func DecodeOffset(header uint32) int {
	return int(header >> 3)
}

func DecodeType(header uint32) Type {
	return Type(header & 0x07)
}
