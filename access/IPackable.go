package access

import (
	"github.com/quickwritereader/packbits/types"
)

// Packable is a value that can place itself into a frame, either directly
// into a preallocated buffer (HeaderType, ValueSize, Write) or through a
// PutAccess.
type Packable interface {
	HeaderType() types.Type
	ValueSize() int
	Write(buf []byte, pos int) int
	PackInto(p *PutAccess)
}
