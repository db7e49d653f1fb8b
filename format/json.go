package format

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/quickwritereader/packbits/access"
	"github.com/quickwritereader/packbits/view"
)

// WriteJSON writes v as nested JSON arrays following its shape: a 2x3 view
// becomes [[a,b,c],[d,e,f]].
func WriteJSON(w io.Writer, v *view.WordView) error {
	stream := jsoniter.NewStream(jsoniter.ConfigDefault, w, 512)
	writeLevel(stream, v)
	if err := stream.Flush(); err != nil {
		return fmt.Errorf("WriteJSON: %w", err)
	}
	if stream.Error != nil {
		return fmt.Errorf("WriteJSON: %w", stream.Error)
	}
	return nil
}

func writeLevel(stream *jsoniter.Stream, v *view.WordView) {
	stream.WriteArrayStart()
	for i := 0; i < v.Dimension(0); i++ {
		if i > 0 {
			stream.WriteMore()
		}
		if v.Rank() == 1 {
			e, _ := v.Elem(i)
			stream.WriteUint32(e.Uint32())
			continue
		}
		sub, _ := v.Index(i)
		writeLevel(stream, sub)
	}
	stream.WriteArrayEnd()
}

// ReadJSON fills v from nested JSON arrays. Every level must have exactly
// the extent of the matching axis.
func ReadJSON(r io.Reader, v *view.WordView) error {
	iter := jsoniter.Parse(jsoniter.ConfigDefault, r, 512)
	readLevel(iter, v)
	if iter.Error != nil {
		return fmt.Errorf("ReadJSON: %v: %w", iter.Error, access.ErrDecode)
	}
	return nil
}

func readLevel(iter *jsoniter.Iterator, v *view.WordView) {
	n := 0
	for iter.ReadArray() {
		if n >= v.Dimension(0) {
			iter.ReportError("ReadJSON", fmt.Sprintf("more than %d elements", v.Dimension(0)))
			return
		}
		if v.Rank() == 1 {
			e, _ := v.Elem(n)
			e.Set(iter.ReadUint32())
		} else {
			sub, _ := v.Index(n)
			readLevel(iter, sub)
		}
		if iter.Error != nil {
			return
		}
		n++
	}
	if iter.Error == nil && n != v.Dimension(0) {
		iter.ReportError("ReadJSON", fmt.Sprintf("got %d elements, want %d", n, v.Dimension(0)))
	}
}
