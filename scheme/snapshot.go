package scheme

import (
	"fmt"

	"github.com/quickwritereader/packbits/access"
	"github.com/quickwritereader/packbits/packable"
	"github.com/quickwritereader/packbits/view"
)

// PackView writes a view together with its whole container as a frame of
// three fields: start (TypeInteger), dims (TypeTuple of TypeInteger) and the
// packed array (TypeTuple).
func PackView(v *view.WordView) ([]byte, error) {
	a := view.Array(v)
	if a == nil {
		return nil, fmt.Errorf("PackView: container %T is not a packed array: %w", v.Container(), access.ErrInvalidShape)
	}

	put := access.NewPutAccessFromPool()
	defer access.ReleasePutAccess(put)

	put.AddUint32(uint32(v.Start()))
	dims := put.BeginTuple()
	for _, d := range v.Dims() {
		dims.AddUint32(uint32(d))
	}
	put.EndNested(dims)
	put.AddPackable(a)

	buf := make([]byte, put.PackSize())
	n, err := put.PackBuff(buf)
	if err != nil {
		return nil, fmt.Errorf("PackView: %w", err)
	}
	return buf[:n], nil
}

// UnpackView restores a frame written by PackView. The returned array is a
// fresh copy owned by the caller.
func UnpackView(buf []byte) (*view.WordView, *packable.Array, error) {
	get, err := access.NewGetAccess(buf)
	if err != nil {
		return nil, nil, fmt.Errorf("UnpackView: %w", err)
	}
	start, err := get.GetUint32(0)
	if err != nil {
		return nil, nil, fmt.Errorf("UnpackView: start: %w", err)
	}
	dimsGet, err := get.GetTuple(1)
	if err != nil {
		return nil, nil, fmt.Errorf("UnpackView: dims: %w", err)
	}
	dims := make([]int, dimsGet.ArgCount())
	for k := range dims {
		d, err := dimsGet.GetUint32(k)
		if err != nil {
			return nil, nil, fmt.Errorf("UnpackView: dimension %d: %w", k, err)
		}
		dims[k] = int(d)
	}
	a, err := packable.UnpackField(get, 2)
	if err != nil {
		return nil, nil, fmt.Errorf("UnpackView: %w", err)
	}
	v, err := view.Words(a, int(start), dims...)
	if err != nil {
		return nil, nil, fmt.Errorf("UnpackView: %w", err)
	}
	return v, a, nil
}
