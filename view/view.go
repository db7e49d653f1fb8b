// Package view lays multi-dimensional, row-major shapes over flat
// random-access containers without copying them.
//
// A View of rank D covers dims[0]*...*dims[D-1] consecutive elements starting
// at a flat offset. Indexing peels off the outer dimension and yields a view
// of rank D-1; rank-1 views hand out elements.
//
// Checked and unchecked paths live side by side: Index, Elem and At validate
// their arguments and return access.ErrOutOfRange; Get trusts the caller and
// only the container's own bounds stand behind it.
package view

import (
	"fmt"
	"math"

	"github.com/quickwritereader/packbits/access"
)

// Container is a flat random-access sequence. Index is not expected to
// check bounds.
type Container[E any] interface {
	Len() int
	Index(i int) E
}

// View is a non-owning shaped window over a Container. Several views may
// alias one container; writes through them are not synchronized.
type View[E any] struct {
	c     Container[E]
	start int
	end   int
	dims  []int
}

// New lays dims over c starting at flat offset start. It fails with
// access.ErrOutOfRange when the view would end past c.Len().
func New[E any](c Container[E], start int, dims ...int) (*View[E], error) {
	if start < 0 {
		return nil, fmt.Errorf("view.New: negative start %d: %w", start, access.ErrOutOfRange)
	}
	span, err := Extent(c.Len()-start, dims...)
	if err != nil {
		return nil, fmt.Errorf("view.New: start %d over container length %d: %w", start, c.Len(), err)
	}
	end := start + span
	if end > c.Len() {
		return nil, fmt.Errorf("view.New: view [%d,%d) ends after container length %d: %w",
			start, end, c.Len(), access.ErrOutOfRange)
	}
	return &View[E]{
		c:     c,
		start: start,
		end:   end,
		dims:  append([]int(nil), dims...),
	}, nil
}

// Extent returns the number of elements dims cover. It fails with
// access.ErrInvalidShape for an empty or negative dimension list and with
// access.ErrOutOfRange once the product would pass limit, before it can
// overflow.
func Extent(limit int, dims ...int) (int, error) {
	if len(dims) == 0 {
		return 0, fmt.Errorf("no dimensions: %w", access.ErrInvalidShape)
	}
	empty := false
	for k, d := range dims {
		if d < 0 {
			return 0, fmt.Errorf("dimension %d is %d: %w", k, d, access.ErrInvalidShape)
		}
		if d == 0 {
			empty = true
		}
	}
	if empty {
		return 0, nil
	}
	product := 1
	for _, d := range dims {
		if product > limit/d {
			return 0, fmt.Errorf("dimensions %v exceed %d elements: %w", dims, limit, access.ErrOutOfRange)
		}
		product *= d
	}
	return product, nil
}

// Whole returns a rank-1 view over all of c.
func Whole[E any](c Container[E]) *View[E] {
	return &View[E]{c: c, end: c.Len(), dims: []int{c.Len()}}
}

// sub builds a view whose extent is known to fit; dims is shared and is a
// suffix of dims already checked by Extent.
func sub[E any](c Container[E], start int, dims []int) *View[E] {
	span := 1
	for _, d := range dims {
		span *= d
	}
	return &View[E]{c: c, start: start, end: start + span, dims: dims}
}

func (v *View[E]) Rank() int  { return len(v.dims) }
func (v *View[E]) Start() int { return v.start }

// Len returns the number of elements covered by the view.
func (v *View[E]) Len() int { return v.end - v.start }

// Dimension returns the extent of axis k.
func (v *View[E]) Dimension(k int) int { return v.dims[k] }

// Dims returns a copy of the extents.
func (v *View[E]) Dims() []int { return append([]int(nil), v.dims...) }

// Container returns the backing container.
func (v *View[E]) Container() Container[E] { return v.c }

// Index returns the sub-view at position i of the outer axis.
// Rank-1 views have no sub-views; use Elem.
func (v *View[E]) Index(i int) (*View[E], error) {
	if len(v.dims) == 1 {
		return nil, fmt.Errorf("View.Index on a rank-1 view: %w", access.ErrInvalidShape)
	}
	if i < 0 || i >= v.dims[0] {
		return nil, fmt.Errorf("View.Index(%d) with dimension %d: %w", i, v.dims[0], access.ErrOutOfRange)
	}
	stride := (v.end - v.start) / v.dims[0]
	return sub(v.c, v.start+stride*i, v.dims[1:]), nil
}

// Elem returns element i of a rank-1 view.
func (v *View[E]) Elem(i int) (E, error) {
	var zero E
	if len(v.dims) != 1 {
		return zero, fmt.Errorf("View.Elem on a rank-%d view: %w", len(v.dims), access.ErrInvalidShape)
	}
	if i < 0 || v.start+i >= v.end {
		return zero, fmt.Errorf("View.Elem(%d) with length %d: %w", i, v.end-v.start, access.ErrOutOfRange)
	}
	return v.c.Index(v.start + i), nil
}

// offset computes the row-major flat position of idx.
func (v *View[E]) offset(idx []int) int {
	flat := 0
	for k, x := range idx {
		flat = flat*v.dims[k] + x
	}
	return v.start + flat
}

// Get returns the element at idx without checking it against the axes.
// An index past an axis spills into the next row; one past the container
// panics in the container. Get panics when len(idx) differs from the rank.
func (v *View[E]) Get(idx ...int) E {
	if len(idx) != len(v.dims) {
		panic(fmt.Sprintf("view.Get: %d indices for rank %d", len(idx), len(v.dims)))
	}
	return v.c.Index(v.offset(idx))
}

// At is Get with every index checked against its axis.
func (v *View[E]) At(idx ...int) (E, error) {
	var zero E
	if len(idx) != len(v.dims) {
		return zero, fmt.Errorf("View.At: %d indices for rank %d: %w", len(idx), len(v.dims), access.ErrInvalidShape)
	}
	for k, x := range idx {
		if x < 0 || x >= v.dims[k] {
			return zero, fmt.Errorf("View.At: index %d on axis %d with dimension %d: %w",
				x, k, v.dims[k], access.ErrOutOfRange)
		}
	}
	return v.c.Index(v.offset(idx)), nil
}

// SameShape reports whether both views have identical extents.
func (v *View[E]) SameShape(o *View[E]) bool {
	if len(v.dims) != len(o.dims) {
		return false
	}
	for k := range v.dims {
		if v.dims[k] != o.dims[k] {
			return false
		}
	}
	return true
}

// Make allocates a container sized to the product of dims with alloc and
// returns a view over all of it. The caller owns the container.
func Make[E any, C Container[E]](alloc func(n int) C, dims ...int) (*View[E], C, error) {
	var zero C
	n, err := Extent(math.MaxInt, dims...)
	if err != nil {
		return nil, zero, fmt.Errorf("view.Make: %w", err)
	}
	c := alloc(n)
	v, err := New[E](c, 0, dims...)
	if err != nil {
		return nil, zero, err
	}
	return v, c, nil
}
