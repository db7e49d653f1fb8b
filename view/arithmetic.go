package view

import (
	"fmt"

	"github.com/quickwritereader/packbits/access"
)

// Element is an in-place numeric accessor, such as access.Word.
type Element[E any] interface {
	Assign(o E)
	Add(o E)
	Sub(o E)
	MulUint32(k uint32)
}

// Arithmetic is a View whose elements support in-place arithmetic. Every
// operation leaves its operands untouched and returns a new container,
// allocated with alloc, together with a view over it.
//
// The new container is sized to Container().Len() - Start(), the room the
// view has left in its own container, not just the view's extent. Only the
// first Len() elements of it are written.
type Arithmetic[E Element[E], C Container[E]] struct {
	View[E]
	alloc func(n int) C
}

// NewArithmetic lays dims over c like New; alloc builds result containers.
func NewArithmetic[E Element[E], C Container[E]](c C, alloc func(n int) C, start int, dims ...int) (*Arithmetic[E, C], error) {
	v, err := New[E](c, start, dims...)
	if err != nil {
		return nil, err
	}
	return &Arithmetic[E, C]{View: *v, alloc: alloc}, nil
}

// MakeArithmetic is Make for arithmetic views.
func MakeArithmetic[E Element[E], C Container[E]](alloc func(n int) C, dims ...int) (*Arithmetic[E, C], C, error) {
	v, c, err := Make[E](alloc, dims...)
	if err != nil {
		var zero C
		return nil, zero, err
	}
	return &Arithmetic[E, C]{View: *v, alloc: alloc}, c, nil
}

// copyOut allocates the result container and copies the view's elements
// into its head.
func (a *Arithmetic[E, C]) copyOut() C {
	dst := a.alloc(a.c.Len() - a.start)
	for i, n := 0, a.Len(); i < n; i++ {
		dst.Index(i).Assign(a.c.Index(a.start + i))
	}
	return dst
}

func (a *Arithmetic[E, C]) wrap(dst C) *Arithmetic[E, C] {
	return &Arithmetic[E, C]{View: *sub[E](dst, 0, a.dims), alloc: a.alloc}
}

// Scale multiplies every element by k.
func (a *Arithmetic[E, C]) Scale(k uint32) (*Arithmetic[E, C], C) {
	dst := a.copyOut()
	for i, n := 0, a.Len(); i < n; i++ {
		dst.Index(i).MulUint32(k)
	}
	return a.wrap(dst), dst
}

// Add sums o into a copy of a, element by element. Shapes must match.
func (a *Arithmetic[E, C]) Add(o *Arithmetic[E, C]) (*Arithmetic[E, C], C, error) {
	return a.combine(o, "Add", func(dst, src E) { dst.Add(src) })
}

// Sub subtracts o from a copy of a, element by element. Shapes must match.
func (a *Arithmetic[E, C]) Sub(o *Arithmetic[E, C]) (*Arithmetic[E, C], C, error) {
	return a.combine(o, "Sub", func(dst, src E) { dst.Sub(src) })
}

func (a *Arithmetic[E, C]) combine(o *Arithmetic[E, C], op string, apply func(dst, src E)) (*Arithmetic[E, C], C, error) {
	if !a.SameShape(&o.View) {
		var zero C
		return nil, zero, fmt.Errorf("Arithmetic.%s: dimensions %v and %v: %w", op, a.dims, o.dims, access.ErrShapeMismatch)
	}
	dst := a.copyOut()
	for i, n := 0, a.Len(); i < n; i++ {
		apply(dst.Index(i), o.c.Index(o.start+i))
	}
	return a.wrap(dst), dst, nil
}
