package view

import (
	"github.com/quickwritereader/packbits/access"
	"github.com/quickwritereader/packbits/packable"
)

// Shorthands for views over packed 17-bit arrays.
type (
	WordView       = View[access.Word]
	WordArithmetic = Arithmetic[access.Word, *packable.Array]
)

// Words lays dims over a packed array.
func Words(a *packable.Array, start int, dims ...int) (*WordView, error) {
	return New[access.Word](a, start, dims...)
}

// MakeWords allocates a zeroed packed array for dims and views all of it.
func MakeWords(dims ...int) (*WordView, *packable.Array, error) {
	return Make[access.Word](packable.New, dims...)
}

// WordsArithmetic lays dims over a packed array; results are allocated with
// packable.New.
func WordsArithmetic(a *packable.Array, start int, dims ...int) (*WordArithmetic, error) {
	return NewArithmetic[access.Word](a, packable.New, start, dims...)
}

// MakeWordsArithmetic is MakeWords for arithmetic views.
func MakeWordsArithmetic(dims ...int) (*WordArithmetic, *packable.Array, error) {
	return MakeArithmetic[access.Word](packable.New, dims...)
}

// Array returns the packed array behind a word view.
func Array(v *WordView) *packable.Array {
	a, _ := v.Container().(*packable.Array)
	return a
}
