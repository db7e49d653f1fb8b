// Package scheme describes where a view sits in its container, as JSON for
// configuration and as a frame for snapshots.
package scheme

import (
	"fmt"
	"math"

	goccyjson "github.com/goccy/go-json"

	"github.com/quickwritereader/packbits/access"
	"github.com/quickwritereader/packbits/packable"
	"github.com/quickwritereader/packbits/types"
	"github.com/quickwritereader/packbits/view"
)

// ShapeJSON is the JSON form of a view layout:
//
//	{"start": 1, "dims": [2, 3]}
type ShapeJSON struct {
	Start int   `json:"start"`
	Dims  []int `json:"dims"`
}

// ParseShape decodes a ShapeJSON document.
func ParseShape(b []byte) (ShapeJSON, error) {
	var s ShapeJSON
	if err := goccyjson.Unmarshal(b, &s); err != nil {
		return ShapeJSON{}, fmt.Errorf("ParseShape: %v: %w", err, access.ErrDecode)
	}
	if _, err := s.Len(); err != nil {
		return ShapeJSON{}, fmt.Errorf("ParseShape: %w", err)
	}
	return s, nil
}

// Len returns the number of elements the shape covers.
func (s ShapeJSON) Len() (int, error) {
	return view.Extent(math.MaxInt, s.Dims...)
}

// Apply lays the shape over a.
func (s ShapeJSON) Apply(a *packable.Array) (*view.WordView, error) {
	return view.Words(a, s.Start, s.Dims...)
}

// Allocate creates an array just large enough for the shape and views it.
func (s ShapeJSON) Allocate() (*view.WordView, *packable.Array, error) {
	if s.Start < 0 || s.Start > types.MaxWords {
		return nil, nil, fmt.Errorf("Allocate: start %d out of range: %w", s.Start, access.ErrOutOfRange)
	}
	n, err := view.Extent(types.MaxWords-s.Start, s.Dims...)
	if err != nil {
		return nil, nil, fmt.Errorf("Allocate: %w", err)
	}
	a := packable.New(s.Start + n)
	v, err := s.Apply(a)
	if err != nil {
		return nil, nil, err
	}
	return v, a, nil
}

// Describe returns the layout of v.
func Describe(v *view.WordView) ShapeJSON {
	return ShapeJSON{Start: v.Start(), Dims: v.Dims()}
}

// Indent renders s as indented JSON.
func (s ShapeJSON) Indent() ([]byte, error) {
	return goccyjson.MarshalIndent(s, "", "  ")
}
