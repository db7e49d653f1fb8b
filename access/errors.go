package access

import "errors"

var (
	// ErrOutOfRange reports an index or extent past the end of a container or view.
	ErrOutOfRange = errors.New("out of range")
	// ErrShapeMismatch reports an element-wise operation between views of different shapes.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrInvalidShape reports a dimension list that cannot describe a view.
	ErrInvalidShape = errors.New("invalid shape")
	// ErrDecode reports malformed encoded input.
	ErrDecode = errors.New("decode error")
)
