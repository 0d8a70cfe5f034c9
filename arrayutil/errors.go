package arrayutil

import "errors"

var (
	// ErrNilArray indicates that the backing slice is nil.
	ErrNilArray = errors.New("arrayutil: array is nil")

	// ErrOutOfRange indicates that an index lies outside [0, len(arr)).
	ErrOutOfRange = errors.New("arrayutil: index out of range")
)
