package validators

import "errors"

var (
	// ErrIDOutOfRange is returned by [ParseID] when the coerced number is a
	// positive integer that does not fit into int64.
	ErrIDOutOfRange = errors.New("id is out of int64 range")

	// ErrInvalidID is returned by [ParseID] when the value is not a positive
	// integer after coercion.
	ErrInvalidID = errors.New("invalid id")
)
