package spacehash

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned by New for a cell size that is not
	// a finite, strictly positive number.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrDuplicateObject is returned when inserting an id that is already present.
	ErrDuplicateObject = errors.New("duplicate object")
	// ErrUnknownObject is returned when removing or moving an id that is not present.
	ErrUnknownObject = errors.New("unknown object")
	// ErrInvalidBB is returned for a box with NaN or infinite edges, inverted
	// edges, or edges beyond the representable cell space.
	ErrInvalidBB = errors.New("invalid bounding box")
)

// ObjectError records the operation and object id of a rejected call.
type ObjectError struct {
	Op  string
	ID  any
	Err error
}

func (e *ObjectError) Error() string {
	return fmt.Sprintf("spacehash: %s %v: %v", e.Op, e.ID, e.Err)
}

func (e *ObjectError) Unwrap() error {
	return e.Err
}
