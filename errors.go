package linear

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when peeking at or removing from an empty
	// container.
	ErrEmpty = errors.New("container is empty")

	// ErrIndexOutOfRange is returned by indexed reads, writes and
	// removals when the index is outside of [0, Len()-1].
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidIndex is returned by indexed insertions when the index
	// is outside of [0, Len()].
	ErrInvalidIndex = errors.New("invalid index")

	// ErrFull is returned when adding to a fixed-capacity container
	// that has no room left.
	ErrFull = errors.New("container is full")

	// ErrInvalidCapacity is returned when creating a container with a
	// negative capacity.
	ErrInvalidCapacity = errors.New("invalid capacity")
)

// IndexOutOfRange returns an error wrapping [ErrIndexOutOfRange] if
// index is not in [0, size). Otherwise, it returns nil.
func IndexOutOfRange(index, size int) error {
	if index < 0 || index >= size {
		return fmt.Errorf("%w: index %v, size %v", ErrIndexOutOfRange, index, size)
	}
	return nil
}

// InvalidIndex returns an error wrapping [ErrInvalidIndex] if index is
// not in [0, size]. Otherwise, it returns nil.
func InvalidIndex(index, size int) error {
	if index < 0 || index > size {
		return fmt.Errorf("%w: index %v, size %v", ErrInvalidIndex, index, size)
	}
	return nil
}

// Empty returns an error wrapping [ErrEmpty] that mentions the
// operation that was attempted.
func Empty(op string) error {
	return fmt.Errorf("%v: %w", op, ErrEmpty)
}
