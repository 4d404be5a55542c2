package array

import (
	"fmt"

	"deedles.dev/linear"
)

// Static is an array with a capacity that is fixed when it is
// created. A zero value Static has no capacity and is therefore
// always full.
type Static[T comparable] struct {
	store[T]
}

// NewStatic returns an empty Static with room for capacity elements.
func NewStatic[T comparable](capacity int) (*Static[T], error) {
	s, err := newStore[T](capacity)
	if err != nil {
		return nil, err
	}
	return &Static[T]{store: s}, nil
}

// NewDefaultStatic returns an empty Static with room for
// [DefaultCapacity] elements.
func NewDefaultStatic[T comparable]() *Static[T] {
	return &Static[T]{store: store[T]{arr: make([]T, DefaultCapacity)}}
}

// Add appends v. If the array is already full, it returns an error
// wrapping [linear.ErrFull] and leaves the array unchanged.
func (a *Static[T]) Add(v T) error {
	if a.n == len(a.arr) {
		return fmt.Errorf("add %v: %w: capacity %v", v, linear.ErrFull, len(a.arr))
	}

	a.arr[a.n] = v
	a.n++
	return nil
}
