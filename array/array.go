// Package array implements index-based containers backed by a single
// contiguous slice: [Dynamic], which grows as needed, and [Static],
// which has a fixed capacity.
package array

import (
	"fmt"
	"iter"
	"slices"

	"deedles.dev/linear"
	"deedles.dev/linear/internal/format"
)

// DefaultCapacity is the capacity used by [NewDefaultDynamic] and
// [NewDefaultStatic].
const DefaultCapacity = 1 << 3

// store holds the elements shared by both array types. Only the first
// n elements of arr are in use. The rest are kept zeroed.
type store[T comparable] struct {
	arr []T
	n   int
}

func newStore[T comparable](capacity int) (store[T], error) {
	if capacity < 0 {
		return store[T]{}, fmt.Errorf("%w: %v", linear.ErrInvalidCapacity, capacity)
	}
	return store[T]{arr: make([]T, capacity)}, nil
}

// Len returns the number of elements in the array.
func (s *store[T]) Len() int {
	return s.n
}

// IsEmpty returns true if the array has no elements.
func (s *store[T]) IsEmpty() bool {
	return s.n == 0
}

// Cap returns the number of elements that the array can hold without
// reallocating.
func (s *store[T]) Cap() int {
	return len(s.arr)
}

// Get returns the element at index.
func (s *store[T]) Get(index int) (v T, err error) {
	err = linear.IndexOutOfRange(index, s.n)
	if err != nil {
		return v, err
	}
	return s.arr[index], nil
}

// Set replaces the element at index with v.
func (s *store[T]) Set(index int, v T) error {
	err := linear.IndexOutOfRange(index, s.n)
	if err != nil {
		return err
	}

	s.arr[index] = v
	return nil
}

// RemoveAt removes and returns the element at index, shifting every
// element after it down by one.
func (s *store[T]) RemoveAt(index int) (v T, err error) {
	err = linear.IndexOutOfRange(index, s.n)
	if err != nil {
		return v, err
	}

	v = s.arr[index]
	copy(s.arr[index:], s.arr[index+1:s.n])
	s.n--
	clear(s.arr[s.n : s.n+1])
	return v, nil
}

// Remove removes the first element equal to v. It returns false if
// there is no such element.
func (s *store[T]) Remove(v T) bool {
	i := s.IndexOf(v)
	if i < 0 {
		return false
	}

	s.RemoveAt(i)
	return true
}

// IndexOf returns the index of the first element equal to v, or -1 if
// there is no such element.
func (s *store[T]) IndexOf(v T) int {
	return slices.Index(s.arr[:s.n], v)
}

// Contains returns true if the array has an element equal to v.
func (s *store[T]) Contains(v T) bool {
	return s.IndexOf(v) >= 0
}

// Clear removes every element without changing the capacity.
func (s *store[T]) Clear() {
	clear(s.arr[:s.n])
	s.n = 0
}

// Reverse reverses the order of the elements in place.
func (s *store[T]) Reverse() {
	slices.Reverse(s.arr[:s.n])
}

// SortFunc sorts the elements in ascending order as determined by
// cmp.
func (s *store[T]) SortFunc(cmp func(T, T) int) {
	slices.SortFunc(s.arr[:s.n], cmp)
}

// BinarySearchFunc searches an array sorted by cmp for key. If key is
// present, it returns its index. Otherwise, it returns the index at
// which key would have to be inserted to keep the array sorted.
func (s *store[T]) BinarySearchFunc(key T, cmp func(T, T) int) int {
	i, _ := slices.BinarySearchFunc(s.arr[:s.n], key, cmp)
	return i
}

// All returns an iterator over the elements of the array.
func (s *store[T]) All() iter.Seq[T] {
	return slices.Values(s.arr[:s.n])
}

// Values returns a copy of the elements of the array.
func (s *store[T]) Values() []T {
	return slices.Clone(s.arr[:s.n])
}

// String returns the elements of the array in the form "[e1, e2]".
func (s *store[T]) String() string {
	return format.Array(s.All())
}
