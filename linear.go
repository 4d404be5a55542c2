// Package linear provides elementary linear containers: singly and
// doubly linked lists in the [deedles.dev/linear/slist] and
// [deedles.dev/linear/dlist] packages and resizable and
// fixed-capacity arrays in [deedles.dev/linear/array].
//
// None of the containers are safe for concurrent use. A given
// container is assumed to have a single owner that reads and mutates
// it. For shared access, wrap a list with [deedles.dev/linear/xsync.Locked].
package linear

import "iter"

// List is the contract shared by the linked list implementations.
// Operations that can fail return an error wrapping one of this
// package's sentinel errors and leave the list unchanged when they do.
type List[T comparable] interface {
	// Len returns the number of elements in the list.
	Len() int

	// IsEmpty reports whether the list has no elements.
	IsEmpty() bool

	// Clear removes every element from the list.
	Clear()

	// Add is an alias for AddLast.
	Add(v T)
	AddFirst(v T)
	AddLast(v T)

	// AddAt inserts v so that it ends up at index. Valid indices are
	// in the range [0, Len()].
	AddAt(index int, v T) error

	Get(index int) (T, error)
	Set(index int, v T) error

	PeekFirst() (T, error)
	PeekLast() (T, error)
	RemoveFirst() (T, error)
	RemoveLast() (T, error)
	RemoveAt(index int) (T, error)

	// Remove removes the first element equal to v and reports whether
	// one was found.
	Remove(v T) bool

	// RemoveFunc removes the first element for which match returns
	// true and reports whether one was found.
	RemoveFunc(match func(T) bool) bool

	// IndexOf returns the index of the first element equal to v, or -1
	// if there is no such element.
	IndexOf(v T) int
	IndexFunc(match func(T) bool) int
	Contains(v T) bool

	// All returns an iterator over the elements of the list from front
	// to back.
	All() iter.Seq[T]

	// Iterator returns a new single-use cursor positioned before the
	// first element.
	Iterator() Iterator[T]

	// Values returns the elements of the list as a new slice.
	Values() []T

	String() string
}

// Iterator is a forward-only cursor over a container. It can not be
// restarted and has no way to modify the container that it came from.
type Iterator[T any] interface {
	// Next returns the next element. If the iterator is exhausted, it
	// returns false.
	Next() (T, bool)
}
