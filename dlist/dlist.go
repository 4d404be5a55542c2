// Package dlist implements a doubly linked list.
package dlist

import (
	"iter"
	"slices"

	"deedles.dev/linear"
	"deedles.dev/linear/internal/format"
)

var _ linear.List[int] = (*List[int])(nil)

// List is a doubly-linked list. Unlike [deedles.dev/linear/slist.List],
// elements can be removed from either end in constant time, and
// indexed access walks from whichever end of the list is closer. A
// zero value List is ready to use.
//
// A List must not be modified while it is being iterated over.
type List[T comparable] struct {
	head, tail *node[T]
	size       int
}

// Len returns the number of elements in the list.
func (ls *List[T]) Len() int {
	return ls.size
}

// IsEmpty returns true if the list has no elements.
func (ls *List[T]) IsEmpty() bool {
	return ls.size == 0
}

// Clear removes every element from the list, unlinking each node in
// both directions.
func (ls *List[T]) Clear() {
	cur := ls.head
	for cur != nil {
		next := cur.next
		cur.drop()
		cur = next
	}

	ls.head = nil
	ls.tail = nil
	ls.size = 0
}

// Add is an alias for AddLast.
func (ls *List[T]) Add(v T) {
	ls.AddLast(v)
}

// AddLast adds a new node containing v to the tail of the list.
func (ls *List[T]) AddLast(v T) {
	n := node[T]{val: v, prev: ls.tail}
	ls.size++
	if ls.head == nil {
		ls.head = &n
		ls.tail = &n
		return
	}

	ls.tail.next = &n
	ls.tail = &n
}

// AddFirst adds a new node containing v to the head of the list.
func (ls *List[T]) AddFirst(v T) {
	n := node[T]{val: v, next: ls.head}
	ls.size++
	if ls.head == nil {
		ls.head = &n
		ls.tail = &n
		return
	}

	ls.head.prev = &n
	ls.head = &n
}

// AddAt inserts v so that it ends up at index.
func (ls *List[T]) AddAt(index int, v T) error {
	err := linear.InvalidIndex(index, ls.size)
	if err != nil {
		return err
	}

	switch index {
	case 0:
		ls.AddFirst(v)
	case ls.size:
		ls.AddLast(v)
	default:
		next, _ := ls.seek(index)
		n := node[T]{val: v, prev: next.prev, next: next}
		next.prev.next = &n
		next.prev = &n
		ls.size++
	}
	return nil
}

// Get returns the element at index.
func (ls *List[T]) Get(index int) (v T, err error) {
	err = linear.IndexOutOfRange(index, ls.size)
	if err != nil {
		return v, err
	}

	n, _ := ls.seek(index)
	return n.val, nil
}

// Set replaces the element at index with v.
func (ls *List[T]) Set(index int, v T) error {
	err := linear.IndexOutOfRange(index, ls.size)
	if err != nil {
		return err
	}

	n, _ := ls.seek(index)
	n.val = v
	return nil
}

// PeekFirst returns the element at the head of the list.
func (ls *List[T]) PeekFirst() (v T, err error) {
	if ls.head == nil {
		return v, linear.Empty("peek first")
	}
	return ls.head.val, nil
}

// PeekLast returns the element at the tail of the list.
func (ls *List[T]) PeekLast() (v T, err error) {
	if ls.tail == nil {
		return v, linear.Empty("peek last")
	}
	return ls.tail.val, nil
}

// RemoveFirst removes and returns the element at the head of the
// list.
func (ls *List[T]) RemoveFirst() (v T, err error) {
	if ls.head == nil {
		return v, linear.Empty("remove first")
	}
	return ls.unlink(ls.head), nil
}

// RemoveLast removes and returns the element at the tail of the list.
func (ls *List[T]) RemoveLast() (v T, err error) {
	if ls.tail == nil {
		return v, linear.Empty("remove last")
	}
	return ls.unlink(ls.tail), nil
}

// RemoveAt removes and returns the element at index.
func (ls *List[T]) RemoveAt(index int) (v T, err error) {
	err = linear.IndexOutOfRange(index, ls.size)
	if err != nil {
		return v, err
	}

	n, _ := ls.seek(index)
	return ls.unlink(n), nil
}

// Remove removes the first element equal to v. It returns false if
// there is no such element.
func (ls *List[T]) Remove(v T) bool {
	return ls.RemoveFunc(func(e T) bool { return e == v })
}

// RemoveFunc removes the first element for which match returns true.
// It returns false if there is no such element.
func (ls *List[T]) RemoveFunc(match func(T) bool) bool {
	for n := range ls.nodes() {
		if match(n.val) {
			ls.unlink(n)
			return true
		}
	}
	return false
}

// IndexOf returns the index of the first element equal to v, or -1 if
// there is no such element.
func (ls *List[T]) IndexOf(v T) int {
	return ls.IndexFunc(func(e T) bool { return e == v })
}

// IndexFunc returns the index of the first element for which match
// returns true, or -1 if there is no such element.
func (ls *List[T]) IndexFunc(match func(T) bool) int {
	var i int
	for n := range ls.nodes() {
		if match(n.val) {
			return i
		}
		i++
	}
	return -1
}

// Contains returns true if the list has an element equal to v.
func (ls *List[T]) Contains(v T) bool {
	return ls.IndexOf(v) >= 0
}

// All returns an iterator over the elements of the list from head to
// tail.
func (ls *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := range ls.nodes() {
			if !yield(n.val) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements of the list from
// tail to head.
func (ls *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := ls.tail
		for cur != nil {
			if !yield(cur.val) {
				return
			}
			cur = cur.prev
		}
	}
}

// Iterator returns a cursor over the elements of the list, starting
// at the head.
func (ls *List[T]) Iterator() linear.Iterator[T] {
	return &iterator[T]{cur: ls.head}
}

// Values returns a slice containing the elements of the list in
// order.
func (ls *List[T]) Values() []T {
	return slices.AppendSeq(make([]T, 0, ls.size), ls.All())
}

// String returns the elements of the list in the form
// "[ e1, e2, e3 ]".
func (ls *List[T]) String() string {
	return format.List(ls.All())
}

// nodes returns an iterator over the nodes of the list. It is safe to
// unlink the currently-yielded node as long as iteration stops
// immediately afterwards.
func (ls *List[T]) nodes() iter.Seq[*node[T]] {
	return func(yield func(*node[T]) bool) {
		cur := ls.head
		for cur != nil {
			if !yield(cur) {
				return
			}
			cur = cur.next
		}
	}
}

// seek finds the node at index, walking from the head if index is in
// the first half of the list and from the tail otherwise. It also
// returns the number of links that were followed.
func (ls *List[T]) seek(index int) (n *node[T], hops int) {
	if index < ls.size/2 {
		n = ls.head
		for ; hops < index; hops++ {
			n = n.next
		}
		return n, hops
	}

	n = ls.tail
	for ; hops < ls.size-1-index; hops++ {
		n = n.prev
	}
	return n, hops
}

// unlink removes n from the list, joining its neighbors to each other.
func (ls *List[T]) unlink(n *node[T]) T {
	switch {
	case ls.head == ls.tail:
		ls.head = nil
		ls.tail = nil
	case n == ls.head:
		ls.head = n.next
		n.next.prev = nil
	case n == ls.tail:
		ls.tail = n.prev
		n.prev.next = nil
	default:
		n.next.prev = n.prev
		n.prev.next = n.next
	}

	ls.size--
	return n.drop()
}

type node[T any] struct {
	val        T
	prev, next *node[T]
}

// drop clears n, returning the value that it held.
func (n *node[T]) drop() (v T) {
	v = n.val
	*n = node[T]{}
	return v
}

type iterator[T any] struct {
	cur *node[T]
}

func (it *iterator[T]) Next() (v T, ok bool) {
	if it.cur == nil {
		return v, false
	}

	v = it.cur.val
	it.cur = it.cur.next
	return v, true
}
