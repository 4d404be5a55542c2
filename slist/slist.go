// Package slist implements a singly linked list.
package slist

import (
	"iter"
	"slices"

	"deedles.dev/linear"
	"deedles.dev/linear/internal/format"
)

var _ linear.List[int] = (*List[int])(nil)

// List is a singly-linked list that also contains a reference to the
// last node for quick inserts at the tail. Because nodes only link
// forwards, removing the last element requires a walk from the head.
// A zero value List is ready to use.
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

// Clear removes every element from the list. Every node is unlinked
// and has its value zeroed so that nothing it held stays reachable
// through it.
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

// AddLast adds v as a new node at the tail of the list.
func (ls *List[T]) AddLast(v T) {
	n := ls.tail.insert()
	n.val = v
	ls.tail = n

	if ls.head == nil {
		ls.head = n
	}
	ls.size++
}

// AddFirst adds v as a new node at the head of the list.
func (ls *List[T]) AddFirst(v T) {
	ls.head = &node[T]{val: v, next: ls.head}
	if ls.tail == nil {
		ls.tail = ls.head
	}
	ls.size++
}

// AddAt inserts v so that it ends up at index. Insertion at 0 or
// Len() is equivalent to AddFirst or AddLast respectively. Anywhere
// else, the list is walked from the head to find the node before
// index.
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
		ls.seek(index - 1).insert().val = v
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
	return ls.seek(index).val, nil
}

// Set replaces the element at index with v.
func (ls *List[T]) Set(index int, v T) error {
	err := linear.IndexOutOfRange(index, ls.size)
	if err != nil {
		return err
	}

	ls.seek(index).val = v
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
	return ls.unlink(nil, ls.head), nil
}

// RemoveLast removes and returns the element at the tail of the list.
// This has to walk the entire list to find the new tail.
func (ls *List[T]) RemoveLast() (v T, err error) {
	if ls.tail == nil {
		return v, linear.Empty("remove last")
	}
	if ls.head == ls.tail {
		return ls.unlink(nil, ls.head), nil
	}

	return ls.unlink(ls.seek(ls.size-2), ls.tail), nil
}

// RemoveAt removes and returns the element at index.
func (ls *List[T]) RemoveAt(index int) (v T, err error) {
	err = linear.IndexOutOfRange(index, ls.size)
	if err != nil {
		return v, err
	}

	var prev *node[T]
	cur := ls.head
	for range index {
		prev, cur = cur, cur.next
	}
	return ls.unlink(prev, cur), nil
}

// Remove removes the first element equal to v. It returns false if
// there is no such element.
func (ls *List[T]) Remove(v T) bool {
	return ls.RemoveFunc(func(e T) bool { return e == v })
}

// RemoveFunc removes the first element for which match returns true.
// It returns false if there is no such element.
func (ls *List[T]) RemoveFunc(match func(T) bool) bool {
	prev, n, _ := ls.find(match)
	if n == nil {
		return false
	}

	ls.unlink(prev, n)
	return true
}

// IndexOf returns the index of the first element equal to v, or -1 if
// there is no such element.
func (ls *List[T]) IndexOf(v T) int {
	return ls.IndexFunc(func(e T) bool { return e == v })
}

// IndexFunc returns the index of the first element for which match
// returns true, or -1 if there is no such element.
func (ls *List[T]) IndexFunc(match func(T) bool) int {
	_, _, i := ls.find(match)
	return i
}

// Contains returns true if the list has an element equal to v.
func (ls *List[T]) Contains(v T) bool {
	return ls.IndexOf(v) >= 0
}

// All returns an iterator over the elements of the list. Each call to
// the iterator starts a new traversal from the head.
func (ls *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := ls.head
		for cur != nil {
			if !yield(cur.val) {
				return
			}
			cur = cur.next
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

// seek walks index nodes from the head.
func (ls *List[T]) seek(index int) *node[T] {
	cur := ls.head
	for range index {
		cur = cur.next
	}
	return cur
}

// find returns the first node for which match returns true along with
// its predecessor and its index. If there is no such node, n is nil
// and i is -1.
func (ls *List[T]) find(match func(T) bool) (prev, n *node[T], i int) {
	for cur := ls.head; cur != nil; prev, cur = cur, cur.next {
		if match(cur.val) {
			return prev, cur, i
		}
		i++
	}
	return nil, nil, -1
}

// unlink removes n, whose predecessor is prev, from the list. prev is
// nil if n is the head.
func (ls *List[T]) unlink(prev, n *node[T]) T {
	if prev == nil {
		ls.head = n.next
	} else {
		prev.next = n.next
	}
	if n == ls.tail {
		ls.tail = prev
	}

	ls.size--
	return n.drop()
}

type node[T any] struct {
	val  T
	next *node[T]
}

// insert links a new node directly after n and returns it. If n is
// nil, the new node is unlinked.
func (n *node[T]) insert() *node[T] {
	if n == nil {
		return new(node[T])
	}

	n.next = &node[T]{next: n.next}
	return n.next
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
