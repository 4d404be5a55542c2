package xsync

import (
	"iter"
	"sync"

	"deedles.dev/linear"
)

var _ linear.List[int] = (*Locked[int])(nil)

// Locked wraps a [linear.List] so that it can be used from multiple
// goroutines at once. Every method holds a mutex for its duration.
//
// The wrapped list must not be used directly while it is wrapped.
type Locked[T comparable] struct {
	m  sync.Mutex
	ls linear.List[T]
}

// NewLocked returns a Locked wrapping ls.
func NewLocked[T comparable](ls linear.List[T]) *Locked[T] {
	return &Locked[T]{ls: ls}
}

// Do calls f with the wrapped list while holding the lock, allowing
// several operations to happen atomically. f must not retain the list
// after returning.
func (l *Locked[T]) Do(f func(linear.List[T])) {
	l.m.Lock()
	defer l.m.Unlock()

	f(l.ls)
}

func (l *Locked[T]) Len() int {
	l.m.Lock()
	defer l.m.Unlock()

	return l.ls.Len()
}

func (l *Locked[T]) IsEmpty() bool {
	l.m.Lock()
	defer l.m.Unlock()

	return l.ls.IsEmpty()
}

func (l *Locked[T]) Clear() {
	l.m.Lock()
	defer l.m.Unlock()

	l.ls.Clear()
}

func (l *Locked[T]) Add(v T) {
	l.m.Lock()
	defer l.m.Unlock()

	l.ls.Add(v)
}

func (l *Locked[T]) AddFirst(v T) {
	l.m.Lock()
	defer l.m.Unlock()

	l.ls.AddFirst(v)
}

func (l *Locked[T]) AddLast(v T) {
	l.m.Lock()
	defer l.m.Unlock()

	l.ls.AddLast(v)
}

func (l *Locked[T]) AddAt(index int, v T) error {
	l.m.Lock()
	defer l.m.Unlock()

	return l.ls.AddAt(index, v)
}

func (l *Locked[T]) Get(index int) (T, error) {
	l.m.Lock()
	defer l.m.Unlock()

	return l.ls.Get(index)
}

func (l *Locked[T]) Set(index int, v T) error {
	l.m.Lock()
	defer l.m.Unlock()

	return l.ls.Set(index, v)
}

func (l *Locked[T]) PeekFirst() (T, error) {
	l.m.Lock()
	defer l.m.Unlock()

	return l.ls.PeekFirst()
}

func (l *Locked[T]) PeekLast() (T, error) {
	l.m.Lock()
	defer l.m.Unlock()

	return l.ls.PeekLast()
}

func (l *Locked[T]) RemoveFirst() (T, error) {
	l.m.Lock()
	defer l.m.Unlock()

	return l.ls.RemoveFirst()
}

func (l *Locked[T]) RemoveLast() (T, error) {
	l.m.Lock()
	defer l.m.Unlock()

	return l.ls.RemoveLast()
}

func (l *Locked[T]) RemoveAt(index int) (T, error) {
	l.m.Lock()
	defer l.m.Unlock()

	return l.ls.RemoveAt(index)
}

func (l *Locked[T]) Remove(v T) bool {
	l.m.Lock()
	defer l.m.Unlock()

	return l.ls.Remove(v)
}

// RemoveFunc calls match while holding the lock, so match must not
// call any methods of l.
func (l *Locked[T]) RemoveFunc(match func(T) bool) bool {
	l.m.Lock()
	defer l.m.Unlock()

	return l.ls.RemoveFunc(match)
}

func (l *Locked[T]) IndexOf(v T) int {
	l.m.Lock()
	defer l.m.Unlock()

	return l.ls.IndexOf(v)
}

// IndexFunc calls match while holding the lock, so match must not
// call any methods of l.
func (l *Locked[T]) IndexFunc(match func(T) bool) int {
	l.m.Lock()
	defer l.m.Unlock()

	return l.ls.IndexFunc(match)
}

func (l *Locked[T]) Contains(v T) bool {
	l.m.Lock()
	defer l.m.Unlock()

	return l.ls.Contains(v)
}

// All returns an iterator over a snapshot of the list's elements
// taken when iteration starts. The lock is not held while yielding.
func (l *Locked[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.Values() {
			if !yield(v) {
				return
			}
		}
	}
}

// Iterator returns a cursor over a snapshot of the list's elements.
func (l *Locked[T]) Iterator() linear.Iterator[T] {
	return &snapshot[T]{vals: l.Values()}
}

func (l *Locked[T]) Values() []T {
	l.m.Lock()
	defer l.m.Unlock()

	return l.ls.Values()
}

func (l *Locked[T]) String() string {
	l.m.Lock()
	defer l.m.Unlock()

	return l.ls.String()
}

type snapshot[T any] struct {
	vals []T
}

func (s *snapshot[T]) Next() (v T, ok bool) {
	if len(s.vals) == 0 {
		return v, false
	}

	v, s.vals = s.vals[0], s.vals[1:]
	return v, true
}
