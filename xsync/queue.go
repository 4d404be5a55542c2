package xsync

import (
	"context"
	"iter"
	"runtime"
	"sync"

	"deedles.dev/linear/slist"
)

// A Queue concurrently collects values and returns them in FIFO
// order. Values that have been added but not yet received are
// buffered in an [slist.List], so the buffer has no fixed limit and T
// has to be comparable like the list's elements are. A zero value
// Queue is ready to use.
//
// A Queue is stopped when it is garbage collected. Therefore, a
// reference to the Queue must be kept alive during its use or its
// behavior will become undefined. It is recommended to access the
// Queue's channels via the methods every time instead of storing a
// copy somewhere. A Queue whose elements reference the Queue itself
// will not be collected and must be stopped with Stop.
//
// A Queue is initialized by calling any of its methods, so a copy of
// a Queue made before those methods are called is a completely
// independent Queue, while a copy made afterwards is the same Queue.
type Queue[T comparable] struct {
	start sync.Once
	stop  func()
	block *byte

	add chan T
	get chan T
}

func (q *Queue[T]) init() {
	q.start.Do(func() {
		q.add = make(chan T)
		q.get = make(chan T)

		done := make(chan struct{})
		stop := sync.OnceFunc(func() { close(done) })
		q.stop = stop

		go run(done, q.add, q.get)

		// The finalizer is tied to a separately allocated field so that
		// it works even when the Queue is embedded in another value. It
		// must be non-zero-sized to actually be allocated, and it must
		// not reference q, or q would never become unreachable.
		q.block = new(byte)
		runtime.SetFinalizer(q.block, func(*byte) { stop() })
	})
}

// Stop stops the queue, discarding anything still buffered. It is safe
// to call more than once.
func (q *Queue[T]) Stop() {
	q.init()
	q.stop()
}

// Add returns a channel that enqueues values sent to it. Closing this
// channel will cause the channel returned by Get to be closed once
// the Queue's contents are emptied, similar to how a regular channel
// works.
func (q *Queue[T]) Add() chan<- T {
	q.init()
	return q.add
}

// Get returns a channel that yields values from the queue when they
// are available. The channel will be closed when the Queue is
// stopped.
func (q *Queue[T]) Get() <-chan T {
	q.init()
	return q.get
}

// Values returns an iterator that yields values from the queue until
// the queue is stopped, the queue is drained after the channel
// returned by Add is closed, or ctx is canceled.
func (q *Queue[T]) Values(ctx context.Context) iter.Seq[T] {
	q.init()
	return func(yield func(T) bool) {
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-q.get:
				if !ok || !yield(v) {
					return
				}
			}
		}
	}
}

// run feeds the queue's channels until done is closed. It holds only
// the channels, not the Queue, so that an abandoned Queue can be
// collected and its finalizer can stop run.
func run[T comparable](done <-chan struct{}, add chan T, out chan T) {
	var get chan T

	defer func() {
		close(out)
		if add != nil {
			// Ensure that future attempts to send to the queue will fail.
			close(add)
		}
	}()

	var buf slist.List[T]
	defer buf.Clear()

	var next T
	for {
		select {
		case <-done:
			return

		case v, ok := <-add:
			if !ok {
				add = nil
				if buf.IsEmpty() {
					return
				}
				continue
			}

			buf.AddLast(v)
			next, _ = buf.PeekFirst()
			get = out

		case get <- next:
			// get is only non-nil while buf has elements.
			_, _ = buf.RemoveFirst()
			v, err := buf.PeekFirst()
			if err != nil {
				if add == nil {
					return
				}

				get = nil
				continue
			}
			next = v
		}
	}
}
