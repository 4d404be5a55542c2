package xsync

import (
	"sync"

	"deedles.dev/linear/dlist"
)

// Mailbox is an unbounded buffer of messages of any type from which
// receivers pick out the first message that they are interested in,
// regardless of its position. Messages are held in a [dlist.List] so
// that removal from the middle is cheap once a match is found. Sends
// never block. A zero-value Mailbox is ready to use.
type Mailbox struct {
	once sync.Once

	m sync.Mutex
	c sync.Cond

	queue dlist.List[any]
}

func (mb *Mailbox) init() {
	mb.once.Do(func() {
		mb.c.L = &mb.m
	})
}

// Send delivers a message to the Mailbox. If there are any blocked
// receives, they will check the new message to see if it is what
// they're waiting for after this function returns.
func (mb *Mailbox) Send(msg any) {
	mb.init()

	mb.m.Lock()
	defer mb.m.Unlock()

	mb.queue.AddLast(msg)
	mb.c.Broadcast()
}

// Len returns the number of messages waiting in the Mailbox.
func (mb *Mailbox) Len() int {
	mb.m.Lock()
	defer mb.m.Unlock()

	return mb.queue.Len()
}

func find[T any](mb *Mailbox, match func(T) bool) (v T, ok bool) {
	ok = mb.queue.RemoveFunc(func(msg any) bool {
		m, isT := msg.(T)
		if !isT || (match != nil && !match(m)) {
			return false
		}

		v = m
		return true
	})
	return v, ok
}

// Recv removes and returns the oldest message in mb that can be type
// asserted to T and for which match returns true. A nil match accepts
// every message of type T. If there is no such message, Recv blocks
// until one arrives.
//
// For a non-blocking variant, see [TryRecv].
func Recv[T any](mb *Mailbox, match func(T) bool) T {
	mb.init()

	mb.m.Lock()
	defer mb.m.Unlock()

	for {
		msg, ok := find(mb, match)
		if ok {
			return msg
		}

		mb.c.Wait()
	}
}

// TryRecv is like [Recv] but returns immediately, reporting false if
// no message matches.
func TryRecv[T any](mb *Mailbox, match func(T) bool) (msg T, ok bool) {
	mb.m.Lock()
	defer mb.m.Unlock()

	return find(mb, match)
}
