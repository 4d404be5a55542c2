// Package xsync provides ways to share the containers of
// [deedles.dev/linear] between goroutines: a locking wrapper for any
// list, and a queue and a mailbox built on top of the linked lists.
// The containers themselves do no locking.
package xsync
