package xsync_test

import (
	"context"
	"runtime"
	"slices"
	"testing"
	"time"

	"deedles.dev/linear/xsync"
	"github.com/stretchr/testify/require"
)

func TestQueue(t *testing.T) {
	var q xsync.Queue[int]
	defer q.Stop()

	for i := range 5 {
		q.Add() <- i
	}
	for i := range 5 {
		require.Equal(t, i, <-q.Get())
	}

	q.Add() <- 10
	require.Equal(t, 10, <-q.Get())
}

func TestQueueClose(t *testing.T) {
	var q xsync.Queue[string]
	q.Add() <- "a"
	q.Add() <- "b"
	close(q.Add())

	require.Equal(t, []string{"a", "b"}, slices.Collect(q.Values(t.Context())))

	_, ok := <-q.Get()
	require.False(t, ok)
}

func TestQueueCloseEmpty(t *testing.T) {
	var q xsync.Queue[int]
	close(q.Add())

	_, ok := <-q.Get()
	require.False(t, ok)
}

func TestQueueStop(t *testing.T) {
	var q xsync.Queue[int]
	q.Add() <- 1
	q.Stop()
	q.Stop()

	for range q.Get() {
	}
}

func TestQueueValuesCanceled(t *testing.T) {
	var q xsync.Queue[int]
	defer q.Stop()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	require.Empty(t, slices.Collect(q.Values(ctx)))
}

//go:noinline
func abandonQueues(n int) {
	for i := range n {
		q := new(xsync.Queue[int])
		q.Add() <- i
	}
}

func TestQueueCollected(t *testing.T) {
	before := runtime.NumGoroutine()
	abandonQueues(10)

	deadline := time.Now().Add(5 * time.Second)
	for runtime.NumGoroutine() > before {
		require.True(t, time.Now().Before(deadline), "%v goroutines still running, started with %v", runtime.NumGoroutine(), before)
		runtime.GC()
		time.Sleep(10 * time.Millisecond)
	}
}

func BenchmarkQueue(b *testing.B) {
	var q xsync.Queue[int]
	defer q.Stop()

	for i := range b.N {
		q.Add() <- i
		<-q.Get()
	}
}
