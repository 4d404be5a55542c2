package xsync_test

import (
	"fmt"
	"sync"
	"testing"

	"deedles.dev/linear"
	"deedles.dev/linear/dlist"
	"deedles.dev/linear/internal/listtest"
	"deedles.dev/linear/slist"
	"deedles.dev/linear/xsync"
	"github.com/stretchr/testify/require"
)

func checkLen(ls linear.List[int]) error {
	if n, vals := ls.Len(), len(ls.Values()); n != vals {
		return fmt.Errorf("Len() is %v but there are %v values", n, vals)
	}
	return nil
}

func TestLocked(t *testing.T) {
	t.Run("Singly", func(t *testing.T) {
		listtest.Run(t, listtest.Harness{
			New:   func() linear.List[int] { return xsync.NewLocked[int](new(slist.List[int])) },
			Check: checkLen,
		})
	})

	t.Run("Doubly", func(t *testing.T) {
		listtest.Run(t, listtest.Harness{
			New:   func() linear.List[int] { return xsync.NewLocked[int](new(dlist.List[int])) },
			Check: checkLen,
		})
	})
}

func TestLockedConcurrent(t *testing.T) {
	ls := xsync.NewLocked[int](new(dlist.List[int]))

	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				ls.AddLast(w*100 + i)
				ls.AddFirst(-1)
				ls.Remove(-1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 800, ls.Len())
	require.False(t, ls.Contains(-1))

	seen := make(map[int]bool)
	for v := range ls.All() {
		seen[v] = true
	}
	require.Len(t, seen, 800)
}

func TestLockedDo(t *testing.T) {
	ls := xsync.NewLocked[string](new(slist.List[string]))
	ls.Add("a")

	ls.Do(func(ls linear.List[string]) {
		first, err := ls.PeekFirst()
		require.NoError(t, err)
		ls.AddLast(first + first)
	})
	require.Equal(t, "[ a, aa ]", ls.String())
}

func TestLockedSnapshot(t *testing.T) {
	ls := xsync.NewLocked[int](new(slist.List[int]))
	ls.Add(1)
	ls.Add(2)

	it := ls.Iterator()
	ls.Clear()

	var got []int
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		got = append(got, v)
	}
	require.Equal(t, []int{1, 2}, got)
	require.True(t, ls.IsEmpty())
}
