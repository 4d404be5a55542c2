// Package listtest runs the behavior shared by every [linear.List]
// implementation against a given implementation.
package listtest

import (
	"slices"
	"testing"

	"deedles.dev/linear"
	"github.com/stretchr/testify/require"
)

// Harness describes the implementation under test.
type Harness struct {
	// New returns a new, empty list.
	New func() linear.List[int]

	// Check verifies the internal structure of a list. It is called
	// after every mutation.
	Check func(linear.List[int]) error
}

func (h Harness) of(t *testing.T, vs ...int) linear.List[int] {
	t.Helper()

	ls := h.New()
	for _, v := range vs {
		ls.Add(v)
	}
	h.check(t, ls)
	return ls
}

func (h Harness) check(t *testing.T, ls linear.List[int]) {
	t.Helper()
	require.NoError(t, h.Check(ls))
}

// requireUnchanged asserts that ls still holds exactly want.
func (h Harness) requireUnchanged(t *testing.T, ls linear.List[int], want []int) {
	t.Helper()
	h.check(t, ls)
	require.Equal(t, len(want), ls.Len())
	require.Equal(t, want, ls.Values())
}

// Run runs the shared tests.
func Run(t *testing.T, h Harness) {
	t.Run("Empty", func(t *testing.T) {
		ls := h.New()
		require.True(t, ls.IsEmpty())
		require.Equal(t, 0, ls.Len())
		require.Equal(t, "[  ]", ls.String())
		require.Empty(t, ls.Values())
		h.check(t, ls)

		_, err := ls.PeekFirst()
		require.ErrorIs(t, err, linear.ErrEmpty)
		_, err = ls.PeekLast()
		require.ErrorIs(t, err, linear.ErrEmpty)
		_, err = ls.RemoveFirst()
		require.ErrorIs(t, err, linear.ErrEmpty)
		_, err = ls.RemoveLast()
		require.ErrorIs(t, err, linear.ErrEmpty)
		_, err = ls.RemoveAt(0)
		require.ErrorIs(t, err, linear.ErrIndexOutOfRange)
		_, err = ls.Get(0)
		require.ErrorIs(t, err, linear.ErrIndexOutOfRange)

		require.False(t, ls.Remove(0))
		require.Equal(t, -1, ls.IndexOf(0))
		h.requireUnchanged(t, ls, []int{})
	})

	t.Run("AddLastOrder", func(t *testing.T) {
		vs := []int{5, 1, 4, 1, 5, 9, 2, 6}
		ls := h.of(t, vs...)
		require.Equal(t, vs, slices.Collect(ls.All()))
		require.Equal(t, len(vs), ls.Len())
		require.False(t, ls.IsEmpty())
	})

	t.Run("AddFirst", func(t *testing.T) {
		ls := h.New()
		for v := range 4 {
			ls.AddFirst(v)
			h.check(t, ls)
		}
		require.Equal(t, []int{3, 2, 1, 0}, ls.Values())

		first, err := ls.PeekFirst()
		require.NoError(t, err)
		require.Equal(t, 3, first)
		last, err := ls.PeekLast()
		require.NoError(t, err)
		require.Equal(t, 0, last)
	})

	t.Run("Single", func(t *testing.T) {
		ls := h.New()
		ls.AddFirst(1)
		h.check(t, ls)

		first, err := ls.PeekFirst()
		require.NoError(t, err)
		last, err := ls.PeekLast()
		require.NoError(t, err)
		require.Equal(t, first, last)

		v, err := ls.RemoveLast()
		require.NoError(t, err)
		require.Equal(t, 1, v)
		h.requireUnchanged(t, ls, []int{})

		ls.AddLast(2)
		v, err = ls.RemoveFirst()
		require.NoError(t, err)
		require.Equal(t, 2, v)
		h.requireUnchanged(t, ls, []int{})
	})

	t.Run("RemoveFirstThenPeek", func(t *testing.T) {
		ls := h.of(t, 10, 20, 30)
		v, err := ls.RemoveFirst()
		require.NoError(t, err)
		require.Equal(t, 10, v)
		h.check(t, ls)

		v, err = ls.PeekFirst()
		require.NoError(t, err)
		require.Equal(t, 20, v)
	})

	t.Run("RemoveLast", func(t *testing.T) {
		ls := h.of(t, 1, 2, 3, 4)
		for want := 4; want > 0; want-- {
			v, err := ls.RemoveLast()
			require.NoError(t, err)
			require.Equal(t, want, v)
			h.check(t, ls)
		}
		require.True(t, ls.IsEmpty())

		ls.AddLast(7)
		require.Equal(t, []int{7}, ls.Values())
		h.check(t, ls)
	})

	t.Run("AddAt", func(t *testing.T) {
		ls := h.of(t)
		require.NoError(t, ls.AddAt(0, 2))
		require.NoError(t, ls.AddAt(0, 0))
		require.NoError(t, ls.AddAt(2, 4))
		require.NoError(t, ls.AddAt(1, 1))
		require.NoError(t, ls.AddAt(3, 3))
		h.requireUnchanged(t, ls, []int{0, 1, 2, 3, 4})

		last, err := ls.PeekLast()
		require.NoError(t, err)
		require.Equal(t, 4, last)
	})

	t.Run("AddAtRoundTrip", func(t *testing.T) {
		for i := range 6 {
			ls := h.of(t, 10, 20, 30, 40, 50)
			require.NoError(t, ls.AddAt(i, -1))
			h.check(t, ls)
			require.Equal(t, 6, ls.Len())

			v, err := ls.Get(i)
			require.NoError(t, err)
			require.Equal(t, -1, v)
			require.Equal(t, i, ls.IndexOf(-1))
		}
	})

	t.Run("AddAtInvalid", func(t *testing.T) {
		ls := h.of(t, 1, 2, 3)
		require.ErrorIs(t, ls.AddAt(5, 9), linear.ErrInvalidIndex)
		require.ErrorIs(t, ls.AddAt(4, 9), linear.ErrInvalidIndex)
		require.ErrorIs(t, ls.AddAt(-1, 9), linear.ErrInvalidIndex)
		h.requireUnchanged(t, ls, []int{1, 2, 3})
	})

	t.Run("GetSet", func(t *testing.T) {
		ls := h.of(t, 1, 2, 3, 4, 5)
		for i := range 5 {
			v, err := ls.Get(i)
			require.NoError(t, err)
			require.Equal(t, i+1, v)
			require.NoError(t, ls.Set(i, v*10))
		}
		h.requireUnchanged(t, ls, []int{10, 20, 30, 40, 50})

		_, err := ls.Get(5)
		require.ErrorIs(t, err, linear.ErrIndexOutOfRange)
		require.ErrorIs(t, ls.Set(-1, 0), linear.ErrIndexOutOfRange)
		require.ErrorIs(t, ls.Set(5, 0), linear.ErrIndexOutOfRange)
		h.requireUnchanged(t, ls, []int{10, 20, 30, 40, 50})
	})

	t.Run("RemoveAt", func(t *testing.T) {
		ls := h.of(t, 3, 7, 6, -2)
		require.Equal(t, "[ 3, 7, 6, -2 ]", ls.String())
		require.Equal(t, 4, ls.Len())

		v, err := ls.RemoveAt(2)
		require.NoError(t, err)
		require.Equal(t, 6, v)
		require.Equal(t, "[ 3, 7, -2 ]", ls.String())
		require.Equal(t, 3, ls.Len())
		h.check(t, ls)
	})

	t.Run("RemoveAtEveryIndex", func(t *testing.T) {
		vs := []int{0, 1, 2, 3, 4, 5, 6}
		for i := range vs {
			ls := h.of(t, vs...)
			v, err := ls.RemoveAt(i)
			require.NoError(t, err)
			require.Equal(t, i, v)
			h.requireUnchanged(t, ls, slices.Delete(slices.Clone(vs), i, i+1))
		}
	})

	t.Run("RemoveAtBoundaries", func(t *testing.T) {
		a := h.of(t, 1, 2, 3, 4)
		b := h.of(t, 1, 2, 3, 4)

		v1, err1 := a.RemoveAt(0)
		v2, err2 := b.RemoveFirst()
		require.Equal(t, v1, v2)
		require.Equal(t, err1, err2)
		require.Equal(t, a.Values(), b.Values())

		v1, err1 = a.RemoveAt(a.Len() - 1)
		v2, err2 = b.RemoveLast()
		require.Equal(t, v1, v2)
		require.Equal(t, err1, err2)
		require.Equal(t, a.Values(), b.Values())
		h.check(t, a)
		h.check(t, b)
	})

	t.Run("RemoveAtInvalid", func(t *testing.T) {
		ls := h.of(t, 1, 2, 3)
		_, err := ls.RemoveAt(3)
		require.ErrorIs(t, err, linear.ErrIndexOutOfRange)
		_, err = ls.RemoveAt(-1)
		require.ErrorIs(t, err, linear.ErrIndexOutOfRange)
		h.requireUnchanged(t, ls, []int{1, 2, 3})
	})

	t.Run("Remove", func(t *testing.T) {
		ls := h.of(t, 1, 2, 3, 2, 1)
		require.True(t, ls.Remove(2))
		h.requireUnchanged(t, ls, []int{1, 3, 2, 1})
		require.True(t, ls.Remove(1))
		h.requireUnchanged(t, ls, []int{3, 2, 1})
		require.True(t, ls.Remove(1))
		h.requireUnchanged(t, ls, []int{3, 2})
		require.False(t, ls.Remove(9))
		h.requireUnchanged(t, ls, []int{3, 2})

		last, err := ls.PeekLast()
		require.NoError(t, err)
		require.Equal(t, 2, last)
	})

	t.Run("RemoveZeroValue", func(t *testing.T) {
		ls := h.of(t, 1, 0, 2)
		require.True(t, ls.Contains(0))
		require.Equal(t, 1, ls.IndexOf(0))
		require.True(t, ls.Remove(0))
		require.False(t, ls.Contains(0))
		h.requireUnchanged(t, ls, []int{1, 2})
	})

	t.Run("RemoveFunc", func(t *testing.T) {
		ls := h.of(t, 1, 2, 3, 4)
		even := func(v int) bool { return v%2 == 0 }
		require.Equal(t, 1, ls.IndexFunc(even))
		require.True(t, ls.RemoveFunc(even))
		require.True(t, ls.RemoveFunc(even))
		require.False(t, ls.RemoveFunc(even))
		require.Equal(t, -1, ls.IndexFunc(even))
		h.requireUnchanged(t, ls, []int{1, 3})
	})

	t.Run("IndexOf", func(t *testing.T) {
		ls := h.of(t, 4, 5, 6, 5)
		require.Equal(t, 0, ls.IndexOf(4))
		require.Equal(t, 1, ls.IndexOf(5))
		require.Equal(t, 2, ls.IndexOf(6))
		require.Equal(t, -1, ls.IndexOf(7))
		require.True(t, ls.Contains(6))
		require.False(t, ls.Contains(7))
	})

	t.Run("Clear", func(t *testing.T) {
		ls := h.of(t, 1, 2, 3)
		ls.Clear()
		h.requireUnchanged(t, ls, []int{})
		require.True(t, ls.IsEmpty())

		ls.Clear()
		h.requireUnchanged(t, ls, []int{})
		require.True(t, ls.IsEmpty())

		ls.Add(4)
		h.requireUnchanged(t, ls, []int{4})
	})

	t.Run("Iterator", func(t *testing.T) {
		ls := h.of(t, 1, 2, 3)
		it := ls.Iterator()
		var got []int
		for {
			v, ok := it.Next()
			if !ok {
				break
			}
			got = append(got, v)
		}
		require.Equal(t, []int{1, 2, 3}, got)

		_, ok := it.Next()
		require.False(t, ok)

		v, ok := ls.Iterator().Next()
		require.True(t, ok)
		require.Equal(t, 1, v)
	})

	t.Run("AllStopsEarly", func(t *testing.T) {
		ls := h.of(t, 1, 2, 3, 4)
		var got []int
		for v := range ls.All() {
			if v == 3 {
				break
			}
			got = append(got, v)
		}
		require.Equal(t, []int{1, 2}, got)

		require.Equal(t, []int{1, 2, 3, 4}, slices.Collect(ls.All()))
	})

	t.Run("Mixed", func(t *testing.T) {
		ls := h.New()
		var model []int
		for i := range 64 {
			switch i % 7 {
			case 0, 3:
				ls.AddLast(i)
				model = append(model, i)
			case 1:
				ls.AddFirst(i)
				model = slices.Insert(model, 0, i)
			case 2:
				at := len(model) / 3
				require.NoError(t, ls.AddAt(at, i))
				model = slices.Insert(model, at, i)
			case 4:
				v, err := ls.RemoveLast()
				require.NoError(t, err)
				require.Equal(t, model[len(model)-1], v)
				model = model[:len(model)-1]
			case 5:
				at := len(model) / 2
				v, err := ls.RemoveAt(at)
				require.NoError(t, err)
				require.Equal(t, model[at], v)
				model = slices.Delete(model, at, at+1)
			case 6:
				v, err := ls.RemoveFirst()
				require.NoError(t, err)
				require.Equal(t, model[0], v)
				model = model[1:]
			}
			h.requireUnchanged(t, ls, model)
		}
	})
}
