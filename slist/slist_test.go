package slist_test

import (
	"fmt"
	"slices"
	"testing"

	"deedles.dev/linear"
	"deedles.dev/linear/internal/listtest"
	"deedles.dev/linear/slist"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	listtest.Run(t, listtest.Harness{
		New: func() linear.List[int] { return new(slist.List[int]) },
		Check: func(ls linear.List[int]) error {
			return ls.(*slist.List[int]).CheckLinks()
		},
	})
}

func TestRemoveLastDetachesTail(t *testing.T) {
	var ls slist.List[string]
	ls.Add("a")
	ls.Add("b")
	ls.Add("c")

	v, err := ls.RemoveLast()
	require.NoError(t, err)
	require.Equal(t, "c", v)
	require.NoError(t, ls.CheckLinks())

	ls.Add("d")
	require.Equal(t, []string{"a", "b", "d"}, ls.Values())
	require.NoError(t, ls.CheckLinks())
}

func TestPointerElements(t *testing.T) {
	var ls slist.List[*int]
	one := 1
	ls.Add(&one)
	ls.Add(nil)

	require.Equal(t, 1, ls.IndexOf(nil))
	require.True(t, ls.Remove(nil))
	require.False(t, ls.Contains(nil))
	require.Equal(t, 0, ls.IndexOf(&one))
}

func TestRemovedNodesCleared(t *testing.T) {
	tests := []struct {
		name    string
		op      func(*slist.List[int])
		cleared []int
	}{
		{"Clear", func(ls *slist.List[int]) { ls.Clear() }, []int{0, 1, 2, 3, 4}},
		{"RemoveFirst", func(ls *slist.List[int]) { ls.RemoveFirst() }, []int{0}},
		{"RemoveLast", func(ls *slist.List[int]) { ls.RemoveLast() }, []int{4}},
		{"RemoveAt", func(ls *slist.List[int]) { ls.RemoveAt(2) }, []int{2}},
		{"Remove", func(ls *slist.List[int]) { ls.Remove(4) }, []int{3}},
		{"RemoveFunc", func(ls *slist.List[int]) { ls.RemoveFunc(func(v int) bool { return v > 1 }) }, []int{1}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var ls slist.List[int]
			for i := 1; i <= 5; i++ {
				ls.Add(i)
			}

			nodes := ls.Nodes()
			test.op(&ls)
			require.NoError(t, ls.CheckLinks())
			for i, n := range nodes {
				require.Equal(t, slices.Contains(test.cleared, i), n.Cleared(), "node %v", i)
			}
		})
	}
}

func ExampleList() {
	var ls slist.List[int]
	ls.Add(3)
	ls.Add(7)
	ls.Add(6)
	ls.Add(-2)
	fmt.Println(ls.String(), ls.Len())

	ls.RemoveAt(2)
	fmt.Println(ls.String(), ls.Len())

	// Output:
	// [ 3, 7, 6, -2 ] 4
	// [ 3, 7, -2 ] 3
}

func ExampleList_RemoveFirst() {
	var ls slist.List[string]
	_, err := ls.RemoveFirst()
	fmt.Println(err)

	// Output:
	// remove first: container is empty
}

func BenchmarkAddLast(b *testing.B) {
	var ls slist.List[int]
	for i := range b.N {
		ls.AddLast(i)
	}
}

func BenchmarkRemoveFirst(b *testing.B) {
	var ls slist.List[int]
	for i := range b.N {
		ls.AddLast(i)
	}
	b.ResetTimer()

	for range b.N {
		ls.RemoveFirst()
	}
}
