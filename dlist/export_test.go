package dlist

import "fmt"

// CheckLinks verifies the structure of the chain behind ls, including
// that every forward link is mirrored by a backward one.
func (ls *List[T]) CheckLinks() error {
	if (ls.head == nil) != (ls.tail == nil) {
		return fmt.Errorf("head is %p but tail is %p", ls.head, ls.tail)
	}
	if (ls.size == 0) != (ls.head == nil) {
		return fmt.Errorf("size is %v but head is %p", ls.size, ls.head)
	}
	if ls.head != nil && ls.head.prev != nil {
		return fmt.Errorf("head links back to %p", ls.head.prev)
	}
	if ls.tail != nil && ls.tail.next != nil {
		return fmt.Errorf("tail links forward to %p", ls.tail.next)
	}

	var prev *node[T]
	cur := ls.head
	for i := range ls.size {
		if cur == nil {
			return fmt.Errorf("chain ends after %v of %v nodes", i, ls.size)
		}
		if cur.prev != prev {
			return fmt.Errorf("node %v links back to %p, not %p", i, cur.prev, prev)
		}
		prev, cur = cur, cur.next
	}
	if cur != nil {
		return fmt.Errorf("chain continues past %v nodes", ls.size)
	}
	if prev != ls.tail {
		return fmt.Errorf("last node %p is not tail %p", prev, ls.tail)
	}
	return nil
}

// Hops returns the number of links followed to reach index.
func (ls *List[T]) Hops(index int) int {
	_, hops := ls.seek(index)
	return hops
}

// Node is a handle on a node of a List that stays usable after the
// node has been removed.
type Node[T comparable] struct {
	n *node[T]
}

// Nodes returns handles to the nodes currently in ls, head first.
func (ls *List[T]) Nodes() []Node[T] {
	nodes := make([]Node[T], 0, ls.size)
	for n := range ls.nodes() {
		nodes = append(nodes, Node[T]{n: n})
	}
	return nodes
}

// Cleared returns true if the node holds the zero value and links
// nowhere in either direction.
func (n Node[T]) Cleared() bool {
	var zero T
	return n.n.val == zero && n.n.prev == nil && n.n.next == nil
}
