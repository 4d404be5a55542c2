package slist

import "fmt"

// CheckLinks verifies the structure of the chain behind ls.
func (ls *List[T]) CheckLinks() error {
	if (ls.head == nil) != (ls.tail == nil) {
		return fmt.Errorf("head is %p but tail is %p", ls.head, ls.tail)
	}
	if (ls.size == 0) != (ls.head == nil) {
		return fmt.Errorf("size is %v but head is %p", ls.size, ls.head)
	}
	if ls.tail != nil && ls.tail.next != nil {
		return fmt.Errorf("tail links forward to %p", ls.tail.next)
	}

	cur := ls.head
	var last *node[T]
	for i := range ls.size {
		if cur == nil {
			return fmt.Errorf("chain ends after %v of %v nodes", i, ls.size)
		}
		last, cur = cur, cur.next
	}
	if cur != nil {
		return fmt.Errorf("chain continues past %v nodes", ls.size)
	}
	if last != ls.tail {
		return fmt.Errorf("last node %p is not tail %p", last, ls.tail)
	}
	return nil
}

// Node is a handle on a node of a List that stays usable after the
// node has been removed.
type Node[T comparable] struct {
	n *node[T]
}

// Nodes returns handles to the nodes currently in ls, head first.
func (ls *List[T]) Nodes() []Node[T] {
	nodes := make([]Node[T], 0, ls.size)
	for cur := ls.head; cur != nil; cur = cur.next {
		nodes = append(nodes, Node[T]{n: cur})
	}
	return nodes
}

// Cleared returns true if the node holds the zero value and links
// nowhere.
func (n Node[T]) Cleared() bool {
	var zero T
	return n.n.val == zero && n.n.next == nil
}
