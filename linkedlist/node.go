package linkedlist

import "github.com/katalvlaran/dsviz/viz"

// Node is one list cell.
type Node struct {
	ID    int
	Value int
	Next  *Node
	Pos   viz.Motion
}

// Clone deep-copies a chain, IDs and positions included.
func Clone(head *Node) *Node {
	var out, tail *Node
	for n := head; n != nil; n = n.Next {
		c := *n
		c.Next = nil
		if tail == nil {
			out = &c
		} else {
			tail.Next = &c
		}
		tail = &c
	}

	return out
}

// Values lists the chain's values from the head.
func Values(head *Node) []int {
	var out []int
	for n := head; n != nil; n = n.Next {
		out = append(out, n.Value)
	}
	return out
}

// appendTail adds nn at the end of the chain starting at n, collecting
// every node it passes.
func appendTail(n, nn *Node, path *[]*Node) *Node {
	if n == nil {
		*path = append(*path, nn)
		return nn
	}
	*path = append(*path, n)
	n.Next = appendTail(n.Next, nn, path)

	return n
}

// unlink removes the first node holding v.
func unlink(n *Node, v int) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	if n.Value == v {
		return n.Next, true
	}
	var ok bool
	n.Next, ok = unlink(n.Next, v)

	return n, ok
}

// find walks from head to the first node holding v, inclusive.
func find(head *Node, v int) []*Node {
	var path []*Node
	for n := head; n != nil; n = n.Next {
		path = append(path, n)
		if n.Value == v {
			break
		}
	}
	return path
}

func maxID(head *Node) int {
	m := 0
	for n := head; n != nil; n = n.Next {
		m = max(m, n.ID)
	}
	return m
}
