package avl

import "github.com/katalvlaran/dsviz/viz"

// Node is one tree node. Pos is cosmetic and never affects structure.
type Node struct {
	Key    int
	Height int
	Left   *Node
	Right  *Node
	Pos    viz.Motion
}

func newNode(key int, at viz.Point) *Node {
	return &Node{Key: key, Height: 1, Pos: viz.Motion{Current: at, Target: at}}
}

// height is 0 for nil.
func height(n *Node) int {
	if n == nil {
		return 0
	}
	return n.Height
}

// balance is left height minus right height; 0 for nil.
func balance(n *Node) int {
	if n == nil {
		return 0
	}
	return height(n.Left) - height(n.Right)
}

func (n *Node) fix() {
	n.Height = 1 + max(height(n.Left), height(n.Right))
}

// Balance returns the node's balance factor.
func (n *Node) Balance() int { return balance(n) }

// Clone deep-copies a subtree, positions included.
func Clone(n *Node) *Node {
	if n == nil {
		return nil
	}
	c := *n
	c.Left = Clone(n.Left)
	c.Right = Clone(n.Right)

	return &c
}

// Equal reports whether two subtrees have the same shape and keys.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Key == b.Key && a.Height == b.Height && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
}

// walk visits every node in pre-order.
func walk(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	walk(n.Left, fn)
	walk(n.Right, fn)
}

func count(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + count(n.Left) + count(n.Right)
}

func inorder(n *Node, out []int) []int {
	if n == nil {
		return out
	}
	out = inorder(n.Left, out)
	out = append(out, n.Key)
	return inorder(n.Right, out)
}
