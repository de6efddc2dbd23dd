package avl

import (
	"github.com/katalvlaran/dsviz/metrics"
	"github.com/katalvlaran/dsviz/playback"
	"github.com/katalvlaran/dsviz/viz"
)

// trace collects what a recursive operation touched.
type trace struct {
	path  []playback.Step
	lines []int
	rec   metrics.Recorder
	spawn viz.Point
}

func (t *trace) visit(n *Node) {
	t.path = append(t.path, playback.Step{ID: n.Key, Value: n.Key})
}

func (t *trace) line(i int) {
	t.lines = append(t.lines, i)
}

func (t *trace) rotation(kind string) {
	if t.rec != nil {
		t.rec.Rotation(kind)
	}
}

// rotateRight lifts y's left child x into y's place.
//
//	    y          x
//	   / \        / \
//	  x   C  ->  A   y
//	 / \            / \
//	A   B          B   C
//
// Heights of y then x are recomputed, in that order, since y is now below x.
//
// Complexity: O(1).
func rotateRight(y *Node) *Node {
	x := y.Left
	y.Left = x.Right
	x.Right = y
	y.fix()
	x.fix()

	return x
}

// rotateLeft is the mirror of rotateRight: x's right child y takes x's place.
//
// Complexity: O(1).
func rotateLeft(x *Node) *Node {
	y := x.Right
	x.Right = y.Left
	y.Left = x
	x.fix()
	y.fix()

	return y
}

// insert adds key below n. It reports false when key already exists.
//
// Steps:
//  1. Empty subtree: create the node at the spawn point.
//  2. Descend left or right by key; an equal key stops the walk.
//  3. On the way back up, refresh the height and compute the balance.
//  4. Pick the rotation case by balance and by which side key went:
//     LL and RR rotate once, LR and RL rotate the child first.
//
// Every visited node and pseudocode line is appended to t.
//
// Complexity: O(log N) time, O(log N) stack.
func insert(n *Node, key int, t *trace) (*Node, bool) {
	// 1. Reached a nil link: this is where key belongs.
	t.line(lineEnter)
	if n == nil {
		t.line(lineCreate)
		nn := newNode(key, t.spawn)
		t.visit(nn)
		return nn, true
	}
	t.visit(n)

	// 2. Descend.
	var ok bool
	switch {
	case key < n.Key:
		t.line(lineGoLeft)
		n.Left, ok = insert(n.Left, key, t)
	case key > n.Key:
		t.line(lineGoRight)
		n.Right, ok = insert(n.Right, key, t)
	default:
		t.line(lineDuplicate)
		return n, false
	}
	if !ok {
		return n, false
	}

	// 3. Height and balance on the way up.
	t.line(lineHeight)
	n.fix()
	t.line(lineBalance)
	b := balance(n)

	// 4. At most one rotation case applies per level.
	switch {
	case b > 1 && key < n.Left.Key:
		t.line(lineLL)
		t.rotation(metrics.RotationLL)
		return rotateRight(n), true
	case b < -1 && key > n.Right.Key:
		t.line(lineRR)
		t.rotation(metrics.RotationRR)
		return rotateLeft(n), true
	case b > 1 && key > n.Left.Key:
		t.line(lineLR)
		t.rotation(metrics.RotationLR)
		n.Left = rotateLeft(n.Left)
		return rotateRight(n), true
	case b < -1 && key < n.Right.Key:
		t.line(lineRL)
		t.rotation(metrics.RotationRL)
		n.Right = rotateRight(n.Right)
		return rotateLeft(n), true
	}

	return n, true
}

func minNode(n *Node) *Node {
	for n != nil && n.Left != nil {
		n = n.Left
	}
	return n
}

// remove deletes key below n. It reports false when key is absent.
//
// Steps:
//  1. Descend by key, recording the path.
//  2. At the match: a node with at most one child is replaced by that child;
//     a node with two children takes its in-order successor's key and the
//     successor is removed from the right subtree instead.
//  3. Rebalance every node on the way back up; unlike insert, one deletion
//     may rotate at several levels.
//
// Complexity: O(log N) time, O(log N) stack.
func remove(n *Node, key int, t *trace) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	t.visit(n)

	var ok bool
	switch {
	case key < n.Key:
		n.Left, ok = remove(n.Left, key, t)
	case key > n.Key:
		n.Right, ok = remove(n.Right, key, t)
	default:
		// 2. Unlink or replace by the successor.
		ok = true
		switch {
		case n.Left == nil:
			return n.Right, true
		case n.Right == nil:
			return n.Left, true
		}
		succ := minNode(n.Right)
		n.Key = succ.Key
		n.Right, _ = remove(n.Right, succ.Key, t)
	}
	if !ok {
		return n, false
	}

	// 3. Restore balance at this level.
	return rebalance(n, t), true
}

// rebalance restores the AVL property at n after a deletion below it.
// The case is chosen by the child's balance, since no key names the side
// that grew: a child balance of 0 still takes a single rotation.
//
// Complexity: O(1).
func rebalance(n *Node, t *trace) *Node {
	n.fix()
	b := balance(n)
	switch {
	case b > 1 && balance(n.Left) >= 0:
		t.rotation(metrics.RotationLL)
		return rotateRight(n)
	case b > 1:
		t.rotation(metrics.RotationLR)
		n.Left = rotateLeft(n.Left)
		return rotateRight(n)
	case b < -1 && balance(n.Right) <= 0:
		t.rotation(metrics.RotationRR)
		return rotateLeft(n)
	case b < -1:
		t.rotation(metrics.RotationRL)
		n.Right = rotateRight(n.Right)
		return rotateLeft(n)
	}

	return n
}

// searchPath walks from root toward key and returns every node visited,
// ending at the match or at the last node before a nil child.
//
// Complexity: O(log N).
func searchPath(root *Node, key int) []playback.Step {
	var path []playback.Step
	for cur := root; cur != nil; {
		path = append(path, playback.Step{ID: cur.Key, Value: cur.Key})
		if key == cur.Key {
			break
		}
		if key < cur.Key {
			cur = cur.Left
		} else {
			cur = cur.Right
		}
	}

	return path
}

func contains(root *Node, key int) bool {
	p := searchPath(root, key)
	return len(p) > 0 && p[len(p)-1].Value == key
}
