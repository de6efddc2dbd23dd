package avl

import "github.com/katalvlaran/dsviz/viz"

// CalculatePositions sets the target of every node below root. The root sits
// at (OriginX, OriginY); children of a node at depth d (root = 1) are placed
// ChildOffset(d) to either side and LevelSpacing lower. Current positions are
// untouched.
func CalculatePositions(root *Node, layout viz.TreeLayout) {
	place(root, viz.Point{X: layout.OriginX, Y: layout.OriginY}, 1, layout)
}

func place(n *Node, at viz.Point, depth int, l viz.TreeLayout) {
	if n == nil {
		return
	}
	n.Pos.Target = at
	dx := l.ChildOffset(depth)
	below := at.Y + l.LevelSpacing
	place(n.Left, viz.Point{X: at.X - dx, Y: below}, depth+1, l)
	place(n.Right, viz.Point{X: at.X + dx, Y: below}, depth+1, l)
}
