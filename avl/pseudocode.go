package avl

// Pseudocode is the insert listing that playback line indices point into.
var Pseudocode = []string{
	"insert(node, key):",
	"  if node == nil: return new Node(key)",
	"  if key < node.key: node.left = insert(node.left, key)",
	"  else if key > node.key: node.right = insert(node.right, key)",
	"  else: return node",
	"  node.height = 1 + max(h(node.left), h(node.right))",
	"  b = h(node.left) - h(node.right)",
	"  if b > 1 and key < node.left.key: return rotateRight(node)",
	"  if b < -1 and key > node.right.key: return rotateLeft(node)",
	"  if b > 1 and key > node.left.key: left-rotate child, return rotateRight(node)",
	"  if b < -1 and key < node.right.key: right-rotate child, return rotateLeft(node)",
}

const (
	lineEnter = iota
	lineCreate
	lineGoLeft
	lineGoRight
	lineDuplicate
	lineHeight
	lineBalance
	lineLL
	lineRR
	lineLR
	lineRL
)
