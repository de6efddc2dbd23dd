package avl

import "github.com/cockroachdb/errors"

// Invariant violations reported by Check.
var (
	ErrUnordered  = errors.New("avl: ordering violated")
	ErrBadHeight  = errors.New("avl: stored height is stale")
	ErrUnbalanced = errors.New("avl: balance factor out of range")
)

// Validate checks ordering, cached heights and the AVL balance bound of every
// node below root.
func Validate(root *Node) error {
	_, err := validate(root, nil, nil)
	return err
}

func validate(n *Node, lo, hi *int) (int, error) {
	if n == nil {
		return 0, nil
	}
	if (lo != nil && n.Key <= *lo) || (hi != nil && n.Key >= *hi) {
		return 0, errors.Wrapf(ErrUnordered, "key %d", n.Key)
	}
	lh, err := validate(n.Left, lo, &n.Key)
	if err != nil {
		return 0, err
	}
	rh, err := validate(n.Right, &n.Key, hi)
	if err != nil {
		return 0, err
	}
	h := 1 + max(lh, rh)
	if n.Height != h {
		return 0, errors.Wrapf(ErrBadHeight, "key %d: stored %d, actual %d", n.Key, n.Height, h)
	}
	if b := lh - rh; b > 1 || b < -1 {
		return 0, errors.Wrapf(ErrUnbalanced, "key %d: balance %d", n.Key, b)
	}

	return h, nil
}
