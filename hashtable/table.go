package hashtable

import "github.com/katalvlaran/dsviz/viz"

// Size is the fixed bucket count. The load factor is unbounded.
const Size = 17

// Layout of the bucket column and chains.
const (
	RowOriginY   = 110.0
	RowSpacing   = 40.0
	ChainStartX  = 60.0
	ChainSpacing = 60.0
)

// Node is one chain cell. Values are unique, so Value doubles as the node ID.
type Node struct {
	Value int
	Next  *Node
	Pos   viz.Motion
}

// Buckets is the whole table state; it is what history snapshots.
type Buckets [Size]*Node

// Hash maps v to its bucket, negatives included.
func Hash(v int) int {
	return ((v % Size) + Size) % Size
}

// CloneBuckets deep-copies every chain.
func CloneBuckets(b Buckets) Buckets {
	var out Buckets
	for i, head := range b {
		var tail *Node
		for n := head; n != nil; n = n.Next {
			c := *n
			c.Next = nil
			if tail == nil {
				out[i] = &c
			} else {
				tail.Next = &c
			}
			tail = &c
		}
	}

	return out
}

// chain walks bucket Hash(v) up to and including the node holding v.
func (b *Buckets) chain(v int) (path []*Node, found bool) {
	for n := b[Hash(v)]; n != nil; n = n.Next {
		path = append(path, n)
		if n.Value == v {
			return path, true
		}
	}
	return path, false
}

// link appends nn at the tail of its bucket.
func (b *Buckets) link(nn *Node) {
	i := Hash(nn.Value)
	if b[i] == nil {
		b[i] = nn
		return
	}
	n := b[i]
	for n.Next != nil {
		n = n.Next
	}
	n.Next = nn
}

// unlink removes v from its bucket.
func (b *Buckets) unlink(v int) bool {
	i := Hash(v)
	var prev *Node
	for n := b[i]; n != nil; prev, n = n, n.Next {
		if n.Value != v {
			continue
		}
		if prev == nil {
			b[i] = n.Next
		} else {
			prev.Next = n.Next
		}
		return true
	}

	return false
}

func (b *Buckets) each(fn func(bucket, slot int, n *Node)) {
	for i, head := range b {
		j := 0
		for n := head; n != nil; n = n.Next {
			fn(i, j, n)
			j++
		}
	}
}

// slot is the on-screen target of the j-th node of bucket i.
func slot(i, j int) viz.Point {
	return viz.Point{X: ChainStartX + float64(j+1)*ChainSpacing, Y: RowOriginY + float64(i)*RowSpacing}
}
