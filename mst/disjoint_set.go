package mst

// DisjointSet is a union-find forest over 0..n-1.
type DisjointSet struct {
	parent []int
}

// NewDisjointSet returns a forest of n singleton sets.
func NewDisjointSet(n int) *DisjointSet {
	d := &DisjointSet{parent: make([]int, n)}
	for v := range d.parent {
		d.MakeSet(v)
	}

	return d
}

// MakeSet resets v to a singleton set.
func (d *DisjointSet) MakeSet(v int) {
	d.parent[v] = v
}

// Find returns the representative of v's set, compressing the path behind it.
//
// Complexity: amortized O(log n); there is no union by rank, since Union
// must keep root(a) as the surviving root.
func (d *DisjointSet) Find(v int) int {
	if d.parent[v] != v {
		d.parent[v] = d.Find(d.parent[v])
	}

	return d.parent[v]
}

// Union merges the sets of a and b by attaching root(b) under root(a).
// It reports false when a and b were already in the same set.
//
// Complexity: two Find calls.
func (d *DisjointSet) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	d.parent[rb] = ra

	return true
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Sets counts the distinct sets.
//
// Complexity: O(n) Find calls.
func (d *DisjointSet) Sets() int {
	n := 0
	for v := range d.parent {
		if d.Find(v) == v {
			n++
		}
	}

	return n
}
