package mst

import "github.com/cockroachdb/errors"

// ErrNegativeOrder indicates a negative vertex count.
var ErrNegativeOrder = errors.New("mst: negative vertex count")

// ErrVertexOutOfRange indicates an edge endpoint outside [0, n).
var ErrVertexOutOfRange = errors.New("mst: edge endpoint out of range")

// Edge is an undirected weighted edge between vertex indices.
type Edge struct {
	From   int
	To     int
	Weight int
}

// Decision is the outcome of examining one edge.
type Decision struct {
	// Index is the edge's position in the slice given to NewKruskal.
	Index    int
	Edge     Edge
	Accepted bool
}

// Result is a completed minimum spanning forest.
type Result struct {
	Edges      []Edge
	Total      int
	Components int
}
