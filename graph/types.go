package graph

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/dsviz/viz"
)

// ErrVertexNotFound indicates an ID with no vertex.
var ErrVertexNotFound = errors.New("graph: vertex not found")

// Vertex is one drawn vertex. Scale and Alpha are cosmetic.
type Vertex struct {
	ID    int
	Pos   viz.Motion
	Scale float64
	Alpha float64
}

// Edge joins two vertex indices. Highlighted marks an accepted MST edge,
// Blurred one Kruskal rejected.
type Edge struct {
	From        int
	To          int
	Weight      int
	Highlighted bool
	Blurred     bool
}

// Joins reports whether e connects indices a and b in either direction.
func (e Edge) Joins(a, b int) bool {
	return (e.From == a && e.To == b) || (e.From == b && e.To == a)
}

// State is what history snapshots.
type State struct {
	Vertices []Vertex
	Edges    []Edge
}

// Clone copies both slices; elements hold no pointers.
func (s State) Clone() State {
	return State{
		Vertices: append([]Vertex(nil), s.Vertices...),
		Edges:    append([]Edge(nil), s.Edges...),
	}
}

func cloneState(s State) State { return s.Clone() }

// IndexOf returns the slice index of vertex id.
func (s State) IndexOf(id int) (int, error) {
	for i, v := range s.Vertices {
		if v.ID == id {
			return i, nil
		}
	}
	return -1, errors.Wrapf(ErrVertexNotFound, "id %d", id)
}

func (s State) has(id int) bool {
	_, err := s.IndexOf(id)
	return err == nil
}

func (s State) edgeIndex(a, b int) int {
	for i, e := range s.Edges {
		if e.Joins(a, b) {
			return i
		}
	}
	return -1
}

// removeVertex drops vertex i and its incident edges, then shifts higher
// indices down. Edges are filtered in place.
func (s *State) removeVertex(i int) {
	kept := s.Edges[:0]
	for _, e := range s.Edges {
		if e.From == i || e.To == i {
			continue
		}
		if e.From > i {
			e.From--
		}
		if e.To > i {
			e.To--
		}
		kept = append(kept, e)
	}
	s.Edges = kept
	s.Vertices = append(s.Vertices[:i], s.Vertices[i+1:]...)
}

// MSTEdge is an accepted edge reported by vertex IDs.
type MSTEdge struct {
	From   int `yaml:"from"`
	To     int `yaml:"to"`
	Weight int `yaml:"weight"`
}

// MSTState is the Kruskal table.
type MSTState struct {
	Edges      []MSTEdge `yaml:"edges"`
	Total      int       `yaml:"total"`
	Running    bool      `yaml:"running"`
	Done       bool      `yaml:"done"`
	Components int       `yaml:"components"`
	Examined   int       `yaml:"examined"`
	Considered int       `yaml:"considered"`
}
