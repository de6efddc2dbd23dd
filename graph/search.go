package graph

import (
	"github.com/katalvlaran/dsviz/bfs"
	"github.com/katalvlaran/dsviz/playback"
)

// adjacency is a bfs view of the live edge list.
type adjacency [][]int

func (a adjacency) Order() int            { return len(a) }
func (a adjacency) Neighbors(i int) []int { return a[i] }

func (s State) adjacency() adjacency {
	a := make(adjacency, len(s.Vertices))
	for _, e := range s.Edges {
		a[e.From] = append(a[e.From], e.To)
		a[e.To] = append(a[e.To], e.From)
	}
	return a
}

// Search reveals vertices in breadth-first order, component by component
// starting from index 0, until id is visited.
//
// Complexity: O(V + E).
func (g *Graph) Search(id int) []playback.Step {
	g.hasAffected = false
	var path []playback.Step
	for _, comp := range bfs.Components(g.state.adjacency()) {
		found := false
		for _, i := range comp {
			vid := g.state.Vertices[i].ID
			path = append(path, playback.Step{ID: vid, Value: vid})
			if vid == id {
				found = true
				break
			}
		}
		if found {
			break
		}
	}
	g.play.Start(playback.KindSearch, id, path, nil)
	g.rec.Operation(structure, "search")

	return path
}

// Components lists vertex IDs per connected component.
func (g *Graph) Components() [][]int {
	comps := bfs.Components(g.state.adjacency())
	out := make([][]int, len(comps))
	for c, comp := range comps {
		for _, i := range comp {
			out[c] = append(out[c], g.state.Vertices[i].ID)
		}
	}
	return out
}
