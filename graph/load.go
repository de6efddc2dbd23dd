package graph

import (
	"fmt"
	"io"

	"github.com/katalvlaran/dsviz/builder"
	"github.com/katalvlaran/dsviz/command"
	"github.com/katalvlaran/dsviz/loader"
)

// GenerateRandom replaces the graph with a random connected one of 5 to 10
// vertices and weights 1 to 10. It is undoable.
func (g *Graph) GenerateRandom() {
	spec, err := builder.ConnectedGraph(builder.WithRand(g.rng))
	if err != nil {
		g.log.Warn("random generation failed", "err", err)
		return
	}
	g.begin(-1)
	g.state = State{}
	for i := 0; i < spec.Vertices; i++ {
		g.addVertex(i)
	}
	for _, e := range spec.Edges {
		g.state.Edges = append(g.state.Edges, Edge{From: e.From, To: e.To, Weight: e.Weight})
	}
	g.relayout()
	g.commit("random", spec.Vertices)
}

// LoadFromFile merges the "from to weight" lines of path into the graph.
func (g *Graph) LoadFromFile(path string) command.LoadResult {
	if path == "" {
		return g.loaded(command.LoadResult{Message: command.Canceled})
	}
	f, err := loader.Open(path)
	if err != nil {
		return g.loaded(command.LoadResult{Message: command.LoadFailed(path, err)})
	}
	defer f.Close()

	return g.Load(f, path)
}

// Load merges every valid line read from r as one undoable step. Count is
// the number of valid lines, whether or not their edge was new.
func (g *Graph) Load(r io.Reader, name string) command.LoadResult {
	triples, err := loader.ReadTriples(r)
	res := command.LoadResult{Count: len(triples)}
	if len(triples) > 0 {
		g.begin(triples[0].From)
		for _, t := range triples {
			g.mergeEdge(t.From, t.To, t.Weight)
		}
		g.relayout()
		g.commit("load", len(triples))
	}
	switch {
	case err != nil:
		res.Message = command.LoadFailed(name, err)
	case g.instant || g.play.Instant():
		res.Message = fmt.Sprintf("Instantly loaded %d edges from %s", len(triples), name)
	default:
		res.Message = fmt.Sprintf("Loaded %d edges from %s", len(triples), name)
	}

	return g.loaded(res)
}

// mergeEdge is InsertEdge without validation messages or a snapshot.
func (g *Graph) mergeEdge(from, to, w int) {
	fi, ferr := g.state.IndexOf(from)
	if ferr != nil {
		fi = g.addVertex(from)
	}
	ti, terr := g.state.IndexOf(to)
	if terr != nil {
		ti = g.addVertex(to)
	}
	if g.state.edgeIndex(fi, ti) < 0 {
		g.state.Edges = append(g.state.Edges, Edge{From: fi, To: ti, Weight: w})
	}
}

func (g *Graph) loaded(res command.LoadResult) command.LoadResult {
	g.play.SetMessage(res.Message)
	g.log.Info("load", "count", res.Count, "message", res.Message)
	return res
}
