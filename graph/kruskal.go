package graph

import (
	"time"

	"github.com/katalvlaran/dsviz/mst"
)

// StartKruskal clears previous marks and begins a Kruskal run. The first edge
// is examined immediately; later ones follow one per tick. In instant mode the
// whole run completes here.
//
// Steps:
//  1. Clear marks and copy edges into the solver's index form.
//  2. Record the operation for metrics.
//  3. Drain in instant mode, otherwise examine the first edge now.
//
// Complexity: O(E log E) for the sort, then O(log V) amortized per edge.
func (g *Graph) StartKruskal() {
	// 1. Fresh run.
	g.reset()
	edges := make([]mst.Edge, len(g.state.Edges))
	for i, e := range g.state.Edges {
		edges[i] = mst.Edge{From: e.From, To: e.To, Weight: e.Weight}
	}
	k, err := mst.NewKruskal(len(g.state.Vertices), edges)
	if err != nil {
		// Edges always reference live indices; reaching this is a bug.
		g.log.Error("kruskal rejected graph", "err", err)
		return
	}
	g.kruskal = k
	// 2. Metrics.
	g.rec.Operation(structure, "kruskal")

	// 3. Pace.
	if g.instant || g.play.Instant() {
		for g.stepKruskal() {
		}
		return
	}
	g.stepKruskal()
}

// stepKruskal examines one edge and marks it. It reports false once the run
// has completed. Accepted edges are highlighted, rejected ones blurred.
func (g *Graph) stepKruskal() bool {
	if g.kruskal == nil {
		return false
	}
	d, ok := g.kruskal.Step()
	if !ok {
		res := g.kruskal.Result()
		g.log.Info("kruskal done", "total", res.Total, "components", res.Components)
		return false
	}
	e := &g.state.Edges[d.Index]
	e.Highlighted = d.Accepted
	e.Blurred = !d.Accepted

	return true
}

func (g *Graph) tickKruskal(dt time.Duration) {
	if g.kruskal == nil || g.kruskal.Done() {
		return
	}
	g.kruskalTimer += dt
	if g.kruskalTimer < g.kruskalPeriod {
		return
	}
	g.kruskalTimer = 0
	g.stepKruskal()
}

// MST reports the current Kruskal table.
func (g *Graph) MST() MSTState {
	if g.kruskal == nil {
		return MSTState{Components: len(g.state.Vertices), Considered: len(g.state.Edges)}
	}
	res := g.kruskal.Result()
	out := MSTState{
		Total:      res.Total,
		Running:    !g.kruskal.Done(),
		Done:       g.kruskal.Done(),
		Components: res.Components,
		Examined:   g.kruskal.Examined(),
		Considered: len(g.state.Edges),
	}
	for _, idx := range g.kruskal.Accepted() {
		e := g.state.Edges[idx]
		out.Edges = append(out.Edges, MSTEdge{
			From:   g.state.Vertices[e.From].ID,
			To:     g.state.Vertices[e.To].ID,
			Weight: e.Weight,
		})
	}

	return out
}

// KruskalRunning reports whether a paced run is in progress.
func (g *Graph) KruskalRunning() bool {
	return g.kruskal != nil && !g.kruskal.Done()
}
