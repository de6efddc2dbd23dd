package graph

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/dsviz/command"
	"github.com/katalvlaran/dsviz/history"
	"github.com/katalvlaran/dsviz/metrics"
	"github.com/katalvlaran/dsviz/mst"
	"github.com/katalvlaran/dsviz/playback"
	"github.com/katalvlaran/dsviz/viz"
)

const structure = "graph"

// Graph is the graph engine.
type Graph struct {
	state State

	hist *history.History[State]
	play *playback.Playback

	kruskal       *mst.Kruskal
	kruskalTimer  time.Duration
	kruskalPeriod time.Duration

	width   float64
	height  float64
	rate    float64
	instant bool
	rng     *rand.Rand
	log     *slog.Logger
	rec     metrics.Recorder

	affected    playback.Step
	hasAffected bool
}

var _ command.Engine = (*Graph)(nil)

// New returns an empty graph.
func New(opts ...command.Option) *Graph {
	s := command.NewSettings(opts...)

	return &Graph{
		hist:          history.New(cloneState, history.WithLimit(s.HistoryLimit)),
		play:          s.Playback(),
		kruskalPeriod: s.KruskalInterval,
		width:         s.Width,
		height:        s.Height,
		rate:          s.Rate,
		instant:       s.Instant,
		rng:           s.Rand,
		log:           s.Logger.With("structure", structure),
		rec:           s.Recorder,
	}
}

// State returns the live vertices and edges. Callers must not mutate them.
func (g *Graph) State() State { return g.state }

// Order is the number of vertices.
func (g *Graph) Order() int { return len(g.state.Vertices) }

// Size is the number of edges.
func (g *Graph) Size() int { return len(g.state.Edges) }

// VertexIDs lists vertex IDs in index order.
func (g *Graph) VertexIDs() []int {
	out := make([]int, len(g.state.Vertices))
	for i, v := range g.state.Vertices {
		out[i] = v.ID
	}
	return out
}

// begin snapshots the current state and drops any Kruskal run or playback.
func (g *Graph) begin(value int) {
	g.reset()
	g.hist.Commit(g.state, true, value)
}

func (g *Graph) addVertex(id int) int {
	alpha := 0.0
	if g.instant {
		alpha = 1
	}
	g.state.Vertices = append(g.state.Vertices, Vertex{ID: id, Scale: 1, Alpha: alpha})
	return len(g.state.Vertices) - 1
}

// InsertEdge joins from and to with weight w, creating missing vertices.
func (g *Graph) InsertEdge(from, to, w int) command.Result {
	switch {
	case from < 0 || to < 0:
		return command.Result{Message: "Vertex IDs must be non-negative"}
	case from == to:
		return command.Result{Message: fmt.Sprintf("Vertex %d cannot be joined to itself", from)}
	case w <= 0:
		return command.Result{Message: "Weight must be positive"}
	}
	fi, ferr := g.state.IndexOf(from)
	ti, terr := g.state.IndexOf(to)
	if ferr == nil && terr == nil && g.state.edgeIndex(fi, ti) >= 0 {
		return command.Result{Message: fmt.Sprintf("Edge %d-%d already exists", from, to)}
	}

	g.begin(from)
	if ferr != nil {
		fi = g.addVertex(from)
	}
	if terr != nil {
		ti = g.addVertex(to)
	}
	g.state.Edges = append(g.state.Edges, Edge{From: fi, To: ti, Weight: w})
	g.relayout()
	g.commit("insert_edge", from)

	return command.Result{Committed: true}
}

// InsertVertex adds an isolated vertex.
func (g *Graph) InsertVertex(id int) command.Result {
	if id < 0 {
		return command.Result{Message: "Vertex IDs must be non-negative"}
	}
	if g.state.has(id) {
		return command.Result{Message: fmt.Sprintf("Vertex %d already exists", id)}
	}
	g.begin(id)
	g.addVertex(id)
	g.relayout()
	g.commit("insert_vertex", id)

	return command.Result{Committed: true}
}

// DeleteVertex removes id and every edge touching it. Edge endpoints above
// the removed index shift down by one.
//
// Complexity: O(V + E).
func (g *Graph) DeleteVertex(id int) command.Result {
	i, err := g.state.IndexOf(id)
	if err != nil {
		return command.Result{Message: fmt.Sprintf("Vertex %d not found", id)}
	}
	g.begin(id)
	g.state.removeVertex(i)
	g.relayout()
	g.commit("delete_vertex", id)

	return command.Result{Committed: true}
}

// DeleteEdge removes the edge between vertices a and b.
func (g *Graph) DeleteEdge(a, b int) command.Result {
	ai, aerr := g.state.IndexOf(a)
	bi, berr := g.state.IndexOf(b)
	k := -1
	if aerr == nil && berr == nil {
		k = g.state.edgeIndex(ai, bi)
	}
	if k < 0 {
		return command.Result{Message: fmt.Sprintf("Edge %d-%d not found", a, b)}
	}
	g.begin(a)
	g.state.Edges = append(g.state.Edges[:k], g.state.Edges[k+1:]...)
	g.commit("delete_edge", a)

	return command.Result{Committed: true}
}

// Undo restores the previous snapshot and highlights the vertex the undone
// command was about, if it still exists.
func (g *Graph) Undo() (playback.Step, bool) { return g.swap(g.hist.Undo, "undo") }

// Redo reapplies the last undone command.
func (g *Graph) Redo() (playback.Step, bool) { return g.swap(g.hist.Redo, "redo") }

func (g *Graph) swap(pop func(State) (history.Entry[State], bool), op string) (playback.Step, bool) {
	g.reset()
	e, ok := pop(g.state)
	if !ok {
		return playback.Step{}, false
	}
	g.state = e.State
	g.clearFlags()
	g.relayout()
	g.rec.Operation(structure, op)
	g.log.Debug(op, "value", e.Value)

	if !g.state.has(e.Value) {
		return playback.Step{}, false
	}
	g.affected, g.hasAffected = playback.Step{ID: e.Value, Value: e.Value}, true

	return g.affected, true
}

// Clear removes every vertex. It is undoable; clearing an empty graph
// charges no history slot.
func (g *Graph) Clear() {
	if len(g.state.Vertices) == 0 {
		g.reset()
		return
	}
	g.begin(-1)
	g.state = State{}
	g.commit("clear", -1)
}

// ClearAll drops the graph and its history.
func (g *Graph) ClearAll() {
	g.reset()
	g.state = State{}
	g.hist.Clear()
}

// CanUndo reports whether Undo would change the graph.
func (g *Graph) CanUndo() bool { return g.hist.CanUndo() }

// CanRedo reports whether Redo would change the graph.
func (g *Graph) CanRedo() bool { return g.hist.CanRedo() }

// Playback exposes the search reveal state.
func (g *Graph) Playback() *playback.Playback { return g.play }

// Update advances the search reveal, the Kruskal animation and vertex motion.
func (g *Graph) Update(dt time.Duration) {
	g.play.Tick(dt)
	g.tickKruskal(dt)

	instant := g.instant || g.play.Instant()
	f := min(1, dt.Seconds()*g.rate)
	if instant {
		f = 1
	}
	for i := range g.state.Vertices {
		v := &g.state.Vertices[i]
		v.Pos.Step(dt, g.rate, instant)
		v.Scale += (1 - v.Scale) * f
		v.Alpha += (1 - v.Alpha) * f / 2
		if instant {
			v.Alpha = 1
		}
	}
}

// Positions maps vertex IDs to current positions.
func (g *Graph) Positions() map[int]viz.Point {
	out := make(map[int]viz.Point, len(g.state.Vertices))
	for _, v := range g.state.Vertices {
		out[v.ID] = v.Pos.Current
	}
	return out
}

// Highlights holds the endpoints of accepted MST edges plus the vertex being
// revealed by a search, or the vertex an undo/redo landed on.
func (g *Graph) Highlights() map[int]struct{} {
	out := make(map[int]struct{})
	for _, e := range g.state.Edges {
		if e.Highlighted {
			out[g.state.Vertices[e.From].ID] = struct{}{}
			out[g.state.Vertices[e.To].ID] = struct{}{}
		}
	}
	if s, ok := g.play.Current(); ok {
		out[s.ID] = struct{}{}
	} else if g.hasAffected {
		out[g.affected.ID] = struct{}{}
	}

	return out
}

// reset drops playback and any Kruskal run; the edges' flags are cleared.
func (g *Graph) reset() {
	g.play.Cancel()
	g.hasAffected = false
	g.kruskal = nil
	g.kruskalTimer = 0
	g.clearFlags()
}

func (g *Graph) clearFlags() {
	for i := range g.state.Edges {
		g.state.Edges[i].Highlighted = false
		g.state.Edges[i].Blurred = false
	}
}

func (g *Graph) commit(op string, value int) {
	g.rec.Operation(structure, op)
	g.log.Debug("committed", "op", op, "value", value, "vertices", len(g.state.Vertices), "edges", len(g.state.Edges))
}
