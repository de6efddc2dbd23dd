package graph_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsviz/command"
	"github.com/katalvlaran/dsviz/graph"
	"github.com/katalvlaran/dsviz/viz"
)

func describe(g *graph.Graph) string {
	var b strings.Builder
	b.WriteString("vertices:")
	if g.Order() == 0 {
		b.WriteString(" -")
	}
	for _, id := range g.VertexIDs() {
		fmt.Fprintf(&b, " %d", id)
	}
	b.WriteString("\nedges:")
	if g.Size() == 0 {
		b.WriteString(" -")
	}
	for _, e := range g.State().Edges {
		fmt.Fprintf(&b, " %d-%d/%d", e.From, e.To, e.Weight)
		switch {
		case e.Highlighted:
			b.WriteString("*")
		case e.Blurred:
			b.WriteString("~")
		}
	}
	b.WriteString("\n")
	return b.String()
}

func fields(t *testing.T, line string) []int {
	var out []int
	for _, f := range strings.Fields(line) {
		v, err := strconv.Atoi(f)
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}

func TestGraphScenarios(t *testing.T) {
	g := graph.New(command.WithInstant(true))
	datadriven.RunTest(t, "testdata/graph", func(t *testing.T, d *datadriven.TestData) string {
		var b strings.Builder
		report := func(res command.Result) {
			if !res.Committed {
				fmt.Fprintln(&b, res.Message)
			}
		}
		switch d.Cmd {
		case "edge":
			for _, line := range strings.Split(strings.TrimSpace(d.Input), "\n") {
				n := fields(t, line)
				report(g.InsertEdge(n[0], n[1], n[2]))
			}
		case "vertex":
			report(g.InsertVertex(fields(t, d.Input)[0]))
		case "remove":
			n := fields(t, d.Input)
			if len(n) == 1 {
				report(g.DeleteVertex(n[0]))
			} else {
				report(g.DeleteEdge(n[0], n[1]))
			}
		case "undo", "redo":
			op := g.Undo
			if d.Cmd == "redo" {
				op = g.Redo
			}
			if s, ok := op(); ok {
				fmt.Fprintf(&b, "%s: %d\n", d.Cmd, s.Value)
			} else {
				fmt.Fprintf(&b, "%s: none\n", d.Cmd)
			}
		case "kruskal":
			g.StartKruskal()
			m := g.MST()
			require.True(t, m.Done)
			b.WriteString(describe(g))
			b.WriteString("mst:")
			for _, e := range m.Edges {
				fmt.Fprintf(&b, " %d-%d/%d", e.From, e.To, e.Weight)
			}
			fmt.Fprintf(&b, " total=%d components=%d\n", m.Total, m.Components)
			return b.String()
		case "search":
			path := g.Search(fields(t, d.Input)[0])
			ids := make([]string, len(path))
			for i, s := range path {
				ids[i] = strconv.Itoa(s.ID)
			}
			g.Update(time.Millisecond)
			return fmt.Sprintf("path: %s\n%s\n", strings.Join(ids, " "), g.Playback().Message())
		case "clear":
			g.Clear()
		default:
			t.Fatalf("unknown command %q", d.Cmd)
		}
		b.WriteString(describe(g))
		return b.String()
	})
}

func TestDeleteVertex_Relinearizes(t *testing.T) {
	g := graph.New()
	for _, e := range [][3]int{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {3, 4, 1}, {4, 0, 1}, {1, 3, 2}} {
		require.True(t, g.InsertEdge(e[0], e[1], e[2]).Committed)
	}
	require.Equal(t, 5, g.Order())
	before := g.State().Clone()

	require.True(t, g.DeleteVertex(2).Committed)
	st := g.State()
	require.Len(t, st.Vertices, 4)
	for _, e := range st.Edges {
		assert.Less(t, e.From, 4)
		assert.Less(t, e.To, 4)
	}
	// Every surviving edge still joins the same pair of IDs.
	ids := func(s graph.State, e graph.Edge) [2]int {
		a, b := s.Vertices[e.From].ID, s.Vertices[e.To].ID
		return [2]int{min(a, b), max(a, b)}
	}
	var want [][2]int
	for _, e := range before.Edges {
		if p := ids(before, e); p[0] != 2 && p[1] != 2 {
			want = append(want, p)
		}
	}
	var got [][2]int
	for _, e := range st.Edges {
		got = append(got, ids(st, e))
	}
	assert.Equal(t, want, got)

	res := g.DeleteVertex(2)
	assert.False(t, res.Committed)
	assert.Equal(t, "Vertex 2 not found", res.Message)

	_, err := st.IndexOf(2)
	assert.True(t, errors.Is(err, graph.ErrVertexNotFound))
}

func TestKruskal_PacedByInterval(t *testing.T) {
	g := graph.New(command.WithKruskalInterval(time.Second))
	g.InsertEdge(0, 1, 4)
	g.InsertEdge(1, 2, 2)
	g.InsertEdge(0, 2, 5)

	g.StartKruskal()
	assert.True(t, g.KruskalRunning())
	assert.True(t, g.State().Edges[1].Highlighted, "the lightest edge is examined at once")
	assert.Equal(t, 2, g.MST().Total)
	assert.Equal(t, 1, g.MST().Examined)
	assert.Equal(t, 3, g.MST().Considered)

	g.Update(500 * time.Millisecond)
	assert.False(t, g.State().Edges[0].Highlighted)
	g.Update(500 * time.Millisecond)
	assert.True(t, g.State().Edges[0].Highlighted)
	g.Update(time.Second)
	assert.True(t, g.State().Edges[2].Blurred)
	assert.True(t, g.KruskalRunning(), "completion is observed on the following tick")
	g.Update(time.Second)
	assert.False(t, g.KruskalRunning())

	m := g.MST()
	assert.True(t, m.Done)
	assert.Equal(t, 3, m.Examined)
	assert.Equal(t, 6, m.Total)
	assert.Equal(t, []graph.MSTEdge{{From: 1, To: 2, Weight: 2}, {From: 0, To: 1, Weight: 4}}, m.Edges)
	assert.Equal(t, map[int]struct{}{0: {}, 1: {}, 2: {}}, g.Highlights())

	g.InsertVertex(7)
	assert.False(t, g.KruskalRunning())
	assert.Empty(t, g.MST().Edges, "any commit discards the run")
}

func TestGenerateRandom_ConnectedAndUndoable(t *testing.T) {
	g := graph.New(command.WithSeed(8))
	g.InsertEdge(100, 101, 1)
	g.GenerateRandom()
	assert.GreaterOrEqual(t, g.Order(), 5)
	assert.LessOrEqual(t, g.Order(), 10)
	assert.Len(t, g.Components(), 1)

	g.StartKruskal()
	for g.KruskalRunning() {
		g.Update(time.Second)
	}
	assert.Len(t, g.MST().Edges, g.Order()-1)

	g.Undo()
	assert.Equal(t, []int{100, 101}, g.VertexIDs())
}

func TestLoad_SingleUndoStep(t *testing.T) {
	g := graph.New()
	g.InsertVertex(9)
	res := g.Load(strings.NewReader("0 1 3\n1 2 x\n1 1 4\n1 2 5\n2 1 6\n"), "g.txt")
	assert.Equal(t, 3, res.Count)
	assert.Equal(t, "Loaded 3 edges from g.txt", res.Message)
	assert.Equal(t, []int{9, 0, 1, 2}, g.VertexIDs())
	assert.Equal(t, 2, g.Size(), "2-1 duplicates 1-2 and is skipped")

	g.Undo()
	assert.Equal(t, []int{9}, g.VertexIDs())
	assert.Equal(t, command.Canceled, g.LoadFromFile("").Message)
}

func TestClear_EmptyGraphChargesNothing(t *testing.T) {
	g := graph.New()
	g.Clear()
	assert.False(t, g.CanUndo())

	g.InsertVertex(1)
	g.Clear()
	g.Clear()
	g.Undo()
	assert.Equal(t, []int{1}, g.VertexIDs(), "the second clear took no snapshot")
	assert.True(t, g.CanUndo(), "only the insert is left")
	g.Undo()
	assert.False(t, g.CanUndo())
}

func TestCircleLayout(t *testing.T) {
	pts := graph.CircleLayout(4, 1000, 800)
	require.Len(t, pts, 4)
	assert.InDelta(t, 500, pts[0].X, 1e-9)
	assert.InDelta(t, 400-280, pts[0].Y, 1e-9)
	assert.InDelta(t, 780, pts[1].X, 1e-9)
	assert.Equal(t, []viz.Point{{X: 50, Y: 50}}, graph.CircleLayout(1, 100, 100))
}
