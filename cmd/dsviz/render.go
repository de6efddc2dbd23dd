package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dsviz/avl"
	"github.com/katalvlaran/dsviz/graph"
	"github.com/katalvlaran/dsviz/hashtable"
	"github.com/katalvlaran/dsviz/linkedlist"
	"github.com/katalvlaran/dsviz/viz"
)

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Format.Header = text.FormatDefault
	tbl.Style().Format.Footer = text.FormatDefault
	return tbl
}

// renderTree prints the tree sideways, right subtree on top.
func renderTree(t *avl.Tree) string {
	var b strings.Builder
	if t.Root() == nil {
		return "(empty)\n"
	}
	var walk func(n *avl.Node, depth int)
	walk = func(n *avl.Node, depth int) {
		if n == nil {
			return
		}
		walk(n.Right, depth+1)
		fmt.Fprintf(&b, "%s%d (h=%d, b=%d)\n", strings.Repeat("    ", depth), n.Key, n.Height, n.Balance())
		walk(n.Left, depth+1)
	}
	walk(t.Root(), 0)

	return b.String()
}

func renderList(l *linkedlist.List) string {
	parts := []string{"head"}
	for _, v := range l.Values() {
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.Join(append(parts, "nil"), " -> ")
}

func renderBuckets(t *hashtable.Table) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Bucket", "Chain"})
	for i, chain := range t.Buckets() {
		if len(chain) == 0 {
			continue
		}
		tbl.AppendRow(table.Row{i, joinInts(chain)})
	}
	tbl.AppendFooter(table.Row{"Load", fmt.Sprintf("%d/%d = %.2f", t.Len(), hashtable.Size, t.LoadFactor())})

	return tbl.Render() + "\n"
}

func renderGraph(g *graph.Graph) string {
	st := g.State()
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Edge", "Weight", "Kruskal"})
	for _, e := range st.Edges {
		mark := ""
		switch {
		case e.Highlighted:
			mark = "in tree"
		case e.Blurred:
			mark = "cycle"
		}
		tbl.AppendRow(table.Row{
			fmt.Sprintf("%d-%d", st.Vertices[e.From].ID, st.Vertices[e.To].ID),
			e.Weight,
			mark,
		})
	}
	tbl.AppendFooter(table.Row{"Vertices", joinInts(g.VertexIDs()), ""})

	return tbl.Render() + "\n"
}

func renderMST(m graph.MSTState) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"From", "To", "Weight"})
	for _, e := range m.Edges {
		tbl.AppendRow(table.Row{e.From, e.To, e.Weight})
	}
	state := "idle"
	switch {
	case m.Running:
		state = "running"
	case m.Done:
		state = "done"
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("%s %d/%d", state, m.Examined, m.Considered), "Total", m.Total})

	return tbl.Render() + "\n"
}

type hintsDoc struct {
	Positions  map[int]viz.Point `yaml:"positions"`
	Highlights []int             `yaml:"highlights"`
}

func renderHints(h viz.Hints) (string, error) {
	var highlights []int
	for k := range h.Highlights() {
		highlights = append(highlights, k)
	}
	slices.Sort(highlights)
	doc := hintsDoc{
		Positions:  h.Positions(),
		Highlights: highlights,
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", errors.Wrap(err, "encode hints")
	}

	return string(out), nil
}

func renderStats(reg prometheus.Gatherer) (string, error) {
	families, err := reg.Gather()
	if err != nil {
		return "", errors.Wrap(err, "gather metrics")
	}
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Metric", "Labels", "Count"})
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			tbl.AppendRow(table.Row{mf.GetName(), labelString(m), m.GetCounter().GetValue()})
		}
	}

	return tbl.Render() + "\n", nil
}

func labelString(m *dto.Metric) string {
	labels := make([]string, 0, len(m.GetLabel()))
	for _, lp := range m.GetLabel() {
		labels = append(labels, lp.GetName()+"="+lp.GetValue())
	}
	return strings.Join(labels, ",")
}
