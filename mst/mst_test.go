package mst_test

import (
	"math/rand"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	refgraph "github.com/twmb/algoimpl/go/graph"

	"github.com/katalvlaran/dsviz/mst"
)

func TestDisjointSet(t *testing.T) {
	d := mst.NewDisjointSet(5)
	assert.Equal(t, 5, d.Sets())
	assert.True(t, d.Union(0, 1))
	assert.Equal(t, 0, d.Find(1), "root(b) goes under root(a)")
	assert.True(t, d.Union(2, 1))
	assert.Equal(t, 2, d.Find(0))
	assert.False(t, d.Union(0, 2))
	assert.Equal(t, 3, d.Sets())

	d.MakeSet(4)
	assert.Equal(t, 4, d.Find(4))
	assert.Equal(t, 5, d.Len())
}

func TestKruskal_StepByStep(t *testing.T) {
	edges := []mst.Edge{{0, 1, 4}, {1, 2, 2}, {0, 2, 5}}
	k, err := mst.NewKruskal(3, edges)
	require.NoError(t, err)
	assert.False(t, k.Started())

	assert.Zero(t, k.Examined())

	d, ok := k.Step()
	require.True(t, ok)
	assert.Equal(t, 1, k.Examined())
	assert.Equal(t, mst.Decision{Index: 1, Edge: edges[1], Accepted: true}, d)
	assert.Equal(t, []int{1, 0, 2}, k.Order())

	d, ok = k.Step()
	require.True(t, ok)
	assert.True(t, d.Accepted)
	assert.Equal(t, 0, d.Index)

	d, ok = k.Step()
	require.True(t, ok)
	assert.False(t, d.Accepted, "closing edge is rejected")
	assert.False(t, k.Done())

	_, ok = k.Step()
	assert.False(t, ok)
	assert.True(t, k.Done())
	assert.Equal(t, 3, k.Examined(), "the completing call examines nothing")
	assert.Equal(t, 6, k.Total())
	assert.Equal(t, []int{1, 0}, k.Accepted())

	res := k.Result()
	assert.Equal(t, 1, res.Components)
	assert.Len(t, res.Edges, 2)
}

func TestKruskal_EqualWeightsAreStable(t *testing.T) {
	edges := []mst.Edge{{0, 1, 3}, {1, 2, 3}, {0, 2, 3}}
	k, err := mst.NewKruskal(3, edges)
	require.NoError(t, err)
	res := k.Run()
	assert.Equal(t, []int{0, 1, 2}, k.Order())
	assert.Equal(t, []mst.Edge{edges[0], edges[1]}, res.Edges)
}

func TestKruskal_DisconnectedAndEmpty(t *testing.T) {
	res, err := mst.Solve(4, []mst.Edge{{0, 1, 1}, {2, 3, 7}})
	require.NoError(t, err)
	assert.Equal(t, 8, res.Total)
	assert.Equal(t, 2, res.Components)

	k, err := mst.NewKruskal(3, nil)
	require.NoError(t, err)
	_, ok := k.Step()
	assert.False(t, ok)
	assert.True(t, k.Done())
	assert.Equal(t, 3, k.Result().Components)
}

func TestKruskal_Errors(t *testing.T) {
	_, err := mst.NewKruskal(-1, nil)
	assert.True(t, errors.Is(err, mst.ErrNegativeOrder))
	_, err = mst.NewKruskal(2, []mst.Edge{{0, 2, 1}})
	assert.True(t, errors.Is(err, mst.ErrVertexOutOfRange))
	_, err = mst.Solve(2, []mst.Edge{{-1, 1, 1}})
	assert.True(t, errors.Is(err, mst.ErrVertexOutOfRange))
}

// TestKruskal_MatchesReference compares total weight with an independent MST
// implementation on random connected graphs.
func TestKruskal_MatchesReference(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 30; trial++ {
		n := 2 + r.Intn(20)
		edges := randomConnected(r, n, n+r.Intn(3*n))

		got, err := mst.Solve(n, edges)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Components)
		assert.Len(t, got.Edges, n-1)

		ref := refgraph.New(refgraph.Undirected)
		nodes := make([]refgraph.Node, n)
		for i := range nodes {
			nodes[i] = ref.MakeNode()
		}
		for _, e := range edges {
			require.NoError(t, ref.MakeEdgeWeight(nodes[e.From], nodes[e.To], e.Weight))
		}
		want := 0
		for _, e := range ref.MinimumSpanningTree() {
			want += e.Weight
		}
		assert.Equal(t, want, got.Total, "trial %d", trial)
	}
}

// randomConnected builds a chain 0–1–…–(n-1) plus random extra simple edges.
func randomConnected(r *rand.Rand, n, m int) []mst.Edge {
	seen := map[[2]int]bool{}
	var edges []mst.Edge
	add := func(u, v int) {
		if u > v {
			u, v = v, u
		}
		if u == v || seen[[2]int{u, v}] {
			return
		}
		seen[[2]int{u, v}] = true
		edges = append(edges, mst.Edge{From: u, To: v, Weight: 1 + r.Intn(50)})
	}
	for i := 1; i < n; i++ {
		add(i-1, i)
	}
	for tries := 0; len(edges) < m && tries < 10*m; tries++ {
		add(r.Intn(n), r.Intn(n))
	}

	return edges
}
