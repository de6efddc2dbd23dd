package bfs_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsviz/bfs"
)

// adjList is a minimal undirected adjacency for tests.
type adjList [][]int

func (a adjList) Order() int            { return len(a) }
func (a adjList) Neighbors(i int) []int { return a[i] }

func undirected(n int, edges ...[2]int) adjList {
	a := make(adjList, n)
	for _, e := range edges {
		a[e[0]] = append(a[e[0]], e[1])
		a[e[1]] = append(a[e[1]], e[0])
	}
	return a
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.True(t, errors.Is(err, bfs.ErrNilAdjacency))

	_, err = bfs.BFS(undirected(2), 5)
	assert.True(t, errors.Is(err, bfs.ErrStartOutOfRange))

	_, err = bfs.BFS(undirected(2), 0, bfs.WithMaxDepth(-1))
	assert.True(t, errors.Is(err, bfs.ErrOptionViolation))
}

func TestBFS_CycleDepths(t *testing.T) {
	// 0–1–2–3–0
	g := undirected(4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2}, res.Order)
	assert.Equal(t, []int{0, 1, 2, 1}, res.Depth)

	path, err := res.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path)
}

func TestBFS_MaxDepthAndUnreached(t *testing.T) {
	g := undirected(5, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
	assert.False(t, res.Reached(4))
	_, err = res.PathTo(4)
	assert.Error(t, err)
}

func TestBFS_HookStopAndError(t *testing.T) {
	g := undirected(4, [2]int{0, 1}, [2]int{0, 2}, [2]int{2, 3})

	res, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(i, _ int) error {
		if i == 2 {
			return bfs.ErrStop
		}
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)

	boom := errors.New("boom")
	_, err = bfs.BFS(g, 0, bfs.WithOnVisit(func(int, int) error { return boom }))
	assert.True(t, errors.Is(err, boom))
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(undirected(2, [2]int{0, 1}), 0, bfs.WithContext(ctx))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestComponents(t *testing.T) {
	g := undirected(6, [2]int{0, 2}, [2]int{2, 4}, [2]int{1, 3})
	comps := bfs.Components(g)
	assert.Equal(t, [][]int{{0, 2, 4}, {1, 3}, {5}}, comps)
	assert.Nil(t, bfs.Components(nil))
}
