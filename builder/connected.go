// SPDX-License-Identifier: MIT
// Package: dsviz/builder
//
// connected.go — random connected weighted graph.
//
// Model:
//   - n is drawn from [minVertices, maxVertices].
//   - Vertex 0 starts the visited set; each remaining vertex is attached to a
//     uniformly chosen visited vertex, so the first n-1 edges form a random
//     spanning tree.
//   - Up to n-1 extra edges (drawn count) are then added between random
//     distinct pairs that are not yet joined, within a bounded number of attempts.
//   - Weights are drawn from [minWeight, maxWeight].

package builder

import "github.com/cockroachdb/errors"

// Edge is a weighted undirected edge over vertex indices 0..n-1.
type Edge struct {
	From   int
	To     int
	Weight int
}

// GraphSpec is the output of ConnectedGraph. Vertex i has user id i.
type GraphSpec struct {
	Vertices int
	Edges    []Edge
}

// ConnectedGraph samples a random connected simple graph.
func ConnectedGraph(opts ...BuilderOption) (GraphSpec, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return GraphSpec{}, errors.Wrap(ErrNeedRandSource, "ConnectedGraph")
	}
	n := cfg.between(cfg.minVertices, cfg.maxVertices)

	spec := GraphSpec{Vertices: n}
	joined := make(map[[2]int]bool, 2*n)
	add := func(u, v int) {
		spec.Edges = append(spec.Edges, Edge{From: u, To: v, Weight: cfg.between(cfg.minWeight, cfg.maxWeight)})
		joined[pairKey(u, v)] = true
	}

	// Spanning tree: unvisited holds every vertex not yet attached.
	visited := []int{0}
	unvisited := make([]int, 0, n-1)
	for v := 1; v < n; v++ {
		unvisited = append(unvisited, v)
	}
	for len(unvisited) > 0 {
		i := cfg.rng.Intn(len(unvisited))
		to := unvisited[i]
		unvisited[i] = unvisited[len(unvisited)-1]
		unvisited = unvisited[:len(unvisited)-1]
		from := visited[cfg.rng.Intn(len(visited))]
		add(from, to)
		visited = append(visited, to)
	}

	extra := cfg.rng.Intn(n)
	target := len(spec.Edges) + extra
	for attempts := 0; len(spec.Edges) < target && attempts < extra*extraEdgeAttemptsPerEdge; attempts++ {
		u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
		if u == v || joined[pairKey(u, v)] {
			continue
		}
		add(u, v)
	}

	return spec, nil
}

func pairKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}
	return [2]int{u, v}
}
