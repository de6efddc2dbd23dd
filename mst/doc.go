// Package mst provides a disjoint-set forest and a step-advanceable
// Kruskal minimum spanning forest over index-addressed weighted edges.
//
// What
//
//   - DisjointSet: MakeSet, Find (recursive, with path compression) and Union,
//     where Union attaches the root of the second argument under the root of
//     the first.
//   - Kruskal: an incremental driver. Each Step examines exactly one edge in
//     ascending weight order and reports whether it was accepted into the
//     forest or rejected because it would close a cycle. Run drains all steps.
//   - Solve: one-shot convenience returning the forest, its total weight and
//     the number of trees it spans.
//
// Determinism
//
//	Edges are ordered by a stable sort of their indices by weight, so equal
//	weights are examined in input order. The caller's edge slice is never
//	reordered; Decisions carry the original index so a renderer can flag
//	exactly the edge it draws.
//
// Disconnected input is not an error: the result is a minimum spanning forest
// and Result.Components reports how many trees it has.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(E log E + E log V)
//   - Memory: O(V + E)
//
// Errors
//
//   - ErrNegativeOrder    if the vertex count is negative.
//   - ErrVertexOutOfRange if an edge endpoint is not in [0, n).
package mst
