// Package graph implements the weighted undirected graph screen of dsviz.
//
// Vertices carry a user-facing integer ID and live in a slice; edges refer to
// vertices by slice index. Removing a vertex removes its incident edges and
// decrements every edge endpoint above the removed index, so indices stay dense.
//
// Commands
//
//   - InsertEdge(from, to, w) creates missing endpoints; self loops,
//     non-positive weights and duplicate edges (either direction) are rejected.
//   - InsertVertex, DeleteVertex, DeleteEdge.
//   - Search(id) reveals vertices in breadth-first order, one component after
//     another, until id is reached.
//   - StartKruskal animates Kruskal's algorithm one edge per tick, marking
//     accepted edges highlighted and rejected ones blurred. MST reports the
//     forest, its weight and how many trees it has.
//
// History
//
//	Every committed command snapshots the whole vertex and edge slices.
//	Unlike the other screens, Clear and GenerateRandom are undoable, and a
//	file load is a single undoable step.
package graph
