// Package bfs provides breadth-first search over an index-addressed
// adjacency, returning visit order, hop distances and parent links.
//
// What
//
//   - Explore vertices 0..Order()-1 in non-decreasing hop distance from a start index.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: hop distance per reached index (-1 when unreached)
//   - Parent: predecessor per reached index (-1 for the start or unreached)
//   - Hooks: OnVisit (may abort with an error, or stop cleanly with ErrStop).
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Components partitions the whole adjacency into connected components.
//
// The graph visualizer uses BFS for its search playback (the visit order is the
// revealed path) and Components to report how many trees a spanning forest has.
//
// Determinism
//
//	Neighbors are enqueued in the order Adjacency.Neighbors returns them, so the
//	visit sequence is reproducible for a fixed adjacency.
//
// Complexity (V = Order(), E = total neighbor entries)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrNilAdjacency         if the adjacency is nil.
//   - ErrStartOutOfRange      if start ∉ [0, Order()).
//   - ErrOptionViolation      if an invalid Option was supplied (e.g. negative MaxDepth).
//   - Wrapped hook errors from OnVisit, or ctx.Err() on cancellation.
package bfs
