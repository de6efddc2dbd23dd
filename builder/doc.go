// SPDX-License-Identifier: MIT
// Package: dsviz/builder
//
// Package builder produces the random inputs behind the "Random" command of
// every visualizer: uniformly sampled integer values for the tree, list and
// hash table, and small random connected weighted graphs for the graph screen.
//
// Determinism is explicit. Stochastic constructors require an RNG supplied via
// WithSeed or WithRand; without one they return ErrNeedRandSource instead of
// silently seeding from the clock. Engines own that policy (they seed from
// configuration or from time at construction).
//
// Constructors:
//
//	Values(count, lo, hi, opts...)  — count draws from the closed range [lo, hi].
//	ConnectedGraph(opts...)         — n ∈ [minV, maxV] vertices joined by a random
//	                                  spanning tree, plus up to n-1 extra edges.
//
// Complexity: Values O(count); ConnectedGraph O(n²) worst case for duplicate checks.
package builder
