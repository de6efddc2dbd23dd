// SPDX-License-Identifier: MIT
// Package: dsviz/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Seeding is done via WithSeed or WithRand only.

package builder

import "math/rand"

// BuilderOption customizes a constructor by mutating a builderConfig before
// generation begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithVertexRange bounds the vertex count of ConnectedGraph to [lo, hi].
// Panics if lo < 2 or hi < lo.
func WithVertexRange(lo, hi int) BuilderOption {
	if lo < 2 || hi < lo {
		panic("builder: WithVertexRange(lo<2 || hi<lo)")
	}
	return func(c *builderConfig) {
		c.minVertices, c.maxVertices = lo, hi
	}
}

// WithWeightRange bounds edge weights of ConnectedGraph to [lo, hi].
// Panics if lo < 1 or hi < lo.
func WithWeightRange(lo, hi int) BuilderOption {
	if lo < 1 || hi < lo {
		panic("builder: WithWeightRange(lo<1 || hi<lo)")
	}
	return func(c *builderConfig) {
		c.minWeight, c.maxWeight = lo, hi
	}
}
