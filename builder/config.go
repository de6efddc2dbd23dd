// SPDX-License-Identifier: MIT
// Package: dsviz/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • rng          = nil   (stochastic constructors refuse to run)
//   • vertices     = [5, 10]
//   • weights      = [1, 10]

package builder

import (
	"math"
	"math/rand"
)

const (
	defaultMinVertices = 5
	defaultMaxVertices = 10
	defaultMinWeight   = 1
	defaultMaxWeight   = 10

	// extraEdgeAttemptsPerEdge bounds the retry loop for extra edges.
	extraEdgeAttemptsPerEdge = 10
)

// builderConfig aggregates all knobs. It is passed by value.
type builderConfig struct {
	rng *rand.Rand

	minVertices int
	maxVertices int
	minWeight   int
	maxWeight   int
}

// newBuilderConfig applies opts in order over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		minVertices: defaultMinVertices,
		maxVertices: defaultMaxVertices,
		minWeight:   defaultMinWeight,
		maxWeight:   defaultMaxWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// between draws uniformly from the closed range [lo, hi]; lo <= hi.
//
// Spans wider than math.MaxInt (e.g. [0, MaxInt] or [MinInt, MaxInt]) are
// drawn from 64 random bits by rejection; the offset addition wraps back into
// [lo, hi] in two's complement.
func (c builderConfig) between(lo, hi int) int {
	span := uint64(hi) - uint64(lo)
	if span < math.MaxInt {
		return lo + c.rng.Intn(int(span)+1)
	}
	for {
		if r := c.rng.Uint64(); r <= span {
			return lo + int(r)
		}
	}
}
