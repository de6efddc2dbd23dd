package mst_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dsviz/mst"
)

// BenchmarkSolve measures a full run on 500 vertices and 2000 edges.
func BenchmarkSolve(b *testing.B) {
	edges := randomConnected(rand.New(rand.NewSource(42)), 500, 2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = mst.Solve(500, edges)
	}
}
