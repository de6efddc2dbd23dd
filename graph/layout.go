package graph

import (
	"math"

	"github.com/katalvlaran/dsviz/viz"
)

// circleFraction is the layout radius relative to the shorter canvas side.
const circleFraction = 0.35

// CircleLayout returns n evenly spaced points on a circle centred in a
// width×height canvas, the first at 12 o'clock.
func CircleLayout(n int, width, height float64) []viz.Point {
	out := make([]viz.Point, n)
	cx, cy := width/2, height/2
	if n == 1 {
		out[0] = viz.Point{X: cx, Y: cy}
		return out
	}
	r := math.Min(width, height) * circleFraction
	for i := range out {
		a := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		out[i] = viz.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}

	return out
}

// relayout retargets every vertex; vertices never placed start at their target.
func (g *Graph) relayout() {
	pts := CircleLayout(len(g.state.Vertices), g.width, g.height)
	for i := range g.state.Vertices {
		v := &g.state.Vertices[i]
		fresh := v.Pos == (viz.Motion{})
		v.Pos.Target = pts[i]
		if fresh || g.instant {
			v.Pos.Snap()
		}
	}
}
