package viz

import "time"

// Point is a 2D coordinate in screen space.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Motion pairs the animated position of a node with the position it is
// moving toward. Only Target is structural; Current is cosmetic.
type Motion struct {
	Current Point
	Target  Point
}

// Hints is the read-only view a drawing layer polls every frame.
//
// Positions maps a node identifier to its current (interpolated) position.
// Highlights is the set of node identifiers to draw emphasised.
type Hints interface {
	Positions() map[int]Point
	Highlights() map[int]struct{}
}

// Step moves Current toward Target by dt*rate of the remaining distance.
// In instant mode, or when dt*rate reaches 1, Current snaps to Target.
func (m *Motion) Step(dt time.Duration, rate float64, instant bool) {
	f := dt.Seconds() * rate
	if instant || f >= 1 {
		m.Snap()
		return
	}
	if f <= 0 {
		return
	}
	m.Current.X += (m.Target.X - m.Current.X) * f
	m.Current.Y += (m.Target.Y - m.Current.Y) * f
}

// Snap places Current on Target.
func (m *Motion) Snap() { m.Current = m.Target }

// Settled reports whether Current is within eps of Target on both axes.
func (m Motion) Settled(eps float64) bool {
	dx := m.Target.X - m.Current.X
	dy := m.Target.Y - m.Current.Y
	return dx <= eps && dx >= -eps && dy <= eps && dy >= -eps
}
