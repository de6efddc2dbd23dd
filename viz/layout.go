package viz

// Default layout constants. They mirror a 1400x1000 canvas.
const (
	DefaultWidth        = 1400.0
	DefaultHeight       = 1000.0
	DefaultOriginY      = 50.0
	DefaultXOffset      = 300.0
	DefaultMinSpacing   = 50.0
	DefaultLevelSpacing = 80.0
	DefaultListStartX   = 100.0
	DefaultListSpacing  = 100.0
)

// TreeLayout parameterises the recursive binary-tree layout.
//
// The root sits at (OriginX, OriginY). A node at depth d (root depth is 1)
// places its children ChildOffset(d) to the left and right and LevelSpacing
// lower.
type TreeLayout struct {
	OriginX      float64
	OriginY      float64
	XOffset      float64
	MinSpacing   float64
	LevelSpacing float64
}

// DefaultTreeLayout centres the root horizontally within width.
func DefaultTreeLayout(width float64) TreeLayout {
	return TreeLayout{
		OriginX:      width / 2,
		OriginY:      DefaultOriginY,
		XOffset:      DefaultXOffset,
		MinSpacing:   DefaultMinSpacing,
		LevelSpacing: DefaultLevelSpacing,
	}
}

// ChildOffset returns the horizontal distance between a node at depth and
// each of its children: max(MinSpacing, XOffset/(depth+1)).
func (l TreeLayout) ChildOffset(depth int) float64 {
	if depth < 1 {
		depth = 1
	}
	return max(l.MinSpacing, l.XOffset/float64(depth+1))
}

// ListLayout places chain nodes left to right on one row.
type ListLayout struct {
	StartX  float64
	Y       float64
	Spacing float64
}

// DefaultListLayout puts the row at half of height.
func DefaultListLayout(height float64) ListLayout {
	return ListLayout{StartX: DefaultListStartX, Y: height / 2, Spacing: DefaultListSpacing}
}

// At returns the target position of the i-th node in the row.
func (l ListLayout) At(i int) Point {
	return Point{X: l.StartX + float64(i)*l.Spacing, Y: l.Y}
}
