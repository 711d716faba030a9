package clip2d

// Rect is a closed axis-aligned rectangle. Boundary points count as
// inside. Invariant: XMin <= XMax and YMin <= YMax; use Canon to
// restore it for rectangles built from unordered corner pairs.
type Rect struct {
	XMin, YMin, XMax, YMax float64
}

// NewRect creates a canonical Rect from two opposite corners.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{XMin: x0, YMin: y0, XMax: x1, YMax: y1}.Canon()
}

// Canon returns the rectangle with min/max swapped into order on each axis.
func (r Rect) Canon() Rect {
	if r.XMin > r.XMax {
		r.XMin, r.XMax = r.XMax, r.XMin
	}
	if r.YMin > r.YMax {
		r.YMin, r.YMax = r.YMax, r.YMin
	}
	return r
}

// Contains reports whether p lies inside the rectangle, boundary inclusive.
func (r Rect) Contains(p Point) bool {
	return r.XMin <= p.X && p.X <= r.XMax && r.YMin <= p.Y && p.Y <= r.YMax
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.XMax - r.XMin
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.YMax - r.YMin
}

// Corners returns the four corner points in counter-clockwise order,
// starting from (XMin, YMin).
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.XMin, Y: r.YMin},
		{X: r.XMax, Y: r.YMin},
		{X: r.XMax, Y: r.YMax},
		{X: r.XMin, Y: r.YMax},
	}
}

// Polygon returns the rectangle as a 4-vertex counter-clockwise Polygon.
func (r Rect) Polygon() Polygon {
	c := r.Corners()
	return Polygon{c[0], c[1], c[2], c[3]}
}
