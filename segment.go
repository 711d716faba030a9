package clip2d

import "math"

// Segment represents a directed line segment from A to B.
// A zero-length segment (A == B) is valid but degenerate.
type Segment struct {
	A, B Point
}

// Seg is a convenience function to create a Segment.
func Seg(a, b Point) Segment {
	return Segment{A: a, B: b}
}

// SegXY creates a Segment from four coordinates.
func SegXY(ax, ay, bx, by float64) Segment {
	return Segment{A: Pt(ax, ay), B: Pt(bx, by)}
}

// At evaluates the segment parametrically: At(0) is A, At(1) is B.
func (s Segment) At(t float64) Point {
	return s.A.Lerp(s.B, t)
}

// Delta returns the direction vector B-A.
func (s Segment) Delta() Point {
	return s.B.Sub(s.A)
}

// Midpoint returns the point halfway between A and B.
func (s Segment) Midpoint() Point {
	return Point{X: (s.A.X + s.B.X) / 2, Y: (s.A.Y + s.B.Y) / 2}
}

// Manhattan returns |dx|+|dy|, a cheap length measure used by the
// subdivision clipper's termination test.
func (s Segment) Manhattan() float64 {
	return math.Abs(s.B.X-s.A.X) + math.Abs(s.B.Y-s.A.Y)
}
