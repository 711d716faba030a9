package clip2d

import "math"

// extentMargin is the fraction of each axis span added on both sides of
// a computed extent.
const extentMargin = 0.10

// Extent returns the bounding rectangle of all segment endpoints plus
// any extra points (typically the clip window's corners or vertices),
// expanded by a 10% margin on each axis. A degenerate axis (zero span)
// is padded by 1.0 absolute instead, so the result always has positive
// area. With no input at all, Extent returns the zero Rect.
func Extent(segments []Segment, extra ...Point) Rect {
	if len(segments) == 0 && len(extra) == 0 {
		return Rect{}
	}

	r := Rect{
		XMin: math.Inf(1), YMin: math.Inf(1),
		XMax: math.Inf(-1), YMax: math.Inf(-1),
	}
	grow := func(p Point) {
		r.XMin = math.Min(r.XMin, p.X)
		r.YMin = math.Min(r.YMin, p.Y)
		r.XMax = math.Max(r.XMax, p.X)
		r.YMax = math.Max(r.YMax, p.Y)
	}
	for _, s := range segments {
		grow(s.A)
		grow(s.B)
	}
	for _, p := range extra {
		grow(p)
	}

	dx := (r.XMax - r.XMin) * extentMargin
	if dx == 0 {
		dx = 1.0
	}
	dy := (r.YMax - r.YMin) * extentMargin
	if dy == 0 {
		dy = 1.0
	}
	r.XMin -= dx
	r.XMax += dx
	r.YMin -= dy
	r.YMax += dy
	return r
}
