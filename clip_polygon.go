package clip2d

import "math"

// parallelTol is the |n·d| threshold below which a segment counts as
// parallel to a polygon edge.
const parallelTol = 1e-12

// ClipPolygon clips a segment against a convex polygon using the
// Cyrus-Beck parametric algorithm and returns the visible sub-segment,
// if any.
//
// The segment is parametrized as P(t) = A + t*(B-A) with t in [0,1].
// Each polygon edge contributes one half-plane constraint that either
// raises the entering bound tE or lowers the leaving bound tL; the
// visible portion is P(tE)..P(tL) when tE <= tL after all edges, and
// nothing otherwise. Unlike the subdivision clipper this is exact.
//
// Preconditions (not validated here): at least 3 vertices,
// counter-clockwise winding, convex. Clockwise winding flips every
// outward normal and silently clips to the complement of the polygon;
// see Polygon.EnsureCCW.
func ClipPolygon(s Segment, window Polygon) (Segment, bool) {
	d := s.Delta()
	tE, tL := 0.0, 1.0

	for i := range window {
		v0, v1 := window.Edge(i)
		n := v1.Sub(v0).Perp() // outward normal under CCW winding
		num := n.Dot(s.A.Sub(v0))
		den := n.Dot(d)

		if math.Abs(den) < parallelTol {
			// Parallel to this edge: either entirely outside its
			// half-plane, or unconstrained by it.
			if num > 0 {
				return Segment{}, false
			}
			continue
		}

		t := -num / den
		if den < 0 {
			// Moving against the outward normal: entering.
			if t > tE {
				tE = t
			}
		} else {
			// Moving along the outward normal: leaving.
			if t < tL {
				tL = t
			}
		}
		if tE > tL {
			return Segment{}, false
		}
	}

	return Segment{A: s.At(tE), B: s.At(tL)}, true
}
