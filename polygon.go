package clip2d

// Polygon is an ordered sequence of vertices. The clipping functions
// require at least 3 vertices, counter-clockwise winding, and convexity;
// none of this is validated here. Callers that construct polygons from
// untrusted input should normalize with EnsureCCW and check IsConvex
// before clipping (the scene package does this for parsed input).
type Polygon []Point

// Edge returns the i-th edge as a (start, end) vertex pair. Edges are
// cyclic: the last edge connects the final vertex back to the first.
func (pg Polygon) Edge(i int) (Point, Point) {
	return pg[i], pg[(i+1)%len(pg)]
}

// SignedArea returns twice the signed area of the polygon via the
// shoelace formula. Positive means counter-clockwise winding.
func (pg Polygon) SignedArea() float64 {
	var sum float64
	for i, v := range pg {
		w := pg[(i+1)%len(pg)]
		sum += v.X*w.Y - w.X*v.Y
	}
	return sum
}

// IsCCW reports whether the vertices wind counter-clockwise.
func (pg Polygon) IsCCW() bool {
	return pg.SignedArea() > 0
}

// EnsureCCW returns the polygon with counter-clockwise winding,
// reversing the vertex order if necessary. The receiver is not modified.
func (pg Polygon) EnsureCCW() Polygon {
	if len(pg) < 3 || pg.IsCCW() {
		return pg
	}
	out := make(Polygon, len(pg))
	for i, v := range pg {
		out[len(pg)-1-i] = v
	}
	return out
}

// IsConvex reports whether the polygon is convex, assuming it has at
// least 3 vertices. Collinear consecutive edges are tolerated; a
// polygon whose turns change sign is not convex.
func (pg Polygon) IsConvex() bool {
	if len(pg) < 3 {
		return false
	}
	var sign float64
	for i := range pg {
		a := pg[i]
		b := pg[(i+1)%len(pg)]
		c := pg[(i+2)%len(pg)]
		ab := b.Sub(a)
		bc := c.Sub(b)
		cross := ab.X*bc.Y - ab.Y*bc.X
		switch {
		case cross == 0:
			continue
		case sign == 0:
			sign = cross
		case sign*cross < 0:
			return false
		}
	}
	return true
}
