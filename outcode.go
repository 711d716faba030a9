package clip2d

import "strings"

// Outcode is a Cohen-Sutherland classification of a point against the
// four half-planes of a rectangle. A zero code means the point is
// inside (boundary inclusive).
type Outcode uint8

const (
	// OutLeft is set when p.X < rect.XMin.
	OutLeft Outcode = 1 << iota
	// OutRight is set when p.X > rect.XMax.
	OutRight
	// OutBottom is set when p.Y < rect.YMin.
	OutBottom
	// OutTop is set when p.Y > rect.YMax.
	OutTop
)

// Outcode classifies p against the rectangle's four boundary half-planes.
func (r Rect) Outcode(p Point) Outcode {
	var c Outcode
	if p.X < r.XMin {
		c |= OutLeft
	} else if p.X > r.XMax {
		c |= OutRight
	}
	if p.Y < r.YMin {
		c |= OutBottom
	} else if p.Y > r.YMax {
		c |= OutTop
	}
	return c
}

// Inside reports whether the code classifies a point as inside the rectangle.
func (c Outcode) Inside() bool {
	return c == 0
}

// String returns a readable form like "left|top", or "inside" for the
// zero code.
func (c Outcode) String() string {
	if c == 0 {
		return "inside"
	}
	var parts []string
	if c&OutLeft != 0 {
		parts = append(parts, "left")
	}
	if c&OutRight != 0 {
		parts = append(parts, "right")
	}
	if c&OutBottom != 0 {
		parts = append(parts, "bottom")
	}
	if c&OutTop != 0 {
		parts = append(parts, "top")
	}
	return strings.Join(parts, "|")
}
