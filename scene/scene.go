// Package scene models a clipping scene: a set of input segments plus
// exactly one clip window, either an axis-aligned rectangle or a convex
// polygon. It owns the validation the core clippers deliberately skip:
// parsed polygons are normalized to counter-clockwise winding and
// checked for convexity before they ever reach clip2d.
package scene

import (
	"errors"
	"fmt"

	"clip2d"
)

// Validation errors for polygon windows.
var (
	ErrTooFewVertices = errors.New("scene: polygon window needs at least 3 vertices")
	ErrNotConvex      = errors.New("scene: polygon window is not convex")
)

// Scene is a parsed clipping scene. Exactly one of Rect and Polygon is
// set: Rect is non-nil for a rectangle window, Polygon is non-empty for
// a convex polygon window.
type Scene struct {
	Segments []clip2d.Segment
	Rect     *clip2d.Rect
	Polygon  clip2d.Polygon
}

// NewRectScene creates a scene with a rectangle window. The rectangle
// is canonicalized so corner order does not matter.
func NewRectScene(segments []clip2d.Segment, window clip2d.Rect) *Scene {
	w := window.Canon()
	return &Scene{Segments: segments, Rect: &w}
}

// NewPolygonScene creates a scene with a convex polygon window. The
// polygon is normalized to counter-clockwise winding; clockwise input
// is accepted and reversed. Fewer than 3 vertices or a non-convex
// outline is rejected.
func NewPolygonScene(segments []clip2d.Segment, window clip2d.Polygon) (*Scene, error) {
	if len(window) < 3 {
		return nil, ErrTooFewVertices
	}
	pg := window.EnsureCCW()
	if !pg.IsConvex() {
		return nil, ErrNotConvex
	}
	return &Scene{Segments: segments, Polygon: pg}, nil
}

// HasRect reports whether the window is a rectangle.
func (s *Scene) HasRect() bool {
	return s.Rect != nil
}

// WindowPoints returns the window's corners or vertices, for extent
// computation and drawing.
func (s *Scene) WindowPoints() []clip2d.Point {
	if s.HasRect() {
		c := s.Rect.Corners()
		return c[:]
	}
	return []clip2d.Point(s.Polygon)
}

// WindowOutline returns the window boundary as a closed sequence of
// segments, for drawing.
func (s *Scene) WindowOutline() []clip2d.Segment {
	pts := s.WindowPoints()
	out := make([]clip2d.Segment, 0, len(pts))
	for i, p := range pts {
		out = append(out, clip2d.Seg(p, pts[(i+1)%len(pts)]))
	}
	return out
}

// Extent returns the display extent of the scene: the bounding box of
// all segments and the window, with clip2d.Extent's standard margin.
func (s *Scene) Extent() clip2d.Rect {
	return clip2d.Extent(s.Segments, s.WindowPoints()...)
}

// Clip runs the matching clipper over every segment and returns the
// visible pieces per input segment, index-aligned with Segments. For a
// rectangle window each entry holds 0..k pieces from the subdivision
// clipper; for a polygon window each entry holds 0 or 1 exact piece.
func (s *Scene) Clip(opts ...clip2d.Option) [][]clip2d.Segment {
	if s.HasRect() {
		return clip2d.ClipAllRect(s.Segments, *s.Rect, opts...)
	}
	results := clip2d.ClipAllPolygon(s.Segments, s.Polygon, opts...)
	out := make([][]clip2d.Segment, len(results))
	for i, r := range results {
		if r.OK {
			out[i] = []clip2d.Segment{r.Visible}
		}
	}
	return out
}

// WindowName returns "rectangle" or "polygon", for logs and UI labels.
func (s *Scene) WindowName() string {
	if s.HasRect() {
		return "rectangle"
	}
	return fmt.Sprintf("polygon(%d)", len(s.Polygon))
}
