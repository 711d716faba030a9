package clip2d

// Default tolerances for the midpoint-subdivision clipper.
const (
	// DefaultEpsilon is the Manhattan-length cutoff below which a
	// boundary-straddling fragment is discarded instead of split further.
	DefaultEpsilon = 1e-3

	// DefaultMaxDepth caps the subdivision recursion depth.
	DefaultMaxDepth = 50
)

// ClipRect clips a segment against an axis-aligned rectangle by
// midpoint subdivision and returns the visible pieces.
//
// The segment is bisected recursively until every fragment is either
// fully inside the window (emitted), trivially outside it (discarded),
// or too short to resolve (discarded). No boundary intersection is ever
// solved for directly: the subdivision converges on the boundary by
// halving, so the union of the returned pieces approximates the true
// visible portion to within the epsilon tolerance rather than
// reproducing it exactly.
//
// Pieces are returned in depth-first split order, i.e. ordered from the
// A end of the segment toward the B end. A fully visible segment comes
// back as a single piece identical to the input; a fully hidden one
// yields an empty slice.
func ClipRect(s Segment, window Rect, opts ...Option) []Segment {
	o := buildOptions(opts)
	var out []Segment
	clipRectRec(s, window, 0, &o, &out)
	return out
}

// clipRectRec is one subdivision step. Terminal cases: both endpoints
// inside (emit), shared outside half-plane (discard), fragment below the
// depth or length cutoff (discard). Everything else splits at the
// midpoint.
func clipRectRec(s Segment, window Rect, depth int, o *clipOptions, out *[]Segment) {
	ca := window.Outcode(s.A)
	cb := window.Outcode(s.B)

	if ca.Inside() && cb.Inside() {
		*out = append(*out, s)
		return
	}
	if ca&cb != 0 {
		// Both endpoints beyond the same window edge.
		return
	}
	if depth >= o.maxDepth || s.Manhattan() < o.epsilon {
		return
	}

	m := s.Midpoint()
	clipRectRec(Segment{A: s.A, B: m}, window, depth+1, o, out)
	clipRectRec(Segment{A: m, B: s.B}, window, depth+1, o, out)
}
