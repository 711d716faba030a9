package clip2d

import "clip2d/internal/parallel"

// PolygonResult is one entry of ClipAllPolygon: the visible sub-segment
// of an input segment, or nothing.
type PolygonResult struct {
	Visible Segment
	OK      bool
}

// ClipAllRect clips every segment against the window and returns the
// visible pieces of each, index-aligned with the input. Segments are
// clipped independently across a worker pool (see WithWorkers); each
// worker writes only its own index, so results are deterministic
// regardless of scheduling.
func ClipAllRect(segments []Segment, window Rect, opts ...Option) [][]Segment {
	o := buildOptions(opts)
	pool := parallel.New(o.workers)
	logger().Debug("clip batch",
		"algorithm", "midpoint",
		"segments", len(segments),
		"workers", pool.Workers())

	out := make([][]Segment, len(segments))
	pool.ForEach(len(segments), func(i int) {
		out[i] = ClipRect(segments[i], window, opts...)
	})
	return out
}

// ClipAllPolygon clips every segment against the convex window and
// returns the per-segment results, index-aligned with the input. The
// same worker-pool and determinism notes as ClipAllRect apply; the
// polygon itself is read-only and shared by all workers.
func ClipAllPolygon(segments []Segment, window Polygon, opts ...Option) []PolygonResult {
	o := buildOptions(opts)
	pool := parallel.New(o.workers)
	logger().Debug("clip batch",
		"algorithm", "cyrus-beck",
		"segments", len(segments),
		"edges", len(window),
		"workers", pool.Workers())

	out := make([]PolygonResult, len(segments))
	pool.ForEach(len(segments), func(i int) {
		out[i].Visible, out[i].OK = ClipPolygon(segments[i], window)
	})
	return out
}
