// Package clip2d clips 2D line segments against an axis-aligned
// rectangle or an arbitrary convex polygon.
//
// # Overview
//
// Two independent algorithms are provided. ClipRect clips against a
// rectangle by midpoint subdivision: the segment is bisected until every
// fragment is trivially inside or outside, so the visible pieces
// approximate the true intersection to within an epsilon tolerance
// without ever solving for a boundary crossing. ClipPolygon clips
// against a convex polygon with the Cyrus-Beck parametric algorithm,
// which is exact: each edge contributes a half-plane constraint on the
// segment's parameter interval.
//
// # Quick Start
//
//	import "clip2d"
//
//	window := clip2d.NewRect(0, 0, 5, 4)
//	pieces := clip2d.ClipRect(clip2d.SegXY(-5, -3, 8, 6), window)
//
//	poly := window.Polygon()
//	visible, ok := clip2d.ClipPolygon(clip2d.SegXY(-5, -3, 8, 6), poly)
//
// # Concurrency
//
// Every clip call is pure: it reads only its arguments and allocates
// only local state, so segments may be clipped from any number of
// goroutines without coordination. ClipAllRect and ClipAllPolygon do
// exactly that, fanning a slice of segments out across a worker pool
// and returning index-aligned results.
//
// # Coordinate System
//
// World coordinates with Y increasing upward. The screen mapping
// (including the Y flip) lives in the render package, not here.
package clip2d
