package scene

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"clip2d"
)

// Parse reads a scene from its text form:
//
//	# comments and blank lines are ignored
//	<n>                     segment count
//	x1 y1 x2 y2             one row per segment, n rows
//	xmin ymin xmax ymax     trailing window row: 4 numbers for a
//	                        rectangle, or 2m numbers (m >= 3) for the
//	                        vertices of a convex polygon
//
// All coordinates must be finite. Polygon windows may be listed in
// either winding; they are normalized to counter-clockwise. A window
// row with an odd number of values, a 2-vertex "polygon", or a
// non-convex outline is an error.
func Parse(r io.Reader) (*Scene, error) {
	sc := bufio.NewScanner(r)
	line := 0

	// next returns the fields of the next non-blank, non-comment line.
	next := func() ([]string, error) {
		for sc.Scan() {
			line++
			text := strings.TrimSpace(sc.Text())
			if text == "" || strings.HasPrefix(text, "#") {
				continue
			}
			return strings.Fields(text), nil
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("scene: read: %w", err)
		}
		return nil, fmt.Errorf("scene: line %d: unexpected end of input", line)
	}

	fields, err := next()
	if err != nil {
		return nil, err
	}
	if len(fields) != 1 {
		return nil, fmt.Errorf("scene: line %d: want a segment count, got %d values", line, len(fields))
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("scene: line %d: segment count: %w", line, err)
	}
	if n < 1 {
		return nil, fmt.Errorf("scene: line %d: segment count must be positive, got %d", line, n)
	}

	segments := make([]clip2d.Segment, 0, n)
	for i := 0; i < n; i++ {
		fields, err := next()
		if err != nil {
			return nil, err
		}
		vals, err := parseFloats(fields, line)
		if err != nil {
			return nil, err
		}
		if len(vals) != 4 {
			return nil, fmt.Errorf("scene: line %d: want 4 coordinates per segment, got %d", line, len(vals))
		}
		segments = append(segments, clip2d.SegXY(vals[0], vals[1], vals[2], vals[3]))
	}

	fields, err = next()
	if err != nil {
		return nil, err
	}
	vals, err := parseFloats(fields, line)
	if err != nil {
		return nil, err
	}
	switch {
	case len(vals) == 4:
		return NewRectScene(segments, clip2d.NewRect(vals[0], vals[1], vals[2], vals[3])), nil
	case len(vals)%2 != 0:
		return nil, fmt.Errorf("scene: line %d: window row has an odd value count (%d)", line, len(vals))
	case len(vals) < 6:
		return nil, fmt.Errorf("scene: line %d: %w", line, ErrTooFewVertices)
	default:
		pg := make(clip2d.Polygon, 0, len(vals)/2)
		for i := 0; i < len(vals); i += 2 {
			pg = append(pg, clip2d.Pt(vals[i], vals[i+1]))
		}
		s, err := NewPolygonScene(segments, pg)
		if err != nil {
			return nil, fmt.Errorf("scene: line %d: %w", line, err)
		}
		return s, nil
	}
}

// ParseFile reads a scene from a file; "-" means stdin.
func ParseFile(path string) (*Scene, error) {
	if path == "-" {
		return Parse(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// parseFloats converts line fields to finite floats.
func parseFloats(fields []string, line int) ([]float64, error) {
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("scene: line %d: %w", line, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("scene: line %d: non-finite coordinate %q", line, f)
		}
		out = append(out, v)
	}
	return out, nil
}
