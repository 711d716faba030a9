package clip2d

import "testing"

func ccwSquare() Polygon {
	return Polygon{Pt(0, 0), Pt(5, 0), Pt(5, 4), Pt(0, 4)}
}

func TestPolygon_SignedArea(t *testing.T) {
	sq := ccwSquare()
	if got := sq.SignedArea(); got != 40 {
		t.Errorf("SignedArea = %v, want 40 (twice the area)", got)
	}
	rev := sq.EnsureCCW() // already CCW, unchanged
	if got := rev.SignedArea(); got != 40 {
		t.Errorf("SignedArea after EnsureCCW = %v, want 40", got)
	}
}

func TestPolygon_IsCCW(t *testing.T) {
	if !ccwSquare().IsCCW() {
		t.Error("CCW square reported as CW")
	}
	cw := Polygon{Pt(0, 4), Pt(5, 4), Pt(5, 0), Pt(0, 0)}
	if cw.IsCCW() {
		t.Error("CW square reported as CCW")
	}
}

func TestPolygon_EnsureCCW(t *testing.T) {
	cw := Polygon{Pt(0, 4), Pt(5, 4), Pt(5, 0), Pt(0, 0)}
	fixed := cw.EnsureCCW()
	if !fixed.IsCCW() {
		t.Fatal("EnsureCCW did not flip winding")
	}
	if len(fixed) != len(cw) {
		t.Fatalf("vertex count changed: %d -> %d", len(cw), len(fixed))
	}
	// Receiver must be untouched.
	if cw.IsCCW() {
		t.Error("EnsureCCW mutated its receiver")
	}
}

func TestPolygon_IsConvex(t *testing.T) {
	tests := []struct {
		name   string
		pg     Polygon
		convex bool
	}{
		{"square", ccwSquare(), true},
		{"triangle", Polygon{Pt(0, 0), Pt(6, 0), Pt(3, 6)}, true},
		{"collinear-edge", Polygon{Pt(0, 0), Pt(3, 0), Pt(6, 0), Pt(3, 6)}, true},
		{"arrowhead", Polygon{Pt(0, 0), Pt(6, 0), Pt(3, 2), Pt(3, 6)}, false},
		{"too-few", Polygon{Pt(0, 0), Pt(1, 1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pg.IsConvex(); got != tt.convex {
				t.Errorf("IsConvex = %v, want %v", got, tt.convex)
			}
		})
	}
}

func TestPolygon_Edge(t *testing.T) {
	sq := ccwSquare()
	// Last edge wraps back to the first vertex.
	a, b := sq.Edge(3)
	if a != Pt(0, 4) || b != Pt(0, 0) {
		t.Errorf("Edge(3) = %v-%v, want (0,4)-(0,0)", a, b)
	}
}
