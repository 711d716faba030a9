package clip2d

import "testing"

func TestExtent_Margin(t *testing.T) {
	segs := []Segment{SegXY(0, 0, 10, 20)}
	got := Extent(segs)
	want := Rect{XMin: -1, YMin: -2, XMax: 11, YMax: 22}
	if !approx(got.XMin, want.XMin, 1e-12) || !approx(got.XMax, want.XMax, 1e-12) ||
		!approx(got.YMin, want.YMin, 1e-12) || !approx(got.YMax, want.YMax, 1e-12) {
		t.Errorf("Extent = %v, want %v", got, want)
	}
}

func TestExtent_IncludesExtraPoints(t *testing.T) {
	segs := []Segment{SegXY(0, 0, 1, 1)}
	window := NewRect(-10, -10, 10, 10)
	c := window.Corners()
	got := Extent(segs, c[0], c[1], c[2], c[3])
	if got.XMin > -10 && got.XMax < 10 {
		t.Errorf("Extent %v ignores the window corners", got)
	}
	if !got.Contains(Pt(-10, -10)) || !got.Contains(Pt(10, 10)) {
		t.Errorf("Extent %v does not cover the window", got)
	}
}

func TestExtent_DegenerateSpan(t *testing.T) {
	t.Run("horizontal", func(t *testing.T) {
		segs := []Segment{SegXY(0, 5, 10, 5)}
		got := Extent(segs)
		if got.Height() != 2 {
			t.Errorf("zero Y span must be padded to 2, got height %v", got.Height())
		}
	})

	t.Run("single-point", func(t *testing.T) {
		segs := []Segment{SegXY(3, 3, 3, 3)}
		got := Extent(segs)
		if got.Width() != 2 || got.Height() != 2 {
			t.Errorf("point extent must be 2x2, got %vx%v", got.Width(), got.Height())
		}
		if !got.Contains(Pt(3, 3)) {
			t.Error("extent must contain its input")
		}
	})
}

func TestExtent_Empty(t *testing.T) {
	if got := Extent(nil); got != (Rect{}) {
		t.Errorf("empty input: got %v, want zero Rect", got)
	}
}

func TestExtent_CoversInput(t *testing.T) {
	segs := []Segment{
		SegXY(-5, -3, 8, 6),
		SegXY(1, 1, 4, 3),
		SegXY(-2, 7, 0, -1),
	}
	got := Extent(segs)
	for i, s := range segs {
		if !got.Contains(s.A) || !got.Contains(s.B) {
			t.Errorf("segment %d not covered by %v", i, got)
		}
	}
}
