package clip2d

import "testing"

func TestRect_Outcode(t *testing.T) {
	r := NewRect(0, 0, 5, 4)
	tests := []struct {
		name   string
		p      Point
		expect Outcode
	}{
		{"inside", Pt(2, 2), 0},
		{"on-boundary", Pt(0, 4), 0},
		{"left", Pt(-1, 2), OutLeft},
		{"right", Pt(6, 2), OutRight},
		{"below", Pt(2, -1), OutBottom},
		{"above", Pt(2, 5), OutTop},
		{"bottom-left", Pt(-8, -8), OutLeft | OutBottom},
		{"top-right", Pt(9, 9), OutRight | OutTop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Outcode(tt.p); got != tt.expect {
				t.Errorf("Outcode(%v) = %v, want %v", tt.p, got, tt.expect)
			}
		})
	}
}

func TestOutcode_Inside(t *testing.T) {
	if !Outcode(0).Inside() {
		t.Error("zero code must be inside")
	}
	if OutLeft.Inside() {
		t.Error("left code must not be inside")
	}
}

func TestOutcode_TrivialReject(t *testing.T) {
	r := NewRect(0, 0, 5, 4)
	tests := []struct {
		name   string
		a, b   Point
		reject bool
	}{
		{"both-left", Pt(-1, 1), Pt(-2, 3), true},
		{"both-below-left", Pt(-8, -8), Pt(-6, -6), true},
		{"opposite-sides", Pt(-1, 2), Pt(6, 2), false},
		{"corner-straddle", Pt(-1, 5), Pt(1, 3), false},
		{"one-inside", Pt(2, 2), Pt(9, 9), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Outcode(tt.a)&r.Outcode(tt.b) != 0
			if got != tt.reject {
				t.Errorf("shared bits = %v, want %v", got, tt.reject)
			}
		})
	}
}

func TestOutcode_String(t *testing.T) {
	tests := []struct {
		c      Outcode
		expect string
	}{
		{0, "inside"},
		{OutLeft, "left"},
		{OutRight | OutTop, "right|top"},
		{OutLeft | OutBottom, "left|bottom"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.expect {
			t.Errorf("String(%d) = %q, want %q", tt.c, got, tt.expect)
		}
	}
}
