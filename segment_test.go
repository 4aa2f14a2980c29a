package contour

import "testing"

func TestSegment_Reversed(t *testing.T) {
	s := Seg(Pt(1, 2), Pt(3, 4))
	r := s.Reversed()
	if r.A != s.B || r.B != s.A {
		t.Errorf("Reversed() = %+v, want endpoints swapped", r)
	}
	if s.Reversed().Reversed() != s {
		t.Error("double reversal should restore the segment")
	}
}

func TestSegment_HasEndpoint(t *testing.T) {
	s := Seg(Pt(0, 0), Pt(1, 0))

	tests := []struct {
		name   string
		p      Point
		tol    float64
		expect bool
	}{
		{"first endpoint exact", Pt(0, 0), 0, true},
		{"second endpoint exact", Pt(1, 0), 0, true},
		{"near miss exact", Pt(1e-15, 0), 0, false},
		{"near miss tolerant", Pt(1e-15, 0), 1e-9, true},
		{"interior point", Pt(0.5, 0), 1e-9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.HasEndpoint(tt.p, tt.tol); got != tt.expect {
				t.Errorf("HasEndpoint(%v, %v) = %v, want %v", tt.p, tt.tol, got, tt.expect)
			}
		})
	}
}
