package contour

// Segment is one line segment of the extracted contour, in domain
// coordinates. Segments are produced fresh on every pipeline run and are
// consumed immediately by the polyline assembler.
type Segment struct {
	A, B Point
}

// Seg is a convenience function to create a Segment.
func Seg(a, b Point) Segment {
	return Segment{A: a, B: b}
}

// Reversed returns the segment with its endpoints swapped.
func (s Segment) Reversed() Segment {
	return Segment{A: s.B, B: s.A}
}

// HasEndpoint reports whether p coincides with either endpoint of s,
// using exact equality when tol is zero and coordinate-wise tolerance
// otherwise.
func (s Segment) HasEndpoint(p Point, tol float64) bool {
	return pointsMatch(s.A, p, tol) || pointsMatch(s.B, p, tol)
}
