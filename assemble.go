package contour

// Assemble stitches the frame's unordered segment soup into a path of
// continuous polylines by greedy endpoint matching, then appends a
// counter-oriented rectangle over bounds to normalize even-odd fill
// parity.
//
// Matching compares endpoints with exact coordinate equality when tol is
// zero. Exact matching means two independently interpolated points for
// what is conceptually the same corner can drift apart and leave a chain
// open; that is accepted behavior, carried for compatibility. Pass a
// small positive tol to opt in to tolerance-based matching instead.
//
// The input slice is not modified.
func Assemble(segs []Segment, bounds Rect, tol float64) *Path {
	path := NewPath()

	pool := make([]Segment, len(segs))
	copy(pool, segs)

	for len(pool) > 0 {
		// Seed a new subpath with the first segment in the pool.
		seed := pool[0]
		pool = removeAt(pool, 0)

		start := seed.A
		end := seed.B
		path.MoveTo(start.X, start.Y)
		path.LineTo(end.X, end.Y)

		// Grow the chain from its dangling end until nothing connects.
		for {
			i, next := findJoint(pool, end, tol)
			if i < 0 {
				break
			}
			pool = removeAt(pool, i)
			end = next
			path.LineTo(end.X, end.Y)
		}

		if pointsMatch(end, start, tol) {
			path.Close()
		}
	}

	counterRect(path, bounds)
	return path
}

// findJoint scans the pool in order for a segment with an endpoint at p
// and returns its index together with the segment's other endpoint, or
// (-1, Point{}) when nothing connects.
func findJoint(pool []Segment, p Point, tol float64) (int, Point) {
	for i, s := range pool {
		if !s.HasEndpoint(p, tol) {
			continue
		}
		if pointsMatch(s.A, p, tol) {
			return i, s.B
		}
		return i, s.A
	}
	return -1, Point{}
}

func pointsMatch(p, q Point, tol float64) bool {
	if tol == 0 {
		return p.Eq(q)
	}
	return p.ApproxEq(q, tol)
}

// removeAt deletes pool[i] preserving the order of the remaining
// segments, so "first in the list" stays deterministic across frames.
func removeAt(pool []Segment, i int) []Segment {
	copy(pool[i:], pool[i+1:])
	return pool[:len(pool)-1]
}

// counterRect appends the parity rectangle. It winds counter-clockwise,
// opposite to [Path.Rectangle]: under the even-odd rule the extra
// boundary shifts crossing parity by one so blob interiors fill once
// when the forced border contour is present.
func counterRect(p *Path, b Rect) {
	p.MoveTo(b.X, b.Y)
	p.LineTo(b.X, b.Y+b.H)
	p.LineTo(b.X+b.W, b.Y+b.H)
	p.LineTo(b.X+b.W, b.Y)
	p.Close()
}
