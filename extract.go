package contour

// ExtractSegments runs the marching squares pass over every interior
// cell of a classified grid and returns the unordered contour segments
// in domain coordinates. Call after ApplyThreshold and Classify.
func ExtractSegments(g *Grid) []Segment {
	return appendSegments(nil, g)
}

// appendSegments is the allocation-reusing form of ExtractSegments used
// by the Tracer.
func appendSegments(dst []Segment, g *Grid) []Segment {
	for row := 0; row < g.rows-1; row++ {
		for col := 0; col < g.cols-1; col++ {
			dst = g.marchCell(dst, row, col)
		}
	}
	return dst
}

// marchCell appends the 0, 1 or 2 segments the cell anchored at
// (row, col) contributes. The case table names which edges the contour
// crosses; every referenced edge gets its intersection interpolated
// once, then consecutive label pairs become segments.
func (g *Grid) marchCell(dst []Segment, row, col int) []Segment {
	edges := caseEdges[g.samples[g.Index(row, col)].Code&0xF]
	if len(edges) == 0 {
		return dst
	}

	nw := g.samples[g.Index(row, col)]
	ne := g.samples[g.Index(row, col+1)]
	sw := g.samples[g.Index(row+1, col)]
	se := g.samples[g.Index(row+1, col+1)]

	// Cell-local intersection points, one slot per compass edge.
	var pts [numEdges]Point
	var resolved [numEdges]bool
	for _, e := range edges {
		switch e {
		case EdgeNorth:
			pts[e] = Pt(g.edgeCut(nw, ne), 0)
		case EdgeEast:
			pts[e] = Pt(1, g.edgeCut(ne, se))
		case EdgeSouth:
			pts[e] = Pt(g.edgeCut(sw, se), 1)
		case EdgeWest:
			pts[e] = Pt(0, g.edgeCut(nw, sw))
		default:
			// Unreachable with a well-formed table; drop this cell's
			// output and keep the frame going.
			Logger().Debug("contour: unresolvable edge label, cell skipped",
				"row", row, "col", col, "edge", uint8(e))
			return dst
		}
		resolved[e] = true
	}

	inv := 1 / g.resolution
	off := Pt(float64(col-1), float64(row-1))
	for i := 0; i+1 < len(edges); i += 2 {
		ea, eb := edges[i], edges[i+1]
		if !resolved[ea] || !resolved[eb] {
			Logger().Debug("contour: unresolved intersection, cell skipped",
				"row", row, "col", col)
			return dst
		}
		seg := Segment{
			A: pts[ea].Add(off).Mul(inv),
			B: pts[eb].Add(off).Mul(inv),
		}
		// A corner sampled exactly at the threshold pulls both edge cuts
		// onto that corner. The resulting zero-length segment would stitch
		// into a degenerate point subpath, so drop it.
		if seg.A.Eq(seg.B) {
			continue
		}
		dst = append(dst, seg)
	}
	return dst
}

// edgeCut returns the fraction along an edge, from corner a to corner b,
// where the field crosses the threshold. Corners with matching
// above/below status, or equal values (a zero interpolation
// denominator), default to the midpoint instead of producing a NaN.
func (g *Grid) edgeCut(a, b Sample) float64 {
	if a.Above == b.Above || a.Value == b.Value {
		return 0.5
	}
	t := (g.threshold - a.Value) / (b.Value - a.Value)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
