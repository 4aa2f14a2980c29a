package contour

// Corner bit positions of the 4-bit classification code. The sample at
// (row, col) plays the north-west corner of its cell; east, south and
// south-east neighbors fill the remaining corners:
//
//	code = SW<<0 | SE<<1 | NE<<2 | NW<<3
//
// This ordering is load-bearing: it must match the case table in
// table.go.
const (
	cornerSW = 1 << 0
	cornerSE = 1 << 1
	cornerNE = 1 << 2
	cornerNW = 1 << 3
)

// ApplyThreshold recomputes every sample's above-threshold flag:
// Above = Value >= threshold. With outline edges enabled, samples on the
// outer ring are instead pinned to the threshold and marked above, which
// guarantees the contour closes inside the padded domain no matter how
// the field behaves at the boundary.
func (g *Grid) ApplyThreshold() {
	for row := 0; row < g.rows; row++ {
		base := row * g.cols
		for col := 0; col < g.cols; col++ {
			s := &g.samples[base+col]
			if g.outlineEdges && (row == 0 || row == g.rows-1 || col == 0 || col == g.cols-1) {
				s.Value = g.threshold
				s.Above = true
				continue
			}
			s.Above = s.Value >= g.threshold
		}
	}
}

// Classify recomputes the 4-bit classification code of every cell from
// the above-threshold flags written by ApplyThreshold. Samples on the
// bottom or right border anchor no cell and are skipped; their codes are
// left stale and never read downstream.
func (g *Grid) Classify() {
	for row := 0; row < g.rows-1; row++ {
		base := row * g.cols
		for col := 0; col < g.cols-1; col++ {
			var code uint8
			if g.samples[base+g.cols+col].Above { // south
				code |= cornerSW
			}
			if g.samples[base+g.cols+col+1].Above { // south-east
				code |= cornerSE
			}
			if g.samples[base+col+1].Above { // east
				code |= cornerNE
			}
			if g.samples[base+col].Above { // the sample itself
				code |= cornerNW
			}
			g.samples[base+col].Code = code
		}
	}
}
