package contour

// Edge names one of the four edges of a grid cell.
type Edge uint8

const (
	EdgeNorth Edge = iota
	EdgeEast
	EdgeSouth
	EdgeWest

	numEdges
)

// String returns the compass label of the edge.
func (e Edge) String() string {
	switch e {
	case EdgeNorth:
		return "N"
	case EdgeEast:
		return "E"
	case EdgeSouth:
		return "S"
	case EdgeWest:
		return "W"
	}
	return "?"
}

// caseEdges maps a 4-bit classification code to the cell edges the
// contour crosses, in the corner order SW<<0 | SE<<1 | NE<<2 | NW<<3.
// Consecutive label pairs form independent segments: an empty entry
// emits nothing, two labels one segment, four labels two.
//
// The ambiguous checkerboard cases 5 (SW+NE) and 10 (NW+SE) always split
// into two corner-isolating segments; the alternate saddle-connected
// topology is deliberately not produced.
//
// Shared immutable data; never written after init.
var caseEdges = [16][]Edge{
	0x0: nil,                                          // empty
	0x1: {EdgeWest, EdgeSouth},                        // SW
	0x2: {EdgeSouth, EdgeEast},                        // SE
	0x3: {EdgeWest, EdgeEast},                         // SW SE
	0x4: {EdgeNorth, EdgeEast},                        // NE
	0x5: {EdgeWest, EdgeSouth, EdgeNorth, EdgeEast},   // SW NE
	0x6: {EdgeNorth, EdgeSouth},                       // SE NE
	0x7: {EdgeWest, EdgeNorth},                        // SW SE NE
	0x8: {EdgeNorth, EdgeWest},                        // NW
	0x9: {EdgeNorth, EdgeSouth},                       // SW NW
	0xA: {EdgeNorth, EdgeWest, EdgeSouth, EdgeEast},   // SE NW
	0xB: {EdgeNorth, EdgeEast},                        // SW SE NW
	0xC: {EdgeWest, EdgeEast},                         // NE NW
	0xD: {EdgeSouth, EdgeEast},                        // SW NE NW
	0xE: {EdgeWest, EdgeSouth},                        // SE NE NW
	0xF: nil,                                          // full
}
