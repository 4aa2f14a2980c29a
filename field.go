package contour

// Field supplies the scalar values the pipeline samples. The library has
// no opinion on how the value is produced; a metaball influence sum, a
// noise field, or image luminance all work. Sample must be a pure
// function of the point for a given frame: the grid calls it once per
// grid coordinate per pipeline run.
type Field interface {
	Sample(p Point) float64
}

// FieldFunc adapts an ordinary function to the Field interface.
type FieldFunc func(p Point) float64

// Sample calls f(p).
func (f FieldFunc) Sample(p Point) float64 {
	return f(p)
}
