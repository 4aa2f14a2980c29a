package contour

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Configuration errors reported by NewGrid, Resize, and NewTracer.
var (
	// ErrResolution indicates a non-positive or non-finite resolution.
	ErrResolution = errors.New("contour: resolution must be positive and finite")

	// ErrDomain indicates a negative or non-finite domain extent.
	ErrDomain = errors.New("contour: domain size must be non-negative and finite")
)

// Sample is one grid point of the sampled field. Value and Above are
// overwritten on every pipeline run; Code is the 4-bit marching squares
// classification of the cell whose north-west corner this sample is.
type Sample struct {
	Value float64
	Above bool
	Code  uint8
}

// Rect is an axis-aligned rectangle in domain coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Grid owns the row-major sample array covering the padded rectangular
// domain. The grid extends one cell beyond the domain on every side: for
// a width×height domain at the given resolution,
//
//	rows = floor(height*resolution) + 3
//	cols = floor(width*resolution) + 3
//
// where the +1 reaches the far edge of the domain and the +2 adds the
// one-cell border that lets contours close even when the field is hot at
// the boundary.
//
// A Grid is exclusively owned by one pipeline run at a time; it is not
// safe for concurrent use.
type Grid struct {
	width, height float64
	resolution    float64
	threshold     float64
	outlineEdges  bool

	rows, cols int
	samples    []Sample
}

// NewGrid creates a grid over a width×height domain sampled at
// resolution samples per domain unit.
func NewGrid(width, height, resolution float64) (*Grid, error) {
	g := &Grid{}
	if err := g.Resize(width, height, resolution); err != nil {
		return nil, err
	}
	return g, nil
}

// Resize recomputes the grid dimensions for a new domain size or
// resolution and grows or truncates the sample array to exactly
// rows*cols entries. Existing samples are preserved by index, not by
// spatial position: a resize is expected to be followed by a full
// Resample. Cells added by growth are zeroed.
//
// Resize takes exclusive access; no sampling may be in flight.
func (g *Grid) Resize(width, height, resolution float64) error {
	if resolution <= 0 || math.IsInf(resolution, 0) || math.IsNaN(resolution) {
		return fmt.Errorf("%w (got %v)", ErrResolution, resolution)
	}
	if width < 0 || height < 0 ||
		math.IsInf(width, 0) || math.IsNaN(width) ||
		math.IsInf(height, 0) || math.IsNaN(height) {
		return fmt.Errorf("%w (got %v×%v)", ErrDomain, width, height)
	}

	g.width = width
	g.height = height
	g.resolution = resolution
	g.rows = int(math.Floor(height*resolution)) + 3
	g.cols = int(math.Floor(width*resolution)) + 3

	n := g.rows * g.cols
	switch {
	case n <= cap(g.samples):
		old := len(g.samples)
		g.samples = g.samples[:n]
		for i := old; i < n; i++ {
			g.samples[i] = Sample{}
		}
	default:
		grown := make([]Sample, n)
		copy(grown, g.samples)
		g.samples = grown
	}

	Logger().Debug("contour: grid resized",
		"rows", g.rows, "cols", g.cols, "resolution", resolution)
	return nil
}

// Clear resets every sample's value and above-threshold flag to the
// empty state. Classification codes are left untouched; they are
// recomputed by the next Classify pass.
func (g *Grid) Clear() {
	for i := range g.samples {
		g.samples[i].Value = 0
		g.samples[i].Above = false
	}
}

// Resample overwrites every sample's value with the field evaluated at
// the sample's domain position.
func (g *Grid) Resample(f Field) {
	for row := 0; row < g.rows; row++ {
		base := row * g.cols
		for col := 0; col < g.cols; col++ {
			g.samples[base+col].Value = f.Sample(g.Pos(row, col))
		}
	}
}

// Index returns the flat sample index for (row, col). The layout is
// row-major and C-contiguous: index = row*cols + col.
func (g *Grid) Index(row, col int) int {
	return row*g.cols + col
}

// RowCol inverts Index: row = index/cols, col = index%cols.
func (g *Grid) RowCol(index int) (row, col int) {
	return index / g.cols, index % g.cols
}

// At returns a copy of the sample at (row, col).
func (g *Grid) At(row, col int) Sample {
	return g.samples[g.Index(row, col)]
}

// Pos returns the domain point of sample (row, col). The -1 undoes the
// one-cell border padding.
func (g *Grid) Pos(row, col int) Point {
	return Pt(float64(col-1)/g.resolution, float64(row-1)/g.resolution)
}

// Bounds returns the padded domain rectangle covered by the grid,
// including the one-cell border on every side.
func (g *Grid) Bounds() Rect {
	return Rect{
		X: -1 / g.resolution,
		Y: -1 / g.resolution,
		W: float64(g.cols-1) / g.resolution,
		H: float64(g.rows-1) / g.resolution,
	}
}

// Rows returns the number of sample rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of sample columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the total number of samples (rows*cols).
func (g *Grid) Len() int { return len(g.samples) }

// Width returns the domain width in units.
func (g *Grid) Width() float64 { return g.width }

// Height returns the domain height in units.
func (g *Grid) Height() float64 { return g.height }

// Resolution returns the sampling resolution in samples per unit.
func (g *Grid) Resolution() float64 { return g.resolution }

// Threshold returns the field cutoff.
func (g *Grid) Threshold() float64 { return g.threshold }

// SetThreshold sets the field cutoff. No reallocation happens; the new
// value takes effect on the next threshold pass.
func (g *Grid) SetThreshold(v float64) { g.threshold = v }

// OutlineEdges reports whether border forcing is enabled.
func (g *Grid) OutlineEdges() bool { return g.outlineEdges }

// SetOutlineEdges toggles border forcing. When enabled, the threshold
// pass pins the outer sample ring to the threshold so the extracted
// contour never exits the padded domain.
func (g *Grid) SetOutlineEdges(on bool) { g.outlineEdges = on }

// Values appends every sample's field value to dst in index order and
// returns the extended slice.
func (g *Grid) Values(dst []float64) []float64 {
	for i := range g.samples {
		dst = append(dst, g.samples[i].Value)
	}
	return dst
}

// Range returns the minimum and maximum sampled field values. Useful
// when tuning the threshold against an unfamiliar field.
func (g *Grid) Range() (min, max float64) {
	vals := g.Values(make([]float64, 0, len(g.samples)))
	return floats.Min(vals), floats.Max(vals)
}
