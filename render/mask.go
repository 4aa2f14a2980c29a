package render

import (
	"image"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/gogpu/contour"
)

// Mask renders the grid's above-threshold flags, one pixel per sample:
// white for samples at or above the threshold, black below. Run the
// classifier's threshold pass before calling.
func Mask(g *contour.Grid) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Cols(), g.Rows()))
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			if g.At(row, col).Above {
				img.SetGray(col, row, color.Gray{Y: 0xff})
			}
		}
	}
	return img
}

// Heatmap renders the raw field values, one pixel per sample,
// normalized to the grid's value range. Non-finite values clamp to the
// nearest extreme. A flat field renders black.
func Heatmap(g *contour.Grid) *image.Gray {
	vals := g.Values(nil)
	lo, hi := floats.Min(vals), floats.Max(vals)
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		lo, hi = finiteRange(vals)
	}
	span := hi - lo

	img := image.NewGray(image.Rect(0, 0, g.Cols(), g.Rows()))
	if span <= 0 {
		return img
	}
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			t := (g.At(row, col).Value - lo) / span
			if t < 0 || math.IsNaN(t) {
				t = 0
			}
			if t > 1 {
				t = 1
			}
			img.SetGray(col, row, color.Gray{Y: uint8(t * 255)})
		}
	}
	return img
}

// finiteRange returns the min and max over the finite values only, for
// fields with singularities (a metaball centered exactly on a sample
// reports +Inf there).
func finiteRange(vals []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}
