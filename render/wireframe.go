package render

import (
	"image"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/contour"
)

// Wireframe rasterizes the raw segment list as hairlines of the given
// width (in pixels) into an alpha mask. Each segment becomes a thin
// quad fed to the x/image/vector rasterizer, so overlapping endpoints
// simply accumulate coverage.
//
// bounds positions the image over the domain; scale is pixels per
// domain unit.
func Wireframe(segs []contour.Segment, bounds contour.Rect, scale, width float64) *image.Alpha {
	w, h := imageSize(bounds, scale)
	img := image.NewAlpha(image.Rect(0, 0, w, h))
	if len(segs) == 0 {
		return img
	}
	if width <= 0 {
		width = 1
	}

	r := vector.NewRasterizer(w, h)
	half := width / 2
	for _, s := range segs {
		ax := (s.A.X - bounds.X) * scale
		ay := (s.A.Y - bounds.Y) * scale
		bx := (s.B.X - bounds.X) * scale
		by := (s.B.Y - bounds.Y) * scale

		dx, dy := bx-ax, by-ay
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		// Unit normal, scaled to half the stroke width.
		nx := -dy / length * half
		ny := dx / length * half

		r.MoveTo(float32(ax+nx), float32(ay+ny))
		r.LineTo(float32(bx+nx), float32(by+ny))
		r.LineTo(float32(bx-nx), float32(by-ny))
		r.LineTo(float32(ax-nx), float32(ay-ny))
		r.ClosePath()
	}
	r.Draw(img, img.Bounds(), image.Opaque, image.Point{})
	return img
}
