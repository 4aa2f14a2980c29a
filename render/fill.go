package render

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/gogpu/contour"
)

// opaque is the alpha value written for covered pixels.
var opaque = color.Alpha{A: 0xff}

// edge is one polygon edge in image-space coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
}

// imageSize returns the pixel dimensions covering bounds at the given
// scale (pixels per domain unit).
func imageSize(b contour.Rect, scale float64) (int, int) {
	w := int(math.Ceil(b.W * scale))
	h := int(math.Ceil(b.H * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// FillPath rasterizes the path into an alpha mask using the even-odd
// fill rule: a pixel is set when a horizontal ray from its center
// crosses the path boundary an odd number of times. This matches the
// fill rule the assembled path is built for, parity rectangle included.
//
// bounds positions the image over the domain; scale is pixels per
// domain unit. Open subpaths are closed implicitly, as fill renderers
// conventionally do.
func FillPath(p *contour.Path, bounds contour.Rect, scale float64) *image.Alpha {
	w, h := imageSize(bounds, scale)
	img := image.NewAlpha(image.Rect(0, 0, w, h))

	edges := pathEdges(p, bounds, scale)
	if len(edges) == 0 {
		return img
	}

	xs := make([]float64, 0, 16)
	for py := 0; py < h; py++ {
		y := float64(py) + 0.5

		// Gather crossings of this scanline. Half-open span test so a
		// vertex shared by two edges counts once.
		xs = xs[:0]
		for _, e := range edges {
			if (e.y0 <= y && y < e.y1) || (e.y1 <= y && y < e.y0) {
				t := (y - e.y0) / (e.y1 - e.y0)
				xs = append(xs, e.x0+t*(e.x1-e.x0))
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Float64s(xs)

		// Fill between alternate crossing pairs.
		for i := 0; i+1 < len(xs); i += 2 {
			px := int(math.Ceil(xs[i] - 0.5))
			if px < 0 {
				px = 0
			}
			for ; px < w; px++ {
				if float64(px)+0.5 >= xs[i+1] {
					break
				}
				img.SetAlpha(px, py, opaque)
			}
		}
	}
	return img
}

// pathEdges flattens the path into image-space edges, implicitly closing
// every subpath. Horizontal edges never produce scanline crossings and
// are kept only because the span test rejects them anyway (y0 == y1).
func pathEdges(p *contour.Path, bounds contour.Rect, scale float64) []edge {
	toImg := func(pt contour.Point) (float64, float64) {
		return (pt.X - bounds.X) * scale, (pt.Y - bounds.Y) * scale
	}

	var edges []edge
	var startX, startY, curX, curY float64
	open := false

	closeSubpath := func() {
		if open && (curX != startX || curY != startY) {
			edges = append(edges, edge{curX, curY, startX, startY})
		}
		open = false
	}

	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case contour.MoveTo:
			closeSubpath()
			startX, startY = toImg(e.Point)
			curX, curY = startX, startY
			open = true
		case contour.LineTo:
			x, y := toImg(e.Point)
			edges = append(edges, edge{curX, curY, x, y})
			curX, curY = x, y
		case contour.Close:
			closeSubpath()
			curX, curY = startX, startY
		}
	}
	closeSubpath()
	return edges
}
