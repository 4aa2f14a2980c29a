// Command contourdemo traces a random metaball field and saves the
// result as a PNG. It exercises the full pipeline: metaball field →
// grid → marching squares → polyline assembly → even-odd fill. With
// -frames > 1 the balls drift and bounce around the domain and every
// frame is written as a numbered PNG, reusing the tracer's buffers
// across frames.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/contour"
	"github.com/gogpu/contour/field"
	"github.com/gogpu/contour/render"
)

func main() {
	var (
		width      = flag.Float64("width", 160, "domain width in units")
		height     = flag.Float64("height", 120, "domain height in units")
		resolution = flag.Float64("resolution", 2, "samples per domain unit")
		threshold  = flag.Float64("threshold", 1, "field cutoff")
		balls      = flag.Int("balls", 6, "number of metaballs")
		seed       = flag.Int64("seed", 1, "random seed for ball placement")
		scale      = flag.Float64("scale", 4, "output pixels per domain unit")
		mode       = flag.String("mode", "fill", "render mode: fill, wire, mask, heat")
		frames     = flag.Int("frames", 1, "number of frames to render; >1 animates the balls")
		output     = flag.String("output", "contour.png", "output file (frame index inserted when animating)")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		contour.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if *frames < 1 {
		log.Fatalf("Need at least one frame, got %d", *frames)
	}

	set, vel := randomBalls(*balls, *width, *height, *seed)

	tr, err := contour.NewTracer(*width, *height, *resolution,
		contour.WithThreshold(*threshold),
		contour.WithOutlineEdges(true))
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	for frame := 0; frame < *frames; frame++ {
		path := tr.Trace(set)

		var img image.Image
		switch *mode {
		case "fill":
			img = render.FillPath(path, tr.Grid().Bounds(), *scale)
		case "wire":
			img = render.Wireframe(tr.Segments(), tr.Grid().Bounds(), *scale, 1.5)
		case "mask":
			img = render.Mask(tr.Grid())
		case "heat":
			img = render.Heatmap(tr.Grid())
		default:
			log.Fatalf("Unknown mode %q (want fill, wire, mask, or heat)", *mode)
		}

		name := *output
		if *frames > 1 {
			name = frameName(*output, frame)
		}
		if err := savePNG(name, img); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Saved %s (%d segments, %d path elements)\n",
			name, len(tr.Segments()), len(path.Elements()))

		advance(set, vel, *width, *height)
	}
}

// randomBalls scatters n metaballs over the middle of the domain so the
// blobs stay mostly on screen, each with a small drift velocity.
func randomBalls(n int, width, height float64, seed int64) (*field.MetaballSet, []contour.Point) {
	rng := rand.New(rand.NewSource(seed))
	set := field.NewMetaballSet()
	vel := make([]contour.Point, n)
	for i := 0; i < n; i++ {
		cx := width * (0.2 + 0.6*rng.Float64())
		cy := height * (0.2 + 0.6*rng.Float64())
		r := 4 + rng.Float64()*(width+height)/20
		set.Add(contour.Pt(cx, cy), r)
		vel[i] = contour.Pt((rng.Float64()-0.5)*width/40, (rng.Float64()-0.5)*height/40)
	}
	return set, vel
}

// advance moves every ball by its velocity, bouncing off the domain
// edges.
func advance(set *field.MetaballSet, vel []contour.Point, width, height float64) {
	for i := 0; i < set.Len(); i++ {
		c := set.At(i).Center.Add(vel[i])
		if c.X < 0 || c.X > width {
			vel[i].X = -vel[i].X
			c.X = set.At(i).Center.X + vel[i].X
		}
		if c.Y < 0 || c.Y > height {
			vel[i].Y = -vel[i].Y
			c.Y = set.At(i).Center.Y + vel[i].Y
		}
		set.At(i).MoveTo(c)
	}
}

// frameName inserts a zero-padded frame index before the extension, so
// "out.png" becomes "out-003.png".
func frameName(output string, frame int) string {
	ext := filepath.Ext(output)
	base := strings.TrimSuffix(output, ext)
	return fmt.Sprintf("%s-%03d%s", base, frame, ext)
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, img)
}
