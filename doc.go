// Package contour extracts threshold isolines from sampled 2D scalar fields.
//
// # Overview
//
// contour implements the Marching Squares algorithm over a resizable
// sampling grid. A host supplies a scalar field (typically a sum of
// metaball influences, see the field subpackage), and contour turns it
// into a renderable outline: the field is sampled once per grid point,
// each sample is classified against a threshold, cell edge crossings are
// interpolated into line segments, and the segments are stitched into
// continuous polylines suitable for even-odd fill rendering.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/contour"
//	    "github.com/gogpu/contour/field"
//	)
//
//	balls := field.NewMetaballSet()
//	balls.Add(contour.Pt(40, 30), 12)
//	balls.Add(contour.Pt(60, 35), 9)
//
//	tr, err := contour.NewTracer(100, 80, 2,
//	    contour.WithThreshold(1),
//	    contour.WithOutlineEdges(true))
//	if err != nil {
//	    // invalid configuration
//	}
//	path := tr.Trace(balls)
//	// hand path to a renderer with the even-odd fill rule
//
// # Architecture
//
// The pipeline is a fixed four-stage pass, re-run from scratch on every
// call to [Tracer.Trace]:
//
//	field → Grid samples → classification → segments → assembled Path
//
// All four intermediate products are exposed as read-only snapshots
// (see [Tracer.Grid], [Tracer.Segments], [Tracer.Path]) and stay valid
// until the next Trace call.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left of the domain
//   - X increases right, Y increases down
//   - The sampling grid extends one cell beyond the domain on every side
//     so contours can close cleanly at the boundary
//
// # Concurrency
//
// A Tracer and its Grid are owned by a single goroutine. Run the pipeline
// from one render/update goroutine only; there is no internal locking.
package contour

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
