package contour

// Tracer is the host-facing pipeline object. It owns the sampling grid
// and re-runs the full four-stage pipeline — resample, classify, extract,
// assemble — on every call to Trace, typically once per animation frame.
//
// A Tracer must only be used from a single goroutine; the pipeline runs
// to completion synchronously with no background work and no partial
// results.
type Tracer struct {
	grid      *Grid
	stitchTol float64

	// Per-frame snapshots, valid until the next Trace call. The segment
	// buffer is reused across frames; its contents are not.
	segments []Segment
	path     *Path
}

// NewTracer creates a tracer over a width×height domain sampled at
// resolution samples per domain unit. Configuration is validated up
// front: a non-positive resolution or a non-finite domain is rejected
// here rather than propagating NaNs through the grid.
func NewTracer(width, height, resolution float64, opts ...Option) (*Tracer, error) {
	o := defaultTracerOptions()
	for _, opt := range opts {
		opt(&o)
	}

	grid, err := NewGrid(width, height, resolution)
	if err != nil {
		return nil, err
	}
	grid.SetThreshold(o.threshold)
	grid.SetOutlineEdges(o.outlineEdges)

	return &Tracer{
		grid:      grid,
		stitchTol: o.stitchTol,
		path:      NewPath(),
	}, nil
}

// Trace runs the full pipeline against the field and returns the
// assembled path. The returned path, and the Grid/Segments snapshots,
// stay valid until the next Trace call.
func (t *Tracer) Trace(f Field) *Path {
	t.grid.Resample(f)
	t.grid.ApplyThreshold()
	t.grid.Classify()
	t.segments = appendSegments(t.segments[:0], t.grid)
	t.path = Assemble(t.segments, t.grid.Bounds(), t.stitchTol)

	Logger().Debug("contour: frame traced",
		"segments", len(t.segments),
		"elements", len(t.path.Elements()))
	return t.path
}

// Grid returns the tracer's sampling grid. Read-only between Trace
// calls; mutate configuration only through the Tracer or Grid setters,
// never while a Trace is in flight.
func (t *Tracer) Grid() *Grid {
	return t.grid
}

// Segments returns the raw segment list of the last Trace, before
// assembly. Useful for wireframe debug rendering.
func (t *Tracer) Segments() []Segment {
	return t.segments
}

// Path returns the assembled path of the last Trace.
func (t *Tracer) Path() *Path {
	return t.path
}

// Resize changes the domain size or resolution. The grid reallocates
// and every sample goes stale until the next Trace.
func (t *Tracer) Resize(width, height, resolution float64) error {
	return t.grid.Resize(width, height, resolution)
}

// SetThreshold changes the field cutoff for subsequent frames.
func (t *Tracer) SetThreshold(v float64) {
	t.grid.SetThreshold(v)
}

// SetOutlineEdges toggles border forcing for subsequent frames.
func (t *Tracer) SetOutlineEdges(on bool) {
	t.grid.SetOutlineEdges(on)
}

// StitchTolerance returns the assembler's endpoint matching tolerance;
// zero means exact matching.
func (t *Tracer) StitchTolerance() float64 {
	return t.stitchTol
}
