package contour

// Option configures a Tracer during creation.
//
// Example:
//
//	tr, err := contour.NewTracer(100, 80, 2,
//	    contour.WithThreshold(1),
//	    contour.WithOutlineEdges(true))
type Option func(*tracerOptions)

// tracerOptions holds optional configuration for Tracer creation.
type tracerOptions struct {
	threshold    float64
	outlineEdges bool
	stitchTol    float64
}

// defaultTracerOptions returns the default tracer options.
func defaultTracerOptions() tracerOptions {
	return tracerOptions{
		threshold:    1, // matches the classic radius²/distance² iso level
		outlineEdges: false,
		stitchTol:    0, // exact endpoint matching
	}
}

// WithThreshold sets the field cutoff the classifier compares samples
// against. Samples with value >= threshold count as inside.
func WithThreshold(v float64) Option {
	return func(o *tracerOptions) {
		o.threshold = v
	}
}

// WithOutlineEdges pins the grid's outer sample ring to the threshold
// during classification, guaranteeing contours close inside the padded
// domain even when the field is hot at the boundary.
func WithOutlineEdges(on bool) Option {
	return func(o *tracerOptions) {
		o.outlineEdges = on
	}
}

// WithStitchTolerance makes the polyline assembler treat endpoints
// within tol of each other (per coordinate) as coincident. The default
// is 0, meaning exact coordinate equality: that preserves the original
// stitching behavior bit for bit, at the cost of occasionally leaving a
// chain open when interpolated corners drift apart.
func WithStitchTolerance(tol float64) Option {
	return func(o *tracerOptions) {
		if tol > 0 {
			o.stitchTol = tol
		}
	}
}
