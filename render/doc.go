// Package render rasterizes contour pipeline output into stdlib images
// for debugging and offline use: even-odd fills of the assembled path,
// wireframes of the raw segment list, and sample-grid masks. It is a
// CPU-only convenience layer; real-time hosts usually feed the path to
// their own renderer instead.
package render
