package contour

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is a sequence of move/line/close commands forming one or more
// subpaths. Contours are polygonal, so the path carries no curve
// elements. Subpaths may be closed (returned to their start) or left
// open; both are valid renderer input.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// IsEmpty reports whether the path contains no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Subpaths splits the path at MoveTo boundaries and returns one element
// slice per subpath. The returned slices alias the path's storage.
func (p *Path) Subpaths() [][]PathElement {
	var subs [][]PathElement
	start := -1
	for i, elem := range p.elements {
		if _, ok := elem.(MoveTo); ok {
			if start >= 0 {
				subs = append(subs, p.elements[start:i])
			}
			start = i
		}
	}
	if start >= 0 {
		subs = append(subs, p.elements[start:])
	}
	return subs
}

// Rectangle adds a clockwise rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Equal reports whether two paths contain the same elements in the same
// order, comparing coordinates exactly.
func (p *Path) Equal(q *Path) bool {
	if len(p.elements) != len(q.elements) {
		return false
	}
	for i, elem := range p.elements {
		if elem != q.elements[i] {
			return false
		}
	}
	return true
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}
