package contour

import (
	"errors"
	"math"
	"testing"
)

func TestGrid_Dimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		resolution    float64
		rows, cols    int
	}{
		{"zero domain keeps border", 0, 0, 1, 3, 3},
		{"unit domain", 1, 1, 1, 4, 4},
		{"50x50 at 1", 50, 50, 1, 53, 53},
		{"100x100 at 0.5", 100, 100, 0.5, 53, 53},
		{"fractional truncates", 10.9, 4.2, 1, 7, 13},
		{"dense", 2, 3, 10, 33, 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.width, tt.height, tt.resolution)
			if err != nil {
				t.Fatalf("NewGrid: %v", err)
			}
			if g.Rows() != tt.rows || g.Cols() != tt.cols {
				t.Errorf("dimensions = %d×%d, want %d×%d", g.Rows(), g.Cols(), tt.rows, tt.cols)
			}
			if g.Len() != tt.rows*tt.cols {
				t.Errorf("Len = %d, want rows*cols = %d", g.Len(), tt.rows*tt.cols)
			}
			if g.Rows() < 3 || g.Cols() < 3 {
				t.Errorf("grid %d×%d smaller than minimum border padding", g.Rows(), g.Cols())
			}
		})
	}
}

func TestGrid_ConfigErrors(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		resolution    float64
		wantErr       error
	}{
		{"zero resolution", 10, 10, 0, ErrResolution},
		{"negative resolution", 10, 10, -1, ErrResolution},
		{"NaN resolution", 10, 10, math.NaN(), ErrResolution},
		{"infinite resolution", 10, 10, math.Inf(1), ErrResolution},
		{"negative width", -1, 10, 1, ErrDomain},
		{"NaN height", 10, math.NaN(), 1, ErrDomain},
		{"infinite width", math.Inf(1), 10, 1, ErrDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid(tt.width, tt.height, tt.resolution)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewGrid error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGrid_ResizePreservesByIndex(t *testing.T) {
	g, err := NewGrid(2, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	for i := range g.samples {
		g.samples[i].Value = float64(i)
	}

	// Grow: old entries keep their index, new entries are zeroed.
	if err := g.Resize(4, 4, 1); err != nil {
		t.Fatal(err)
	}
	if g.Len() != g.Rows()*g.Cols() {
		t.Fatalf("Len = %d, want %d", g.Len(), g.Rows()*g.Cols())
	}
	for i := 0; i < 25; i++ {
		if g.samples[i].Value != float64(i) {
			t.Fatalf("sample %d = %v after grow, want %v", i, g.samples[i].Value, float64(i))
		}
	}
	for i := 25; i < g.Len(); i++ {
		if g.samples[i] != (Sample{}) {
			t.Fatalf("grown sample %d = %+v, want zero value", i, g.samples[i])
		}
	}

	// Truncate, then grow again: the region re-entering the slice must
	// not expose stale data.
	if err := g.Resize(1, 1, 1); err != nil {
		t.Fatal(err)
	}
	if err := g.Resize(4, 4, 1); err != nil {
		t.Fatal(err)
	}
	for i := 16; i < g.Len(); i++ {
		if g.samples[i] != (Sample{}) {
			t.Fatalf("regrown sample %d = %+v, want zero value", i, g.samples[i])
		}
	}
}

func TestGrid_ResizeEquivalentDimensions(t *testing.T) {
	// 50×50 at resolution 1 and 100×100 at 0.5 compute the same grid.
	g, err := NewGrid(50, 50, 1)
	if err != nil {
		t.Fatal(err)
	}
	rows, cols := g.Rows(), g.Cols()
	for i := range g.samples {
		g.samples[i].Value = 7
	}

	if err := g.Resize(100, 100, 0.5); err != nil {
		t.Fatal(err)
	}
	if g.Rows() != rows || g.Cols() != cols {
		t.Fatalf("dimensions changed to %d×%d, want %d×%d", g.Rows(), g.Cols(), rows, cols)
	}
	if g.Len() != rows*cols {
		t.Fatalf("Len = %d, want %d", g.Len(), rows*cols)
	}
	// Values survive by index but are stale: positions now map elsewhere.
	if got := g.Pos(1, 1); got != Pt(0, 0) {
		t.Errorf("Pos(1,1) = %v, want origin", got)
	}
	if got := g.Pos(2, 3); got != Pt(4, 2) {
		t.Errorf("Pos(2,3) = %v, want (4,2) at resolution 0.5", got)
	}
}

func TestGrid_IndexMapping(t *testing.T) {
	g, err := NewGrid(5, 3, 1)
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[int]bool)
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			i := g.Index(row, col)
			if i != row*g.Cols()+col {
				t.Fatalf("Index(%d,%d) = %d, want %d", row, col, i, row*g.Cols()+col)
			}
			r, c := g.RowCol(i)
			if r != row || c != col {
				t.Fatalf("RowCol(%d) = (%d,%d), want (%d,%d)", i, r, c, row, col)
			}
			if seen[i] {
				t.Fatalf("index %d mapped twice", i)
			}
			seen[i] = true
		}
	}
	if len(seen) != g.Len() {
		t.Errorf("index mapping covered %d samples, want %d", len(seen), g.Len())
	}
}

func TestGrid_Pos(t *testing.T) {
	g, err := NewGrid(10, 10, 2)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		row, col int
		want     Point
	}{
		{1, 1, Pt(0, 0)},          // domain origin
		{0, 0, Pt(-0.5, -0.5)},    // border cell
		{3, 5, Pt(2, 1)},
	}
	for _, tt := range tests {
		if got := g.Pos(tt.row, tt.col); got != tt.want {
			t.Errorf("Pos(%d,%d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestGrid_Bounds(t *testing.T) {
	g, err := NewGrid(10, 5, 2)
	if err != nil {
		t.Fatal(err)
	}
	b := g.Bounds()
	if b.X != -0.5 || b.Y != -0.5 {
		t.Errorf("Bounds origin = (%v,%v), want (-0.5,-0.5)", b.X, b.Y)
	}
	// Far corner must cover the last sample's position.
	last := g.Pos(g.Rows()-1, g.Cols()-1)
	if b.X+b.W < last.X || b.Y+b.H < last.Y {
		t.Errorf("Bounds %+v does not cover far sample %v", b, last)
	}
}

func TestGrid_ClearKeepsClassification(t *testing.T) {
	g, err := NewGrid(2, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	g.samples[3] = Sample{Value: 9, Above: true, Code: 0xB}

	g.Clear()

	s := g.samples[3]
	if s.Value != 0 || s.Above {
		t.Errorf("Clear left value=%v above=%v, want empty state", s.Value, s.Above)
	}
	if s.Code != 0xB {
		t.Errorf("Clear reset classification to %#x, want it untouched", s.Code)
	}
}

func TestGrid_Resample(t *testing.T) {
	g, err := NewGrid(2, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	g.Resample(FieldFunc(func(p Point) float64 {
		return p.X + 100*p.Y
	}))

	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			pos := g.Pos(row, col)
			want := pos.X + 100*pos.Y
			if got := g.At(row, col).Value; got != want {
				t.Fatalf("sample (%d,%d) = %v, want %v", row, col, got, want)
			}
		}
	}
}

func TestGrid_Range(t *testing.T) {
	g, err := NewGrid(2, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	g.samples[0].Value = -3
	g.samples[7].Value = 12

	lo, hi := g.Range()
	if lo != -3 || hi != 12 {
		t.Errorf("Range = (%v,%v), want (-3,12)", lo, hi)
	}
}
