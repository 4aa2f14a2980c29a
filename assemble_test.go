package contour

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var testBounds = Rect{X: -1, Y: -1, W: 12, H: 12}

// rectSubpath is the parity rectangle Assemble appends over testBounds.
func rectSubpath() []PathElement {
	p := NewPath()
	counterRect(p, testBounds)
	return p.Elements()
}

func TestAssemble_ClosedSquare(t *testing.T) {
	// Four segments sharing all endpoints pairwise, deliberately given
	// with mixed endpoint order.
	segs := []Segment{
		Seg(Pt(0, 0), Pt(1, 0)),
		Seg(Pt(1, 1), Pt(1, 0)),
		Seg(Pt(1, 1), Pt(0, 1)),
		Seg(Pt(0, 0), Pt(0, 1)),
	}

	path := Assemble(segs, testBounds, 0)
	subs := path.Subpaths()
	if len(subs) != 2 {
		t.Fatalf("assembled %d subpaths, want 2 (square + parity rectangle)", len(subs))
	}

	want := []PathElement{
		MoveTo{Point: Pt(0, 0)},
		LineTo{Point: Pt(1, 0)},
		LineTo{Point: Pt(1, 1)},
		LineTo{Point: Pt(0, 1)},
		LineTo{Point: Pt(0, 0)},
		Close{},
	}
	if diff := cmp.Diff(want, subs[0]); diff != "" {
		t.Errorf("square subpath mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(rectSubpath(), subs[1]); diff != "" {
		t.Errorf("parity rectangle mismatch (-want +got):\n%s", diff)
	}
}

func TestAssemble_DisjointSegmentsStayOpen(t *testing.T) {
	segs := []Segment{
		Seg(Pt(0, 0), Pt(1, 0)),
		Seg(Pt(5, 5), Pt(6, 5)),
	}

	path := Assemble(segs, testBounds, 0)
	subs := path.Subpaths()
	if len(subs) != 3 {
		t.Fatalf("assembled %d subpaths, want 3 (two open chains + parity rectangle)", len(subs))
	}

	for i, sub := range subs[:2] {
		if len(sub) != 2 {
			t.Errorf("open chain %d has %d elements, want MoveTo+LineTo", i, len(sub))
		}
		if _, closed := sub[len(sub)-1].(Close); closed {
			t.Errorf("open chain %d was artificially closed", i)
		}
	}
}

func TestAssemble_OpenChain(t *testing.T) {
	// Three connectable segments that do not return to the start.
	segs := []Segment{
		Seg(Pt(0, 0), Pt(1, 0)),
		Seg(Pt(2, 1), Pt(3, 1)),
		Seg(Pt(1, 0), Pt(2, 1)),
	}

	path := Assemble(segs, testBounds, 0)
	subs := path.Subpaths()
	if len(subs) != 2 {
		t.Fatalf("assembled %d subpaths, want 2 (one open chain + parity rectangle)", len(subs))
	}

	want := []PathElement{
		MoveTo{Point: Pt(0, 0)},
		LineTo{Point: Pt(1, 0)},
		LineTo{Point: Pt(2, 1)},
		LineTo{Point: Pt(3, 1)},
	}
	if diff := cmp.Diff(want, subs[0]); diff != "" {
		t.Errorf("chain mismatch (-want +got):\n%s", diff)
	}
}

func TestAssemble_ExactMatchIsDefault(t *testing.T) {
	// 1e-12 of drift between conceptually identical endpoints.
	segs := []Segment{
		Seg(Pt(0, 0), Pt(1, 0)),
		Seg(Pt(1+1e-12, 0), Pt(2, 0)),
	}

	exact := Assemble(segs, testBounds, 0)
	if got := len(exact.Subpaths()); got != 3 {
		t.Errorf("exact matching joined drifted endpoints: %d subpaths, want 3", got)
	}

	tolerant := Assemble(segs, testBounds, 1e-9)
	if got := len(tolerant.Subpaths()); got != 2 {
		t.Errorf("tolerant matching split chain: %d subpaths, want 2", got)
	}
}

func TestAssemble_EmptyInput(t *testing.T) {
	path := Assemble(nil, testBounds, 0)
	subs := path.Subpaths()
	if len(subs) != 1 {
		t.Fatalf("assembled %d subpaths, want just the parity rectangle", len(subs))
	}
	if diff := cmp.Diff(rectSubpath(), subs[0]); diff != "" {
		t.Errorf("parity rectangle mismatch (-want +got):\n%s", diff)
	}
}

func TestAssemble_DoesNotMutateInput(t *testing.T) {
	segs := []Segment{
		Seg(Pt(0, 0), Pt(1, 0)),
		Seg(Pt(1, 0), Pt(1, 1)),
	}
	snapshot := make([]Segment, len(segs))
	copy(snapshot, segs)

	Assemble(segs, testBounds, 0)

	if diff := cmp.Diff(snapshot, segs); diff != "" {
		t.Errorf("input slice mutated (-want +got):\n%s", diff)
	}
}

func TestAssemble_PairedBranches(t *testing.T) {
	// Three segments meeting at one point: the chain consumes two of
	// them, the third starts its own subpath.
	segs := []Segment{
		Seg(Pt(0, 0), Pt(1, 1)),
		Seg(Pt(1, 1), Pt(2, 0)),
		Seg(Pt(1, 1), Pt(1, 2)),
	}

	path := Assemble(segs, testBounds, 0)
	subs := path.Subpaths()
	if len(subs) != 3 {
		t.Fatalf("assembled %d subpaths, want 3", len(subs))
	}
}
