package geom

import (
	"math"
	"testing"
)

// cwSquare winds clockwise in y-down screen coordinates.
var cwSquare = []Point{Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4)}

func ccw(poly []Point) []Point {
	out := make([]Point, len(poly))
	copy(out, poly)
	ReversePolygon(out)
	return out
}

func TestIsClockwise(t *testing.T) {
	if !IsClockwise(cwSquare) {
		t.Error("clockwise square reported as counter-clockwise")
	}
	if IsClockwise(ccw(cwSquare)) {
		t.Error("counter-clockwise square reported as clockwise")
	}
	if !IsClockwise(nil) {
		t.Error("degenerate polygon should report clockwise")
	}
}

func TestReversePolygon(t *testing.T) {
	poly := []Point{Pt(1, 0), Pt(2, 0), Pt(3, 0)}
	ReversePolygon(poly)
	if poly[0] != Pt(3, 0) || poly[2] != Pt(1, 0) {
		t.Errorf("unexpected order after reverse: %v", poly)
	}
}

func TestCentroid(t *testing.T) {
	c := Centroid(cwSquare)
	if math.Abs(c.X-2) > 1e-9 || math.Abs(c.Y-2) > 1e-9 {
		t.Errorf("expected centroid (2, 2), got %v", c)
	}

	// Winding direction must not change the centroid.
	c2 := Centroid(ccw(cwSquare))
	if math.Abs(c2.X-c.X) > 1e-9 || math.Abs(c2.Y-c.Y) > 1e-9 {
		t.Errorf("centroid depends on winding: %v vs %v", c, c2)
	}
}

func TestCentroidDegenerate(t *testing.T) {
	// Collinear points have no area; fall back to the average.
	line := []Point{Pt(0, 0), Pt(2, 0), Pt(4, 0)}
	c := Centroid(line)
	if math.Abs(c.X-2) > 1e-9 || math.Abs(c.Y) > 1e-9 {
		t.Errorf("expected fallback centroid (2, 0), got %v", c)
	}

	if got := Centroid(nil); got != (Point{}) {
		t.Errorf("empty polygon centroid should be zero, got %v", got)
	}
}

func TestPolygonBounds(t *testing.T) {
	b := PolygonBounds(cwSquare)
	if b.Min != Pt(0, 0) || b.Max != Pt(4, 4) {
		t.Errorf("unexpected bounds: %+v", b)
	}
	if !PolygonBounds(nil).Empty() {
		t.Error("empty polygon should have empty bounds")
	}
}
