package geom

import "math"

// IsClockwise reports whether a polygon winds clockwise in y-down
// screen coordinates. Degenerate polygons (fewer than three points)
// are reported as clockwise so callers skip reversal.
func IsClockwise(poly []Point) bool {
	if len(poly) < 3 {
		return true
	}
	var sum float64
	for i := range poly {
		a := poly[i]
		b := poly[(i+1)%len(poly)]
		sum += (b.X - a.X) * (b.Y + a.Y)
	}
	// The edge sum is minus twice the shoelace area, so a clockwise
	// ring in y-down coordinates comes out negative.
	return sum < 0
}

// ReversePolygon reverses the point order of a polygon in place.
func ReversePolygon(poly []Point) {
	for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
		poly[i], poly[j] = poly[j], poly[i]
	}
}

// Centroid returns the area-weighted centroid of a polygon. For
// polygons with near-zero area it falls back to the average of the
// points.
func Centroid(poly []Point) Point {
	if len(poly) == 0 {
		return Point{}
	}

	var area, cx, cy float64
	for i := range poly {
		a := poly[i]
		b := poly[(i+1)%len(poly)]
		cross := a.Cross(b)
		area += cross
		cx += (a.X + b.X) * cross
		cy += (a.Y + b.Y) * cross
	}
	area /= 2

	if math.Abs(area) < 1e-10 {
		var sum Point
		for _, p := range poly {
			sum = sum.Add(p)
		}
		return sum.Mul(1 / float64(len(poly)))
	}
	return Pt(cx/(6*area), cy/(6*area))
}

// PolygonBounds returns the bounding rectangle of a polygon.
// Returns the zero rectangle for an empty polygon.
func PolygonBounds(poly []Point) Rect {
	if len(poly) == 0 {
		return Rect{}
	}
	out := Rect{Min: poly[0], Max: poly[0]}
	for _, p := range poly[1:] {
		out.Min.X = math.Min(out.Min.X, p.X)
		out.Min.Y = math.Min(out.Min.Y, p.Y)
		out.Max.X = math.Max(out.Max.X, p.X)
		out.Max.Y = math.Max(out.Max.Y, p.Y)
	}
	return out
}
