package geom

// FlattenOutline converts a path into a closed 2D polygon using
// curvature-adaptive refinement. Curves are subdivided until no control
// point deviates from its chord by more than the given squared
// tolerance (units squared); larger values produce coarser polygons.
//
// The returned polygon is implicitly closed: the first point is not
// repeated at the end. A path with no drawable elements yields nil.
func FlattenOutline(p *Path, thresholdSquared float64) []Point {
	var points []Point
	var current Point

	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			current = e.Point
			points = append(points, current)

		case LineTo:
			current = e.Point
			points = append(points, current)

		case QuadTo:
			flattenQuadratic(current, e.Control, e.Point, thresholdSquared, &points)
			current = e.Point

		case CubicTo:
			flattenCubic(current, e.Control1, e.Control2, e.Point, thresholdSquared, &points)
			current = e.Point

		case Close:
			// The polygon is closed implicitly; a trailing duplicate of
			// the start point would skew centroid and winding math.
		}
	}

	// Drop a trailing point that coincides with the start.
	if len(points) > 1 && points[0] == points[len(points)-1] {
		points = points[:len(points)-1]
	}
	return points
}

// flattenQuadratic recursively subdivides a quadratic Bezier curve.
func flattenQuadratic(p0, p1, p2 Point, thresholdSquared float64, points *[]Point) {
	if distanceToLineSquared(p1, p0, p2) <= thresholdSquared {
		*points = append(*points, p2)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	mid := q0.Lerp(q1, 0.5)

	flattenQuadratic(p0, q0, mid, thresholdSquared, points)
	flattenQuadratic(mid, q1, p2, thresholdSquared, points)
}

// flattenCubic recursively subdivides a cubic Bezier curve using
// de Casteljau's algorithm.
func flattenCubic(p0, p1, p2, p3 Point, thresholdSquared float64, points *[]Point) {
	d1 := distanceToLineSquared(p1, p0, p3)
	d2 := distanceToLineSquared(p2, p0, p3)
	if d1 <= thresholdSquared && d2 <= thresholdSquared {
		*points = append(*points, p3)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	mid := r0.Lerp(r1, 0.5)

	flattenCubic(p0, q0, r0, mid, thresholdSquared, points)
	flattenCubic(mid, r1, q2, p3, thresholdSquared, points)
}

// distanceToLineSquared returns the squared perpendicular distance from
// point p to the line segment (a, b).
func distanceToLineSquared(p, a, b Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.LengthSquared()
	if lenSq < 1e-20 {
		return p.Sub(a).LengthSquared()
	}

	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := a.Add(ab.Mul(t))
	return p.Sub(closest).LengthSquared()
}
