package geom

// DefaultFillThresholdSquared is the squared flattening tolerance used
// when tessellating shape outlines for display.
const DefaultFillThresholdSquared = 0.25

// ScalePolygon scales every point of a polygon in place. Shape
// tessellation happens in scaled space so that the vertex density
// matches the on-screen size of the shape.
func ScalePolygon(poly []Point, sx, sy float64) {
	for i := range poly {
		poly[i].X *= sx
		poly[i].Y *= sy
	}
}

// FillTessellate builds a triangle strip covering the interior of a
// convex polygon. The strip zig-zags between the two ends of the point
// ring, which keeps adjacent triangles well-shaped for convex input.
func FillTessellate(poly []Point) *Mesh {
	m := NewMesh()
	if len(poly) < 3 {
		return m
	}

	lo, hi := 0, len(poly)-1
	m.AppendXYZA(poly[lo].X, poly[lo].Y, 0, 1)
	for lo < hi {
		m.AppendXYZA(poly[hi].X, poly[hi].Y, 0, 1)
		hi--
		if lo >= hi {
			break
		}
		lo++
		m.AppendXYZA(poly[lo].X, poly[lo].Y, 0, 1)
	}
	return m
}

// StrokeTessellate builds a closed triangle strip ring tracing the
// polygon's outline at the given half stroke width. Each outline point
// contributes an outer and an inner vertex offset along the averaged
// normal of its adjacent edges.
func StrokeTessellate(poly []Point, halfWidth float64) *Mesh {
	m := NewMesh()
	if len(poly) < 3 || halfWidth <= 0 {
		return m
	}

	n := len(poly)
	for i := range poly {
		prev := poly[(i+n-1)%n]
		cur := poly[i]
		next := poly[(i+1)%n]

		offset := vertexNormal(prev, cur, next).Mul(halfWidth)
		outer := cur.Add(offset)
		inner := cur.Sub(offset)
		m.AppendXYZA(outer.X, outer.Y, 0, 1)
		m.AppendXYZA(inner.X, inner.Y, 0, 1)
	}

	// Close the ring by repeating the first vertex pair.
	v := m.Vertices()
	m.Append(v[0])
	m.Append(v[1])
	return m
}

// vertexNormal returns the unit normal at cur, averaged between the
// normals of the edges (prev, cur) and (cur, next). Falls back to a
// single edge normal when the edges are degenerate or opposed.
func vertexNormal(prev, cur, next Point) Point {
	n1 := edgeNormal(prev, cur)
	n2 := edgeNormal(cur, next)
	avg := n1.Add(n2).Normalize()
	if avg == (Point{}) {
		if n1 != (Point{}) {
			return n1
		}
		return n2
	}
	return avg
}

// edgeNormal returns the unit normal of the edge (a, b), pointing to
// the edge's left side.
func edgeNormal(a, b Point) Point {
	d := b.Sub(a)
	return Pt(d.Y, -d.X).Normalize()
}
