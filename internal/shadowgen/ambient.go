// Package shadowgen constructs ambient and spot shadow triangle strips
// from a lifted caster silhouette.
package shadowgen

import "github.com/gogpu/tessel/geom"

const (
	// ambientHeightFactor converts caster elevation into penumbra
	// spread; higher casters throw wider, softer contact shadows.
	ambientHeightFactor = 1.0 / 128.0

	// ambientGeomFactor scales the spread into geometry units.
	ambientGeomFactor = 64.0

	// ambientAlphaFalloff controls how quickly the shadow core fades
	// with elevation.
	ambientAlphaFalloff = 1.0 / 32.0

	// translucentAlphaScale dims shadows of non-opaque casters.
	translucentAlphaScale = 0.5
)

// Ambient builds the directionless contact shadow for a caster
// silhouette. The polygon is the lifted caster outline in clockwise
// order, centroid its lifted center; maxZ is the highest lifted
// elevation. Returns an empty mesh when the caster cannot affect the
// clip area.
func Ambient(opaque bool, poly []geom.Vec3, centroid geom.Vec3, casterBounds, localClip geom.Rect, maxZ float64) *geom.Mesh {
	m := geom.NewMesh()
	if len(poly) < 3 {
		return m
	}

	// The shadow can spread past the caster by at most the maximum
	// penumbra width; reject against the clip using grown bounds.
	spreadBound := maxZ * ambientHeightFactor * ambientGeomFactor
	if !casterBounds.Outset(spreadBound).Intersects(localClip) {
		return m
	}

	inner := make([]geom.Vertex, 0, len(poly))
	center := centroid.XY()
	for _, v := range poly {
		spread := v.Z * ambientHeightFactor * ambientGeomFactor
		dir := v.XY().Sub(center).Normalize()
		outer := v.XY().Add(dir.Mul(spread))

		alpha := coreAlpha(v.Z, opaque)
		inner = append(inner, vertex(v.XY(), v.Z, alpha))
		m.Append(vertex(v.XY(), v.Z, alpha))
		m.Append(vertex(outer, 0, 0))
	}

	// Close the penumbra ring.
	m.Append(m.Vertices()[0])
	m.Append(m.Vertices()[1])

	if opaque {
		appendInteriorStrip(m, inner)
	}
	return m
}

// coreAlpha returns the shadow core opacity for a caster at elevation z.
func coreAlpha(z float64, opaque bool) float64 {
	alpha := 1.0 / (1.0 + z*ambientAlphaFalloff)
	if !opaque {
		alpha *= translucentAlphaScale
	}
	return alpha
}

// appendInteriorStrip covers the interior of a convex vertex ring with
// a zig-zag triangle strip, restarted from the ring's first vertex via
// a degenerate triangle.
func appendInteriorStrip(m *geom.Mesh, ring []geom.Vertex) {
	if len(ring) < 3 {
		return
	}

	// Degenerate bridge from the current strip end to the ring start.
	last := m.Vertices()[m.VertexCount()-1]
	m.Append(last)
	m.Append(ring[0])

	lo, hi := 0, len(ring)-1
	m.Append(ring[lo])
	for lo < hi {
		m.Append(ring[hi])
		hi--
		if lo >= hi {
			break
		}
		lo++
		m.Append(ring[lo])
	}
}

// vertex builds a mesh vertex from a 2D position, elevation and alpha.
func vertex(p geom.Point, z, alpha float64) geom.Vertex {
	return geom.Vertex{
		X:     float32(p.X),
		Y:     float32(p.Y),
		Z:     float32(z),
		Alpha: float32(alpha),
	}
}
