package shadowgen

import "github.com/gogpu/tessel/geom"

// Spot builds the directional shadow a point light of the given radius
// casts from a lifted caster silhouette onto the ground plane. The
// light position is expressed in the space the receiver is drawn in;
// receiverTransform maps receiver space to that space, so the light is
// pulled through its inverse before projection. Returns an empty mesh
// when the caster cannot affect the clip area or the light cannot cast
// a forward shadow.
func Spot(opaque bool, poly []geom.Vec3, receiverTransform geom.Matrix4, lightCenter geom.Vec3, lightRadius float64, casterBounds, localClip geom.Rect) *geom.Mesh {
	m := geom.NewMesh()
	if len(poly) < 3 {
		return m
	}

	lightXY := receiverTransform.Invert2D().MapPoint(lightCenter.XY())

	umbra := make([]geom.Point, 0, len(poly))
	penumbraDelta := make([]float64, 0, len(poly))
	for _, v := range poly {
		dz := lightCenter.Z - v.Z
		if dz <= 0 {
			// Caster at or above the light; no forward projection.
			return m
		}
		t := lightCenter.Z / dz
		umbra = append(umbra, lightXY.Add(v.XY().Sub(lightXY).Mul(t)))
		penumbraDelta = append(penumbraDelta, lightRadius*v.Z/dz)
	}

	// Reject against the clip using the projected extent.
	shadowBounds := geom.PolygonBounds(umbra).Union(casterBounds)
	if !shadowBounds.Intersects(localClip) {
		return m
	}

	alpha := 1.0
	if !opaque {
		alpha = translucentAlphaScale
	}

	center := geom.Centroid(umbra)
	core := make([]geom.Vertex, 0, len(umbra))
	for i, u := range umbra {
		dir := u.Sub(center).Normalize()
		outer := u.Add(dir.Mul(penumbraDelta[i]))

		core = append(core, vertex(u, 0, alpha))
		m.Append(vertex(outer, 0, 0))
		m.Append(vertex(u, 0, alpha))
	}

	// Close the penumbra ring.
	m.Append(m.Vertices()[0])
	m.Append(m.Vertices()[1])

	if opaque {
		appendInteriorStrip(m, core)
	}
	return m
}
