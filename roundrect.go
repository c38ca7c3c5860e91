package tessel

import "github.com/gogpu/tessel/geom"

// tessellateRoundRect realizes a round-rect description into a mesh.
// Runs on a pool worker with a private paint snapshot.
func tessellateRoundRect(d Description, paint Paint) *geom.Mesh {
	rr := d.Shape.RoundRect
	x, y := 0.0, 0.0
	w, h := float64(rr.Width), float64(rr.Height)
	rx, ry := float64(rr.Rx), float64(rr.Ry)

	if paint.Style == StyleStrokeAndFill {
		outset := paint.StrokeWidth / 2
		x -= outset
		y -= outset
		w += 2 * outset
		h += 2 * outset
		rx += outset
		ry += outset
	}

	p := geom.NewPath()
	p.RoundedRectangle(x, y, w, h, rx, ry)
	return tessellateShapePath(p, &paint, float64(rr.ScaleX), float64(rr.ScaleY))
}

// tessellateShapePath flattens a shape outline and builds its mesh in
// scaled space, so vertex density matches the on-screen size.
func tessellateShapePath(p *geom.Path, paint *Paint, scaleX, scaleY float64) *geom.Mesh {
	outline := geom.FlattenOutline(p, geom.DefaultFillThresholdSquared)
	geom.ScalePolygon(outline, scaleX, scaleY)

	if paint.Style == StyleStroke {
		return geom.StrokeTessellate(outline, paint.StrokeWidth/2)
	}
	return geom.FillTessellate(outline)
}

// RoundRectBuffer returns the cache entry for a rounded rectangle of
// the given size and corner radii under the given transform. The
// transform contributes only its per-axis tessellation scales to the
// key; translation does not fragment the cache.
func (c *TessellationCache) RoundRectBuffer(transform geom.Matrix4,
	width, height, rx, ry float64, paint *Paint) *Buffer {
	d := NewDescription(ShapeRoundRect, paint)
	d.Shape.RoundRect.Width = float32(width)
	d.Shape.RoundRect.Height = float32(height)
	d.Shape.RoundRect.Rx = float32(rx)
	d.Shape.RoundRect.Ry = float32(ry)
	sx, sy := transform.ExtractScales()
	d.Shape.RoundRect.ScaleX = float32(sx)
	d.Shape.RoundRect.ScaleY = float32(sy)

	return c.GetOrCreateBuffer(d, tessellateRoundRect, paint)
}

// GetRoundRect returns the tessellated mesh for a rounded rectangle,
// blocking until the tessellation resolves if it is still pending.
func (c *TessellationCache) GetRoundRect(transform geom.Matrix4,
	width, height, rx, ry float64, paint *Paint) *geom.Mesh {
	return c.RoundRectBuffer(transform, width, height, rx, ry, paint).Mesh()
}
