package tessel

import (
	"math"
	"sync"

	"github.com/gogpu/tessel/geom"
	"github.com/gogpu/tessel/internal/shadowgen"
)

// casterRefinementThresholdSquared is the squared flattening tolerance
// for caster outlines. Shadows tolerate a much coarser silhouette than
// the shapes that cast them.
const casterRefinementThresholdSquared = 20.0

// ShadowMinCasterZ is the minimum lifted elevation of a caster. A
// caster whose geometry dips below this plane is translated upward so
// it cannot intersect the light/ground plane.
const ShadowMinCasterZ = 0.001

// shadowTask computes the ambient/spot mesh pair for one caster under
// one draw transform. All inputs are snapshotted at creation.
type shadowTask struct {
	*Task[geom.MeshPair]
	releaseOnce sync.Once
}

// release is invoked when the task leaves the shadow cache, either by
// eviction, a full clear, or replacement by a newer warm call. It runs
// at most once per task. A still-running task cannot be cancelled; its
// pair is awaited in the background and discarded.
func (t *shadowTask) release() {
	t.releaseOnce.Do(func() {
		if t.Done() {
			return
		}
		go func() {
			t.Result()
		}()
	})
}

// shadowInputs is the immutable snapshot a shadow task works from. The
// caster path is a deep copy: the caller's per-frame state may be torn
// down before a worker picks the task up.
type shadowInputs struct {
	drawTransform geom.Matrix4
	localClip     geom.Rect
	opaque        bool
	caster        *geom.Path
	transformXY   geom.Matrix4
	transformZ    geom.Matrix4
	lightCenter   geom.Vec3
	lightRadius   float64
}

// PrecacheShadows warms the shadow cache for a caster. It always
// creates and submits a fresh task and overwrites any existing entry
// under the same key: a warm call is a refresh, never a lookup. A
// replaced in-flight task becomes unreachable but still runs to
// completion; its result is discarded on release.
func (c *TessellationCache) PrecacheShadows(drawTransform geom.Matrix4, localClip geom.Rect,
	opaque bool, caster *geom.Path, transformXY, transformZ geom.Matrix4,
	lightCenter geom.Vec3, lightRadius float64) {
	key := NewShadowDescription(CasterID(caster.ID()), drawTransform)

	in := shadowInputs{
		drawTransform: drawTransform,
		localClip:     localClip,
		opaque:        opaque,
		caster:        caster.Clone(),
		transformXY:   transformXY,
		transformZ:    transformZ,
		lightCenter:   lightCenter,
		lightRadius:   lightRadius,
	}
	t := &shadowTask{Task: NewTask(func() geom.MeshPair {
		return tessellateShadows(&in)
	})}
	c.pool.Submit(t.Run)

	c.mu.Lock()
	c.shadowCache.Put(key, t)
	c.mu.Unlock()
}

// GetShadowBuffers returns the ambient and spot meshes for a caster,
// blocking until the underlying task resolves. A missing entry is
// warmed on the spot; callers are nevertheless expected to have
// precached, and an entry that is still missing after the fallback
// warm call is an unrecoverable contract violation.
func (c *TessellationCache) GetShadowBuffers(drawTransform geom.Matrix4, localClip geom.Rect,
	opaque bool, caster *geom.Path, transformXY, transformZ geom.Matrix4,
	lightCenter geom.Vec3, lightRadius float64) (ambient, spot *geom.Mesh) {
	key := NewShadowDescription(CasterID(caster.ID()), drawTransform)

	c.mu.Lock()
	t, ok := c.shadowCache.Get(key)
	c.mu.Unlock()

	if !ok {
		c.PrecacheShadows(drawTransform, localClip, opaque, caster,
			transformXY, transformZ, lightCenter, lightRadius)

		c.mu.Lock()
		t, ok = c.shadowCache.Get(key)
		c.mu.Unlock()
	}
	if !ok {
		Logger().Error("shadow not precached", "caster", caster.ID())
		panic("tessel: shadow not precached")
	}

	pair := t.Result()
	return pair.Ambient, pair.Spot
}

// mapPointFakeZ lifts a 2D point into 3D: Z comes from the true 3D
// transform applied to the point's 3D position, X/Y from the 2D draw
// transform. Decoupling the two keeps flat geometry flat while
// elevation still follows the scene transform.
func mapPointFakeZ(p geom.Point, transformXY, transformZ geom.Matrix4) geom.Vec3 {
	z := transformZ.MapZ(geom.Vec3{X: p.X, Y: p.Y})
	xy := transformXY.MapPoint(p)
	return geom.Vec3{X: xy.X, Y: xy.Y, Z: z}
}

// tessellateShadows derives the ambient and spot meshes for a caster.
// Runs on a pool worker.
func tessellateShadows(in *shadowInputs) geom.MeshPair {
	pair := geom.MeshPair{Ambient: geom.NewMesh(), Spot: geom.NewMesh()}

	// Flatten the caster outline into a clockwise 2D polygon.
	outline := geom.FlattenOutline(in.caster, casterRefinementThresholdSquared)
	if !geom.IsClockwise(outline) {
		geom.ReversePolygon(outline)
	}
	if len(outline) == 0 {
		return pair
	}

	// Lift the polygon into 3D, tracking the elevation range.
	poly := make([]geom.Vec3, len(outline))
	minZ := math.MaxFloat64
	maxZ := -math.MaxFloat64
	for i, p := range outline {
		poly[i] = mapPointFakeZ(p, in.transformXY, in.transformZ)
		minZ = math.Min(minZ, poly[i].Z)
		maxZ = math.Max(maxZ, poly[i].Z)
	}

	centroid := mapPointFakeZ(geom.Centroid(outline), in.transformXY, in.transformZ)

	// If the caster dips below the minimum plane, lift everything
	// uniformly so it cannot intersect the light/ground plane.
	if minZ < ShadowMinCasterZ {
		lift := ShadowMinCasterZ - minZ
		for i := range poly {
			poly[i].Z += lift
		}
		centroid.Z += lift
		minZ += lift
		maxZ += lift
	}

	// The caster's 2D bounds through the draw transform serve as a
	// cheap visibility hint; Z is irrelevant under ortho projection.
	casterBounds := in.transformXY.MapRect(in.caster.Bounds())

	pair.Ambient = shadowgen.Ambient(in.opaque, poly, centroid,
		casterBounds, in.localClip, maxZ)
	pair.Spot = shadowgen.Spot(in.opaque, poly, in.drawTransform,
		in.lightCenter, in.lightRadius, casterBounds, in.localClip)

	// TODO: set pair bounds so layer damage can track shadow output.
	return pair
}
