// Package tessel provides a content-addressed cache of tessellated
// vertex meshes for vector shapes and caster shadows.
//
// # Overview
//
// Tessellating a shape into a triangle strip is expensive, so tessel
// computes meshes asynchronously on a shared worker pool and
// deduplicates the work by content: the cache key is derived purely
// from the shape description and paint attributes, never from object
// identity, so identical requests share a single computation.
//
//	cache := tessel.New() // or tessel.New(tessel.WithWorkers(4))
//	mesh := cache.GetRoundRect(transform, 200, 100, 8, 8, paint)
//
// A lookup returns immediately with a handle; the first access to the
// mesh blocks until the worker resolves it. Subsequent accesses are
// plain reads.
//
// # Shadows
//
// Shadow meshes (an ambient and a spot component per caster) are
// cached separately and warmed explicitly:
//
//	cache.PrecacheShadows(drawTransform, clip, true, caster,
//	    transformXY, transformZ, light, lightRadius)
//	ambient, spot := cache.GetShadowBuffers(drawTransform, clip, true,
//	    caster, transformXY, transformZ, light, lightRadius)
//
// Every PrecacheShadows call refreshes the entry; GetShadowBuffers
// blocks on the most recent one.
//
// # Memory
//
// The shape cache holds at most GetMaxSize bytes of materialized
// vertex data (default 4 MB, overridable through the
// TESSEL_CACHE_SIZE_OVERRIDE environment variable, in megabytes).
// Trim evicts oldest entries down to the budget and discards all
// cached shadows.
package tessel
