package tessel

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/gogpu/tessel/geom"
)

// ShapeType tags the shape variant a Description refers to.
type ShapeType int

const (
	// ShapeNone is the zero shape; it never reaches the cache.
	ShapeNone ShapeType = iota
	// ShapeRoundRect is a rectangle with elliptical corners.
	ShapeRoundRect
)

// RoundRectShape holds the parameters of a round-rect tessellation.
// ScaleX and ScaleY are the per-axis tessellation scales extracted from
// the draw transform; they are part of the key because vertex density
// depends on them.
type RoundRectShape struct {
	Width, Height  float32
	Rx, Ry         float32
	ScaleX, ScaleY float32
}

// Shape is the union of shape-specific parameters. Exactly one member
// is meaningful per ShapeType; the rest stay at their zero values and
// still enter the hash, so two descriptions with equal logical content
// always hash identically regardless of how they were built.
type Shape struct {
	RoundRect RoundRectShape
}

// Description is the content-addressed key of a shape tessellation.
// It is a plain value: two descriptions constructed from the same
// logical inputs compare equal and hash equal. Cache lookups rely on
// value equality alone; Hash exists for callers that need a stable
// digest of the key's content, such as external index structures.
type Description struct {
	Type        ShapeType
	Cap         LineCap
	Style       Style
	StrokeWidth float32
	Shape       Shape
}

// NewDescription creates a description for a shape type, capturing the
// paint attributes that influence tessellation. Shape-specific fields
// are filled in by the caller afterwards.
func NewDescription(t ShapeType, paint *Paint) Description {
	return Description{
		Type:        t,
		Cap:         paint.Cap,
		Style:       paint.Style,
		StrokeWidth: float32(paint.StrokeWidth),
	}
}

// Hash returns an order-sensitive mix over every field of the
// description, including zero-valued shape padding. The digest's
// finalizer provides the avalanche step.
func (d Description) Hash() uint64 {
	h := xxhash.New()
	hashUint32(h, uint32(d.Type))
	hashUint32(h, uint32(d.Cap))
	hashUint32(h, uint32(d.Style))
	hashFloat32(h, d.StrokeWidth)
	rr := d.Shape.RoundRect
	hashFloat32(h, rr.Width)
	hashFloat32(h, rr.Height)
	hashFloat32(h, rr.Rx)
	hashFloat32(h, rr.Ry)
	hashFloat32(h, rr.ScaleX)
	hashFloat32(h, rr.ScaleY)
	return h.Sum64()
}

// CasterID is an opaque identity token for a shadow caster. The cache
// stores and hashes the token but never resolves it; the caster it
// came from may be long gone by the time the entry is evicted.
type CasterID uint64

// ShadowDescription is the content-addressed key of a shadow
// tessellation: the caster's identity and a snapshot of the draw
// transform it was requested under. As with Description, the cache
// keys on value equality; Hash provides the content digest.
type ShadowDescription struct {
	Caster    CasterID
	Transform [16]float64
}

// NewShadowDescription creates a shadow key from a caster token and a
// draw transform snapshot.
func NewShadowDescription(caster CasterID, drawTransform geom.Matrix4) ShadowDescription {
	return ShadowDescription{
		Caster:    caster,
		Transform: [16]float64(drawTransform),
	}
}

// Hash mixes the caster token and all sixteen transform entries.
func (d ShadowDescription) Hash() uint64 {
	h := xxhash.New()
	hashUint64(h, uint64(d.Caster))
	for _, f := range d.Transform {
		hashFloat64(h, f)
	}
	return h.Sum64()
}

func hashUint32(h *xxhash.Digest, v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, _ = h.Write(buf[:]) // Digest.Write never fails
}

func hashUint64(h *xxhash.Digest, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = h.Write(buf[:])
}

func hashFloat32(h *xxhash.Digest, v float32) {
	hashUint32(h, math.Float32bits(v))
}

func hashFloat64(h *xxhash.Digest, v float64) {
	hashUint64(h, math.Float64bits(v))
}
