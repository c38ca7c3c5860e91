package shadowgen

import (
	"math"
	"testing"

	"github.com/gogpu/tessel/geom"
)

// liftedSquare is a clockwise caster silhouette raised to elevation z.
func liftedSquare(z float64) []geom.Vec3 {
	return []geom.Vec3{
		geom.V3(10, 10, z),
		geom.V3(20, 10, z),
		geom.V3(20, 20, z),
		geom.V3(10, 20, z),
	}
}

var (
	squareBounds = geom.RectXYWH(10, 10, 10, 10)
	wideClip     = geom.RectXYWH(-100, -100, 300, 300)
)

func TestAmbientDegenerate(t *testing.T) {
	m := Ambient(true, nil, geom.V3(0, 0, 0), squareBounds, wideClip, 1)
	if !m.Empty() {
		t.Error("empty silhouette should produce an empty mesh")
	}

	m = Ambient(true, liftedSquare(1)[:2], geom.V3(15, 15, 1), squareBounds, wideClip, 1)
	if !m.Empty() {
		t.Error("two-point silhouette should produce an empty mesh")
	}
}

func TestAmbientClipRejection(t *testing.T) {
	farClip := geom.RectXYWH(1000, 1000, 10, 10)
	m := Ambient(true, liftedSquare(1), geom.V3(15, 15, 1), squareBounds, farClip, 1)
	if !m.Empty() {
		t.Error("shadow disjoint from the clip should produce an empty mesh")
	}
}

func TestAmbientRing(t *testing.T) {
	poly := liftedSquare(2)
	m := Ambient(false, poly, geom.V3(15, 15, 2), squareBounds, wideClip, 2)

	// Translucent casters get no interior strip: one inner/outer pair
	// per silhouette point plus the closing pair.
	if m.VertexCount() != 2*len(poly)+2 {
		t.Fatalf("VertexCount() = %d, want %d", m.VertexCount(), 2*len(poly)+2)
	}

	v := m.Vertices()
	if v[0] != v[len(v)-2] || v[1] != v[len(v)-1] {
		t.Error("penumbra ring is not closed")
	}
	// Outer ring vertices are fully transparent.
	for i := 1; i < len(v); i += 2 {
		if v[i].Alpha != 0 {
			t.Errorf("outer vertex %d has alpha %g, want 0", i, v[i].Alpha)
		}
	}
}

func TestAmbientAlpha(t *testing.T) {
	const z = 4.0
	opaque := Ambient(true, liftedSquare(z), geom.V3(15, 15, z), squareBounds, wideClip, z)
	translucent := Ambient(false, liftedSquare(z), geom.V3(15, 15, z), squareBounds, wideClip, z)

	wantOpaque := 1.0 / (1.0 + z*ambientAlphaFalloff)
	got := float64(opaque.Vertices()[0].Alpha)
	if math.Abs(got-wantOpaque) > 1e-6 {
		t.Errorf("opaque core alpha = %g, want %g", got, wantOpaque)
	}

	gotTranslucent := float64(translucent.Vertices()[0].Alpha)
	if math.Abs(gotTranslucent-wantOpaque*translucentAlphaScale) > 1e-6 {
		t.Errorf("translucent core alpha = %g, want %g", gotTranslucent, wantOpaque*translucentAlphaScale)
	}
}

func TestAmbientOpaqueInterior(t *testing.T) {
	poly := liftedSquare(1)
	translucent := Ambient(false, poly, geom.V3(15, 15, 1), squareBounds, wideClip, 1)
	opaque := Ambient(true, poly, geom.V3(15, 15, 1), squareBounds, wideClip, 1)

	if opaque.VertexCount() <= translucent.VertexCount() {
		t.Errorf("opaque caster should add an interior strip: %d <= %d",
			opaque.VertexCount(), translucent.VertexCount())
	}
}

func TestSpotProjection(t *testing.T) {
	const z = 2.0
	light := geom.V3(15, 15, 100)
	m := Spot(false, liftedSquare(z), geom.Identity(), light, 0, squareBounds, wideClip)
	if m.Empty() {
		t.Fatal("expected a spot shadow")
	}

	// With zero light radius the penumbra collapses onto the umbra, so
	// every vertex position lies on the projected silhouette. The light
	// sits over the caster center, so the projection scales the square
	// about (15, 15) by lightZ / (lightZ - z).
	scale := light.Z / (light.Z - z)
	wantHalf := 5 * scale
	for _, v := range m.Vertices() {
		dx := math.Abs(float64(v.X) - 15)
		dy := math.Abs(float64(v.Y) - 15)
		if math.Abs(dx-wantHalf) > 1e-4 && math.Abs(dy-wantHalf) > 1e-4 {
			t.Fatalf("vertex (%g, %g) not on the projected outline", v.X, v.Y)
		}
	}
}

func TestSpotLightBelowCaster(t *testing.T) {
	light := geom.V3(15, 15, 1)
	m := Spot(true, liftedSquare(5), geom.Identity(), light, 10, squareBounds, wideClip)
	if !m.Empty() {
		t.Error("caster above the light should produce an empty mesh")
	}
}

func TestSpotClipRejection(t *testing.T) {
	light := geom.V3(15, 15, 100)
	farClip := geom.RectXYWH(1000, 1000, 10, 10)
	m := Spot(true, liftedSquare(2), geom.Identity(), light, 10, squareBounds, farClip)
	if !m.Empty() {
		t.Error("shadow disjoint from the clip should produce an empty mesh")
	}
}

func TestSpotReceiverTransform(t *testing.T) {
	// Moving the receiver space should move the projected shadow: the
	// light is pulled through the inverse transform before projection.
	const z = 2.0
	light := geom.V3(15, 15, 100)
	identity := Spot(false, liftedSquare(z), geom.Identity(), light, 0, squareBounds, wideClip)
	shifted := Spot(false, liftedSquare(z), geom.Translation(30, 0, 0), light, 0, squareBounds, wideClip)

	if identity.Empty() || shifted.Empty() {
		t.Fatal("expected spot shadows for both transforms")
	}
	if identity.Vertices()[0] == shifted.Vertices()[0] {
		t.Error("receiver transform had no effect on the projection")
	}
}
