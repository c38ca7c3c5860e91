package tessel

import (
	"testing"

	"github.com/gogpu/tessel/geom"
)

func roundRectDescription() Description {
	paint := NewPaint()
	paint.Style = StyleStroke
	paint.Cap = LineCapRound
	paint.StrokeWidth = 2.5

	d := NewDescription(ShapeRoundRect, paint)
	d.Shape.RoundRect = RoundRectShape{
		Width: 100, Height: 50,
		Rx: 8, Ry: 4,
		ScaleX: 1, ScaleY: 2,
	}
	return d
}

func TestDescriptionHashDeterministic(t *testing.T) {
	a := roundRectDescription()
	b := roundRectDescription()

	if a != b {
		t.Fatal("descriptions built from the same inputs should compare equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("equal descriptions should hash equal")
	}
}

func TestDescriptionHashCoversEveryField(t *testing.T) {
	base := roundRectDescription()
	baseHash := base.Hash()

	perturb := map[string]func(*Description){
		"Type":        func(d *Description) { d.Type = ShapeNone },
		"Cap":         func(d *Description) { d.Cap = LineCapSquare },
		"Style":       func(d *Description) { d.Style = StyleFill },
		"StrokeWidth": func(d *Description) { d.StrokeWidth = 3 },
		"Width":       func(d *Description) { d.Shape.RoundRect.Width = 101 },
		"Height":      func(d *Description) { d.Shape.RoundRect.Height = 51 },
		"Rx":          func(d *Description) { d.Shape.RoundRect.Rx = 9 },
		"Ry":          func(d *Description) { d.Shape.RoundRect.Ry = 5 },
		"ScaleX":      func(d *Description) { d.Shape.RoundRect.ScaleX = 1.5 },
		"ScaleY":      func(d *Description) { d.Shape.RoundRect.ScaleY = 2.5 },
	}
	for field, mutate := range perturb {
		d := base
		mutate(&d)
		if d.Hash() == baseHash {
			t.Errorf("changing %s did not change the hash", field)
		}
	}
}

func TestShadowDescriptionHash(t *testing.T) {
	transform := geom.Translation(10, 20, 0)
	a := NewShadowDescription(1, transform)
	b := NewShadowDescription(1, transform)

	if a != b || a.Hash() != b.Hash() {
		t.Error("equal shadow descriptions should compare and hash equal")
	}

	if a.Hash() == NewShadowDescription(2, transform).Hash() {
		t.Error("caster identity not covered by the hash")
	}
	if a.Hash() == NewShadowDescription(1, geom.Translation(11, 20, 0)).Hash() {
		t.Error("draw transform not covered by the hash")
	}
}

func TestShadowDescriptionSnapshotsTransform(t *testing.T) {
	transform := geom.Identity()
	d := NewShadowDescription(7, transform)

	transform[3] = 99
	if d.Transform[3] != 0 {
		t.Error("shadow description should snapshot the transform by value")
	}
}
