package geom

import (
	"math"
	"sync/atomic"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// pathID mints identity tokens for paths.
var pathID atomic.Uint64

// Path represents a vector path.
//
// Every path carries an identity token assigned at construction (see
// ID). The token is what caches key shadow work on, so two paths with
// identical geometry are still distinct casters, and a Clone is a new
// caster.
type Path struct {
	id       uint64
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path with a fresh identity token.
func NewPath() *Path {
	return &Path{
		id:       pathID.Add(1),
		elements: make([]PathElement, 0, 16),
	}
}

// ID returns the path's identity token. Tokens are opaque, unique per
// constructed path, and never reused within a process. Holders of a
// token must not attempt to resolve it back to a path.
func (p *Path) ID() uint64 {
	return p.id
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
	p.current = Pt(x, y)
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	p.current = Pt(x, y)
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Empty returns true if the path has no elements.
func (p *Path) Empty() bool {
	return len(p.elements) == 0
}

// Rectangle adds a closed rectangle subpath.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// kappa is the control-point distance factor approximating a quarter
// circle with a cubic Bezier.
const kappa = 0.5522847498307936

// Ellipse adds a closed ellipse subpath centered at (cx, cy).
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	kx := rx * kappa
	ky := ry * kappa
	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	p.Close()
}

// Circle adds a closed circle subpath centered at (cx, cy).
func (p *Path) Circle(cx, cy, r float64) {
	p.Ellipse(cx, cy, r, r)
}

// RoundedRectangle adds a closed rectangle subpath with elliptical
// corners of radii rx and ry. Radii larger than half the rectangle's
// size are clamped.
func (p *Path) RoundedRectangle(x, y, w, h, rx, ry float64) {
	rx = math.Min(rx, w/2)
	ry = math.Min(ry, h/2)
	if rx <= 0 || ry <= 0 {
		p.Rectangle(x, y, w, h)
		return
	}
	kx := rx * kappa
	ky := ry * kappa
	p.MoveTo(x+rx, y)
	p.LineTo(x+w-rx, y)
	p.CubicTo(x+w-rx+kx, y, x+w, y+ry-ky, x+w, y+ry)
	p.LineTo(x+w, y+h-ry)
	p.CubicTo(x+w, y+h-ry+ky, x+w-rx+kx, y+h, x+w-rx, y+h)
	p.LineTo(x+rx, y+h)
	p.CubicTo(x+rx-kx, y+h, x, y+h-ry+ky, x, y+h-ry)
	p.LineTo(x, y+ry)
	p.CubicTo(x, y+ry-ky, x+rx-kx, y, x+rx, y)
	p.Close()
}

// Bounds returns the control-point bounding rectangle of the path.
// Control points of curves are included, so the bounds are conservative
// (never smaller than the true extent).
func (p *Path) Bounds() Rect {
	first := true
	var out Rect
	grow := func(pt Point) {
		if first {
			out = Rect{Min: pt, Max: pt}
			first = false
			return
		}
		out.Min.X = math.Min(out.Min.X, pt.X)
		out.Min.Y = math.Min(out.Min.Y, pt.Y)
		out.Max.X = math.Max(out.Max.X, pt.X)
		out.Max.Y = math.Max(out.Max.Y, pt.Y)
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			grow(e.Point)
		case LineTo:
			grow(e.Point)
		case QuadTo:
			grow(e.Control)
			grow(e.Point)
		case CubicTo:
			grow(e.Control1)
			grow(e.Control2)
			grow(e.Point)
		}
	}
	return out
}

// Clone creates a deep copy of the path. The clone receives a fresh
// identity token: it is a new caster, not the same one.
func (p *Path) Clone() *Path {
	clone := &Path{
		id:       pathID.Add(1),
		elements: make([]PathElement, len(p.elements)),
		start:    p.start,
		current:  p.current,
	}
	copy(clone.elements, p.elements)
	return clone
}
