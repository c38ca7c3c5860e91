package tessel

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// Style specifies how a shape is realized.
type Style int

const (
	// StyleFill fills the shape's interior.
	StyleFill Style = iota
	// StyleStroke traces the shape's outline.
	StyleStroke
	// StyleStrokeAndFill fills the interior grown by half the stroke
	// width, covering both in one mesh.
	StyleStrokeAndFill
)

// Paint carries the styling attributes that influence tessellation.
// Only attributes that change the produced geometry live here; color
// and blending are applied at draw time and never enter cache keys.
type Paint struct {
	// Style selects fill, stroke, or both.
	Style Style

	// Cap is the shape of stroke endpoints.
	Cap LineCap

	// StrokeWidth is the width of strokes.
	StrokeWidth float64
}

// NewPaint creates a new Paint with default values.
func NewPaint() *Paint {
	return &Paint{
		Style:       StyleFill,
		Cap:         LineCapButt,
		StrokeWidth: 1.0,
	}
}

// Clone creates a copy of the Paint.
func (p *Paint) Clone() *Paint {
	clone := *p
	return &clone
}
