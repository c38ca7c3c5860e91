package geom

import "math"

// Matrix4 represents a 4x4 transformation matrix in row-major order:
//
//	| m0  m1  m2  m3  |
//	| m4  m5  m6  m7  |
//	| m8  m9  m10 m11 |
//	| m12 m13 m14 m15 |
//
// Translation lives in the last column (m3, m7, m11). Draw transforms
// are snapshotted into cache keys as plain value arrays, so Matrix4 is
// comparable and copies freely.
type Matrix4 [16]float64

// Identity returns the identity transformation matrix.
func Identity() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation creates a translation matrix.
func Translation(x, y, z float64) Matrix4 {
	m := Identity()
	m[3] = x
	m[7] = y
	m[11] = z
	return m
}

// Scaling creates a scaling matrix.
func Scaling(x, y, z float64) Matrix4 {
	m := Identity()
	m[0] = x
	m[5] = y
	m[10] = z
	return m
}

// RotationZ creates a rotation matrix around the Z axis (angle in radians).
func RotationZ(angle float64) Matrix4 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	m := Identity()
	m[0] = cos
	m[1] = -sin
	m[4] = sin
	m[5] = cos
	return m
}

// Multiply multiplies two matrices (m * other).
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var out Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * other[k*4+col]
			}
			out[row*4+col] = sum
		}
	}
	return out
}

// MapPoint applies the X/Y part of the transformation to a 2D point.
// The Z row is ignored; this is how draw transforms map flat geometry.
func (m Matrix4) MapPoint(p Point) Point {
	return Point{
		X: m[0]*p.X + m[1]*p.Y + m[3],
		Y: m[4]*p.X + m[5]*p.Y + m[7],
	}
}

// MapZ applies only the Z row of the transformation to a 3D point and
// returns the resulting Z. Shadow lifting uses this to obtain a true
// elevation while X/Y stay under the 2D draw transform.
func (m Matrix4) MapZ(v Vec3) float64 {
	return m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]
}

// MapRect maps all four corners of a rectangle through the X/Y part of
// the transformation and returns their bounding rectangle.
func (m Matrix4) MapRect(r Rect) Rect {
	corners := [4]Point{
		m.MapPoint(r.Min),
		m.MapPoint(Point{X: r.Max.X, Y: r.Min.Y}),
		m.MapPoint(r.Max),
		m.MapPoint(Point{X: r.Min.X, Y: r.Max.Y}),
	}
	out := Rect{Min: corners[0], Max: corners[0]}
	for _, c := range corners[1:] {
		out.Min.X = math.Min(out.Min.X, c.X)
		out.Min.Y = math.Min(out.Min.Y, c.Y)
		out.Max.X = math.Max(out.Max.X, c.X)
		out.Max.Y = math.Max(out.Max.Y, c.Y)
	}
	return out
}

// ExtractScales returns the per-axis scale factors the transformation
// applies to unit vectors along X and Y. Tessellation density is chosen
// from these, so they become part of the shape cache key.
func (m Matrix4) ExtractScales() (sx, sy float64) {
	sx = math.Hypot(m[0], m[4])
	sy = math.Hypot(m[1], m[5])
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}

// Invert2D returns a matrix that inverts the X/Y affine part of the
// transformation. The Z and W rows are left as identity. Returns the
// identity matrix if the X/Y part is not invertible.
func (m Matrix4) Invert2D() Matrix4 {
	det := m[0]*m[5] - m[1]*m[4]
	if math.Abs(det) < 1e-10 {
		return Identity()
	}
	invDet := 1.0 / det
	out := Identity()
	out[0] = m[5] * invDet
	out[1] = -m[1] * invDet
	out[3] = (m[1]*m[7] - m[3]*m[5]) * invDet
	out[4] = -m[4] * invDet
	out[5] = m[0] * invDet
	out[7] = (m[3]*m[4] - m[0]*m[7]) * invDet
	return out
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix4) IsIdentity() bool {
	return m == Identity()
}
