package geom

import "math"

// Transform2D is a 2x3 affine matrix represented as three Vector2 columns:
// x_basis, y_basis, origin. In matrix form:
//
//	| XBasis.X  YBasis.X  Origin.X |
//	| XBasis.Y  YBasis.Y  Origin.Y |
//
// Xform(v) = XBasis*v.X + YBasis*v.Y + Origin.
type Transform2D struct {
	XBasis Vector2
	YBasis Vector2
	Origin Vector2
}

// Identity is the identity transform.
var Identity = Transform2D{
	XBasis: Vector2{X: 1, Y: 0},
	YBasis: Vector2{X: 0, Y: 1},
	Origin: Vector2{X: 0, Y: 0},
}

// NewTransform2D builds a transform from a rotation angle (radians) and an
// origin translation: XBasis=(cos,sin), YBasis=(-sin,cos).
func NewTransform2D(rotation float64, origin Vector2) Transform2D {
	cos := math.Cos(rotation)
	sin := math.Sin(rotation)
	return Transform2D{
		XBasis: Vector2{X: cos, Y: sin},
		YBasis: Vector2{X: -sin, Y: cos},
		Origin: origin,
	}
}

// NewTransform2DFromBasis builds a transform directly from its three columns.
func NewTransform2DFromBasis(xBasis, yBasis, origin Vector2) Transform2D {
	return Transform2D{XBasis: xBasis, YBasis: yBasis, Origin: origin}
}

// Xform applies the transform to a point (includes translation).
func (t Transform2D) Xform(v Vector2) Vector2 {
	return Vector2{
		X: t.XBasis.X*v.X + t.YBasis.X*v.Y + t.Origin.X,
		Y: t.XBasis.Y*v.X + t.YBasis.Y*v.Y + t.Origin.Y,
	}
}

// XformVector applies only the linear part of the transform (no
// translation) — useful for direction vectors rather than positions.
func (t Transform2D) XformVector(v Vector2) Vector2 {
	return Vector2{
		X: t.XBasis.X*v.X + t.YBasis.X*v.Y,
		Y: t.XBasis.Y*v.X + t.YBasis.Y*v.Y,
	}
}

// Multiply composes two transforms: the augmented 3x3 matrix product
// t * other, so that (t.Multiply(other)).Xform(v) == t.Xform(other.Xform(v)).
func (t Transform2D) Multiply(other Transform2D) Transform2D {
	return Transform2D{
		XBasis: t.XformVector(other.XBasis),
		YBasis: t.XformVector(other.YBasis),
		Origin: t.Xform(other.Origin),
	}
}

// det returns the determinant of the 2x2 linear block.
func (t Transform2D) det() float64 {
	return t.XBasis.X*t.YBasis.Y - t.XBasis.Y*t.YBasis.X
}

// Inverse returns the affine inverse of the transform. Returns
// *SingularMatrixError if the determinant is zero.
func (t Transform2D) Inverse() (Transform2D, error) {
	det := t.det()
	if det == 0 {
		return Transform2D{}, &SingularMatrixError{Det: det}
	}

	invDet := 1.0 / det
	invX := Vector2{X: t.YBasis.Y * invDet, Y: -t.XBasis.Y * invDet}
	invY := Vector2{X: -t.YBasis.X * invDet, Y: t.XBasis.X * invDet}

	inv := Transform2D{XBasis: invX, YBasis: invY}
	inv.Origin = inv.XformVector(t.Origin).Neg()
	return inv, nil
}

// Translated returns a copy of t translated by offset (applied after t,
// i.e. in the parent coordinate frame).
func (t Transform2D) Translated(offset Vector2) Transform2D {
	t.Origin = t.Origin.Add(offset)
	return t
}

// Scaled returns a copy of t with its basis vectors scaled.
func (t Transform2D) Scaled(scale Vector2) Transform2D {
	t.XBasis = t.XBasis.Scale(scale.X)
	t.YBasis = t.YBasis.Scale(scale.Y)
	return t
}

// Rotated returns t composed with a rotation of angle radians, applied
// before t (t.Rotated(a).Xform(v) == t.Xform(v rotated by a)).
func (t Transform2D) Rotated(angle float64) Transform2D {
	return t.Multiply(NewTransform2D(angle, Vector2{}))
}

// Rotation returns the rotation angle encoded in the basis, in radians.
func (t Transform2D) Rotation() float64 {
	return math.Atan2(t.XBasis.Y, t.XBasis.X)
}

// Scale returns the magnitude of each basis vector: (|XBasis|, |YBasis|).
func (t Transform2D) Scale() Vector2 {
	return Vector2{X: t.XBasis.Length(), Y: t.YBasis.Length()}
}
