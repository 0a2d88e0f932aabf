package raster2d

import "github.com/gogpu/raster2d/internal/geom"

// Vector2 is a 2D point or direction in IEEE-754 doubles. It is an alias for
// internal/geom's type so callers outside this module can construct
// vertex/UV arguments without importing an internal package.
type Vector2 = geom.Vector2

// V2 is a convenience constructor for Vector2.
func V2(x, y float64) Vector2 {
	return geom.V2(x, y)
}

// Transform2D is a 2x3 affine transform: two basis vectors plus an origin
// translation. See internal/geom for the full method set (Xform, Inverse,
// Translated, Scaled, Rotated, ...); those methods are promoted onto this
// alias automatically.
type Transform2D = geom.Transform2D

// Identity is the identity Transform2D.
var Identity = geom.Identity

// NewTransform2D builds a transform from a rotation angle (radians) and an
// origin translation.
func NewTransform2D(rotation float64, origin Vector2) Transform2D {
	return geom.NewTransform2D(rotation, origin)
}

// NewTransform2DFromBasis builds a transform directly from its three columns.
func NewTransform2DFromBasis(xBasis, yBasis, origin Vector2) Transform2D {
	return geom.NewTransform2DFromBasis(xBasis, yBasis, origin)
}

// Homography is a 3x3 projective transform matrix. See internal/geom for
// its Apply/ApplyBatch methods, promoted onto this alias automatically.
type Homography = geom.Homography

// IdentityHomography is the 3x3 identity matrix.
var IdentityHomography = geom.IdentityHomography

// Sentinel errors, re-exported from internal/geom so callers can compare
// against them with errors.Is without importing an internal package.
var (
	ErrDivideByZero    = geom.ErrDivideByZero
	ErrWrongPointCount = geom.ErrWrongPointCount
	ErrShapeMismatch   = geom.ErrShapeMismatch
)

// SingularMatrixError is returned by Transform2D.Inverse when the matrix
// determinant is zero.
type SingularMatrixError = geom.SingularMatrixError

// ComputeHomography fits the 3x3 projective matrix mapping each src[i] to
// dst[i]. Both slices must have exactly 4 points. A numerically singular fit
// returns the identity matrix with singular set to true — logged at
// slog.LevelWarn rather than failing the caller's draw call.
func ComputeHomography(src, dst []Vector2) (h Homography, singular bool, err error) {
	h, singular, err = geom.ComputeHomography(src, dst)
	if singular {
		Logger().Warn("homography fit is numerically singular, falling back to identity")
	}
	return h, singular, err
}

// PointInPolygon reports whether p lies inside poly using the ray-casting
// parity test.
func PointInPolygon(poly []Vector2, p Vector2) bool {
	return geom.PointInPolygon(poly, p)
}

// SegmentIntersection returns the intersection point of segments a0-a1 and
// b0-b1, and whether they intersect within both segments' bounds.
func SegmentIntersection(a0, a1, b0, b1 Vector2) (Vector2, bool) {
	return geom.SegmentIntersection(a0, a1, b0, b1)
}

// OffsetPolygon returns a new polygon whose edges are each pushed outward
// by margin along their outward normal.
func OffsetPolygon(poly []Vector2, margin float64) []Vector2 {
	return geom.OffsetPolygon(poly, margin)
}
