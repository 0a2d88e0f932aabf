package geom

import "errors"

// Sentinel errors for the geom package.
var (
	// ErrDivideByZero is returned by Vector2 division when the divisor is zero.
	ErrDivideByZero = errors.New("geom: division by zero")

	// ErrWrongPointCount is returned by ComputeHomography when src or dst
	// does not contain exactly 4 points.
	ErrWrongPointCount = errors.New("geom: homography requires exactly 4 point pairs")

	// ErrShapeMismatch is returned by Homography.ApplyBatch when the output
	// slice does not match the input slice in length.
	ErrShapeMismatch = errors.New("geom: points and out must have the same length")
)

// SingularMatrixError is returned by Transform2D.Inverse when the matrix
// determinant is exactly zero (no floating point tolerance is applied).
type SingularMatrixError struct {
	Det float64
}

func (e *SingularMatrixError) Error() string {
	return "geom: matrix is singular, cannot invert"
}
