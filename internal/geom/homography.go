package geom

import "math"

// Homography is a 3x3 projective transform matrix, row-major:
//
//	| H[0][0] H[0][1] H[0][2] |
//	| H[1][0] H[1][1] H[1][2] |
//	| H[2][0] H[2][1] H[2][2] |
type Homography [3][3]float64

// IdentityHomography is the 3x3 identity matrix.
var IdentityHomography = Homography{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// singularPivotEps is the threshold below which a Gauss-Jordan pivot, or a
// homography's homogeneous denominator, is considered numerically singular.
const singularPivotEps = 1e-9

// ComputeHomography fits the 3x3 projective matrix mapping each src[i] to
// dst[i]. Both slices must have exactly 4 points, or ErrWrongPointCount is
// returned. The system is solved via Gauss-Jordan elimination with partial
// pivoting over the standard 8-equation DLT point-correspondence form.
//
// A numerically singular pivot (|pivot| < 1e-9) is a recoverable condition,
// not an error: ComputeHomography returns the identity matrix with singular
// set to true rather than failing the caller's draw call. geom has no
// logger of its own (it sits below the package that owns one); callers that
// want this condition logged check singular themselves.
func ComputeHomography(src, dst []Vector2) (h Homography, singular bool, err error) {
	if len(src) != 4 || len(dst) != 4 {
		return Homography{}, false, ErrWrongPointCount
	}

	const n = 8
	var a [n][n]float64
	var b [n]float64

	for i := 0; i < 4; i++ {
		x, y := src[i].X, src[i].Y
		u, v := dst[i].X, dst[i].Y
		row0 := 2 * i
		row1 := 2*i + 1

		a[row0] = [n]float64{x, y, 1, 0, 0, 0, -x * u, -y * u}
		b[row0] = u

		a[row1] = [n]float64{0, 0, 0, x, y, 1, -x * v, -y * v}
		b[row1] = v
	}

	sol, ok := gaussJordan(a, b)
	if !ok {
		return IdentityHomography, true, nil
	}

	m := Homography{
		{sol[0], sol[1], sol[2]},
		{sol[3], sol[4], sol[5]},
		{sol[6], sol[7], 1},
	}
	return m, false, nil
}

// gaussJordan solves the 8x8 system A h = b via Gauss-Jordan elimination
// with partial pivoting (pivot row = argmax |A[r,col]| for r in [col,n)).
// Returns ok=false if any pivot column is numerically singular.
func gaussJordan(a [8][8]float64, b [8]float64) (h [8]float64, ok bool) {
	const n = 8
	aug := a
	rhs := b

	for col := 0; col < n; col++ {
		pivotRow := col
		maxVal := math.Abs(aug[col][col])
		for r := col + 1; r < n; r++ {
			if v := math.Abs(aug[r][col]); v > maxVal {
				maxVal = v
				pivotRow = r
			}
		}

		if maxVal < singularPivotEps {
			return h, false
		}

		if pivotRow != col {
			aug[col], aug[pivotRow] = aug[pivotRow], aug[col]
			rhs[col], rhs[pivotRow] = rhs[pivotRow], rhs[col]
		}

		pivot := aug[col][col]
		for c := col; c < n; c++ {
			aug[col][c] /= pivot
		}
		rhs[col] /= pivot

		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := aug[r][col]
			if factor == 0 {
				continue
			}
			for c := col; c < n; c++ {
				aug[r][c] -= factor * aug[col][c]
			}
			rhs[r] -= factor * rhs[col]
		}
	}

	return rhs, true
}

// Apply applies the projective transform to a point, performing the
// perspective divide. If the homogeneous denominator has magnitude below
// 1e-9, the input point is returned unchanged.
func (h Homography) Apply(x, y float64) (float64, float64) {
	denom := h[2][0]*x + h[2][1]*y + h[2][2]
	if math.Abs(denom) < singularPivotEps {
		return x, y
	}
	xp := (h[0][0]*x + h[0][1]*y + h[0][2]) / denom
	yp := (h[1][0]*x + h[1][1]*y + h[1][2]) / denom
	return xp, yp
}

// ApplyBatch applies the transform to every point in points, writing results
// into the caller-allocated out slice. Returns ErrShapeMismatch if the
// slices have different lengths.
func (h Homography) ApplyBatch(points, out [][2]float64) error {
	if len(points) != len(out) {
		return ErrShapeMismatch
	}
	for i, p := range points {
		x, y := h.Apply(p[0], p[1])
		out[i] = [2]float64{x, y}
	}
	return nil
}
