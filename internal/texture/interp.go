// Package texture provides normalized-coordinate sampling over a pixel
// source, wrapping out-of-range coordinates by repeating rather than
// clamping to the edge.
package texture

import "math"

// Source is any pixel store that can be sampled by integer coordinate.
// Texture (the root package's RGBA32 image type) implements this.
type Source interface {
	Dimensions() (w, h int)
	At(x, y int) (r, g, b, a uint8)
}

// wrap maps a normalized coordinate into [0,1) by repeating, matching the
// GLSL/OpenGL REPEAT wrap mode: u - floor(u).
func wrap(u float64) float64 {
	return u - math.Floor(u)
}

// wrapIndex wraps an integer pixel index into [0, n) by true modulo
// (never negative, unlike Go's %).
func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// SampleNearest performs nearest-neighbor sampling at normalized coordinates
// (u, v), repeat-wrapping coordinates outside [0,1).
func SampleNearest(tex Source, u, v float64) (r, g, b, a uint8) {
	w, h := tex.Dimensions()
	if w <= 0 || h <= 0 {
		return 0, 0, 0, 0
	}

	uu := wrap(u)
	vv := wrap(v)

	x := int(math.Floor(uu * float64(w)))
	y := int(math.Floor(vv * float64(h)))
	x = wrapIndex(x, w)
	y = wrapIndex(y, h)

	return tex.At(x, y)
}

// SampleBilinear performs bilinear interpolation at normalized coordinates
// (u, v) over the 4 neighboring pixels, repeat-wrapping both the sample
// center and its neighbor indices.
func SampleBilinear(tex Source, u, v float64) (r, g, b, a uint8) {
	w, h := tex.Dimensions()
	if w <= 0 || h <= 0 {
		return 0, 0, 0, 0
	}

	uu := wrap(u)
	vv := wrap(v)

	fx := uu*float64(w) - 0.5
	fy := vv*float64(h) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	x1 := x0 + 1
	y1 := y0 + 1

	x0 = wrapIndex(x0, w)
	y0 = wrapIndex(y0, h)
	x1 = wrapIndex(x1, w)
	y1 = wrapIndex(y1, h)

	r00, g00, b00, a00 := tex.At(x0, y0)
	r10, g10, b10, a10 := tex.At(x1, y0)
	r01, g01, b01, a01 := tex.At(x0, y1)
	r11, g11, b11, a11 := tex.At(x1, y1)

	r = uint8(lerp2D(float64(r00), float64(r10), float64(r01), float64(r11), tx, ty))
	g = uint8(lerp2D(float64(g00), float64(g10), float64(g01), float64(g11), tx, ty))
	b = uint8(lerp2D(float64(b00), float64(b10), float64(b01), float64(b11), tx, ty))
	a = uint8(lerp2D(float64(a00), float64(a10), float64(a01), float64(a11), tx, ty))

	return r, g, b, a
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

func lerp2D(v00, v10, v01, v11, tx, ty float64) float64 {
	v0 := lerp(v00, v10, tx)
	v1 := lerp(v01, v11, tx)
	return lerp(v0, v1, ty)
}
