// Package clip provides geometric clipping for line segments and polygons
// against an axis-aligned rectangular viewport.
package clip

// Rect2 is a semi-open axis-aligned rectangle: a point is inside iff
// pos.x <= p.x < pos.x+size.x, and likewise for y (spec.md §3's Rect2).
type Rect2 struct {
	X, Y, W, H float64
}

// NewRect2 creates a Rect2 from position and size.
func NewRect2(x, y, w, h float64) Rect2 {
	return Rect2{X: x, Y: y, W: w, H: h}
}

// Right returns the right edge x-coordinate (exclusive).
func (r Rect2) Right() float64 { return r.X + r.W }

// Bottom returns the bottom edge y-coordinate (exclusive).
func (r Rect2) Bottom() float64 { return r.Y + r.H }

// Contains reports whether p falls within the semi-open interval
// [pos, pos+size).
func (r Rect2) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Vertex is a polygon vertex carrying texture coordinates through clipping,
// so a textured fill can clip its source polygon without losing its UVs.
type Vertex struct {
	X, Y, U, V float64
}

// Lerp performs linear interpolation of position and UV between v and w.
func (v Vertex) Lerp(w Vertex, t float64) Vertex {
	return Vertex{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
		U: v.U + (w.U-v.U)*t,
		V: v.V + (w.V-v.V)*t,
	}
}
