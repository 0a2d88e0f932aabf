package raster2d

import "github.com/gogpu/raster2d/internal/clip"

// Vertex is a polygon vertex carrying texture coordinates through clipping,
// an alias for internal/clip's type so callers outside this module can
// build ClipPolygon input without importing an internal package.
type Vertex = clip.Vertex

// Rect2 is a semi-open axis-aligned rectangle: a point is inside iff
// pos.x <= p.x < pos.x+size.x, and likewise for y.
type Rect2 = clip.Rect2

// NewRect2 creates a Rect2 from position and size.
func NewRect2(x, y, w, h float64) Rect2 {
	return clip.NewRect2(x, y, w, h)
}

// ClipLine clips the segment (x1,y1)-(x2,y2) against the axis-aligned
// rectangle [minX,maxX]x[minY,maxY] using Cohen-Sutherland outcodes. ok is
// false if the segment lies entirely outside the rectangle.
func ClipLine(x1, y1, x2, y2, minX, minY, maxX, maxY float64) (x1o, y1o, x2o, y2o float64, ok bool) {
	return clip.ClipLine(x1, y1, x2, y2, minX, minY, maxX, maxY)
}

// ClipPolygon clips a (possibly UV-carrying) polygon against the rectangle
// [minX,maxX]x[minY,maxY] using Sutherland-Hodgman.
func ClipPolygon(verts []Vertex, minX, minY, maxX, maxY float64) []Vertex {
	return clip.ClipPolygon(verts, minX, minY, maxX, maxY)
}
