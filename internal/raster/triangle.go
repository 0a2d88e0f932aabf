package raster

import (
	"github.com/gogpu/raster2d/internal/geom"
	"github.com/gogpu/raster2d/internal/texture"
)

// vertexUV pairs a screen-space vertex with its texture coordinate so the
// two can be sorted and interpolated together.
type vertexUV struct {
	pos geom.Vector2
	uv  geom.Vector2
}

// DrawTriangleTextured rasterizes a triangle with affine-interpolated UVs,
// sampling tex at each covered pixel. Vertices are sorted by y, split into
// an upper and lower sub-triangle at the middle vertex, and each scanline
// interpolates one endpoint along the long edge (v0->v2) and the other
// along whichever short edge (v0->v1 or v1->v2) is active for that row.
func DrawTriangleTextured(pm Pixmap, verts [3]geom.Vector2, uvs [3]geom.Vector2, tex texture.Source, bilinear bool) {
	v := [3]vertexUV{
		{verts[0], uvs[0]},
		{verts[1], uvs[1]},
		{verts[2], uvs[2]},
	}

	// Insertion sort by y — only 3 elements, and it keeps tied vertices in
	// their original relative order.
	if v[0].pos.Y > v[1].pos.Y {
		v[0], v[1] = v[1], v[0]
	}
	if v[1].pos.Y > v[2].pos.Y {
		v[1], v[2] = v[2], v[1]
	}
	if v[0].pos.Y > v[1].pos.Y {
		v[0], v[1] = v[1], v[0]
	}

	totalHeight := v[2].pos.Y - v[0].pos.Y
	if totalHeight <= 0 {
		return
	}

	upperHeight := v[1].pos.Y - v[0].pos.Y

	y0 := int(v[0].pos.Y)
	y2 := int(v[2].pos.Y)

	for screenY := y0; screenY < y2; screenY++ {
		i := float64(screenY) - v[0].pos.Y
		if i < 0 {
			i = 0
		}

		secondHalf := i > upperHeight || upperHeight == 0
		alpha := i / totalHeight

		a := lerpVertexUV(v[0], v[2], alpha)

		var b vertexUV
		if secondHalf {
			lowerHeight := v[2].pos.Y - v[1].pos.Y
			if lowerHeight == 0 {
				b = v[2]
			} else {
				beta := (i - upperHeight) / lowerHeight
				b = lerpVertexUV(v[1], v[2], beta)
			}
		} else {
			if upperHeight == 0 {
				b = v[1]
			} else {
				beta := i / upperHeight
				b = lerpVertexUV(v[0], v[1], beta)
			}
		}

		if a.pos.X > b.pos.X {
			a, b = b, a
		}

		fillTriangleSpan(pm, a, b, screenY, tex, bilinear)
	}
}

func lerpVertexUV(a, b vertexUV, t float64) vertexUV {
	return vertexUV{
		pos: a.pos.Lerp(b.pos, t),
		uv:  a.uv.Lerp(b.uv, t),
	}
}

func fillTriangleSpan(pm Pixmap, a, b vertexUV, y int, tex texture.Source, bilinear bool) {
	xStart, xEnd := int(a.pos.X), int(b.pos.X)
	width := b.pos.X - a.pos.X
	if xStart == xEnd {
		if width == 0 {
			src := sampleTexel(tex, a.uv.X, a.uv.Y, 0xFFFFFFFF, bilinear)
			blendPixel(pm, xStart, y, src)
		}
		return
	}

	for x := xStart; x < xEnd; x++ {
		t := (float64(x) - a.pos.X) / width
		u := a.uv.X + (b.uv.X-a.uv.X)*t
		v := a.uv.Y + (b.uv.Y-a.uv.Y)*t
		src := sampleTexel(tex, u, v, 0xFFFFFFFF, bilinear)
		blendPixel(pm, x, y, src)
	}
}
