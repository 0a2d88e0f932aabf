package raster

import (
	"sort"

	"github.com/gogpu/raster2d/internal/geom"
	"github.com/gogpu/raster2d/internal/pixel"
	"github.com/gogpu/raster2d/internal/texture"
)

// FillPolygon scan-converts verts with the even-odd rule, filling the
// interior with a solid color. Polygons with fewer than 3 vertices are
// dropped silently, per spec.md §4.8.
func FillPolygon(pm Pixmap, verts []geom.Vector2, color uint32) {
	if len(verts) < 3 {
		return
	}

	get, yMin, yMax := buildEdgeTable(verts, nil, pm.Height())
	if yMax < yMin {
		return
	}

	var aet []scanEdge
	for y := yMin; y <= yMax; y++ {
		aet = append(aet, get[y]...)
		get[y] = nil

		aet = removeRetired(aet, y)
		sort.Slice(aet, func(i, j int) bool { return aet[i].x < aet[j].x })

		for k := 0; k+1 < len(aet); k += 2 {
			x0 := int(aet[k].x)
			x1 := int(aet[k+1].x)
			blendSpan(pm, x0, x1, y, color)
		}

		advance(aet)
	}
}

// DrawPolygonOutline draws the closed edge loop of verts as a sequence of
// Bresenham lines — the same aliased line primitive used by DrawLine.
func DrawPolygonOutline(pm Pixmap, verts []geom.Vector2, color uint32) {
	n := len(verts)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		p1 := verts[i]
		p2 := verts[(i+1)%n]
		DrawLine(pm, int(p1.X), int(p1.Y), int(p2.X), int(p2.Y), color)
	}
}

// FillPolygonTextured scan-converts verts with the even-odd rule, sampling
// tex at the UV interpolated across each span (affine, screen-space
// interpolation — no perspective divide) and optionally modulating each
// texel by a tint color before compositing. modulate == 0xFFFFFFFF means
// "no tint".
func FillPolygonTextured(pm Pixmap, verts, uvs []geom.Vector2, tex texture.Source, modulate uint32, bilinear bool) {
	if len(verts) < 3 || len(uvs) != len(verts) {
		return
	}

	get, yMin, yMax := buildEdgeTable(verts, uvs, pm.Height())
	if yMax < yMin {
		return
	}

	var aet []scanEdge
	for y := yMin; y <= yMax; y++ {
		aet = append(aet, get[y]...)
		get[y] = nil

		aet = removeRetired(aet, y)
		sort.Slice(aet, func(i, j int) bool { return aet[i].x < aet[j].x })

		for k := 0; k+1 < len(aet); k += 2 {
			blendTexturedSpan(pm, aet[k], aet[k+1], y, tex, modulate, bilinear)
		}

		advance(aet)
	}
}

// blendTexturedSpan fills the span between two active edges at row y,
// interpolating UV linearly in x across the unclipped span and sampling
// one texel per destination pixel actually written.
func blendTexturedSpan(pm Pixmap, left, right scanEdge, y int, tex texture.Source, modulate uint32, bilinear bool) {
	xStart, xEnd := left.x, right.x
	if xStart >= xEnd {
		return
	}

	dxSpan := xEnd - xStart
	duDx := (right.u - left.u) / dxSpan
	dvDx := (right.v - left.v) / dxSpan

	x0, x1 := int(xStart), int(xEnd)
	curU := left.u + duDx*(float64(x0)-xStart)
	curV := left.v + dvDx*(float64(x0)-xStart)

	if x0 < 0 {
		curU += duDx * float64(-x0)
		curV += dvDx * float64(-x0)
		x0 = 0
	}
	if x1 > pm.Width() {
		x1 = pm.Width()
	}

	for x := x0; x < x1; x++ {
		src := sampleTexel(tex, curU, curV, modulate, bilinear)
		blendPixel(pm, x, y, src)
		curU += duDx
		curV += dvDx
	}
}

// sampleTexel samples tex at normalized (u,v), optionally blending the
// texel over the modulate tint (0xFFFFFFFF means no tint) before returning
// the packed RGBA32 source color for compositing.
func sampleTexel(tex texture.Source, u, v float64, modulate uint32, bilinear bool) uint32 {
	var r, g, b, a uint8
	if bilinear {
		r, g, b, a = texture.SampleBilinear(tex, u, v)
	} else {
		r, g, b, a = texture.SampleNearest(tex, u, v)
	}
	texel := pixel.Pack(r, g, b, a)
	if modulate == 0xFFFFFFFF {
		return texel
	}
	return pixel.Blend(texel, modulate)
}

// removeRetired drops edges whose yMax <= y, preserving relative order.
func removeRetired(aet []scanEdge, y int) []scanEdge {
	out := aet[:0]
	for _, e := range aet {
		if e.yMax > y {
			out = append(out, e)
		}
	}
	return out
}

// advance steps every active edge's x (and, for textured edges, u/v) by
// one scanline.
func advance(aet []scanEdge) {
	for i := range aet {
		aet[i].x += aet[i].dx
		aet[i].u += aet[i].du
		aet[i].v += aet[i].dv
	}
}
