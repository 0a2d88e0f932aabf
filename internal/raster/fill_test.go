package raster

import (
	"testing"

	"github.com/gogpu/raster2d/internal/geom"
)

func TestFillPolygon_Square(t *testing.T) {
	pm := newFakePixmap(10, 10)
	square := []geom.Vector2{{X: 2, Y: 2}, {X: 8, Y: 2}, {X: 8, Y: 8}, {X: 2, Y: 8}}
	FillPolygon(pm, square, 0xFFFFFFFF)

	if pm.RawAt(5, 5) == 0 {
		t.Errorf("expected the square's interior to be filled")
	}
	if pm.RawAt(0, 0) != 0 {
		t.Errorf("expected outside the square to stay empty")
	}
}

func TestFillPolygon_DegenerateDropped(t *testing.T) {
	pm := newFakePixmap(4, 4)
	FillPolygon(pm, []geom.Vector2{{X: 1, Y: 1}, {X: 2, Y: 2}}, 0xFFFFFFFF)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if pm.RawAt(x, y) != 0 {
				t.Errorf("expected a <3-vertex polygon to draw nothing")
			}
		}
	}
}

func TestDrawPolygonOutline_SubsetOfFill(t *testing.T) {
	fillPm := newFakePixmap(10, 10)
	outlinePm := newFakePixmap(10, 10)
	square := []geom.Vector2{{X: 2, Y: 2}, {X: 8, Y: 2}, {X: 8, Y: 8}, {X: 2, Y: 8}}

	FillPolygon(fillPm, square, 0xFFFFFFFF)
	DrawPolygonOutline(outlinePm, square, 0xFFFFFFFF)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if outlinePm.RawAt(x, y) != 0 && fillPm.RawAt(x, y) == 0 {
				t.Errorf("outline pixel (%d,%d) not covered by fill", x, y)
			}
		}
	}
}

// stripeTex is a 2x1 texture: left half red, right half blue.
type stripeTex struct{}

func (stripeTex) Dimensions() (int, int) { return 2, 1 }

func (stripeTex) At(x, y int) (r, g, b, a uint8) {
	if x == 0 {
		return 255, 0, 0, 255
	}
	return 0, 0, 255, 255
}

func TestFillPolygonTextured_SamplesAcrossSpan(t *testing.T) {
	pm := newFakePixmap(10, 10)
	square := []geom.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	uvs := []geom.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	FillPolygonTextured(pm, square, uvs, stripeTex{}, 0xFFFFFFFF, false)

	r, _, _, _ := unpackTest(pm.RawAt(1, 5))
	if r != 255 {
		t.Errorf("expected red near u=0, got pixel %#x", pm.RawAt(1, 5))
	}
	_, _, b, _ := unpackTest(pm.RawAt(8, 5))
	if b != 255 {
		t.Errorf("expected blue near u=1, got pixel %#x", pm.RawAt(8, 5))
	}
}

func TestFillPolygonTextured_DegenerateDropped(t *testing.T) {
	pm := newFakePixmap(4, 4)
	FillPolygonTextured(pm, []geom.Vector2{{X: 1, Y: 1}}, []geom.Vector2{{X: 0, Y: 0}}, stripeTex{}, 0xFFFFFFFF, false)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if pm.RawAt(x, y) != 0 {
				t.Errorf("expected a degenerate textured polygon to draw nothing")
			}
		}
	}
}

func unpackTest(p uint32) (r, g, b, a uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p), uint8(p >> 24)
}
