package raster2d

import (
	"image/color"
	"testing"
)

// TestFillRect_OpaqueOverEmpty matches scenario S1: fill_rect on a 4x4
// framebuffer lights exactly the rect's pixels.
func TestFillRect_OpaqueOverEmpty(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	FillRect(fb, 1, 1, 2, 2, ColorRed)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			inside := x >= 1 && x < 3 && y >= 1 && y < 3
			got := fb.RawAt(x, y)
			if inside && got != ColorRed {
				t.Errorf("pixel (%d,%d) = %#x, want %#x", x, y, got, ColorRed)
			}
			if !inside && got != 0 {
				t.Errorf("pixel (%d,%d) = %#x, want 0", x, y, got)
			}
		}
	}
}

// TestFillRect_HalfAlphaBlendExactBytes matches scenario S2.
func TestFillRect_HalfAlphaBlendExactBytes(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	fb.SetRaw(0, 0, 0xFF0000FF)
	FillRect(fb, 0, 0, 1, 1, 0x80FF0000)

	r, g, b, a := UnpackRGBA(fb.RawAt(0, 0))
	if r != 127 || g != 0 || b != 126 || a != 254 {
		t.Errorf("got (r=%d,g=%d,b=%d,a=%d), want (127,0,126,254)", r, g, b, a)
	}
}

func TestFramebuffer_ImageImageConformance(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.SetRaw(0, 0, PackRGBA(10, 20, 30, 255))

	c := fb.At(0, 0).(color.NRGBA)
	if c.R != 10 || c.G != 20 || c.B != 30 || c.A != 255 {
		t.Errorf("At(0,0) = %+v, want R=10 G=20 B=30 A=255", c)
	}

	bounds := fb.Bounds()
	if bounds.Dx() != 2 || bounds.Dy() != 2 {
		t.Errorf("Bounds() = %v, want a 2x2 rect", bounds)
	}
}

func TestFramebuffer_DrawImageConformance(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Set(1, 1, color.NRGBA{R: 1, G: 2, B: 3, A: 4})

	r, g, b, a := UnpackRGBA(fb.RawAt(1, 1))
	if r != 1 || g != 2 || b != 3 || a != 4 {
		t.Errorf("got (%d,%d,%d,%d), want (1,2,3,4)", r, g, b, a)
	}
}

func TestFramebuffer_Clear(t *testing.T) {
	fb := NewFramebuffer(3, 3)
	FillRect(fb, 0, 0, 3, 3, ColorWhite)
	fb.Clear(0)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if fb.RawAt(x, y) != 0 {
				t.Errorf("pixel (%d,%d) survived Clear", x, y)
			}
		}
	}
}
