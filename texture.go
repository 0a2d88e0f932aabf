package raster2d

import (
	"image"
	"image/color"
)

// Texture is a caller-supplied RGBA32 pixel source for the textured draw_*
// entry points; the rasterizer only reads it. It implements internal/texture.Source so
// the rasterizer can sample it directly with SampleNearest/SampleBilinear.
type Texture struct {
	width, height int
	px            []uint32
}

// NewTexture creates a texture of the given dimensions, initialized to
// fully transparent black.
func NewTexture(width, height int) *Texture {
	return &Texture{width: width, height: height, px: make([]uint32, width*height)}
}

// TextureFromImage copies img's pixels into a new Texture, converting
// through color.NRGBAModel so the result carries straight (unassociated)
// alpha, matching this package's packed RGBA32 pixel format.
func TextureFromImage(img image.Image) *Texture {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	tex := NewTexture(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			tex.SetPixel(x, y, c.R, c.G, c.B, c.A)
		}
	}
	return tex
}

// Dimensions implements internal/texture.Source.
func (t *Texture) Dimensions() (w, h int) { return t.width, t.height }

// At implements internal/texture.Source, returning straight RGBA at (x,y).
// Out-of-bounds coordinates return fully transparent black.
func (t *Texture) At(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return 0, 0, 0, 0
	}
	return UnpackRGBA(t.px[y*t.width+x])
}

// SetPixel writes straight RGBA at (x,y). Out-of-bounds writes are
// silently dropped.
func (t *Texture) SetPixel(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return
	}
	t.px[y*t.width+x] = PackRGBA(r, g, b, a)
}
