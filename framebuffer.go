package raster2d

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// Compile-time interface checks.
var (
	_ image.Image = (*Framebuffer)(nil)
	_ draw.Image  = (*Framebuffer)(nil)
)

// Framebuffer is a caller-owned, mutable RGBA32 pixel grid addressed
// buffer[x, y] for x in [0,W) and y in [0,H). It is the destination every
// draw_* entry point in this package writes into, and it implements
// image.Image/draw.Image so it interoperates with the standard image
// ecosystem (image/png, golang.org/x/image/draw, ...).
type Framebuffer struct {
	width, height int
	px            []uint32
}

// NewFramebuffer creates a framebuffer of the given dimensions, initialized
// to fully transparent black.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{width: width, height: height, px: make([]uint32, width*height)}
}

// Width returns the framebuffer's width in pixels.
func (f *Framebuffer) Width() int { return f.width }

// Height returns the framebuffer's height in pixels.
func (f *Framebuffer) Height() int { return f.height }

// RawAt returns the packed RGBA32 word at (x, y), or 0 if out of bounds.
func (f *Framebuffer) RawAt(x, y int) uint32 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0
	}
	return f.px[y*f.width+x]
}

// SetRaw writes the packed RGBA32 word p at (x, y). Out-of-bounds writes
// are silently dropped — the pixel store is never grown.
func (f *Framebuffer) SetRaw(x, y int, p uint32) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.px[y*f.width+x] = p
}

// Clear fills the entire framebuffer with the given packed color,
// overwriting (not blending) every pixel.
func (f *Framebuffer) Clear(p uint32) {
	for i := range f.px {
		f.px[i] = p
	}
}

// At implements image.Image.
func (f *Framebuffer) At(x, y int) color.Color {
	r, g, b, a := UnpackRGBA(f.RawAt(x, y))
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Set implements draw.Image, letting a Framebuffer be used as a
// destination for standard-library image drawing (e.g. text rendering via
// golang.org/x/image/font, or image/draw.Draw compositing).
func (f *Framebuffer) Set(x, y int, c color.Color) {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	f.SetRaw(x, y, PackRGBA(nrgba.R, nrgba.G, nrgba.B, nrgba.A))
}

// Bounds implements image.Image.
func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// ColorModel implements image.Image.
func (f *Framebuffer) ColorModel() color.Model {
	return color.NRGBAModel
}

// SavePNG encodes the framebuffer as a PNG at path.
func (f *Framebuffer) SavePNG(path string) error {
	file, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()
	return png.Encode(file, f)
}
