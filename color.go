package raster2d

import "github.com/gogpu/raster2d/internal/pixel"

// PackRGBA combines four 8-bit channels into a single RGBA32 word, alpha in
// the most significant byte: (A<<24)|(R<<16)|(G<<8)|B.
func PackRGBA(r, g, b, a uint8) uint32 {
	return pixel.Pack(r, g, b, a)
}

// UnpackRGBA splits an RGBA32 word into its four 8-bit channels.
func UnpackRGBA(p uint32) (r, g, b, a uint8) {
	return pixel.Unpack(p)
}

// BlendColors composites src over dst with source-over alpha blending:
// src.a==0 returns dst unchanged, src.a==255 returns src unchanged, and the
// general case computes each color channel as (src_c*src.a + dst_c*ia)>>8
// and alpha as src.a + (dst.a*ia)>>8, with ia = 255-src.a. The `>>8` (rather than `/255`) is a deliberate, tested
// approximation — every golden-pixel test in this package depends on the
// exact byte values it produces.
func BlendColors(src, dst uint32) uint32 {
	return pixel.Blend(src, dst)
}

// Named packed colors, analogous to the teacher's float RGBA palette but
// expressed directly as RGBA32 words.
const (
	ColorBlack       uint32 = 0xFF000000
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorRed         uint32 = 0xFFFF0000
	ColorGreen       uint32 = 0xFF00FF00
	ColorBlue        uint32 = 0xFF0000FF
	ColorTransparent uint32 = 0x00000000
)
