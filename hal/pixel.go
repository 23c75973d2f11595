package hal

import "image/color"

// PackRGB565 converts an 8-bit-per-channel color to RGB565.
func PackRGB565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

// UnpackRGB565 expands an RGB565 pixel to 8 bits per channel.
func UnpackRGB565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// PixelAt reads the pixel at x, y of an RGB565 framebuffer. Out of range reads return
// transparent black.
func PixelAt(fb Framebuffer, x, y int) color.RGBA {
	if fb == nil || fb.Format() != PixelFormatRGB565 {
		return color.RGBA{}
	}
	if x < 0 || y < 0 || x >= fb.Width() || y >= fb.Height() {
		return color.RGBA{}
	}
	buf := fb.Buffer()
	off := y*fb.StrideBytes() + x*2
	if off < 0 || off+1 >= len(buf) {
		return color.RGBA{}
	}
	r, g, b := UnpackRGB565(uint16(buf[off]) | uint16(buf[off+1])<<8)
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
