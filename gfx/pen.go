package gfx

import "image/color"

// Pen is an RGB565 colour. On overlay layers the zero Pen is transparent.
type Pen uint16

// Transparent clears overlay pixels so lower layers show through. On the base layer it is black.
const Transparent Pen = 0

// nearBlack stands in for opaque black on overlay layers, where black would be transparent.
const nearBlack Pen = 0x0020

// CreatePen packs an RGB triple into a Pen.
func CreatePen(r, g, b uint8) Pen {
	return Pen((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

// RGBA expands the pen back to 8 bits per channel.
func (p Pen) RGBA() color.RGBA {
	rr := (uint16(p) >> 11) & 0x1F
	gg := (uint16(p) >> 5) & 0x3F
	bb := uint16(p) & 0x1F
	return color.RGBA{
		R: uint8((rr * 255) / 31),
		G: uint8((gg * 255) / 63),
		B: uint8((bb * 255) / 31),
		A: 0xFF,
	}
}
