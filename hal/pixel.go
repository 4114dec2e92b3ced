package hal

func packRGB565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

func unpackRGB565(p uint16) (r, g, b uint8) {
	r = uint8(uint32(p>>11&0x1F) * 255 / 31)
	g = uint8(uint32(p>>5&0x3F) * 255 / 63)
	b = uint8(uint32(p&0x1F) * 255 / 31)
	return r, g, b
}

// pixelBuffer is the memory behind every framebuffer: packed rows of little-endian RGB565.
type pixelBuffer struct {
	w, h int
	buf  []byte
}

func newPixelBuffer(w, h int) pixelBuffer {
	return pixelBuffer{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (p *pixelBuffer) Width() int          { return p.w }
func (p *pixelBuffer) Height() int         { return p.h }
func (p *pixelBuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (p *pixelBuffer) StrideBytes() int    { return p.w * 2 }
func (p *pixelBuffer) Buffer() []byte      { return p.buf }

func (p *pixelBuffer) ClearRGB(r, g, b uint8) {
	px := packRGB565(r, g, b)
	for i := 0; i+1 < len(p.buf); i += 2 {
		p.buf[i] = byte(px)
		p.buf[i+1] = byte(px >> 8)
	}
}
