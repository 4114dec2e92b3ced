// Package gfx draws onto a hal framebuffer the way the Presto firmware does: a stack of layers,
// a current layer and a current pen, and an explicit Update that composites and presents.
package gfx

import (
	"errors"
	"fmt"
	"image/color"

	"presto/hal"

	"tinygo.org/x/drivers"
)

var ErrUnsupportedFormat = errors.New("gfx: unsupported framebuffer format")

// Surface is a layered RGB565 canvas bound to a framebuffer.
//
// Layer 0 is opaque. Higher layers are overlays: Transparent pixels show the layers below.
// Surface satisfies drivers.Displayer so tinyfont and tinyterm can draw on it.
type Surface struct {
	fb     hal.Framebuffer
	w      int
	h      int
	layers [][]Pen

	layer int
	pen   Pen
}

var _ drivers.Displayer = (*Surface)(nil)

// NewSurface allocates the given number of layers (at least one) sized to fb.
func NewSurface(fb hal.Framebuffer, layers int) (*Surface, error) {
	if fb == nil {
		return nil, errors.New("gfx: nil framebuffer")
	}
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, ErrUnsupportedFormat
	}
	w, h := fb.Width(), fb.Height()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("gfx: invalid framebuffer geometry %dx%d", w, h)
	}
	if len(fb.Buffer()) < fb.StrideBytes()*h || fb.StrideBytes() < w*2 {
		return nil, errors.New("gfx: framebuffer buffer too small")
	}
	if layers < 1 {
		layers = 1
	}
	s := &Surface{fb: fb, w: w, h: h}
	for i := 0; i < layers; i++ {
		s.layers = append(s.layers, make([]Pen, w*h))
	}
	return s, nil
}

// Bounds reports the pixel size of the surface.
func (s *Surface) Bounds() (w, h int) { return s.w, s.h }

// Layers reports how many layers were allocated.
func (s *Surface) Layers() int { return len(s.layers) }

// SetLayer selects the layer drawing calls write to. Out of range values are clamped.
func (s *Surface) SetLayer(i int) {
	s.layer = clampInt(i, 0, len(s.layers)-1)
}

// Layer returns the active layer index.
func (s *Surface) Layer() int { return s.layer }

// SetPen selects the colour for Clear and text drawing.
func (s *Surface) SetPen(p Pen) { s.pen = p }

// Clear fills the active layer with the current pen.
func (s *Surface) Clear() {
	buf := s.layers[s.layer]
	p := s.pen
	for i := range buf {
		buf[i] = p
	}
}

// At returns the pen stored on layer at (x, y), or Transparent outside the surface.
func (s *Surface) At(layer, x, y int) Pen {
	if layer < 0 || layer >= len(s.layers) || x < 0 || x >= s.w || y < 0 || y >= s.h {
		return Transparent
	}
	return s.layers[layer][y*s.w+x]
}

// Plot writes one pixel with pen p on the active layer, clipped to the surface.
func (s *Surface) Plot(x, y int, p Pen) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return
	}
	s.layers[s.layer][y*s.w+x] = p
}

// Composite merges the layers into the framebuffer without presenting it.
func (s *Surface) Composite() {
	buf := s.fb.Buffer()
	stride := s.fb.StrideBytes()
	base := s.layers[0]
	for y := 0; y < s.h; y++ {
		row := y * stride
		for x := 0; x < s.w; x++ {
			i := y*s.w + x
			p := base[i]
			for l := len(s.layers) - 1; l > 0; l-- {
				if q := s.layers[l][i]; q != Transparent {
					p = q
					break
				}
			}
			off := row + x*2
			buf[off] = byte(p)
			buf[off+1] = byte(p >> 8)
		}
	}
}

// Update composites all layers and presents the frame.
func (s *Surface) Update() error {
	s.Composite()
	return s.fb.Present()
}

// Size implements drivers.Displayer.
func (s *Surface) Size() (x, y int16) { return int16(s.w), int16(s.h) }

// SetPixel implements drivers.Displayer on the active layer.
func (s *Surface) SetPixel(x, y int16, c color.RGBA) {
	p := CreatePen(c.R, c.G, c.B)
	if p == Transparent && s.layer > 0 {
		p = nearBlack
	}
	s.Plot(int(x), int(y), p)
}

// Display implements drivers.Displayer.
func (s *Surface) Display() error { return s.Update() }

// FillRectangle fills a clipped rectangle on the active layer.
func (s *Surface) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x0 := clampInt(int(x), 0, s.w)
	y0 := clampInt(int(y), 0, s.h)
	x1 := clampInt(int(x)+int(width), 0, s.w)
	y1 := clampInt(int(y)+int(height), 0, s.h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}
	p := CreatePen(c.R, c.G, c.B)
	buf := s.layers[s.layer]
	for py := y0; py < y1; py++ {
		row := py * s.w
		for px := x0; px < x1; px++ {
			buf[row+px] = p
		}
	}
	return nil
}

// SetScroll is a no-op: the panel has no hardware scroll. Terminals must use software scroll.
func (s *Surface) SetScroll(line int16) {}

// SetRotation only accepts the native orientation.
func (s *Surface) SetRotation(rotation drivers.Rotation) error {
	if rotation != drivers.Rotation0 {
		return hal.ErrNotImplemented
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
