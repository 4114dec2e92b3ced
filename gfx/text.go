package gfx

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Transform maps glyph pixels onto the surface: an integer scale about the text origin followed
// by a translation. The zero value behaves as Identity.
type Transform struct {
	Scale  int16
	DX, DY int16
}

// Identity leaves glyphs untouched.
func Identity() Transform { return Transform{Scale: 1} }

func (t Transform) scale() int16 {
	if t.Scale < 1 {
		return 1
	}
	return t.Scale
}

// Typeface is an immutable font plus transform, built once at startup and shared by draw calls.
// tinyfont glyphs are 1bpp, so rendering is never antialiased.
type Typeface struct {
	font      tinyfont.Fonter
	transform Transform
}

// NewTypeface binds a font to a transform.
func NewTypeface(font tinyfont.Fonter, t Transform) *Typeface {
	if t.Scale < 1 {
		t.Scale = 1
	}
	return &Typeface{font: font, transform: t}
}

// Measure returns the advance width and line height of s in surface pixels.
func (tf *Typeface) Measure(s string) (w, h int) {
	if tf == nil || tf.font == nil {
		return 0, 0
	}
	k := int(tf.transform.scale())
	_, outbox := tinyfont.LineWidth(tf.font, s)
	return int(outbox) * k, int(tf.font.GetYAdvance()) * k
}

// Text draws s with the surface's current pen. (x, y) is the left end of the baseline.
func (tf *Typeface) Text(s *Surface, str string, x, y int) {
	if tf == nil || tf.font == nil || s == nil {
		return
	}
	k := tf.transform.scale()
	d := &scaledDisplayer{
		base:  s,
		ox:    int16(x),
		oy:    int16(y),
		dx:    tf.transform.DX,
		dy:    tf.transform.DY,
		scale: k,
	}
	tinyfont.WriteLine(d, tf.font, int16(x), int16(y), str, s.pen.RGBA())
}

// scaledDisplayer scales glyph pixels about the text origin, each becoming a scale x scale block,
// then translates them.
type scaledDisplayer struct {
	base   *Surface
	ox, oy int16
	dx, dy int16
	scale  int16
}

var _ drivers.Displayer = (*scaledDisplayer)(nil)

func (d *scaledDisplayer) Size() (x, y int16) { return d.base.Size() }

func (d *scaledDisplayer) SetPixel(x, y int16, c color.RGBA) {
	px := d.ox + (x-d.ox)*d.scale + d.dx
	py := d.oy + (y-d.oy)*d.scale + d.dy
	for j := int16(0); j < d.scale; j++ {
		for i := int16(0); i < d.scale; i++ {
			d.base.SetPixel(px+i, py+j, c)
		}
	}
}

func (d *scaledDisplayer) Display() error { return nil }
