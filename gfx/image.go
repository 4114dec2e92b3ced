package gfx

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io"
	"io/fs"
)

// alphaThreshold is the cut-off below which a source pixel is left undrawn; the panel has no blending.
const alphaThreshold = 0x80

// Image is a decoded bitmap ready to blit: RGB565 pixels plus a coverage mask.
type Image struct {
	w      int
	h      int
	pix    []Pen
	opaque []bool
}

// Bounds reports the image size in pixels.
func (img *Image) Bounds() (w, h int) { return img.w, img.h }

// DecodeImage decodes a PNG (or any registered format) into an Image.
func DecodeImage(r io.Reader) (*Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(src)
}

// LoadPNG opens name in fsys and decodes it.
func LoadPNG(fsys fs.FS, name string) (*Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("gfx: open %s: %w", name, err)
	}
	defer f.Close()

	img, err := DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("gfx: decode %s: %w", name, err)
	}
	return img, nil
}

// FromImage converts a standard library image.
func FromImage(src image.Image) (*Image, error) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, errors.New("gfx: invalid image geometry")
	}
	img := &Image{
		w:      w,
		h:      h,
		pix:    make([]Pen, w*h),
		opaque: make([]bool, w*h),
	}

	switch s := src.(type) {
	case *image.NRGBA:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				i := s.PixOffset(b.Min.X+x, b.Min.Y+y)
				j := y*w + x
				img.pix[j] = CreatePen(s.Pix[i+0], s.Pix[i+1], s.Pix[i+2])
				img.opaque[j] = s.Pix[i+3] >= alphaThreshold
			}
		}
		return img, nil
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			j := y*w + x
			img.pix[j] = CreatePen(c.R, c.G, c.B)
			img.opaque[j] = c.A >= alphaThreshold
		}
	}
	return img, nil
}

// DrawImage blits img with its top-left corner at (x, y) on the active layer, clipped.
// Transparent image pixels leave the layer untouched.
func (s *Surface) DrawImage(img *Image, x, y int) {
	if img == nil {
		return
	}
	buf := s.layers[s.layer]
	overlay := s.layer > 0
	for iy := 0; iy < img.h; iy++ {
		py := y + iy
		if py < 0 || py >= s.h {
			continue
		}
		for ix := 0; ix < img.w; ix++ {
			px := x + ix
			if px < 0 || px >= s.w {
				continue
			}
			j := iy*img.w + ix
			if !img.opaque[j] {
				continue
			}
			p := img.pix[j]
			if overlay && p == Transparent {
				p = nearBlack
			}
			buf[py*s.w+px] = p
		}
	}
}
