package gfx

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestLoadPNGAndDrawWithTransparency(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 1, color.NRGBA{B: 255, A: 255})

	fsys := fstest.MapFS{"sprite.png": {Data: encodePNG(t, src)}}
	img, err := LoadPNG(fsys, "sprite.png")
	if err != nil {
		t.Fatalf("LoadPNG: %v", err)
	}
	if w, h := img.Bounds(); w != 2 || h != 2 {
		t.Fatalf("expected 2x2, got %dx%d", w, h)
	}

	s, err := NewSurface(newTestFB(4, 4), 2)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	gray := CreatePen(40, 40, 40)
	s.SetLayer(1)
	s.SetPen(gray)
	s.Clear()
	s.DrawImage(img, 1, 1)

	if got := s.At(1, 1, 1); got != CreatePen(255, 0, 0) {
		t.Fatalf("expected red at (1,1), got %#04x", got)
	}
	if got := s.At(1, 2, 2); got != CreatePen(0, 0, 255) {
		t.Fatalf("expected blue at (2,2), got %#04x", got)
	}
	if got := s.At(1, 2, 1); got != gray {
		t.Fatalf("transparent sprite pixel must leave layer untouched, got %#04x", got)
	}
}

func TestDrawImageClipsAtEdges(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			src.SetNRGBA(x, y, color.NRGBA{G: 255, A: 255})
		}
	}
	img, err := FromImage(src)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	s, err := NewSurface(newTestFB(4, 4), 1)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	s.DrawImage(img, -2, 3)
	if got := s.At(0, 0, 3); got != CreatePen(0, 255, 0) {
		t.Fatalf("expected clipped blit at (0,3), got %#04x", got)
	}
	if got := s.At(0, 1, 3); got != Transparent {
		t.Fatalf("expected untouched pixel at (1,3), got %#04x", got)
	}
}

func TestLoadPNGMissing(t *testing.T) {
	if _, err := LoadPNG(fstest.MapFS{}, "nope.png"); err == nil {
		t.Fatal("expected error for missing asset")
	}
}
