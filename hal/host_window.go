//go:build !tinygo && cgo

package hal

import (
	"image"
	"image/color"

	"presto/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// ledBarHeight is the strip under the panel that shows the backlight LEDs.
const ledBarHeight = 12

// RunWindow starts a desktop window that displays the framebuffer and the backlight LEDs.
// It blocks until the window closes or the app step fails.
func RunWindow(cfg HostConfig, newApp func(HAL) (func() error, error)) error {
	h := newHost(cfg)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle(buildinfo.Banner())
	ebiten.SetWindowSize(h.fb.w*2, (h.fb.h+ledBarHeight)*2)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	leds    []color.RGBA
	step    func() error
}

func (g *hostGame) Update() error {
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.w || g.img.Bounds().Dy() != fb.h {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.w, fb.h))
		g.scratch = make([]byte, len(fb.buf))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.w, fb.h)
	}

	fb.snapshotRGB565(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := unpackRGB565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)

	g.drawLEDs(screen)
}

func (g *hostGame) drawLEDs(screen *ebiten.Image) {
	g.leds = g.h.leds.snapshot(g.leds)
	if len(g.leds) == 0 {
		return
	}
	w := g.h.fb.w / len(g.leds)
	y := g.h.fb.h
	for i, c := range g.leds {
		c.A = 0xFF
		sub := screen.SubImage(image.Rect(i*w+1, y+2, (i+1)*w-1, y+ledBarHeight-2)).(*ebiten.Image)
		sub.Fill(c)
	}
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.w, g.h.fb.h + ledBarHeight
}
