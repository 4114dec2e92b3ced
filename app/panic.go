package app

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"presto/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	panicLineHeight = 10
	panicBaseline   = 7
)

// showPanic logs the failure, paints it on the panel and parks the board.
func showPanic(h hal.HAL, v any, stack []byte) {
	lines := panicLines(v, stack)
	if l := h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}
	if disp := h.Display(); disp != nil {
		if fb := disp.Framebuffer(); fb != nil {
			renderPanic(fb, lines)
		}
	}
	select {}
}

func panicLines(v any, stack []byte) []string {
	lines := []string{
		"Presto panic:",
		fmt.Sprintf("%v", v),
	}
	if len(stack) == 0 {
		return append(lines, "stack: unavailable")
	}
	lines = append(lines, "stack:")
	for _, line := range strings.Split(string(stack), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// renderPanic draws lines black on white, wrapped to the panel width, until the panel is full.
func renderPanic(fb hal.Framebuffer, lines []string) {
	fb.ClearRGB(255, 255, 255)

	font := &proggy.TinySZ8pt7b
	_, cw := tinyfont.LineWidth(font, "0")
	if cw == 0 {
		_ = fb.Present()
		return
	}
	cols := fb.Width() / int(cw)
	if cols <= 0 {
		cols = 1
	}

	d := panicDisplay{fb: fb}
	fg := color.RGBA{A: 0xFF}
	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+panicLineHeight > fb.Height() {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font, 0, int16(y+panicBaseline), chunk, fg)
			y += panicLineHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

// panicDisplay writes straight into the framebuffer, bypassing any surface state.
type panicDisplay struct {
	fb hal.Framebuffer
}

func (d panicDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d panicDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	buf := d.fb.Buffer()
	off := iy*d.fb.StrideBytes() + ix*2
	if off+1 >= len(buf) {
		return
	}
	pixel := uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d panicDisplay) Display() error { return nil }

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
