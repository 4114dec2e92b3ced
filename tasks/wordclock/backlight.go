package wordclock

import (
	"image/color"
	"math"

	"presto/hal"

	"github.com/lucasb-eyer/go-colorful"
)

const backlightValue = 0.5

// Backlight spreads a rainbow over the strip at half brightness, or plain white in boring mode,
// and starts it refreshing.
func Backlight(strip hal.LEDStrip, boring bool) error {
	if strip == nil {
		return nil
	}
	n := strip.Len()
	for i := 0; i < n; i++ {
		strip.SetColor(i, backlightColor(i, n, boring))
	}
	return strip.Start()
}

func backlightColor(i, n int, boring bool) color.RGBA {
	hue, sat := 0.0, 0.0
	if !boring {
		hue = math.Mod(float64(i)/float64(n)*360, 360)
		sat = 1
	}
	r, g, b := colorful.Hsv(hue, sat, backlightValue).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
