package main

import (
	"image"
	"image/color"
)

const spriteSize = 30

var fishColors = map[string]color.NRGBA{
	"red":    {R: 220, G: 50, B: 40, A: 255},
	"blue":   {R: 40, G: 110, B: 220, A: 255},
	"purple": {R: 150, G: 60, B: 190, A: 255},
}

var (
	waterTop    = color.NRGBA{R: 20, G: 90, B: 160, A: 255}
	waterBottom = color.NRGBA{R: 5, G: 30, B: 80, A: 255}
	sand        = color.NRGBA{R: 194, G: 170, B: 110, A: 255}
	sandShade   = color.NRGBA{R: 170, G: 148, B: 92, A: 255}
	weed        = color.NRGBA{R: 30, G: 130, B: 60, A: 255}
	bubble      = color.NRGBA{R: 200, G: 230, B: 255, A: 255}
	eye         = color.NRGBA{R: 20, G: 20, B: 20, A: 255}
)

// sway offsets a seaweed stalk as it rises.
var sway = [8]int{0, 1, 2, 1, 0, -1, -2, -1}

type stalk struct{ x, height int }

var stalks = []stalk{{30, 70}, {42, 45}, {180, 90}, {215, 60}}

type ring struct{ x, y, r int }

var bubbles = []ring{{60, 140, 3}, {66, 120, 2}, {170, 60, 4}, {176, 40, 2}, {120, 170, 3}}

func background(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	floor := h - 40
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if y >= floor {
				c := sand
				if (x+y)%7 == 0 {
					c = sandShade
				}
				img.SetNRGBA(x, y, c)
				continue
			}
			img.SetNRGBA(x, y, lerp(waterTop, waterBottom, y, floor))
		}
	}

	for _, s := range stalks {
		for y := floor - s.height; y < floor; y++ {
			cx := s.x + sway[(y/3)%8]
			for x := cx - 2; x <= cx+2; x++ {
				if x >= 0 && x < w {
					img.SetNRGBA(x, y, weed)
				}
			}
		}
	}

	for _, b := range bubbles {
		for y := b.y - b.r - 1; y <= b.y+b.r+1; y++ {
			for x := b.x - b.r - 1; x <= b.x+b.r+1; x++ {
				d := (x-b.x)*(x-b.x) + (y-b.y)*(y-b.y)
				if d >= (b.r-1)*(b.r-1) && d <= b.r*b.r {
					img.SetNRGBA(x, y, bubble)
				}
			}
		}
	}
	return img
}

// fish draws a right-facing fish, mirrored when left is set. Pixels outside the fish are fully
// transparent.
func fish(body color.NRGBA, left bool) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, spriteSize, spriteSize))
	belly := lerp(body, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, 2, 5)

	for y := 0; y < spriteSize; y++ {
		for x := 0; x < spriteSize; x++ {
			c, ok := fishPixel(x, y, body, belly)
			if !ok {
				continue
			}
			px := x
			if left {
				px = spriteSize - 1 - x
			}
			img.SetNRGBA(px, y, c)
		}
	}
	return img
}

func fishPixel(x, y int, body, belly color.NRGBA) (color.NRGBA, bool) {
	if (x == 22 || x == 23) && (y == 12 || y == 13) {
		return eye, true
	}
	dx, dy := x-17, y-15
	if dx*dx*49+dy*dy*100 <= 4900 {
		if y > 17 {
			return belly, true
		}
		return body, true
	}
	// tail
	if x >= 2 && x <= 8 && abs(dy) <= 8-x+2 {
		return body, true
	}
	// dorsal fin
	if y >= 5 && y <= 8 && x >= 13 && x <= 19 && x-13 <= 2*(y-5)+1 {
		return body, true
	}
	return color.NRGBA{}, false
}

func lerp(a, b color.NRGBA, num, den int) color.NRGBA {
	mix := func(p, q uint8) uint8 {
		return uint8(int(p) + (int(q)-int(p))*num/den)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
