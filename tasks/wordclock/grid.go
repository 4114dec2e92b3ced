package wordclock

import (
	"fmt"

	"presto/gfx"
)

// Grid is the letter board, read left to right and top to bottom. Filler words pad the rows so
// every phrase can be found in order.
var Grid = []string{
	"presto", "p", "it", "i", "is", "m",
	"o", "quarter", "ronir",
	"ea", "twenty", "l", "five",
	"half", "lyco", "ten", "ok",
	"ed", "minutes", "xthi",
	"s", "to", "isxase", "past",
	"c", "four", "re", "seven", "t",
	"twelve", "xmsgfro",
	"m", "nine", "ar", "five", "tu",
	"two", "r", "eight", "ohav",
	"e", "eleven", "ani", "six",
	"ce", "three", "da", "one", "y",
	"all", "ten", "o'clock",
}

// brand is drawn in its own muted colour.
const brand = "presto"

// Palette colours highlighted words in the order they are matched.
var Palette = []gfx.Pen{
	gfx.CreatePen(220, 30, 30),   // red
	gfx.CreatePen(250, 165, 30),  // orange
	gfx.CreatePen(220, 215, 55),  // yellow
	gfx.CreatePen(0, 128, 40),    // green
	gfx.CreatePen(40, 64, 140),   // blue
	gfx.CreatePen(100, 40, 110),  // purple
	gfx.CreatePen(250, 100, 180), // pink
	gfx.CreatePen(100, 200, 250), // light blue
}

// Style holds the non-palette colours.
type Style struct {
	// Boring draws every highlighted word in Highlight instead of the palette.
	Boring    bool
	Highlight gfx.Pen
	Brand     gfx.Pen
	Off       gfx.Pen
}

// DefaultStyle is white highlights on a dim grey board.
func DefaultStyle(boring bool) Style {
	return Style{
		Boring:    boring,
		Highlight: gfx.CreatePen(200, 200, 200),
		Brand:     gfx.CreatePen(40, 40, 40),
		Off:       gfx.CreatePen(30, 30, 30),
	}
}

// match walks grid once, consuming phrase words as they come up. order[i] is the match index of
// grid word i, or -1. A phrase word that no longer occurs in the rest of the grid is dropped so it
// cannot hold up the words after it.
func match(grid, phrase []string) (order []int, dropped []string) {
	order = make([]int, len(grid))
	queue := phrase
	n := 0
	for i, w := range grid {
		order[i] = -1
		for len(queue) > 0 && !contains(grid[i:], queue[0]) {
			dropped = append(dropped, queue[0])
			queue = queue[1:]
		}
		if len(queue) > 0 && w == queue[0] {
			order[i] = n
			n++
			queue = queue[1:]
		}
	}
	return order, append(dropped, queue...)
}

func contains(words []string, w string) bool {
	for _, v := range words {
		if v == w {
			return true
		}
	}
	return false
}

// AssignColors returns one pen per grid word. Matched words take palette colours in match order,
// wrapping around when the palette runs out.
func AssignColors(grid, phrase []string, palette []gfx.Pen, style Style) []gfx.Pen {
	order, _ := match(grid, phrase)
	pens := make([]gfx.Pen, len(grid))
	for i, w := range grid {
		switch {
		case order[i] >= 0:
			if style.Boring || len(palette) == 0 {
				pens[i] = style.Highlight
			} else {
				pens[i] = palette[order[i]%len(palette)]
			}
		case w == brand:
			pens[i] = style.Brand
		default:
			pens[i] = style.Off
		}
	}
	return pens
}

// CheckGrid verifies that every phrase of the day can be spelled on grid.
func CheckGrid(grid []string) error {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			if _, dropped := match(grid, PhraseWords(h, m)); len(dropped) > 0 {
				return fmt.Errorf("wordclock: grid cannot spell %q at %02d:%02d (missing %q)",
					ApproxTime(h, m), h, m, dropped)
			}
		}
	}
	return nil
}
