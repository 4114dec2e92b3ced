package wordclock

import (
	"image/color"
	"testing"

	"presto/internal/haltest"
)

func TestBacklightRainbow(t *testing.T) {
	strip := haltest.NewLEDStrip(7)
	if err := Backlight(strip, false); err != nil {
		t.Fatal(err)
	}
	if !strip.Started {
		t.Fatal("strip not started")
	}
	if want := (color.RGBA{R: 128, A: 0xFF}); strip.Colors[0] != want {
		t.Fatalf("LED 0 = %v, want %v", strip.Colors[0], want)
	}
	seen := map[color.RGBA]bool{}
	for i, c := range strip.Colors {
		if seen[c] {
			t.Fatalf("LED %d repeats %v", i, c)
		}
		seen[c] = true
	}
}

func TestBacklightBoring(t *testing.T) {
	strip := haltest.NewLEDStrip(7)
	if err := Backlight(strip, true); err != nil {
		t.Fatal(err)
	}
	want := color.RGBA{R: 128, G: 128, B: 128, A: 0xFF}
	for i, c := range strip.Colors {
		if c != want {
			t.Fatalf("LED %d = %v, want %v", i, c, want)
		}
	}
}
