package wordclock

import "testing"

func TestLayoutShippedGrid(t *testing.T) {
	cells := Layout(Grid, func(string) int { return 8 }, 240, DefaultMetrics)
	if len(cells) != 169 {
		t.Fatalf("expected 169 letters, got %d", len(cells))
	}
	if c := cells[0]; c.Letter != "P" || c.X != 12 || c.Y != 22 || c.Word != 0 {
		t.Fatalf("first cell %+v", c)
	}
	if c := cells[13]; c.X != 12 || c.Y != 39 {
		t.Fatalf("expected a 13 letter row, 14th cell at %+v", c)
	}
	last := cells[len(cells)-1]
	if last.Letter != "K" || last.Y != 22+12*17 || last.Word != len(Grid)-1 {
		t.Fatalf("last cell %+v", last)
	}
	for i, c := range cells {
		if c.X+8 > 230 {
			t.Fatalf("cell %d crosses the margin: %+v", i, c)
		}
	}
}

func TestLayoutWrapsOnMeasuredWidth(t *testing.T) {
	widths := map[string]int{"A": 5, "W": 30}
	cells := Layout([]string{"aw"}, func(s string) int { return widths[s] }, 50, Metrics{StartX: 0, StartY: 10, LineSpace: 12, LetterSpace: 17, Margin: 5})
	if len(cells) != 2 {
		t.Fatalf("got %d cells", len(cells))
	}
	if cells[0].X != 0 || cells[0].Y != 10 {
		t.Fatalf("A at %+v", cells[0])
	}
	if cells[1].X != 0 || cells[1].Y != 22 {
		t.Fatalf("W should wrap, got %+v", cells[1])
	}
}
