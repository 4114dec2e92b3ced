package wordclock

import "strings"

// Metrics places letters on the board. X and Y of a cell are the left end of the text baseline.
type Metrics struct {
	StartX      int
	StartY      int
	LineSpace   int
	LetterSpace int
	Margin      int
}

// DefaultMetrics fits the 13x13 board on a 240 pixel panel.
var DefaultMetrics = Metrics{StartX: 12, StartY: 22, LineSpace: 17, LetterSpace: 17, Margin: 10}

// Cell is one upper-case letter of the board.
type Cell struct {
	Letter string
	X, Y   int
	// Word indexes the grid word the letter belongs to.
	Word int
}

// Layout flows the grid letters into rows, starting a new row whenever the next letter would
// cross the right margin. measure returns a letter's drawn width.
func Layout(grid []string, measure func(string) int, width int, m Metrics) []Cell {
	var cells []Cell
	x, y := m.StartX, m.StartY
	for wi, word := range grid {
		for _, r := range word {
			letter := strings.ToUpper(string(r))
			if x+measure(letter) > width-m.Margin {
				x = m.StartX
				y += m.LineSpace
			}
			cells = append(cells, Cell{Letter: letter, X: x, Y: y, Word: wi})
			x += m.LetterSpace
		}
	}
	return cells
}
