// Package wordclock shows the time as highlighted words on a fixed board of letters.
package wordclock

import (
	"errors"
	"fmt"
	"time"

	"presto/clock"
	"presto/gfx"
	"presto/hal"
	"presto/internal/logger"

	"tinygo.org/x/tinyfont/proggy"
)

// Interval is how often the board is redrawn.
const Interval = 60 * time.Second

const letterScale = 2

type Config struct {
	Surface *gfx.Surface
	Time    *clock.Source
	Clock   clock.Clock
	// LEDs is the backlight; nil leaves it alone.
	LEDs   hal.LEDStrip
	Boring bool
	Logger *logger.Logger
	// Grid defaults to the shipped board.
	Grid []string
}

type Task struct {
	surf *gfx.Surface
	src  *clock.Source
	clk  clock.Clock
	log  *logger.Logger

	grid  []string
	style Style
	face  *gfx.Typeface
	cells []Cell
	black gfx.Pen

	drawn bool
	last  time.Time
	words []string
}

// New validates the board, lights the backlight and lays out the letters. Nothing is drawn until
// the first Step.
func New(cfg Config) (*Task, error) {
	if cfg.Surface == nil || cfg.Time == nil {
		return nil, errors.New("wordclock: surface and time source are required")
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.System{}
	}
	if cfg.Grid == nil {
		cfg.Grid = Grid
	}
	if err := CheckGrid(cfg.Grid); err != nil {
		return nil, err
	}
	if err := Backlight(cfg.LEDs, cfg.Boring); err != nil {
		return nil, fmt.Errorf("wordclock: backlight: %w", err)
	}

	t := &Task{
		surf:  cfg.Surface,
		src:   cfg.Time,
		clk:   cfg.Clock,
		log:   cfg.Logger,
		grid:  cfg.Grid,
		style: DefaultStyle(cfg.Boring),
		face:  gfx.NewTypeface(&proggy.TinySZ8pt7b, gfx.Transform{Scale: letterScale}),
		black: gfx.CreatePen(0, 0, 0),
	}
	w, _ := t.surf.Bounds()
	measure := func(s string) int {
		lw, _ := t.face.Measure(s)
		return lw
	}
	t.cells = Layout(t.grid, measure, w, DefaultMetrics)
	return t, nil
}

// Words is the phrase on the board, nil before the first draw.
func (t *Task) Words() []string { return t.words }

// Cells is the letter layout.
func (t *Task) Cells() []Cell { return t.cells }

// Step redraws the board when a minute has passed since the last draw and reports how long the
// caller may sleep before asking again.
func (t *Task) Step() (time.Duration, error) {
	now := t.clk.Now()
	if t.drawn {
		if wait := Interval - now.Sub(t.last); wait > 0 {
			return wait, nil
		}
	}
	t.drawn = true
	t.last = now

	wt := t.src.Current()
	t.words = PhraseWords(wt.Hour12(), wt.Minute)
	t.log.Printf("%s - %v", wt, t.words)

	if err := t.draw(); err != nil {
		return 0, err
	}
	return Interval, nil
}

func (t *Task) draw() error {
	t.surf.SetLayer(0)
	t.surf.SetPen(t.black)
	t.surf.Clear()

	pens := AssignColors(t.grid, t.words, Palette, t.style)
	for _, c := range t.cells {
		t.surf.SetPen(pens[c.Word])
		t.face.Text(t.surf, c.Letter, c.X, c.Y)
	}

	if err := t.surf.Update(); err != nil {
		return fmt.Errorf("wordclock: present: %w", err)
	}
	return nil
}
