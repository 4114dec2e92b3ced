// Package aquarium renders a fish tank: a static background, fish drifting over it and an
// optional clock.
package aquarium

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"presto/clock"
	"presto/gfx"
	"presto/internal/logger"

	"tinygo.org/x/tinyfont/proggy"
)

const (
	backgroundFile = "fish_bg.png"

	timeScale   = 4
	timeBase    = 94
	shadowShift = 2
)

// Species lists the sprite sets, one fish each.
var Species = []string{"red", "blue", "purple"}

// Config wires a Task to its surroundings.
type Config struct {
	// Surface must have at least two layers: the background goes on 0, everything else on 1.
	Surface *gfx.Surface
	// Assets holds fish_bg.png and the fish_<species>_{left,right}.png sprites.
	Assets fs.FS
	// Time is nil when the clock overlay is off.
	Time   *clock.Source
	Clock  clock.Clock
	Rand   Rand
	Logger *logger.Logger
}

type Task struct {
	surf   *gfx.Surface
	src    *clock.Source
	clk    clock.Clock
	rng    Rand
	log    *logger.Logger
	bounds Bounds

	fish []*Fish

	face   *gfx.Typeface
	yellow gfx.Pen
	white  gfx.Pen

	timeStr string

	frames  int
	lastFPS time.Time
}

// New loads the artwork, paints the background once and spawns the fish.
func New(cfg Config) (*Task, error) {
	if cfg.Surface == nil || cfg.Assets == nil || cfg.Rand == nil {
		return nil, errors.New("aquarium: surface, assets and random source are required")
	}
	if cfg.Surface.Layers() < 2 {
		return nil, fmt.Errorf("aquarium: need 2 layers, surface has %d", cfg.Surface.Layers())
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.System{}
	}

	w, h := cfg.Surface.Bounds()
	t := &Task{
		surf:   cfg.Surface,
		src:    cfg.Time,
		clk:    cfg.Clock,
		rng:    cfg.Rand,
		log:    cfg.Logger,
		bounds: Bounds{Width: w, Height: h, SpriteSize: SpriteSize},
		face:   gfx.NewTypeface(&proggy.TinySZ8pt7b, gfx.Transform{Scale: timeScale}),
		yellow: gfx.CreatePen(255, 205, 0),
		white:  gfx.CreatePen(255, 255, 255),
	}

	bg, err := gfx.LoadPNG(cfg.Assets, backgroundFile)
	if err != nil {
		return nil, fmt.Errorf("aquarium: %w", err)
	}
	t.surf.SetLayer(0)
	t.surf.DrawImage(bg, 0, 0)
	if err := t.surf.Update(); err != nil {
		return nil, fmt.Errorf("aquarium: present background: %w", err)
	}

	for _, name := range Species {
		left, err := gfx.LoadPNG(cfg.Assets, "fish_"+name+"_left.png")
		if err != nil {
			return nil, fmt.Errorf("aquarium: %w", err)
		}
		right, err := gfx.LoadPNG(cfg.Assets, "fish_"+name+"_right.png")
		if err != nil {
			return nil, fmt.Errorf("aquarium: %w", err)
		}
		t.fish = append(t.fish, NewFish(t.rng, t.bounds, left, right))
	}

	if t.src != nil {
		t.timeStr = t.src.Current().String()
	}
	t.lastFPS = t.clk.Now()
	return t, nil
}

// Fish exposes the simulated fish.
func (t *Task) Fish() []*Fish { return t.fish }

// TimeString is the clock text drawn on the last frame, empty when the overlay is off.
func (t *Task) TimeString() string { return t.timeStr }

// Step draws one frame. The tank is never throttled, so the idle hint is always zero.
func (t *Task) Step() (time.Duration, error) {
	t.surf.SetLayer(1)
	t.surf.SetPen(gfx.Transparent)
	t.surf.Clear()

	if t.src != nil {
		t.timeStr = t.src.Current().String()
		t.drawTime()
	}

	for _, f := range t.fish {
		f.Advance(t.bounds, t.rng)
		f.Draw(t.surf)
	}

	if err := t.surf.Update(); err != nil {
		return 0, fmt.Errorf("aquarium: present: %w", err)
	}

	t.frames++
	if now := t.clk.Now(); now.Sub(t.lastFPS) >= time.Second {
		t.log.Printf("FPS: %d", t.frames)
		t.lastFPS = now
		t.frames = 0
	}
	return 0, nil
}

func (t *Task) drawTime() {
	w, _ := t.face.Measure(t.timeStr)
	cx := t.bounds.Width/2 - w/2

	t.surf.SetPen(t.white)
	t.face.Text(t.surf, t.timeStr, cx+shadowShift, timeBase+shadowShift)

	t.surf.SetPen(t.yellow)
	t.face.Text(t.surf, t.timeStr, cx, timeBase)
}
