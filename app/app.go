// Package app wires a scene to a board: it brings up the network and clock, builds the selected
// task and drives it.
package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"presto/assets"
	"presto/clock"
	"presto/gfx"
	"presto/hal"
	"presto/internal/logger"
	"presto/tasks/aquarium"
	"presto/tasks/wordclock"
)

// Task is one scene. Step draws at most one frame and returns how long the caller may idle
// before the next call.
type Task interface {
	Step() (time.Duration, error)
}

// New builds the default program and returns its per-tick step function.
func New(h hal.HAL) (func() error, error) {
	return NewWithConfig(h, DefaultConfig())
}

// NewWithConfig builds the configured program and returns its per-tick step function. Host
// runners call it at their own rate; the idle hint is dropped because tasks rate-limit themselves.
func NewWithConfig(h hal.HAL, cfg Config) (func() error, error) {
	t, err := newTask(h, cfg, clock.System{})
	if err != nil {
		return nil, err
	}
	return func() error {
		_, err := t.Step()
		return err
	}, nil
}

// Run starts the default program and never returns (TinyGo entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, DefaultConfig())
}

// RunWithConfig runs cfg until the board is reset. Any failure ends on the panic screen.
func RunWithConfig(h hal.HAL, cfg Config) {
	defer func() {
		if r := recover(); r != nil {
			showPanic(h, r, captureStack())
		}
	}()

	clk := clock.System{}
	t, err := newTask(h, cfg, clk)
	if err != nil {
		panic(err)
	}
	if err := Loop(context.Background(), t, clk); err != nil {
		panic(err)
	}
}

// Loop steps t until it fails or ctx is done, sleeping on clk whenever t asks to idle.
func Loop(ctx context.Context, t Task, clk clock.Clock) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		idle, err := t.Step()
		if err != nil {
			return err
		}
		if idle > 0 {
			clk.Sleep(idle)
		}
	}
}

func newTask(h hal.HAL, cfg Config, clk clock.Clock) (Task, error) {
	if h == nil {
		return nil, errors.New("app: nil hal")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	log := logger.New(h.Logger(), cfg.Program)

	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return nil, errors.New("app: no display")
	}
	layers := 1
	if cfg.Program == ProgramAquarium {
		layers = 2
	}
	surf, err := gfx.NewSurface(disp.Framebuffer(), layers)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	var src *clock.Source
	if cfg.needsTime() {
		src = bringUpTime(h, cfg, clk, newConsole(surf, log), log)
	}

	switch cfg.Program {
	case ProgramWordClock:
		return wordclock.New(wordclock.Config{
			Surface: surf,
			Time:    src,
			Clock:   clk,
			LEDs:    h.LEDs(),
			Boring:  cfg.Boring,
			Logger:  log,
		})
	default:
		seed := cfg.Seed
		if seed == 0 {
			seed = clk.Now().UnixNano()
		}
		return aquarium.New(aquarium.Config{
			Surface: surf,
			Assets:  assets.FS,
			Time:    src,
			Clock:   clk,
			Rand:    rand.New(rand.NewSource(seed)),
			Logger:  log,
		})
	}
}

// bringUpTime connects the network and makes the first time sync. Failures are logged and the
// source falls back to the RTC, so a board without a network still shows a clock.
func bringUpTime(h hal.HAL, cfg Config, clk clock.Clock, con *console, log *logger.Logger) *clock.Source {
	net := h.Network()

	con.Println("Connecting...")
	if net != nil {
		if err := net.Connect(); err != nil {
			log.Printf("Unable to connect: %v", err)
		}
	}

	src := clock.NewSource(net, h.RTC(), clk, log, clock.SourceConfig{UTCOffset: cfg.UTCOffset})

	con.Println("Getting time...")
	src.Current()
	return src
}
