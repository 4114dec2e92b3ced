package hal

import (
	"image/color"
	"sync"
)

// memLEDStrip latches colours in memory. The host window reads them back to draw the backlight
// bar; TinyGo host targets have nothing to drive.
type memLEDStrip struct {
	mu      sync.Mutex
	colors  []color.RGBA
	started bool
}

func newMemLEDStrip(n int) *memLEDStrip {
	return &memLEDStrip{colors: make([]color.RGBA, n)}
}

func (s *memLEDStrip) Len() int { return len(s.colors) }

func (s *memLEDStrip) SetColor(i int, c color.RGBA) {
	if i < 0 || i >= len(s.colors) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.colors[i] = c
}

func (s *memLEDStrip) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = true
	return nil
}

func (s *memLEDStrip) snapshot(dst []color.RGBA) []color.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return dst[:0]
	}
	return append(dst[:0], s.colors...)
}
