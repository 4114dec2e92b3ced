//go:build tinygo && baremetal

package hal

import (
	"image/color"
	"machine"
	"sync"
	"time"

	"tinygo.org/x/drivers/ws2812"
)

type tinyGoDisplay struct {
	fb Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

type serialLogger struct {
	out machine.Serialer
}

func (l *serialLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.out.WriteByte(s[i])
	}
	l.out.WriteByte('\r')
	l.out.WriteByte('\n')
}

func (l *serialLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.out.WriteByte(b[i])
	}
	l.out.WriteByte('\r')
	l.out.WriteByte('\n')
}

// ws2812Refresh is how often the latched colours are re-sent down the chain.
const ws2812Refresh = 20 * time.Millisecond

type ws2812Strip struct {
	dev ws2812.Device

	mu      sync.Mutex
	colors  []color.RGBA
	frame   []color.RGBA
	started bool
}

func newWS2812Strip(pin machine.Pin, n int) *ws2812Strip {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &ws2812Strip{
		dev:    ws2812.New(pin),
		colors: make([]color.RGBA, n),
		frame:  make([]color.RGBA, n),
	}
}

func (s *ws2812Strip) Len() int { return len(s.colors) }

func (s *ws2812Strip) SetColor(i int, c color.RGBA) {
	if i < 0 || i >= len(s.colors) {
		return
	}
	s.mu.Lock()
	s.colors[i] = c
	s.mu.Unlock()
}

func (s *ws2812Strip) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return nil
	}
	s.started = true
	go func() {
		for {
			s.mu.Lock()
			copy(s.frame, s.colors)
			s.mu.Unlock()
			_ = s.dev.WriteColors(s.frame)
			time.Sleep(ws2812Refresh)
		}
	}()
	return nil
}
