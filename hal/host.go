//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

const (
	// Presto renders at half resolution (240x240) unless full_res is requested.
	prestoWidth  = 240
	prestoHeight = 240

	prestoBacklightLEDs = 7
)

// HostConfig selects host-side stand-ins for the board capabilities.
type HostConfig struct {
	// NTPServer is queried for network time. Empty means DefaultNTPServer.
	NTPServer string
}

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	net    Network
	rtc    *softRTC
	leds   *memLEDStrip
}

// New returns a host HAL implementation with default settings.
func New() HAL {
	return newHost(HostConfig{})
}

func newHost(cfg HostConfig) *hostHAL {
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		fb:     newHostFramebuffer(prestoWidth, prestoHeight),
		net:    newNTPNetwork(cfg.NTPServer),
		rtc:    newSoftRTC(),
		leds:   newMemLEDStrip(prestoBacklightLEDs),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Network() Network { return h.net }
func (h *hostHAL) RTC() RTC         { return h.rtc }
func (h *hostHAL) LEDs() LEDStrip   { return h.leds }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
