// Package haltest provides in-memory hal implementations for tests.
package haltest

import (
	"image/color"
	"time"

	"presto/hal"
)

// Framebuffer is an RGB565 buffer that counts presents.
type Framebuffer struct {
	W, H     int
	Buf      []byte
	Presents int
	Err      error
}

func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{W: w, H: h, Buf: make([]byte, w*h*2)}
}

func (f *Framebuffer) Width() int              { return f.W }
func (f *Framebuffer) Height() int             { return f.H }
func (f *Framebuffer) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *Framebuffer) StrideBytes() int        { return f.W * 2 }
func (f *Framebuffer) Buffer() []byte          { return f.Buf }

func (f *Framebuffer) ClearRGB(r, g, b uint8) {
	p := uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
	for i := 0; i+1 < len(f.Buf); i += 2 {
		f.Buf[i] = byte(p)
		f.Buf[i+1] = byte(p >> 8)
	}
}

func (f *Framebuffer) Present() error {
	if f.Err != nil {
		return f.Err
	}
	f.Presents++
	return nil
}

// Pixel returns the raw RGB565 value at (x, y).
func (f *Framebuffer) Pixel(x, y int) uint16 {
	off := y*f.W*2 + x*2
	return uint16(f.Buf[off]) | uint16(f.Buf[off+1])<<8
}

// Snapshot copies the buffer.
func (f *Framebuffer) Snapshot() []byte {
	return append([]byte(nil), f.Buf...)
}

// Network answers Time from Now unless Err is set.
type Network struct {
	Now      func() time.Time
	Err      error
	Calls    int
	Connects int
}

func (n *Network) Connect() error {
	n.Connects++
	return nil
}

func (n *Network) Time() (time.Time, error) {
	n.Calls++
	if n.Err != nil {
		return time.Time{}, n.Err
	}
	if n.Now == nil {
		return time.Now().UTC(), nil
	}
	return n.Now(), nil
}

// RTC holds whatever was last set. It does not tick.
type RTC struct {
	T time.Time
}

func (r *RTC) Now() time.Time  { return r.T }
func (r *RTC) Set(t time.Time) { r.T = t }

// LEDStrip records colours and whether Start was called.
type LEDStrip struct {
	Colors  []color.RGBA
	Started bool
}

func NewLEDStrip(n int) *LEDStrip {
	return &LEDStrip{Colors: make([]color.RGBA, n)}
}

func (s *LEDStrip) Len() int { return len(s.Colors) }

func (s *LEDStrip) SetColor(i int, c color.RGBA) {
	if i >= 0 && i < len(s.Colors) {
		s.Colors[i] = c
	}
}

func (s *LEDStrip) Start() error {
	s.Started = true
	return nil
}

// Lines collects log output.
type Lines struct {
	Got []string
}

func (l *Lines) WriteLineString(s string) { l.Got = append(l.Got, s) }
func (l *Lines) WriteLineBytes(b []byte)  { l.Got = append(l.Got, string(b)) }

// HAL bundles the fakes above.
type HAL struct {
	Log *Lines
	FB  *Framebuffer
	Net *Network
	Clk *RTC
	LED *LEDStrip
}

// New returns a w x h board with a 7-LED backlight.
func New(w, h int) *HAL {
	return &HAL{
		Log: &Lines{},
		FB:  NewFramebuffer(w, h),
		Net: &Network{},
		Clk: &RTC{},
		LED: NewLEDStrip(7),
	}
}

func (h *HAL) Logger() hal.Logger   { return h.Log }
func (h *HAL) Display() hal.Display { return display{h.FB} }
func (h *HAL) Network() hal.Network { return h.Net }
func (h *HAL) RTC() hal.RTC         { return h.Clk }
func (h *HAL) LEDs() hal.LEDStrip   { return h.LED }

type display struct{ fb *Framebuffer }

func (d display) Framebuffer() hal.Framebuffer { return d.fb }
