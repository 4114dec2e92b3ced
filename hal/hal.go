package hal

import (
	"errors"
	"image/color"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Network is the board's network link and the time service reachable through it.
type Network interface {
	// Connect brings the link up. It blocks until connected or failed.
	Connect() error
	// Time queries the network time service and returns the current UTC time.
	Time() (time.Time, error)
}

// RTC is the board's wall clock. Set disciplines it, Now reads it in UTC.
type RTC interface {
	Now() time.Time
	Set(t time.Time)
}

// LEDStrip is an addressable LED chain (the panel backlight on Presto).
//
// Colours are latched by SetColor and pushed to the LEDs continuously once Start has been called.
type LEDStrip interface {
	Len() int
	SetColor(i int, c color.RGBA)
	Start() error
}

// HAL provides the only contact point between the scenes and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Network() Network
	RTC() RTC
	LEDs() LEDStrip
}
