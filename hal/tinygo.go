//go:build tinygo && baremetal

package hal

import (
	"machine"
)

// Presto wiring: the backlight chain hangs off GPIO33 of the RP2350B.
const prestoLEDPin = machine.Pin(33)

type prestoHAL struct {
	logger *serialLogger
	fb     Framebuffer
	net    Network
	rtc    *softRTC
	leds   *ws2812Strip
}

// New returns a Presto (RP2350B) HAL implementation.
//
// Logging goes to the USB CDC serial port. The CYW43 radio has no TinyGo stack, so network time is
// unavailable and the time source falls back to the soft RTC.
func New() HAL {
	return &prestoHAL{
		logger: &serialLogger{out: machine.Serial},
		fb:     newPrestoFramebuffer(prestoWidth, prestoHeight),
		net:    nullNetwork{},
		rtc:    newSoftRTC(),
		leds:   newWS2812Strip(prestoLEDPin, prestoBacklightLEDs),
	}
}

func (h *prestoHAL) Logger() Logger   { return h.logger }
func (h *prestoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *prestoHAL) Network() Network { return h.net }
func (h *prestoHAL) RTC() RTC         { return h.rtc }
func (h *prestoHAL) LEDs() LEDStrip   { return h.leds }
