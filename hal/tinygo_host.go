//go:build tinygo && !baremetal

package hal

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	fb     *tinyGoHostFramebuffer
	net    Network
	rtc    *softRTC
	leds   *memLEDStrip
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU pin mapping.
func New() HAL {
	return &tinyGoHostHAL{
		logger: &tinyGoHostLogger{},
		fb:     &tinyGoHostFramebuffer{newPixelBuffer(240, 240)},
		net:    nullNetwork{},
		rtc:    newSoftRTC(),
		leds:   newMemLEDStrip(7),
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) Display() Display { return tinyGoHostDisplay{fb: h.fb} }
func (h *tinyGoHostHAL) Network() Network { return h.net }
func (h *tinyGoHostHAL) RTC() RTC         { return h.rtc }
func (h *tinyGoHostHAL) LEDs() LEDStrip   { return h.leds }

type tinyGoHostDisplay struct {
	fb Framebuffer
}

func (d tinyGoHostDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}

// tinyGoHostFramebuffer has nowhere to present to.
type tinyGoHostFramebuffer struct {
	pixelBuffer
}

func (f *tinyGoHostFramebuffer) Present() error { return nil }
