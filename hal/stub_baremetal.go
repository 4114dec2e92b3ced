//go:build tinygo && baremetal

package hal

const (
	prestoWidth  = 240
	prestoHeight = 240

	prestoBacklightLEDs = 7
)

type prestoFramebuffer struct {
	pixelBuffer
}

func newPrestoFramebuffer(w, h int) *prestoFramebuffer {
	return &prestoFramebuffer{pixelBuffer: newPixelBuffer(w, h)}
}

// TODO: scan the buffer out to the ST7701 panel over PIO once a TinyGo driver for it exists.
func (f *prestoFramebuffer) Present() error { return nil }
