//go:build !tinygo

package hal

import "sync"

// hostFramebuffer double-buffers: scenes draw into buf, the window reads shown.
type hostFramebuffer struct {
	pixelBuffer

	mu    sync.Mutex
	shown []byte
}

func newHostFramebuffer(w, h int) *hostFramebuffer {
	return &hostFramebuffer{
		pixelBuffer: newPixelBuffer(w, h),
		shown:       make([]byte, w*h*2),
	}
}

// Present latches the draw buffer so the window never shows a half-drawn frame.
func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.shown, f.buf)
	return nil
}

func (f *hostFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.shown)
}
