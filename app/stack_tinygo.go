//go:build tinygo

package app

// TinyGo cannot walk the stack at runtime.
func captureStack() []byte { return nil }
