package aquarium

import (
	"math"

	"presto/gfx"
)

// SpriteSize is the edge length of every fish sprite in pixels.
const SpriteSize = 30

// flipThreshold is the horizontal speed a fish needs before it turns to face the other way.
const flipThreshold = 0.2

// Rand is the random source the simulation draws from. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

func uniform(rng Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

// Bounds is the tank the fish swim in.
type Bounds struct {
	Width      int
	Height     int
	SpriteSize int
}

func (b Bounds) maxX() float64 { return float64(b.Width - b.SpriteSize) }
func (b Bounds) maxY() float64 { return float64(b.Height - b.SpriteSize) }

// Fish is one sprite drifting around the tank.
type Fish struct {
	X, Y   float64
	DX, DY float64
	Speed  float64

	FacingLeft    bool
	FlipThreshold float64

	Left  *gfx.Image
	Right *gfx.Image
}

// NewFish places a fish at a random spot at least one sprite away from the edges, with a random
// heading and a cruising speed in [0.3, 0.6).
func NewFish(rng Rand, b Bounds, left, right *gfx.Image) *Fish {
	s := float64(b.SpriteSize)
	f := &Fish{
		X:             uniform(rng, s, float64(b.Width)-s),
		Y:             uniform(rng, s, float64(b.Height)-s),
		DX:            uniform(rng, -1, 1),
		DY:            uniform(rng, -1, 1),
		FlipThreshold: flipThreshold,
		Left:          left,
		Right:         right,
	}
	f.Speed = uniform(rng, 0.3, 0.6)
	f.FacingLeft = f.DX < 0
	return f
}

// Advance moves the fish by one frame.
func (f *Fish) Advance(b Bounds, rng Rand) {
	f.DX += uniform(rng, -0.1, 0.1)
	f.DY += uniform(rng, -0.1, 0.1)

	if mag := math.Hypot(f.DX, f.DY); mag > 0 {
		f.DX = f.DX / mag * f.Speed
		f.DY = f.DY / mag * f.Speed
	}

	f.X += f.DX
	f.Y += f.DY

	// Position stays inside the tank even on the frame that hits a wall.
	f.X, f.DX = reflect(f.X, f.DX, b.maxX())
	f.Y, f.DY = reflect(f.Y, f.DY, b.maxY())

	switch {
	case f.DX < -f.FlipThreshold:
		f.FacingLeft = true
	case f.DX > f.FlipThreshold:
		f.FacingLeft = false
	}
}

// reflect bounces p off the walls of [0, hi], mirroring any overshoot back inside and pointing
// the velocity away from the wall that was hit.
func reflect(p, v, hi float64) (float64, float64) {
	if hi <= 0 {
		return 0, -v
	}
	switch {
	case p < 0:
		p, v = -p, math.Abs(v)
	case p > hi:
		p, v = 2*hi-p, -math.Abs(v)
	default:
		return p, v
	}
	return math.Min(math.Max(p, 0), hi), v
}

// Sprite returns the image for the current facing.
func (f *Fish) Sprite() *gfx.Image {
	if f.FacingLeft {
		return f.Left
	}
	return f.Right
}

// Draw blits the fish at its truncated position on the surface's active layer.
func (f *Fish) Draw(s *gfx.Surface) {
	s.DrawImage(f.Sprite(), int(f.X), int(f.Y))
}
