package aquarium

import (
	"math"
	"math/rand"
	"testing"
)

// fixedRand always returns the same draw. 0.5 makes every noise term zero.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

var tank = Bounds{Width: 240, Height: 240, SpriteSize: SpriteSize}

func TestNewFishPlacement(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		f := NewFish(rand.New(rand.NewSource(seed)), tank, nil, nil)
		if f.X < 30 || f.X >= 210 || f.Y < 30 || f.Y >= 210 {
			t.Fatalf("seed %d: start (%v,%v) outside spawn area", seed, f.X, f.Y)
		}
		if f.Speed < 0.3 || f.Speed >= 0.6 {
			t.Fatalf("seed %d: speed %v", seed, f.Speed)
		}
		if f.FacingLeft != (f.DX < 0) {
			t.Fatalf("seed %d: facing %v with dx %v", seed, f.FacingLeft, f.DX)
		}
	}
}

func TestAdvanceStaysInTank(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var fish []*Fish
	for range Species {
		fish = append(fish, NewFish(rng, tank, nil, nil))
	}
	for i := 0; i < 20000; i++ {
		for _, f := range fish {
			f.Advance(tank, rng)
			if f.X < 0 || f.X > 210 || f.Y < 0 || f.Y > 210 {
				t.Fatalf("frame %d: fish escaped to (%v,%v)", i, f.X, f.Y)
			}
		}
	}
}

func TestAdvanceNormalisesSpeed(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	f := NewFish(rng, tank, nil, nil)
	for i := 0; i < 100; i++ {
		f.Advance(tank, rng)
		if got := math.Hypot(f.DX, f.DY); math.Abs(got-f.Speed) > 1e-9 {
			t.Fatalf("frame %d: |v| = %v, want %v", i, got, f.Speed)
		}
	}
}

func TestAdvanceZeroVelocityIsLeftAlone(t *testing.T) {
	f := &Fish{X: 100, Y: 100, Speed: 0.5, FlipThreshold: flipThreshold}
	f.Advance(tank, fixedRand(0.5))
	if f.DX != 0 || f.DY != 0 || f.X != 100 || f.Y != 100 {
		t.Fatalf("expected a resting fish to stay put, got %+v", f)
	}
}

func TestAdvanceReflectsAtWalls(t *testing.T) {
	cases := []struct {
		name         string
		x, y, dx, dy float64
		wantX, wantY float64
		wantDX       float64
		wantDY       float64
	}{
		{"left", 0.1, 100, -0.5, 0, 0.4, 100, 0.5, 0},
		{"right", 209.9, 100, 0.5, 0, 209.6, 100, -0.5, 0},
		{"top", 100, 0.2, 0, -0.5, 100, 0.3, 0, 0.5},
		{"bottom", 100, 209.8, 0, 0.5, 100, 209.7, 0, -0.5},
	}
	for _, tc := range cases {
		f := &Fish{X: tc.x, Y: tc.y, DX: tc.dx, DY: tc.dy, Speed: 0.5, FlipThreshold: flipThreshold}
		f.Advance(tank, fixedRand(0.5))
		if math.Abs(f.X-tc.wantX) > 1e-9 || math.Abs(f.Y-tc.wantY) > 1e-9 {
			t.Fatalf("%s: position (%v,%v), want (%v,%v)", tc.name, f.X, f.Y, tc.wantX, tc.wantY)
		}
		if math.Abs(f.DX-tc.wantDX) > 1e-9 || math.Abs(f.DY-tc.wantDY) > 1e-9 {
			t.Fatalf("%s: velocity (%v,%v), want (%v,%v)", tc.name, f.DX, f.DY, tc.wantDX, tc.wantDY)
		}
	}
}

func TestFacingHysteresis(t *testing.T) {
	f := &Fish{X: 100, Y: 100, Speed: 1, FlipThreshold: flipThreshold}
	steps := []struct {
		dx   float64
		want bool
	}{
		{-0.1, false},
		{-0.5, true},
		{0.1, true},
		{-0.15, true},
		{0.3, false},
		{0.2, false},
		{-0.19, false},
	}
	for i, s := range steps {
		f.X, f.Y = 100, 100
		f.DX, f.DY = s.dx, math.Sqrt(1-s.dx*s.dx)
		f.Advance(tank, fixedRand(0.5))
		if f.FacingLeft != s.want {
			t.Fatalf("step %d (dx %v): facing left = %v, want %v", i, s.dx, f.FacingLeft, s.want)
		}
	}
}

func TestAdvanceDeterministic(t *testing.T) {
	run := func() (float64, float64) {
		rng := rand.New(rand.NewSource(42))
		f := NewFish(rng, tank, nil, nil)
		for i := 0; i < 500; i++ {
			f.Advance(tank, rng)
		}
		return f.X, f.Y
	}
	x1, y1 := run()
	x2, y2 := run()
	if x1 != x2 || y1 != y2 {
		t.Fatalf("same seed diverged: (%v,%v) vs (%v,%v)", x1, y1, x2, y2)
	}
}
