package gamemath

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSafeNormalize(t *testing.T) {
	if got := SafeNormalize(mgl64.Vec3{}); got != (mgl64.Vec3{}) {
		t.Errorf("SafeNormalize(0) = %v, want zero vector", got)
	}
	got := SafeNormalize(mgl64.Vec3{3, 0, 4})
	if !got.ApproxEqual(mgl64.Vec3{0.6, 0, 0.8}) {
		t.Errorf("SafeNormalize(3,0,4) = %v", got)
	}
}

func TestLaunchVelocityZeroAim(t *testing.T) {
	v := CalculateLaunchVelocity(mgl64.Vec3{}, 100)
	for i := 0; i < 3; i++ {
		if v[i] != 0 || math.IsNaN(v[i]) {
			t.Fatalf("launch velocity for zero aim = %v, want zero", v)
		}
	}

	v = CalculateLaunchVelocity(mgl64.Vec3{0, 0, 2}, 100)
	if !v.ApproxEqual(mgl64.Vec3{0, 0, 100}) {
		t.Errorf("launch velocity = %v, want (0,0,100)", v)
	}
}

func TestThrowSpinBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	sawPositive, sawNegative := false, false
	for i := 0; i < 200; i++ {
		w := CalculateThrowSpin(rng, 5, 20)
		if math.Abs(w.X()) > 2.5 || math.Abs(w.Z()) > 2.5 {
			t.Fatalf("tumble out of range: %v", w)
		}
		switch w.Y() {
		case 20:
			sawPositive = true
		case -20:
			sawNegative = true
		default:
			t.Fatalf("spin magnitude = %f, want ±20", w.Y())
		}
	}
	if !sawPositive || !sawNegative {
		t.Errorf("expected both spin signs, positive=%v negative=%v", sawPositive, sawNegative)
	}
}

func TestThrowSpinPinnedSeed(t *testing.T) {
	a := CalculateThrowSpin(rand.New(rand.NewPCG(7, 7)), 5, 20)
	b := CalculateThrowSpin(rand.New(rand.NewPCG(7, 7)), 5, 20)
	if a != b {
		t.Errorf("same seed gave %v and %v", a, b)
	}
}

func TestFrameForward(t *testing.T) {
	if f := FrameForward(0, 0); !f.ApproxEqualThreshold(mgl64.Vec3{0, 0, -1}, 1e-9) {
		t.Errorf("yaw 0 forward = %v, want -Z", f)
	}
	if f := FrameForward(math.Pi, 0); !f.ApproxEqualThreshold(mgl64.Vec3{0, 0, 1}, 1e-9) {
		t.Errorf("yaw pi forward = %v, want +Z", f)
	}
	f := FrameForward(0, math.Pi/4)
	if f.Y() <= 0 {
		t.Errorf("positive pitch should look up, got %v", f)
	}
}

func TestWorldUpTilt(t *testing.T) {
	q := mgl64.QuatRotate(math.Pi/3, mgl64.Vec3{1, 0, 0})
	if y := WorldUp(q).Y(); math.Abs(y-0.5) > 1e-9 {
		t.Errorf("60 degree tilt up.Y = %f, want 0.5", y)
	}
	if tilt := TiltFromVertical(q); math.Abs(tilt-math.Pi/3) > 1e-9 {
		t.Errorf("tilt = %f, want pi/3", tilt)
	}
}

func TestLocalToWorld(t *testing.T) {
	parentRot := mgl64.QuatRotate(math.Pi, Up)
	pos, rot := LocalToWorld(mgl64.Vec3{10, 0, 0}, parentRot, mgl64.Vec3{0, 0, -5}, mgl64.QuatIdent())
	if !pos.ApproxEqualThreshold(mgl64.Vec3{10, 0, 5}, 1e-9) {
		t.Errorf("child position = %v, want (10,0,5)", pos)
	}
	if !rot.ApproxEqualThreshold(parentRot, 1e-9) {
		t.Errorf("child rotation = %v, want %v", rot, parentRot)
	}
}
