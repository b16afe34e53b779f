package components

import (
	"testing"

	"github.com/automoto/tumbang-preso/physics"
	"github.com/go-gl/mathgl/mgl64"
)

func newTestWorld() *physics.World {
	return physics.NewWorld(physics.WorldConfig{
		Gravity:    mgl64.Vec3{0, -98, 0},
		SleepSpeed: 0.5,
		SleepTime:  0.5,
	})
}

func newTestSlipper() *SlipperData {
	grip := GripPose{
		Offset:   mgl64.Vec3{2.5, -2.5, -6},
		Rotation: mgl64.QuatRotate(0.3, mgl64.Vec3{0, 1, 0}),
	}
	body := physics.NewBody(physics.BodyConfig{
		Shape: physics.Box(mgl64.Vec3{1.5, 0.4, 3.5}),
		Kind:  physics.Kinematic,
	})
	return &SlipperData{
		Body:        body,
		NominalMass: 0.3,
		Grip:        grip,
		Mode:        Held{Grip: grip},
	}
}

func testLaunch() LaunchParams {
	return LaunchParams{
		Velocity:        mgl64.Vec3{0, 0, 100},
		AngularVelocity: mgl64.Vec3{1, 20, -1},
	}
}

func TestSlipperRoundTrip(t *testing.T) {
	world := newTestWorld()
	s := newTestSlipper()
	grip := s.Grip

	pos := mgl64.Vec3{2, 14, -144}
	if !s.Release(world, true, pos, mgl64.QuatIdent(), testLaunch()) {
		t.Fatalf("Release in zone should succeed")
	}
	if s.IsHeld() {
		t.Fatalf("slipper should be thrown")
	}
	if !world.Has(s.Body) {
		t.Errorf("thrown slipper not in world")
	}
	if s.Body.Mass() != s.NominalMass || !s.Body.IsDynamic() {
		t.Errorf("thrown slipper mass=%v dynamic=%v", s.Body.Mass(), s.Body.IsDynamic())
	}
	if s.Body.Velocity != testLaunch().Velocity {
		t.Errorf("velocity = %v, want %v", s.Body.Velocity, testLaunch().Velocity)
	}
	if s.Body.Position != pos {
		t.Errorf("release pose not snapshotted")
	}
	if thrown, ok := s.Mode.(Thrown); !ok || thrown.Body != s.Body {
		t.Errorf("mode = %#v, want Thrown with the slipper body", s.Mode)
	}

	if !s.Pickup(world, pos.Add(mgl64.Vec3{5, 0, 5}), 20) {
		t.Fatalf("Pickup within radius should succeed")
	}
	held, ok := s.Mode.(Held)
	if !ok {
		t.Fatalf("mode = %#v, want Held", s.Mode)
	}
	if held.Grip != grip {
		t.Errorf("grip = %+v, want %+v", held.Grip, grip)
	}
	if world.Has(s.Body) {
		t.Errorf("held slipper still in world")
	}
	if s.Body.Mass() != 0 || s.Body.IsDynamic() || s.Body.Kind() != physics.Kinematic {
		t.Errorf("held slipper mass=%v kind=%v, want massless kinematic", s.Body.Mass(), s.Body.Kind())
	}
	if s.Body.Velocity != (mgl64.Vec3{}) || s.Body.AngularVelocity != (mgl64.Vec3{}) {
		t.Errorf("held slipper velocities not cleared")
	}
}

func TestSlipperReleaseOutOfZoneSwallowed(t *testing.T) {
	world := newTestWorld()
	s := newTestSlipper()

	if s.Release(world, false, mgl64.Vec3{0, 14, -44}, mgl64.QuatIdent(), testLaunch()) {
		t.Fatalf("Release past the foul line should be rejected")
	}
	if !s.IsHeld() {
		t.Errorf("slipper left the hand")
	}
	if world.Has(s.Body) {
		t.Errorf("slipper admitted to world")
	}
	if s.Body.Velocity != (mgl64.Vec3{}) {
		t.Errorf("velocity assigned: %v", s.Body.Velocity)
	}
}

func TestSlipperReleaseTwice(t *testing.T) {
	world := newTestWorld()
	s := newTestSlipper()

	s.Release(world, true, mgl64.Vec3{}, mgl64.QuatIdent(), testLaunch())
	s.Body.Velocity = mgl64.Vec3{1, 2, 3}
	if s.Release(world, true, mgl64.Vec3{}, mgl64.QuatIdent(), testLaunch()) {
		t.Errorf("second Release should be ignored")
	}
	if s.Body.Velocity != (mgl64.Vec3{1, 2, 3}) {
		t.Errorf("second Release touched the body")
	}
	if got := len(world.Bodies()); got != 1 {
		t.Errorf("bodies = %d, want 1", got)
	}
}

func TestSlipperPickupOutOfRange(t *testing.T) {
	world := newTestWorld()
	s := newTestSlipper()
	s.Release(world, true, mgl64.Vec3{0, 0, 0}, mgl64.QuatIdent(), testLaunch())

	if s.Pickup(world, mgl64.Vec3{0, 0, 50}, 20) {
		t.Fatalf("Pickup from 50 away should fail")
	}
	if s.IsHeld() || !world.Has(s.Body) {
		t.Errorf("failed pickup changed the slipper")
	}
}

func TestSlipperForceHeldIsSafeInEitherMode(t *testing.T) {
	world := newTestWorld()
	s := newTestSlipper()

	s.ForceHeld(world)
	if !s.IsHeld() || world.Has(s.Body) {
		t.Errorf("ForceHeld on a held slipper should leave it held and out of the world")
	}

	s.Release(world, true, mgl64.Vec3{}, mgl64.QuatIdent(), testLaunch())
	s.ForceHeld(world)
	if !s.IsHeld() || world.Has(s.Body) {
		t.Errorf("ForceHeld on a thrown slipper should bring it back")
	}
}

func TestSlipperSyncVisualFollowsHolder(t *testing.T) {
	s := newTestSlipper()
	holder := &PlayerData{Position: mgl64.Vec3{0, 17, -150}}

	var tr TransformData
	s.SyncVisual(&tr, holder)
	wantPos, wantRot := holder.Attach(s.Grip.Offset, s.Grip.Rotation)
	if !tr.Position.ApproxEqual(wantPos) {
		t.Errorf("held position = %v, want %v", tr.Position, wantPos)
	}
	if !tr.Orientation.ApproxEqual(wantRot) {
		t.Errorf("held orientation = %v, want %v", tr.Orientation, wantRot)
	}

	world := newTestWorld()
	s.Release(world, true, mgl64.Vec3{1, 2, 3}, mgl64.QuatIdent(), testLaunch())
	s.Body.Position = mgl64.Vec3{4, 5, 6}
	s.SyncVisual(&tr, holder)
	if tr.Position != s.Body.Position {
		t.Errorf("thrown position = %v, want body %v", tr.Position, s.Body.Position)
	}
}

func TestPlayerInZone(t *testing.T) {
	tests := []struct {
		z    float64
		want bool
	}{
		{-150, true},
		{-100.5, true},
		{-100, false},
		{-50, false},
	}
	for _, tt := range tests {
		p := PlayerData{Position: mgl64.Vec3{0, 17, tt.z}}
		if got := p.InZone(-100); got != tt.want {
			t.Errorf("InZone at z=%v = %v, want %v", tt.z, got, tt.want)
		}
	}
}
