package components

import (
	"github.com/automoto/tumbang-preso/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// GripPose is where the slipper sits in the holder's view frame.
type GripPose struct {
	Offset   mgl64.Vec3
	Rotation mgl64.Quat
}

// SlipperMode is either Held or Thrown. The active variant decides who
// owns the slipper's transform: the holder frame or the physics body.
type SlipperMode interface {
	isSlipperMode()
}

// Held: out of the simulation, posed at Grip in the holder frame.
type Held struct {
	Grip GripPose
}

// Thrown: in the simulation, posed by Body.
type Thrown struct {
	Body *physics.Body
}

func (Held) isSlipperMode()   {}
func (Thrown) isSlipperMode() {}

// LaunchParams are the release inputs computed by the throw system.
type LaunchParams struct {
	Velocity        mgl64.Vec3
	AngularVelocity mgl64.Vec3
}

// SlipperData is the projectile. Body is created once and reused across
// throws; only its world membership and mass follow the mode.
type SlipperData struct {
	Body        *physics.Body
	NominalMass float64
	Grip        GripPose
	Mode        SlipperMode
}

var Slipper = donburi.NewComponentType[SlipperData]()

// IsHeld reports whether the slipper is in the holder's hand.
func (s *SlipperData) IsHeld() bool {
	_, ok := s.Mode.(Held)
	return ok
}

// Release switches Held to Thrown. pos/rot are the slipper's current world
// pose taken from the holder frame. A release from outside the throwing zone
// is swallowed: the slipper stays held and nothing enters the world.
// Returns whether the slipper left the hand.
func (s *SlipperData) Release(world *physics.World, inZone bool, pos mgl64.Vec3, rot mgl64.Quat, launch LaunchParams) bool {
	if !s.IsHeld() || !inZone {
		return false
	}

	s.Body.SetPose(pos, rot)
	s.Body.SetMass(s.NominalMass)
	s.Body.SetKind(physics.Dynamic)
	world.Add(s.Body)

	s.Body.Velocity = launch.Velocity
	s.Body.AngularVelocity = launch.AngularVelocity
	s.Body.WakeUp()

	s.Mode = Thrown{Body: s.Body}
	return true
}

// Pickup switches Thrown back to Held when the holder stands within radius
// of the slipper. Returns whether the pickup happened.
func (s *SlipperData) Pickup(world *physics.World, holderPos mgl64.Vec3, radius float64) bool {
	if s.IsHeld() {
		return false
	}
	if holderPos.Sub(s.Body.Position).Len() > radius {
		return false
	}
	s.ForceHeld(world)
	return true
}

// ForceHeld puts the slipper back in hand regardless of distance. Safe to
// call in either mode.
func (s *SlipperData) ForceHeld(world *physics.World) {
	s.Body.SetMass(0)
	s.Body.SetKind(physics.Kinematic)
	s.Body.ClearVelocities()
	world.Remove(s.Body)
	s.Mode = Held{Grip: s.Grip}
}

// SyncVisual writes the slipper's world pose into t: from the holder frame
// while held, from the body while thrown.
func (s *SlipperData) SyncVisual(t *TransformData, holder *PlayerData) {
	switch m := s.Mode.(type) {
	case Held:
		t.Position, t.Orientation = holder.Attach(m.Grip.Offset, m.Grip.Rotation)
	case Thrown:
		t.Position = m.Body.Position
		t.Orientation = m.Body.Orientation
	}
}
