package components

import (
	"github.com/automoto/tumbang-preso/gamemath"
	"github.com/automoto/tumbang-preso/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CanData is the standing target. Fallen is sticky: once set it stays set
// until Reset, so a tumbling can does not re-trigger knockdown every tick.
type CanData struct {
	Body         *physics.Body
	RestPosition mgl64.Vec3
	NominalMass  float64
	FallenCos    float64
	Fallen       bool
}

var Can = donburi.NewComponentType[CanData]()

// CheckFallen classifies the can as knocked down once its up axis tilts
// past the threshold, and latches the result.
func (c *CanData) CheckFallen() bool {
	if c.Fallen {
		return true
	}
	if gamemath.WorldUp(c.Body.Orientation).Y() < c.FallenCos {
		c.Fallen = true
	}
	return c.Fallen
}

// Reset stands the can back up at its rest pose, stopped and asleep.
func (c *CanData) Reset() {
	c.Body.SetPose(c.RestPosition, mgl64.QuatIdent())
	c.Body.ClearVelocities()
	c.Body.Sleep()
	c.Fallen = false
}

// SyncVisual copies the body pose to the render transform. Skipped while
// something else is puppeting the can.
func (c *CanData) SyncVisual(t *TransformData, isHeld bool) {
	if isHeld {
		return
	}
	t.Position = c.Body.Position
	t.Orientation = c.Body.Orientation
}

// DisablePhysics takes the can out of simulation so it can be carried or
// placed without the integrator fighting the placement.
func (c *CanData) DisablePhysics() {
	c.Body.SetMass(0)
	c.Body.SetKind(physics.Static)
	c.Body.ClearVelocities()
}

// EnablePhysics restores nominal mass and wakes the can.
func (c *CanData) EnablePhysics() {
	c.Body.SetMass(c.NominalMass)
	c.Body.SetKind(physics.Dynamic)
	c.Body.WakeUp()
}
