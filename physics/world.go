package physics

import (
	"math"

	"github.com/automoto/tumbang-preso/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

const groundContactSlop = 0.01

// WorldConfig holds the world-wide simulation parameters.
type WorldConfig struct {
	Gravity        mgl64.Vec3
	GroundY        float64
	SleepSpeed     float64
	SleepTime      float64
	GroundFriction float64
	TipGain        float64
	Bounds         Bounds
}

// Bounds are vertical walls around the ground plane at the given X and Z
// limits. The zero value has no walls.
type Bounds struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
}

// Enabled reports whether the bounds enclose any area.
func (b Bounds) Enabled() bool {
	return b.MaxX > b.MinX && b.MaxZ > b.MinZ
}

// Contains reports whether p lies within the bounds on the ground plane.
func (b Bounds) Contains(p mgl64.Vec3) bool {
	return p.X() >= b.MinX && p.X() <= b.MaxX && p.Z() >= b.MinZ && p.Z() <= b.MaxZ
}

// World owns the set of simulated bodies. Membership changes are
// idempotent; Add and Remove report whether anything changed.
type World struct {
	WorldConfig

	bodies      []*Body
	accumulator float64
	steps       int
}

// NewWorld creates an empty world.
func NewWorld(cfg WorldConfig) *World {
	return &World{WorldConfig: cfg}
}

// Add admits b into the simulation. Returns false if it was already present.
func (w *World) Add(b *Body) bool {
	if b == nil || w.Has(b) {
		return false
	}
	w.bodies = append(w.bodies, b)
	return true
}

// Remove excludes b from the simulation. Returns false if it was not present.
func (w *World) Remove(b *Body) bool {
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return true
		}
	}
	return false
}

// Has reports whether b is simulated.
func (w *World) Has(b *Body) bool {
	for _, other := range w.bodies {
		if other == b {
			return true
		}
	}
	return false
}

// Bodies returns the simulated bodies. The slice must not be modified.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Accumulator returns the unsimulated time carried to the next Step.
func (w *World) Accumulator() float64 {
	return w.accumulator
}

// StepCount returns the number of fixed sub-steps run so far.
func (w *World) StepCount() int {
	return w.steps
}

// Step advances the world by realDelta seconds in fixed sub-steps of
// fixedDelta, running at most maxSubSteps. Backlog beyond the cap is
// dropped so a stalled frame never snowballs. Returns the sub-steps run.
func (w *World) Step(fixedDelta, realDelta float64, maxSubSteps int) int {
	if fixedDelta <= 0 || maxSubSteps <= 0 {
		return 0
	}
	if realDelta > 0 {
		w.accumulator += realDelta
	}

	n := 0
	for w.accumulator >= fixedDelta && n < maxSubSteps {
		w.internalStep(fixedDelta)
		w.accumulator -= fixedDelta
		n++
	}
	if w.accumulator >= fixedDelta {
		w.accumulator = math.Mod(w.accumulator, fixedDelta)
	}
	return n
}

func (w *World) internalStep(dt float64) {
	w.steps++

	for _, b := range w.bodies {
		if !b.IsDynamic() || b.IsSleeping() {
			continue
		}
		b.Velocity = b.Velocity.Add(w.Gravity.Mul(dt))
		b.Velocity = b.Velocity.Mul(math.Pow(1-b.LinearDamping, dt))
		b.AngularVelocity = b.AngularVelocity.Mul(math.Pow(1-b.AngularDamping, dt))
	}

	for i := 0; i < len(w.bodies); i++ {
		for j := i + 1; j < len(w.bodies); j++ {
			resolveContact(w.bodies[i], w.bodies[j])
		}
	}

	for _, b := range w.bodies {
		if !b.IsDynamic() || b.IsSleeping() {
			continue
		}
		b.Position = b.Position.Add(b.Velocity.Mul(dt))
		b.Orientation = gamemath.IntegrateOrientation(b.Orientation, b.AngularVelocity, dt)
		w.resolveGround(b, dt)
		w.resolveBounds(b)
		w.updateSleep(b, dt)
	}
}

func (w *World) resolveGround(b *Body, dt float64) {
	bottom := b.Position.Y() - b.Shape.ExtentBelow(b.Orientation)
	b.grounded = bottom <= w.GroundY+groundContactSlop
	if !b.grounded {
		return
	}

	if bottom < w.GroundY {
		b.Position[1] += w.GroundY - bottom
	}
	if b.Velocity.Y() < 0 {
		b.Velocity[1] = -b.Velocity.Y() * b.Material.Restitution
		if b.Velocity.Y() < 1 {
			b.Velocity[1] = 0
		}
	}

	slide := math.Max(0, 1-w.GroundFriction*b.Material.Friction*dt)
	b.Velocity[0] *= slide
	b.Velocity[2] *= slide

	if b.Shape.Type == ShapeCylinder {
		w.tip(b, dt, slide)
		return
	}
	b.AngularVelocity = b.AngularVelocity.Mul(slide)
}

// resolveBounds keeps b's footprint inside the walls, reflecting the
// velocity component that drove it out.
func (w *World) resolveBounds(b *Body) {
	if !w.Bounds.Enabled() {
		return
	}
	ex := b.Shape.Extent(b.Orientation, mgl64.Vec3{1, 0, 0})
	ez := b.Shape.Extent(b.Orientation, mgl64.Vec3{0, 0, 1})
	bounceAxis(b, 0, w.Bounds.MinX+ex, w.Bounds.MaxX-ex)
	bounceAxis(b, 2, w.Bounds.MinZ+ez, w.Bounds.MaxZ-ez)
}

func bounceAxis(b *Body, axis int, lo, hi float64) {
	if lo > hi {
		mid := (lo + hi) / 2
		lo, hi = mid, mid
	}
	e := b.Material.Restitution
	switch {
	case b.Position[axis] < lo:
		b.Position[axis] = lo
		if b.Velocity[axis] < 0 {
			b.Velocity[axis] = -b.Velocity[axis] * e
		}
	case b.Position[axis] > hi:
		b.Position[axis] = hi
		if b.Velocity[axis] > 0 {
			b.Velocity[axis] = -b.Velocity[axis] * e
		}
	}
}

// tip pushes a grounded cylinder toward upright below its balance angle
// and toward lying down beyond it.
func (w *World) tip(b *Body, dt, slide float64) {
	up := gamemath.WorldUp(b.Orientation)
	axis := gamemath.SafeNormalize(gamemath.Up.Cross(up))

	// spin about world up rubs against the ground
	b.AngularVelocity[1] *= slide

	if axis == (mgl64.Vec3{}) {
		return
	}

	tilt := math.Acos(gamemath.Clamp(up.Y(), -1, 1))
	balance := math.Atan2(b.Shape.Radius, b.Shape.HalfHeight)
	along := b.AngularVelocity.Dot(axis)

	if tilt >= math.Pi/2 {
		if along > 0 {
			b.AngularVelocity = b.AngularVelocity.Sub(axis.Mul(along))
		}
		return
	}
	b.AngularVelocity = b.AngularVelocity.Add(axis.Mul(w.TipGain * math.Sin(tilt-balance) * dt))
}

func (w *World) updateSleep(b *Body, dt float64) {
	limit := w.SleepSpeed * w.SleepSpeed
	if b.Velocity.Dot(b.Velocity) >= limit || b.AngularVelocity.Dot(b.AngularVelocity) >= limit {
		b.sleepState = Awake
		b.slowTime = 0
		return
	}

	b.slowTime += dt
	b.sleepState = Sleepy
	if w.SleepTime > 0 && b.slowTime >= w.SleepTime {
		b.Sleep()
	}
}
