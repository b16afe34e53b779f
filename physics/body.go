// Package physics is a small fixed-step rigid-body world: gravity, damping,
// a ground plane, a tipping approximation for upright cylinders, body
// contacts and sleeping. It covers what the round logic needs from a
// simulator and nothing more.
package physics

import (
	"github.com/go-gl/mathgl/mgl64"
)

// BodyKind classifies how the world treats a body.
type BodyKind int

const (
	// Dynamic bodies are integrated and respond to contacts.
	Dynamic BodyKind = iota
	// Static bodies never move; zero mass.
	Static
	// Kinematic bodies are moved by their owner; zero mass.
	Kinematic
)

// SleepState mirrors the usual awake/sleepy/sleeping progression.
type SleepState int

const (
	Awake SleepState = iota
	Sleepy
	Sleeping
)

// Material holds contact response coefficients.
type Material struct {
	Friction    float64
	Restitution float64
}

// BodyConfig describes a body at creation time.
type BodyConfig struct {
	Mass           float64
	Shape          Shape
	Position       mgl64.Vec3
	Orientation    mgl64.Quat
	LinearDamping  float64
	AngularDamping float64
	Material       Material
	Kind           BodyKind
}

// Body is a rigid body handle. Fields are exported for the owner to read
// and write directly, matching how entities treat their physics state.
type Body struct {
	Position        mgl64.Vec3
	Orientation     mgl64.Quat
	Velocity        mgl64.Vec3
	AngularVelocity mgl64.Vec3

	LinearDamping  float64
	AngularDamping float64
	Material       Material
	Shape          Shape

	mass    float64
	invMass float64
	kind    BodyKind

	sleepState SleepState
	slowTime   float64
	grounded   bool
}

// NewBody creates a body from cfg. A zero orientation becomes identity.
func NewBody(cfg BodyConfig) *Body {
	b := &Body{
		Position:       cfg.Position,
		Orientation:    cfg.Orientation,
		LinearDamping:  cfg.LinearDamping,
		AngularDamping: cfg.AngularDamping,
		Material:       cfg.Material,
		Shape:          cfg.Shape,
		kind:           cfg.Kind,
	}
	if b.Orientation == (mgl64.Quat{}) {
		b.Orientation = mgl64.QuatIdent()
	}
	b.SetMass(cfg.Mass)
	return b
}

// Mass returns the body's current mass.
func (b *Body) Mass() float64 {
	return b.mass
}

// SetMass updates mass and inverse mass. Non-positive mass is treated as
// infinite (immovable).
func (b *Body) SetMass(m float64) {
	if m <= 0 {
		b.mass = 0
		b.invMass = 0
		return
	}
	b.mass = m
	b.invMass = 1 / m
}

// Kind returns the body's classification.
func (b *Body) Kind() BodyKind {
	return b.kind
}

// SetKind changes the body's classification.
func (b *Body) SetKind(k BodyKind) {
	b.kind = k
}

// IsDynamic reports whether the world integrates this body.
func (b *Body) IsDynamic() bool {
	return b.kind == Dynamic && b.invMass > 0
}

// SleepState returns the body's sleep state.
func (b *Body) SleepState() SleepState {
	return b.sleepState
}

// IsSleeping reports whether the body is asleep.
func (b *Body) IsSleeping() bool {
	return b.sleepState == Sleeping
}

// Sleep stops the body and excludes it from integration until woken.
func (b *Body) Sleep() {
	b.sleepState = Sleeping
	b.Velocity = mgl64.Vec3{}
	b.AngularVelocity = mgl64.Vec3{}
	b.slowTime = 0
}

// WakeUp makes the body active again.
func (b *Body) WakeUp() {
	b.sleepState = Awake
	b.slowTime = 0
}

// SetPose moves the body without touching its velocities.
func (b *Body) SetPose(position mgl64.Vec3, orientation mgl64.Quat) {
	b.Position = position
	b.Orientation = orientation.Normalize()
}

// ClearVelocities zeroes linear and angular velocity.
func (b *Body) ClearVelocities() {
	b.Velocity = mgl64.Vec3{}
	b.AngularVelocity = mgl64.Vec3{}
}

// Grounded reports whether the body touched the ground plane on the last
// sub-step.
func (b *Body) Grounded() bool {
	return b.grounded
}

// ApplyImpulse changes velocity by impulse/m and angular velocity by the
// torque of the impulse about the center of mass.
func (b *Body) ApplyImpulse(impulse, relPoint mgl64.Vec3) {
	if b.invMass == 0 {
		return
	}
	b.Velocity = b.Velocity.Add(impulse.Mul(b.invMass))
	if inertia := b.Shape.Inertia(b.mass); inertia > 0 {
		b.AngularVelocity = b.AngularVelocity.Add(relPoint.Cross(impulse).Mul(1 / inertia))
	}
}
