package physics

import (
	"github.com/go-gl/mathgl/mgl64"
)

func resolveContact(a, b *Body) {
	if !a.IsDynamic() && !b.IsDynamic() {
		return
	}
	if a.IsSleeping() && b.IsSleeping() {
		return
	}

	a0, a1 := a.Shape.segment(a.Position, a.Orientation)
	b0, b1 := b.Shape.segment(b.Position, b.Orientation)
	pa, pb := closestPointsSegments(a0, a1, b0, b1)

	delta := pb.Sub(pa)
	dist := delta.Len()
	radii := a.Shape.ContactRadius() + b.Shape.ContactRadius()
	if dist >= radii {
		return
	}

	normal := mgl64.Vec3{0, 1, 0}
	if dist > 0 {
		normal = delta.Mul(1 / dist)
	}
	contact := pa.Add(normal.Mul(a.Shape.ContactRadius()))
	ra := contact.Sub(a.Position)
	rb := contact.Sub(b.Position)

	invSum := a.invMass + b.invMass
	if invSum == 0 {
		return
	}

	// push apart in proportion to inverse mass
	penetration := radii - dist
	a.Position = a.Position.Sub(normal.Mul(penetration * a.invMass / invSum))
	b.Position = b.Position.Add(normal.Mul(penetration * b.invMass / invSum))

	va := a.Velocity.Add(a.AngularVelocity.Cross(ra))
	vb := b.Velocity.Add(b.AngularVelocity.Cross(rb))
	vn := vb.Sub(va).Dot(normal)
	if vn >= 0 {
		return
	}

	e := (a.Material.Restitution + b.Material.Restitution) / 2
	j := -(1 + e) * vn / invSum
	impulse := normal.Mul(j)

	a.ApplyImpulse(impulse.Mul(-1), ra)
	b.ApplyImpulse(impulse, rb)
	if a.IsDynamic() {
		a.WakeUp()
	}
	if b.IsDynamic() {
		b.WakeUp()
	}
}

// closestPointsSegments returns the closest points between segments p1-q1
// and p2-q2. Degenerate segments (points) are handled.
func closestPointsSegments(p1, q1, p2, q2 mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	d1 := q1.Sub(p1)
	d2 := q2.Sub(p2)
	r := p1.Sub(p2)
	a := d1.Dot(d1)
	e := d2.Dot(d2)
	f := d2.Dot(r)

	var s, t float64
	switch {
	case a == 0 && e == 0:
		return p1, p2
	case a == 0:
		s = 0
		t = clamp01(f / e)
	default:
		c := d1.Dot(r)
		if e == 0 {
			t = 0
			s = clamp01(-c / a)
		} else {
			b := d1.Dot(d2)
			denom := a*e - b*b
			if denom != 0 {
				s = clamp01((b*f - c*e) / denom)
			}
			t = (b*s + f) / e
			if t < 0 {
				t = 0
				s = clamp01(-c / a)
			} else if t > 1 {
				t = 1
				s = clamp01((b - c) / a)
			}
		}
	}
	return p1.Add(d1.Mul(s)), p2.Add(d2.Mul(t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
