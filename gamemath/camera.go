package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a pinhole perspective projection looking down its local -Z.
type Camera struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	FieldOfView float64 // vertical, radians
	Near        float64
	Width       float64
	Height      float64
}

func (c Camera) toView(p mgl64.Vec3) mgl64.Vec3 {
	return c.Orientation.Conjugate().Rotate(p.Sub(c.Position))
}

func (c Camera) focal() float64 {
	return (c.Height / 2) / math.Tan(c.FieldOfView/2)
}

func (c Camera) viewToScreen(v mgl64.Vec3) (float64, float64) {
	depth := -v.Z()
	f := c.focal()
	return c.Width/2 + f*v.X()/depth, c.Height/2 - f*v.Y()/depth
}

// Project maps a world point to screen coordinates. ok is false for points
// behind the near plane.
func (c Camera) Project(p mgl64.Vec3) (x, y float64, ok bool) {
	v := c.toView(p)
	if -v.Z() < c.Near {
		return 0, 0, false
	}
	x, y = c.viewToScreen(v)
	return x, y, true
}

// ProjectSegment maps a world segment to screen space, clipping it against
// the near plane. ok is false when the whole segment is behind the camera.
func (c Camera) ProjectSegment(a, b mgl64.Vec3) (x0, y0, x1, y1 float64, ok bool) {
	va, vb := c.toView(a), c.toView(b)
	da, db := -va.Z(), -vb.Z()
	if da < c.Near && db < c.Near {
		return 0, 0, 0, 0, false
	}
	if da < c.Near {
		t := (c.Near - da) / (db - da)
		va = va.Add(vb.Sub(va).Mul(t))
	} else if db < c.Near {
		t := (c.Near - db) / (da - db)
		vb = vb.Add(va.Sub(vb).Mul(t))
	}
	x0, y0 = c.viewToScreen(va)
	x1, y1 = c.viewToScreen(vb)
	return x0, y0, x1, y1, true
}
