// Package gamemath holds the pure vector math shared by systems, the physics
// stand-in and the renderer.
package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	Up      = mgl64.Vec3{0, 1, 0}
	Right   = mgl64.Vec3{1, 0, 0}
	Forward = mgl64.Vec3{0, 0, -1} // local forward of a view frame
)

// SafeNormalize returns the unit vector of v, or the zero vector when v has
// no length. Never produces NaN.
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	lenSq := v.Dot(v)
	if lenSq == 0 || math.IsNaN(lenSq) || math.IsInf(lenSq, 0) {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / math.Sqrt(lenSq))
}

// WorldUp rotates the local up axis into world space.
func WorldUp(orientation mgl64.Quat) mgl64.Vec3 {
	return orientation.Rotate(Up)
}

// EulerToQuat builds an orientation from XYZ euler angles in radians.
func EulerToQuat(euler mgl64.Vec3) mgl64.Quat {
	return mgl64.AnglesToQuat(euler[0], euler[1], euler[2], mgl64.XYZ)
}

// TiltFromVertical returns the angle between the rotated up axis and world up.
func TiltFromVertical(orientation mgl64.Quat) float64 {
	y := WorldUp(orientation).Y()
	return math.Acos(Clamp(y, -1, 1))
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// HorizontalDistance is the distance between a and b on the ground plane.
func HorizontalDistance(a, b mgl64.Vec3) float64 {
	dx := a.X() - b.X()
	dz := a.Z() - b.Z()
	return math.Sqrt(dx*dx + dz*dz)
}

// IntegrateOrientation advances q by angular velocity w over dt.
func IntegrateOrientation(q mgl64.Quat, w mgl64.Vec3, dt float64) mgl64.Quat {
	if w.Dot(w) == 0 {
		return q
	}
	spin := mgl64.Quat{W: 0, V: w}.Mul(q).Scale(0.5 * dt)
	return q.Add(spin).Normalize()
}
