package gamemath

import "github.com/go-gl/mathgl/mgl64"

// FrameOrientation builds a first-person view orientation: yaw about world
// up, then pitch about the local right axis.
func FrameOrientation(yaw, pitch float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, Up).Mul(mgl64.QuatRotate(pitch, Right))
}

// FrameForward returns the unit forward axis of a yaw/pitch view frame.
func FrameForward(yaw, pitch float64) mgl64.Vec3 {
	return FrameOrientation(yaw, pitch).Rotate(Forward)
}

// LocalToWorld composes a child pose expressed in a parent frame.
func LocalToWorld(parentPos mgl64.Vec3, parentRot mgl64.Quat, offset mgl64.Vec3, localRot mgl64.Quat) (mgl64.Vec3, mgl64.Quat) {
	return parentPos.Add(parentRot.Rotate(offset)), parentRot.Mul(localRot).Normalize()
}
