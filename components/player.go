package components

import (
	"github.com/automoto/tumbang-preso/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// PlayerData is the first-person holder frame: the eye position plus view
// angles. The slipper's grip pose and the aim axis hang off this frame.
type PlayerData struct {
	Position mgl64.Vec3
	Yaw      float64
	Pitch    float64
	Slipper  *donburi.Entry
}

var Player = donburi.NewComponentType[PlayerData]()

// Orientation returns the view orientation.
func (p *PlayerData) Orientation() mgl64.Quat {
	return gamemath.FrameOrientation(p.Yaw, p.Pitch)
}

// Forward returns the aim axis.
func (p *PlayerData) Forward() mgl64.Vec3 {
	return gamemath.FrameForward(p.Yaw, p.Pitch)
}

// Attach returns the world pose of something held at a fixed local offset
// and rotation in the view frame.
func (p *PlayerData) Attach(offset mgl64.Vec3, localRot mgl64.Quat) (mgl64.Vec3, mgl64.Quat) {
	return gamemath.LocalToWorld(p.Position, p.Orientation(), offset, localRot)
}

// InZone reports whether the player stands behind the foul line. The throw
// axis is world Z.
func (p *PlayerData) InZone(foulLineZ float64) bool {
	return p.Position.Z() < foulLineZ
}
