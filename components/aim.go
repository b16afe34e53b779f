package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// AimData is the trajectory preview for the held slipper. Singleton.
type AimData struct {
	Points    []mgl64.Vec3
	Impact    mgl64.Vec3
	HasImpact bool
	Range     float64 // ground distance from the grip to Impact
	Visible   bool
	Enabled   bool
}

var Aim = donburi.NewComponentType[AimData]()
