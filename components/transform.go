package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformData is the render-side pose of an entity. Renderers only read
// this; it is written by the sync system from the entity's body or holder.
type TransformData struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	Visible     bool
}

var Transform = donburi.NewComponentType[TransformData]()
