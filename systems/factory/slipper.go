package factory

import (
	"github.com/automoto/tumbang-preso/archetypes"
	"github.com/automoto/tumbang-preso/components"
	cfg "github.com/automoto/tumbang-preso/config"
	"github.com/automoto/tumbang-preso/gamemath"
	"github.com/automoto/tumbang-preso/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSlipper spawns the slipper in the owner's hand. Its body exists from
// the start but stays out of the physics world until thrown.
func CreateSlipper(ecs *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	s := archetypes.Slipper.Spawn(ecs)

	grip := components.GripPose{
		Offset:   cfg.Slipper.GripOffset,
		Rotation: gamemath.EulerToQuat(cfg.Slipper.GripRotation),
	}

	body := physics.NewBody(physics.BodyConfig{
		Mass:           0,
		Shape:          physics.Box(cfg.Slipper.HalfExtents),
		LinearDamping:  cfg.Slipper.LinearDamping,
		AngularDamping: cfg.Slipper.AngularDamping,
		Material: physics.Material{
			Friction:    cfg.Slipper.Friction,
			Restitution: cfg.Slipper.Restitution,
		},
		Kind: physics.Kinematic,
	})

	slipper := components.SlipperData{
		Body:        body,
		NominalMass: cfg.Slipper.Mass,
		Grip:        grip,
		Mode:        components.Held{Grip: grip},
	}

	player := components.Player.Get(owner)
	var t components.TransformData
	slipper.SyncVisual(&t, player)
	t.Visible = true
	body.SetPose(t.Position, t.Orientation)

	components.Slipper.SetValue(s, slipper)
	components.Transform.SetValue(s, t)

	player.Slipper = s
	return s
}
