package factory

import (
	"github.com/automoto/tumbang-preso/archetypes"
	"github.com/automoto/tumbang-preso/components"
	cfg "github.com/automoto/tumbang-preso/config"
	"github.com/automoto/tumbang-preso/physics"
	"github.com/automoto/tumbang-preso/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCan spawns the can at its rest pose, registers its body with the
// physics world and puts it to sleep until something disturbs it.
func CreateCan(ecs *ecs.ECS) *donburi.Entry {
	can := archetypes.Can.Spawn(ecs)

	body := physics.NewBody(physics.BodyConfig{
		Mass:           cfg.Can.Mass,
		Shape:          physics.Cylinder(cfg.Can.Radius, cfg.Can.Height),
		Position:       cfg.Can.Position,
		Orientation:    mgl64.QuatIdent(),
		LinearDamping:  cfg.Can.LinearDamping,
		AngularDamping: cfg.Can.AngularDamping,
		Material: physics.Material{
			Friction:    cfg.Can.Friction,
			Restitution: cfg.Can.Restitution,
		},
		Kind: physics.Dynamic,
	})
	body.Sleep()

	world := components.PhysicsWorld.Get(components.PhysicsWorld.MustFirst(ecs.World))
	world.Add(body)

	components.Can.SetValue(can, components.CanData{
		Body:         body,
		RestPosition: cfg.Can.Position,
		NominalMass:  cfg.Can.Mass,
		FallenCos:    cfg.Can.FallenCos,
	})
	components.Transform.SetValue(can, components.TransformData{
		Position:    body.Position,
		Orientation: body.Orientation,
		Visible:     true,
	})

	// Footprint in the field space so the player can't walk through it
	size := 2 * cfg.Can.Radius
	sx, sy := cfg.Field.ToSpace(cfg.Can.Position.X(), cfg.Can.Position.Z())
	obj := resolv.NewObject(sx-size/2, sy-size/2, size, size, tags.ResolvCan)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = can
	components.Object.SetValue(can, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return can
}
