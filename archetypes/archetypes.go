package archetypes

import (
	"github.com/automoto/tumbang-preso/components"
	cfg "github.com/automoto/tumbang-preso/config"
	"github.com/automoto/tumbang-preso/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
	)
	Can = newArchetype(
		tags.Can,
		components.Can,
		components.Transform,
		components.Object,
	)
	Slipper = newArchetype(
		tags.Slipper,
		components.Slipper,
		components.Transform,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	PhysicsWorld = newArchetype(
		components.PhysicsWorld,
	)
	Space = newArchetype(
		components.Space,
	)
	Round = newArchetype(
		components.Round,
	)
	Aim = newArchetype(
		components.Aim,
	)
	HUD = newArchetype(
		components.HUD,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Input = newArchetype(
		components.Input,
	)
	Throw = newArchetype(
		components.Throw,
	)
	Audio = newArchetype(
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
