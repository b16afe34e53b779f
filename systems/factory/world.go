package factory

import (
	"time"

	"github.com/automoto/tumbang-preso/archetypes"
	"github.com/automoto/tumbang-preso/clock"
	"github.com/automoto/tumbang-preso/components"
	cfg "github.com/automoto/tumbang-preso/config"
	"github.com/automoto/tumbang-preso/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePhysicsWorld creates the rigid-body world singleton.
func CreatePhysicsWorld(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.PhysicsWorld.Spawn(ecs)
	world := physics.NewWorld(physics.WorldConfig{
		Gravity:        cfg.Physics.Gravity,
		GroundY:        cfg.Physics.GroundY,
		SleepSpeed:     cfg.Physics.SleepSpeed,
		SleepTime:      cfg.Physics.SleepTime,
		GroundFriction: cfg.Physics.GroundFriction,
		TipGain:        cfg.Physics.TipGain,
		Bounds: physics.Bounds{
			MinX: cfg.Field.MinX,
			MaxX: cfg.Field.MaxX,
			MinZ: cfg.Field.MinZ,
			MaxZ: cfg.Field.MaxZ,
		},
	})
	components.PhysicsWorld.SetValue(e, components.PhysicsWorldData{World: world})
	return e
}

// CreateClock creates the wall-clock singleton.
func CreateClock(ecs *ecs.ECS, provider clock.Provider) *donburi.Entry {
	e := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(e, components.ClockData{Provider: provider})
	return e
}

// CreateThrow creates the throw singleton. A zero seed draws one from the
// clock so casual play varies; pass a fixed seed to replay spins.
func CreateThrow(ecs *ecs.ECS, seed uint64) *donburi.Entry {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	e := archetypes.Throw.Spawn(ecs)
	components.Throw.SetValue(e, components.NewThrowData(seed))
	return e
}
