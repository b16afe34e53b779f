package systems

import (
	"github.com/automoto/tumbang-preso/components"
	cfg "github.com/automoto/tumbang-preso/config"
	"github.com/automoto/tumbang-preso/physics"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics advances the rigid-body world by the real frame delta in
// fixed sub-steps.
func UpdatePhysics(ecs *ecs.ECS) {
	world := getPhysicsWorld(ecs)
	world.Step(cfg.Physics.FixedStep, getClock(ecs).Delta, cfg.Physics.MaxSubSteps)
}

func getPhysicsWorld(ecs *ecs.ECS) *physics.World {
	return components.PhysicsWorld.Get(components.PhysicsWorld.MustFirst(ecs.World)).World
}
