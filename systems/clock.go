package systems

import (
	"github.com/automoto/tumbang-preso/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock samples wall-clock time once per frame. Runs first.
func UpdateClock(ecs *ecs.ECS) {
	getClock(ecs).Tick()
}

func getClock(ecs *ecs.ECS) *components.ClockData {
	return components.Clock.Get(components.Clock.MustFirst(ecs.World))
}
