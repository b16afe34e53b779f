package systems

import (
	"github.com/automoto/tumbang-preso/components"
	cfg "github.com/automoto/tumbang-preso/config"
	"github.com/automoto/tumbang-preso/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTransforms copies simulation and holder poses into render
// transforms, and keeps the can's field footprint under the can.
func UpdateTransforms(ecs *ecs.ECS) {
	tags.Can.Each(ecs.World, syncCan)

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.Slipper == nil || !player.Slipper.Valid() {
		return
	}
	slipper := components.Slipper.Get(player.Slipper)
	slipper.SyncVisual(components.Transform.Get(player.Slipper), player)
}

// syncCan copies the can body pose to its transform and field footprint.
func syncCan(e *donburi.Entry) {
	can := components.Can.Get(e)
	can.SyncVisual(components.Transform.Get(e), false)

	obj := components.Object.Get(e).Object
	sx, sy := cfg.Field.ToSpace(can.Body.Position.X(), can.Body.Position.Z())
	obj.X = sx - obj.W/2
	obj.Y = sy - obj.H/2
	obj.Update()
}
