package factory

import (
	"github.com/automoto/tumbang-preso/archetypes"
	"github.com/automoto/tumbang-preso/components"
	cfg "github.com/automoto/tumbang-preso/config"
	"github.com/automoto/tumbang-preso/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the first-person holder at the given eye position.
func CreatePlayer(ecs *ecs.ECS, position mgl64.Vec3, yaw float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Player.SetValue(player, components.PlayerData{
		Position: position,
		Yaw:      yaw,
	})

	size := cfg.Player.FootprintSize
	sx, sy := cfg.Field.ToSpace(position.X(), position.Z())
	obj := resolv.NewObject(sx-size/2, sy-size/2, size, size, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}
