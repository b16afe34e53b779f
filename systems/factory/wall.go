package factory

import (
	"github.com/automoto/tumbang-preso/archetypes"
	"github.com/automoto/tumbang-preso/components"
	cfg "github.com/automoto/tumbang-preso/config"
	"github.com/automoto/tumbang-preso/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall blocks the ground-plane rectangle [minX, maxX] x [minZ, maxZ]
// (world units) for the holder's footprint.
func CreateWall(ecs *ecs.ECS, minX, minZ, maxX, maxZ float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	sx, sy := cfg.Field.ToSpace(minX, minZ)
	w, h := maxX-minX, maxZ-minZ
	obj := resolv.NewObject(sx, sy, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(obj)

	return wall
}
