package factory

import (
	"github.com/automoto/tumbang-preso/archetypes"
	"github.com/automoto/tumbang-preso/components"
	cfg "github.com/automoto/tumbang-preso/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the ground-plane field space and its boundary walls.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	width, height := cfg.Field.SpaceSize()
	spaceData := resolv.NewSpace(width, height, cfg.Field.CellSize, cfg.Field.CellSize)
	components.Space.Set(space, spaceData)

	// Boundary walls sit just outside the playable rectangle
	f := cfg.Field
	t := f.WallSize
	CreateWall(ecs, f.MinX-t, f.MinZ-t, f.MaxX+t, f.MinZ)
	CreateWall(ecs, f.MinX-t, f.MaxZ, f.MaxX+t, f.MaxZ+t)
	CreateWall(ecs, f.MinX-t, f.MinZ, f.MinX, f.MaxZ)
	CreateWall(ecs, f.MaxX, f.MinZ, f.MaxX+t, f.MaxZ)

	return space
}
