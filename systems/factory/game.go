package factory

import (
	"github.com/automoto/tumbang-preso/clock"
	cfg "github.com/automoto/tumbang-preso/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGame populates an empty world with everything a round needs and
// returns the player entry. Singletons come first since the entity
// factories look them up.
func CreateGame(ecs *ecs.ECS, provider clock.Provider, seed uint64) *donburi.Entry {
	CreateClock(ecs, provider)
	CreateInput(ecs)
	CreateRound(ecs)
	CreateAim(ecs)
	CreateHUD(ecs)
	CreateThrow(ecs, seed)
	CreateAudio(ecs)
	CreatePhysicsWorld(ecs)
	CreateSpace(ecs)

	CreateCan(ecs)
	player := CreatePlayer(ecs, cfg.Player.Spawn, cfg.Player.SpawnYaw)
	CreateSlipper(ecs, player)
	return player
}
